package relationships

import "time"

// LegalEntity is a registered organizational unit under an employer account
// (the AccountLegalEntity of the relational schema). Its id mirrors the
// external legal-entity id. Deletion is a soft-delete marker: once set, no
// update event may mutate the name again.
type LegalEntity struct {
	id             int64
	accountID      int64
	name           string
	publicHashedID string
	created        time.Time
	updated        time.Time
	deleted        *time.Time
}

// NewLegalEntity creates a LegalEntity as first seen from an inbound event.
func NewLegalEntity(id, accountID int64, name, publicHashedID string, created time.Time) LegalEntity {
	return LegalEntity{
		id:             id,
		accountID:      accountID,
		name:           name,
		publicHashedID: publicHashedID,
		created:        created,
	}
}

// ReconstructLegalEntity rebuilds a LegalEntity from persisted state.
func ReconstructLegalEntity(
	id, accountID int64,
	name, publicHashedID string,
	created, updated time.Time,
	deleted *time.Time,
) LegalEntity {
	return LegalEntity{
		id:             id,
		accountID:      accountID,
		name:           name,
		publicHashedID: publicHashedID,
		created:        created,
		updated:        updated,
		deleted:        deleted,
	}
}

// ID returns the legal entity id.
func (l LegalEntity) ID() int64 { return l.id }

// AccountID returns the owning account id.
func (l LegalEntity) AccountID() int64 { return l.accountID }

// Name returns the legal entity name.
func (l LegalEntity) Name() string { return l.name }

// PublicHashedID returns the public hashed identifier.
func (l LegalEntity) PublicHashedID() string { return l.publicHashedID }

// Created returns when the legal entity was first seen.
func (l LegalEntity) Created() time.Time { return l.created }

// Updated returns when the legal entity was last mutated by an event.
func (l LegalEntity) Updated() time.Time { return l.updated }

// Deleted returns the soft-delete time, or nil if still live.
func (l LegalEntity) Deleted() *time.Time {
	if l.deleted == nil {
		return nil
	}
	t := *l.deleted
	return &t
}

// IsDeleted reports whether the soft-delete marker is set.
func (l LegalEntity) IsDeleted() bool { return l.deleted != nil }

// WithName returns a copy renamed at the given event time. Renaming a
// soft-deleted legal entity is a no-op.
func (l LegalEntity) WithName(name string, at time.Time) LegalEntity {
	if l.IsDeleted() {
		return l
	}
	l.name = name
	l.updated = at
	return l
}

// MarkDeleted returns a copy with the soft-delete marker set.
func (l LegalEntity) MarkDeleted(at time.Time) LegalEntity {
	l.deleted = &at
	return l
}
