package relationships

import "time"

// Link joins an AccountProvider to a LegalEntity (the
// AccountProviderLegalEntity of the relational schema). At most one row
// exists per (AccountProviderID, LegalEntityID) pair. A Link owns the set of
// permissions the provider holds on that legal entity; a bare link carries
// none.
type Link struct {
	id                int64
	accountProviderID int64
	legalEntityID     int64
	created           time.Time
	updated           time.Time
}

// NewLink creates a Link not yet persisted (zero id).
func NewLink(accountProviderID, legalEntityID int64, created time.Time) Link {
	return Link{accountProviderID: accountProviderID, legalEntityID: legalEntityID, created: created}
}

// ReconstructLink rebuilds a Link from persisted state.
func ReconstructLink(id, accountProviderID, legalEntityID int64, created, updated time.Time) Link {
	return Link{
		id:                id,
		accountProviderID: accountProviderID,
		legalEntityID:     legalEntityID,
		created:           created,
		updated:           updated,
	}
}

// ID returns the row id (0 until persisted).
func (l Link) ID() int64 { return l.id }

// AccountProviderID returns the joined account-provider id.
func (l Link) AccountProviderID() int64 { return l.accountProviderID }

// LegalEntityID returns the joined legal entity id.
func (l Link) LegalEntityID() int64 { return l.legalEntityID }

// Created returns when the link was created.
func (l Link) Created() time.Time { return l.created }

// Updated returns when the link was last updated.
func (l Link) Updated() time.Time { return l.updated }
