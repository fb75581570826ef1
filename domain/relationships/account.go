// Package relationships holds the employer/provider relationship graph:
// accounts, their legal entities, providers, and the join entities that
// record which provider may act against which legal entity.
package relationships

import "time"

// Account mirrors an employer account from the accounts service. It is
// created on first reference from an account-creation or legal-entity event
// and is never hard-deleted here.
type Account struct {
	id             int64
	hashedID       string
	publicHashedID string
	name           string
	created        time.Time
	updated        time.Time
}

// NewAccount creates an Account as first seen from an inbound event.
func NewAccount(id int64, hashedID, publicHashedID, name string, created time.Time) Account {
	return Account{
		id:             id,
		hashedID:       hashedID,
		publicHashedID: publicHashedID,
		name:           name,
		created:        created,
	}
}

// ReconstructAccount rebuilds an Account from persisted state.
func ReconstructAccount(id int64, hashedID, publicHashedID, name string, created, updated time.Time) Account {
	return Account{
		id:             id,
		hashedID:       hashedID,
		publicHashedID: publicHashedID,
		name:           name,
		created:        created,
		updated:        updated,
	}
}

// ID returns the account id (mirrors the external account id).
func (a Account) ID() int64 { return a.id }

// HashedID returns the hashed public identifier.
func (a Account) HashedID() string { return a.hashedID }

// PublicHashedID returns the public hashed identifier.
func (a Account) PublicHashedID() string { return a.publicHashedID }

// Name returns the account name.
func (a Account) Name() string { return a.name }

// Created returns when the account was first seen.
func (a Account) Created() time.Time { return a.created }

// Updated returns when the account was last mutated by an event.
func (a Account) Updated() time.Time { return a.updated }

// WithName returns a copy renamed at the given event time.
func (a Account) WithName(name string, at time.Time) Account {
	a.name = name
	a.updated = at
	return a
}

// NamedBefore reports whether the account's last rename precedes the given
// event time. Out-of-order name-change events are dropped by handlers when
// this is false.
func (a Account) NamedBefore(at time.Time) bool {
	return a.updated.Before(at)
}
