package relationships

import "time"

// AccountProvider joins an Account to a Provider. At most one row exists per
// (AccountID, ProviderUkprn) pair — enforced by the linker's check-then-create
// protocol backed by a unique composite index.
type AccountProvider struct {
	id            int64
	accountID     int64
	providerUkprn int64
	created       time.Time
}

// NewAccountProvider creates an AccountProvider not yet persisted (zero id).
func NewAccountProvider(accountID, providerUkprn int64, created time.Time) AccountProvider {
	return AccountProvider{accountID: accountID, providerUkprn: providerUkprn, created: created}
}

// ReconstructAccountProvider rebuilds an AccountProvider from persisted state.
func ReconstructAccountProvider(id, accountID, providerUkprn int64, created time.Time) AccountProvider {
	return AccountProvider{id: id, accountID: accountID, providerUkprn: providerUkprn, created: created}
}

// ID returns the row id (0 until persisted).
func (ap AccountProvider) ID() int64 { return ap.id }

// AccountID returns the joined account id.
func (ap AccountProvider) AccountID() int64 { return ap.accountID }

// ProviderUkprn returns the joined provider UKPRN.
func (ap AccountProvider) ProviderUkprn() int64 { return ap.providerUkprn }

// Created returns when the join was created.
func (ap AccountProvider) Created() time.Time { return ap.created }

// IsNew reports whether the join has not been persisted yet.
func (ap AccountProvider) IsNew() bool { return ap.id == 0 }
