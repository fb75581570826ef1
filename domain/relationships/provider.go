package relationships

import "time"

// Provider is a training provider, keyed by its UKPRN. Rows are populated
// and refreshed by a separate registry sync; this service only reads them.
type Provider struct {
	ukprn   int64
	name    string
	created time.Time
	updated time.Time
}

// NewProvider creates a Provider.
func NewProvider(ukprn int64, name string, created time.Time) Provider {
	return Provider{ukprn: ukprn, name: name, created: created}
}

// ReconstructProvider rebuilds a Provider from persisted state.
func ReconstructProvider(ukprn int64, name string, created, updated time.Time) Provider {
	return Provider{ukprn: ukprn, name: name, created: created, updated: updated}
}

// Ukprn returns the fixed-format provider identifier.
func (p Provider) Ukprn() int64 { return p.ukprn }

// Name returns the provider name.
func (p Provider) Name() string { return p.name }

// Created returns when the provider was first synced.
func (p Provider) Created() time.Time { return p.created }

// Updated returns when the provider was last refreshed.
func (p Provider) Updated() time.Time { return p.updated }
