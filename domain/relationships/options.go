package relationships

import "github.com/SkillsFundingAgency/das-pr-jobs/domain/store"

// WithID filters by the "id" column.
func WithID(id int64) store.Option {
	return store.WithCondition("id", id)
}

// WithAccountID filters by the "account_id" column.
func WithAccountID(id int64) store.Option {
	return store.WithCondition("account_id", id)
}

// WithUkprn filters by the "ukprn" column.
func WithUkprn(ukprn int64) store.Option {
	return store.WithCondition("ukprn", ukprn)
}

// WithProviderUkprn filters by the "provider_ukprn" column.
func WithProviderUkprn(ukprn int64) store.Option {
	return store.WithCondition("provider_ukprn", ukprn)
}

// WithPublicHashedID filters by the "public_hashed_id" column.
func WithPublicHashedID(id string) store.Option {
	return store.WithCondition("public_hashed_id", id)
}

// WithAccountProviderID filters by the "account_provider_id" column.
func WithAccountProviderID(id int64) store.Option {
	return store.WithCondition("account_provider_id", id)
}

// WithLegalEntityID filters by the "account_legal_entity_id" column.
func WithLegalEntityID(id int64) store.Option {
	return store.WithCondition("account_legal_entity_id", id)
}

// WithLinkID filters permissions by their owning link.
func WithLinkID(id int64) store.Option {
	return store.WithCondition("account_provider_legal_entity_id", id)
}
