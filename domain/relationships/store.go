package relationships

import "github.com/SkillsFundingAgency/das-pr-jobs/domain/store"

// AccountStore defines persistence for accounts.
type AccountStore interface {
	store.Store[Account]
}

// LegalEntityStore defines persistence for legal entities.
type LegalEntityStore interface {
	store.Store[LegalEntity]
}

// ProviderStore defines persistence for providers.
type ProviderStore interface {
	store.Store[Provider]
}

// AccountProviderStore defines persistence for account/provider joins.
type AccountProviderStore interface {
	store.Store[AccountProvider]
}

// LinkStore defines persistence for account-provider/legal-entity joins.
type LinkStore interface {
	store.Store[Link]
}

// PermissionStore defines persistence for permissions.
type PermissionStore interface {
	store.Store[Permission]
}
