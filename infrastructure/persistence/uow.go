package persistence

import (
	"context"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
)

// NewStores binds one store of each entity kind to the given session.
func NewStores(session database.Session) service.Stores {
	return service.Stores{
		Accounts:         NewAccountStore(session),
		LegalEntities:    NewLegalEntityStore(session),
		Providers:        NewProviderStore(session),
		AccountProviders: NewAccountProviderStore(session),
		Links:            NewLinkStore(session),
		Permissions:      NewPermissionStore(session),
		Notifications:    NewNotificationStore(session),
		Requests:         NewRequestStore(session),
		PermissionAudits: NewPermissionAuditStore(session),
		JobAudits:        NewJobAuditStore(session),
	}
}

// UnitOfWork implements service.UnitOfWork over a database transaction:
// the stores handed to fn all stage onto one transaction, committed when fn
// returns nil and rolled back when it returns an error.
type UnitOfWork struct {
	db database.Database
}

// NewUnitOfWork creates a UnitOfWork.
func NewUnitOfWork(db database.Database) UnitOfWork {
	return UnitOfWork{db: db}
}

// Do runs fn inside a transaction against transaction-bound stores.
func (u UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, s service.Stores) error) error {
	return database.WithTransaction(ctx, u.db, func(tx *database.Transaction) error {
		return fn(ctx, NewStores(tx))
	})
}
