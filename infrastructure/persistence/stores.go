package persistence

import (
	"context"
	"fmt"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
)

// AccountStore implements relationships.AccountStore using GORM.
type AccountStore struct {
	database.Repository[relationships.Account, AccountModel]
}

// NewAccountStore creates a new AccountStore.
func NewAccountStore(session database.Session) AccountStore {
	return AccountStore{
		Repository: database.NewRepository[relationships.Account, AccountModel](session, AccountMapper{}, "account"),
	}
}

// LegalEntityStore implements relationships.LegalEntityStore using GORM.
type LegalEntityStore struct {
	database.Repository[relationships.LegalEntity, LegalEntityModel]
}

// NewLegalEntityStore creates a new LegalEntityStore.
func NewLegalEntityStore(session database.Session) LegalEntityStore {
	return LegalEntityStore{
		Repository: database.NewRepository[relationships.LegalEntity, LegalEntityModel](session, LegalEntityMapper{}, "legal entity"),
	}
}

// ProviderStore implements relationships.ProviderStore using GORM.
type ProviderStore struct {
	database.Repository[relationships.Provider, ProviderModel]
}

// NewProviderStore creates a new ProviderStore.
func NewProviderStore(session database.Session) ProviderStore {
	return ProviderStore{
		Repository: database.NewRepository[relationships.Provider, ProviderModel](session, ProviderMapper{}, "provider"),
	}
}

// AccountProviderStore implements relationships.AccountProviderStore using GORM.
type AccountProviderStore struct {
	database.Repository[relationships.AccountProvider, AccountProviderModel]
}

// NewAccountProviderStore creates a new AccountProviderStore.
func NewAccountProviderStore(session database.Session) AccountProviderStore {
	return AccountProviderStore{
		Repository: database.NewRepository[relationships.AccountProvider, AccountProviderModel](session, AccountProviderMapper{}, "account provider"),
	}
}

// LinkStore implements relationships.LinkStore using GORM.
type LinkStore struct {
	database.Repository[relationships.Link, LinkModel]
}

// NewLinkStore creates a new LinkStore.
func NewLinkStore(session database.Session) LinkStore {
	return LinkStore{
		Repository: database.NewRepository[relationships.Link, LinkModel](session, LinkMapper{}, "account provider legal entity"),
	}
}

// PermissionStore implements relationships.PermissionStore using GORM.
type PermissionStore struct {
	database.Repository[relationships.Permission, PermissionModel]
}

// NewPermissionStore creates a new PermissionStore.
func NewPermissionStore(session database.Session) PermissionStore {
	return PermissionStore{
		Repository: database.NewRepository[relationships.Permission, PermissionModel](session, PermissionMapper{}, "permission"),
	}
}

// NotificationStore implements notification.Store using GORM.
type NotificationStore struct {
	database.Repository[notification.Notification, NotificationModel]
}

// NewNotificationStore creates a new NotificationStore.
func NewNotificationStore(session database.Session) NotificationStore {
	return NotificationStore{
		Repository: database.NewRepository[notification.Notification, NotificationModel](session, NotificationMapper{}, "notification"),
	}
}

// SaveAll batch-inserts notifications.
func (s NotificationStore) SaveAll(ctx context.Context, notifications []notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	models := make([]NotificationModel, len(notifications))
	for i, n := range notifications {
		models[i] = s.Mapper().ToModel(n)
	}
	if result := s.DB(ctx).Create(&models); result.Error != nil {
		return fmt.Errorf("save notifications: %w", result.Error)
	}
	return nil
}
