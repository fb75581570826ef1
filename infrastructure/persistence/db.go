package persistence

import (
	"context"

	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
)

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	return db.Session(context.Background()).AutoMigrate(allModels()...)
}

// allModels returns every GORM model that AutoMigrate manages.
func allModels() []interface{} {
	return []interface{}{
		&AccountModel{},
		&LegalEntityModel{},
		&ProviderModel{},
		&AccountProviderModel{},
		&LinkModel{},
		&PermissionModel{},
		&PermissionAuditModel{},
		&NotificationModel{},
		&RequestModel{},
		&JobAuditModel{},
	}
}
