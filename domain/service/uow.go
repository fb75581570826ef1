// Package service defines the cross-aggregate seams the application layer
// depends on: the unit of work over the entity stores and the external
// read/send collaborators. Implementations live in infrastructure.
package service

import (
	"context"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/audit"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/request"
)

// Stores bundles every entity store bound to one session. Inside a unit of
// work all stores stage onto the same transaction; nothing is durable until
// the unit commits.
type Stores struct {
	Accounts         relationships.AccountStore
	LegalEntities    relationships.LegalEntityStore
	Providers        relationships.ProviderStore
	AccountProviders relationships.AccountProviderStore
	Links            relationships.LinkStore
	Permissions      relationships.PermissionStore
	Notifications    notification.Store
	Requests         request.Store
	PermissionAudits audit.PermissionAuditStore
	JobAudits        audit.JobAuditStore
}

// UnitOfWork runs a function against transaction-bound stores, committing
// when it returns nil and rolling back when it returns an error. Each
// invocation of a handler or timer job is exactly one unit of work.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}
