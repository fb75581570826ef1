package persistence

import (
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/audit"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/request"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
)

// PermissionAuditStore implements audit.PermissionAuditStore using GORM.
type PermissionAuditStore struct {
	database.Repository[audit.PermissionAudit, PermissionAuditModel]
}

// NewPermissionAuditStore creates a new PermissionAuditStore.
func NewPermissionAuditStore(session database.Session) PermissionAuditStore {
	return PermissionAuditStore{
		Repository: database.NewRepository[audit.PermissionAudit, PermissionAuditModel](session, PermissionAuditMapper{}, "permission audit"),
	}
}

// JobAuditStore implements audit.JobAuditStore using GORM.
type JobAuditStore struct {
	database.Repository[audit.JobAudit, JobAuditModel]
}

// NewJobAuditStore creates a new JobAuditStore.
func NewJobAuditStore(session database.Session) JobAuditStore {
	return JobAuditStore{
		Repository: database.NewRepository[audit.JobAudit, JobAuditModel](session, JobAuditMapper{}, "job audit"),
	}
}

// RequestStore implements request.Store using GORM.
type RequestStore struct {
	database.Repository[request.Request, RequestModel]
}

// NewRequestStore creates a new RequestStore.
func NewRequestStore(session database.Session) RequestStore {
	return RequestStore{
		Repository: database.NewRepository[request.Request, RequestModel](session, RequestMapper{}, "request"),
	}
}
