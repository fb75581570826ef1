package audit

import "github.com/SkillsFundingAgency/das-pr-jobs/domain/store"

// PermissionAuditStore defines persistence for permission audits.
type PermissionAuditStore interface {
	store.Store[PermissionAudit]
}

// JobAuditStore defines persistence for job audits.
type JobAuditStore interface {
	store.Store[JobAudit]
}
