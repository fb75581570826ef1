// Package audit provides the append-only audit entities: permission audits
// written by the relationship linker and job audits written once per batch
// or event invocation that performed meaningful work.
package audit

import (
	"encoding/json"
	"fmt"
	"time"
)

// EmptyOperations is the serialized operation set of a bare link — no
// permissions are granted by linking alone.
const EmptyOperations = "[]"

// PermissionAudit records one relationship-creating action and a snapshot of
// the operation set at that moment.
type PermissionAudit struct {
	id            int64
	eventTime     time.Time
	action        string
	ukprn         int64
	legalEntityID int64
	employerUser  *string
	operations    string
}

// NewPermissionAudit creates a PermissionAudit not yet persisted (zero id).
func NewPermissionAudit(eventTime time.Time, action string, ukprn, legalEntityID int64, operations string) PermissionAudit {
	if operations == "" {
		operations = EmptyOperations
	}
	return PermissionAudit{
		eventTime:     eventTime,
		action:        action,
		ukprn:         ukprn,
		legalEntityID: legalEntityID,
		operations:    operations,
	}
}

// ReconstructPermissionAudit rebuilds a PermissionAudit from persisted state.
func ReconstructPermissionAudit(
	id int64,
	eventTime time.Time,
	action string,
	ukprn, legalEntityID int64,
	employerUser *string,
	operations string,
) PermissionAudit {
	return PermissionAudit{
		id:            id,
		eventTime:     eventTime,
		action:        action,
		ukprn:         ukprn,
		legalEntityID: legalEntityID,
		employerUser:  employerUser,
		operations:    operations,
	}
}

// ID returns the row id.
func (a PermissionAudit) ID() int64 { return a.id }

// EventTime returns when the audited action happened.
func (a PermissionAudit) EventTime() time.Time { return a.eventTime }

// Action returns the tag naming the triggering relationship type.
func (a PermissionAudit) Action() string { return a.action }

// Ukprn returns the provider involved.
func (a PermissionAudit) Ukprn() int64 { return a.ukprn }

// LegalEntityID returns the legal entity involved.
func (a PermissionAudit) LegalEntityID() int64 { return a.legalEntityID }

// EmployerUser returns the acting employer user reference, or nil when the
// action was system-initiated.
func (a PermissionAudit) EmployerUser() *string {
	if a.employerUser == nil {
		return nil
	}
	v := *a.employerUser
	return &v
}

// Operations returns the serialized operation-set snapshot.
func (a PermissionAudit) Operations() string { return a.operations }

// JobAudit records one invocation of a handler or timer job, capturing the
// raw payload for replay and debugging.
type JobAudit struct {
	id         int64
	jobName    string
	jobInfo    string
	executedOn time.Time
}

// NewJobAudit creates a JobAudit not yet persisted (zero id).
func NewJobAudit(jobName, jobInfo string, executedOn time.Time) JobAudit {
	return JobAudit{jobName: jobName, jobInfo: jobInfo, executedOn: executedOn}
}

// NewJobAuditJSON creates a JobAudit with info serialized as JSON.
func NewJobAuditJSON(jobName string, info any, executedOn time.Time) (JobAudit, error) {
	data, err := json.Marshal(info)
	if err != nil {
		return JobAudit{}, fmt.Errorf("marshal job info: %w", err)
	}
	return NewJobAudit(jobName, string(data), executedOn), nil
}

// ReconstructJobAudit rebuilds a JobAudit from persisted state.
func ReconstructJobAudit(id int64, jobName, jobInfo string, executedOn time.Time) JobAudit {
	return JobAudit{id: id, jobName: jobName, jobInfo: jobInfo, executedOn: executedOn}
}

// ID returns the row id.
func (a JobAudit) ID() int64 { return a.id }

// JobName returns the handler or job name.
func (a JobAudit) JobName() string { return a.jobName }

// JobInfo returns the serialized invocation summary.
func (a JobAudit) JobInfo() string { return a.jobInfo }

// ExecutedOn returns when the invocation ran.
func (a JobAudit) ExecutedOn() time.Time { return a.executedOn }
