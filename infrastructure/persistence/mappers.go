package persistence

import (
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/audit"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/relationships"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/request"
)

// AccountMapper maps between domain Account and AccountModel.
type AccountMapper struct{}

// ToDomain converts an AccountModel to a domain Account.
func (AccountMapper) ToDomain(e AccountModel) relationships.Account {
	return relationships.ReconstructAccount(e.ID, e.HashedID, e.PublicHashedID, e.Name, e.Created, e.Updated)
}

// ToModel converts a domain Account to an AccountModel.
func (AccountMapper) ToModel(a relationships.Account) AccountModel {
	return AccountModel{
		ID:             a.ID(),
		HashedID:       a.HashedID(),
		PublicHashedID: a.PublicHashedID(),
		Name:           a.Name(),
		Created:        a.Created(),
		Updated:        a.Updated(),
	}
}

// LegalEntityMapper maps between domain LegalEntity and LegalEntityModel.
type LegalEntityMapper struct{}

// ToDomain converts a LegalEntityModel to a domain LegalEntity.
func (LegalEntityMapper) ToDomain(e LegalEntityModel) relationships.LegalEntity {
	return relationships.ReconstructLegalEntity(
		e.ID, e.AccountID, e.Name, e.PublicHashedID, e.Created, e.Updated, e.Deleted,
	)
}

// ToModel converts a domain LegalEntity to a LegalEntityModel.
func (LegalEntityMapper) ToModel(l relationships.LegalEntity) LegalEntityModel {
	return LegalEntityModel{
		ID:             l.ID(),
		AccountID:      l.AccountID(),
		Name:           l.Name(),
		PublicHashedID: l.PublicHashedID(),
		Created:        l.Created(),
		Updated:        l.Updated(),
		Deleted:        l.Deleted(),
	}
}

// ProviderMapper maps between domain Provider and ProviderModel.
type ProviderMapper struct{}

// ToDomain converts a ProviderModel to a domain Provider.
func (ProviderMapper) ToDomain(e ProviderModel) relationships.Provider {
	return relationships.ReconstructProvider(e.Ukprn, e.Name, e.Created, e.Updated)
}

// ToModel converts a domain Provider to a ProviderModel.
func (ProviderMapper) ToModel(p relationships.Provider) ProviderModel {
	return ProviderModel{Ukprn: p.Ukprn(), Name: p.Name(), Created: p.Created(), Updated: p.Updated()}
}

// AccountProviderMapper maps between domain AccountProvider and AccountProviderModel.
type AccountProviderMapper struct{}

// ToDomain converts an AccountProviderModel to a domain AccountProvider.
func (AccountProviderMapper) ToDomain(e AccountProviderModel) relationships.AccountProvider {
	return relationships.ReconstructAccountProvider(e.ID, e.AccountID, e.ProviderUkprn, e.Created)
}

// ToModel converts a domain AccountProvider to an AccountProviderModel.
func (AccountProviderMapper) ToModel(ap relationships.AccountProvider) AccountProviderModel {
	return AccountProviderModel{
		ID:            ap.ID(),
		AccountID:     ap.AccountID(),
		ProviderUkprn: ap.ProviderUkprn(),
		Created:       ap.Created(),
	}
}

// LinkMapper maps between domain Link and LinkModel.
type LinkMapper struct{}

// ToDomain converts a LinkModel to a domain Link.
func (LinkMapper) ToDomain(e LinkModel) relationships.Link {
	return relationships.ReconstructLink(e.ID, e.AccountProviderID, e.AccountLegalEntityID, e.Created, e.Updated)
}

// ToModel converts a domain Link to a LinkModel.
func (LinkMapper) ToModel(l relationships.Link) LinkModel {
	return LinkModel{
		ID:                   l.ID(),
		AccountProviderID:    l.AccountProviderID(),
		AccountLegalEntityID: l.LegalEntityID(),
		Created:              l.Created(),
		Updated:              l.Updated(),
	}
}

// PermissionMapper maps between domain Permission and PermissionModel.
type PermissionMapper struct{}

// ToDomain converts a PermissionModel to a domain Permission.
func (PermissionMapper) ToDomain(e PermissionModel) relationships.Permission {
	return relationships.ReconstructPermission(
		e.ID, e.AccountProviderLegalEntityID, relationships.Operation(e.Operation),
	)
}

// ToModel converts a domain Permission to a PermissionModel.
func (PermissionMapper) ToModel(p relationships.Permission) PermissionModel {
	return PermissionModel{
		ID:                           p.ID(),
		AccountProviderLegalEntityID: p.LinkID(),
		Operation:                    int(p.Operation()),
	}
}

// PermissionAuditMapper maps between domain PermissionAudit and PermissionAuditModel.
type PermissionAuditMapper struct{}

// ToDomain converts a PermissionAuditModel to a domain PermissionAudit.
func (PermissionAuditMapper) ToDomain(e PermissionAuditModel) audit.PermissionAudit {
	return audit.ReconstructPermissionAudit(
		e.ID, e.EventTime, e.Action, e.Ukprn, e.AccountLegalEntityID, e.EmployerUserRef, e.Operations,
	)
}

// ToModel converts a domain PermissionAudit to a PermissionAuditModel.
func (PermissionAuditMapper) ToModel(a audit.PermissionAudit) PermissionAuditModel {
	return PermissionAuditModel{
		ID:                   a.ID(),
		EventTime:            a.EventTime(),
		Action:               a.Action(),
		Ukprn:                a.Ukprn(),
		AccountLegalEntityID: a.LegalEntityID(),
		EmployerUserRef:      a.EmployerUser(),
		Operations:           a.Operations(),
	}
}

// JobAuditMapper maps between domain JobAudit and JobAuditModel.
type JobAuditMapper struct{}

// ToDomain converts a JobAuditModel to a domain JobAudit.
func (JobAuditMapper) ToDomain(e JobAuditModel) audit.JobAudit {
	return audit.ReconstructJobAudit(e.ID, e.JobName, e.JobInfo, e.ExecutedOn)
}

// ToModel converts a domain JobAudit to a JobAuditModel.
func (JobAuditMapper) ToModel(a audit.JobAudit) JobAuditModel {
	return JobAuditModel{ID: a.ID(), JobName: a.JobName(), JobInfo: a.JobInfo(), ExecutedOn: a.ExecutedOn()}
}

// NotificationMapper maps between domain Notification and NotificationModel.
type NotificationMapper struct{}

// ToDomain converts a NotificationModel to a domain Notification.
func (NotificationMapper) ToDomain(e NotificationModel) notification.Notification {
	return notification.Reconstruct(
		e.ID,
		e.TemplateName,
		notification.Type(e.NotificationType),
		e.Ukprn,
		e.AccountLegalEntityID,
		e.RequestID,
		e.PermitApprovals,
		e.PermitRecruit,
		e.EmployerName,
		e.Contact,
		e.CreatedBy,
		e.CreatedDate,
		e.SentTime,
	)
}

// ToModel converts a domain Notification to a NotificationModel.
func (NotificationMapper) ToModel(n notification.Notification) NotificationModel {
	return NotificationModel{
		ID:                   n.ID(),
		TemplateName:         n.TemplateName(),
		NotificationType:     string(n.NotificationType()),
		Ukprn:                n.Ukprn(),
		AccountLegalEntityID: n.LegalEntityID(),
		RequestID:            n.RequestID(),
		PermitApprovals:      n.PermitApprovals(),
		PermitRecruit:        n.PermitRecruit(),
		EmployerName:         n.EmployerName(),
		Contact:              n.Contact(),
		CreatedBy:            n.CreatedBy(),
		CreatedDate:          n.CreatedDate(),
		SentTime:             n.SentTime(),
	}
}

// RequestMapper maps between domain Request and RequestModel.
type RequestMapper struct{}

// ToDomain converts a RequestModel to a domain Request.
func (RequestMapper) ToDomain(e RequestModel) request.Request {
	return request.Reconstruct(
		e.ID,
		request.RequestType(e.RequestType),
		e.Ukprn,
		e.AccountLegalEntityID,
		e.RequestedDate,
		request.Status(e.Status),
		e.UpdatedDate,
	)
}

// ToModel converts a domain Request to a RequestModel.
func (RequestMapper) ToModel(r request.Request) RequestModel {
	return RequestModel{
		ID:                   r.ID(),
		RequestType:          string(r.RequestType()),
		Ukprn:                r.Ukprn(),
		AccountLegalEntityID: r.LegalEntityID(),
		RequestedDate:        r.RequestedDate(),
		Status:               string(r.Status()),
		UpdatedDate:          r.UpdatedDate(),
	}
}
