// Package persistence provides database storage implementations.
package persistence

import "time"

// AccountModel represents an employer account in the database.
type AccountModel struct {
	ID             int64     `gorm:"primaryKey"`
	HashedID       string    `gorm:"column:hashed_id;size:255"`
	PublicHashedID string    `gorm:"column:public_hashed_id;size:255;index"`
	Name           string    `gorm:"column:name;size:255"`
	Created        time.Time `gorm:"column:created"`
	Updated        time.Time `gorm:"column:updated"`
}

// TableName returns the table name.
func (AccountModel) TableName() string {
	return "accounts"
}

// LegalEntityModel represents an account legal entity in the database.
type LegalEntityModel struct {
	ID             int64      `gorm:"primaryKey"`
	AccountID      int64      `gorm:"column:account_id;index"`
	Name           string     `gorm:"column:name;size:255"`
	PublicHashedID string     `gorm:"column:public_hashed_id;size:255;index"`
	Created        time.Time  `gorm:"column:created"`
	Updated        time.Time  `gorm:"column:updated"`
	Deleted        *time.Time `gorm:"column:deleted"`
}

// TableName returns the table name.
func (LegalEntityModel) TableName() string {
	return "account_legal_entities"
}

// ProviderModel represents a training provider in the database.
type ProviderModel struct {
	Ukprn   int64     `gorm:"primaryKey;autoIncrement:false;column:ukprn"`
	Name    string    `gorm:"column:name;size:255"`
	Created time.Time `gorm:"column:created"`
	Updated time.Time `gorm:"column:updated"`
}

// TableName returns the table name.
func (ProviderModel) TableName() string {
	return "providers"
}

// AccountProviderModel joins an account to a provider. The unique composite
// index backs the linker's check-then-create protocol: a racing duplicate
// insert fails the transaction instead of creating a second row.
type AccountProviderModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	AccountID     int64     `gorm:"column:account_id;uniqueIndex:idx_account_providers_pair"`
	ProviderUkprn int64     `gorm:"column:provider_ukprn;uniqueIndex:idx_account_providers_pair"`
	Created       time.Time `gorm:"column:created"`
}

// TableName returns the table name.
func (AccountProviderModel) TableName() string {
	return "account_providers"
}

// LinkModel joins an account-provider to a legal entity.
type LinkModel struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	AccountProviderID    int64     `gorm:"column:account_provider_id;uniqueIndex:idx_links_pair"`
	AccountLegalEntityID int64     `gorm:"column:account_legal_entity_id;uniqueIndex:idx_links_pair"`
	Created              time.Time `gorm:"column:created"`
	Updated              time.Time `gorm:"column:updated"`
}

// TableName returns the table name.
func (LinkModel) TableName() string {
	return "account_provider_legal_entities"
}

// PermissionModel grants one operation on a link.
type PermissionModel struct {
	ID                           int64 `gorm:"primaryKey;autoIncrement"`
	AccountProviderLegalEntityID int64 `gorm:"column:account_provider_legal_entity_id;index"`
	Operation                    int   `gorm:"column:operation"`
}

// TableName returns the table name.
func (PermissionModel) TableName() string {
	return "permissions"
}

// PermissionAuditModel is the append-only audit of relationship actions.
type PermissionAuditModel struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	EventTime            time.Time `gorm:"column:event_time"`
	Action               string    `gorm:"column:action;size:255"`
	Ukprn                int64     `gorm:"column:ukprn;index"`
	AccountLegalEntityID int64     `gorm:"column:account_legal_entity_id;index"`
	EmployerUserRef      *string   `gorm:"column:employer_user_ref;size:255"`
	Operations           string    `gorm:"column:operations;size:1024"`
}

// TableName returns the table name.
func (PermissionAuditModel) TableName() string {
	return "permission_audits"
}

// NotificationModel represents an outbound notification in the database.
type NotificationModel struct {
	ID                   string     `gorm:"primaryKey;size:36"`
	TemplateName         string     `gorm:"column:template_name;size:255"`
	NotificationType     string     `gorm:"column:notification_type;size:64;index"`
	Ukprn                *int64     `gorm:"column:ukprn"`
	AccountLegalEntityID *int64     `gorm:"column:account_legal_entity_id"`
	RequestID            *string    `gorm:"column:request_id;size:36"`
	PermitApprovals      *int       `gorm:"column:permit_approvals"`
	PermitRecruit        *int       `gorm:"column:permit_recruit"`
	EmployerName         *string    `gorm:"column:employer_name;size:255"`
	Contact              *string    `gorm:"column:contact;size:255"`
	CreatedBy            string     `gorm:"column:created_by;size:255"`
	CreatedDate          time.Time  `gorm:"column:created_date;index"`
	SentTime             *time.Time `gorm:"column:sent_time;index"`
}

// TableName returns the table name.
func (NotificationModel) TableName() string {
	return "notifications"
}

// RequestModel represents a pending provider/employer request in the database.
type RequestModel struct {
	ID                   string    `gorm:"primaryKey;size:36"`
	RequestType          string    `gorm:"column:request_type;size:64"`
	Ukprn                int64     `gorm:"column:ukprn;index"`
	AccountLegalEntityID int64     `gorm:"column:account_legal_entity_id;index"`
	RequestedDate        time.Time `gorm:"column:requested_date;index"`
	Status               string    `gorm:"column:status;size:32;index"`
	UpdatedDate          time.Time `gorm:"column:updated_date"`
}

// TableName returns the table name.
func (RequestModel) TableName() string {
	return "requests"
}

// JobAuditModel records one handler or timer job invocation.
type JobAuditModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	JobName    string    `gorm:"column:job_name;size:255;index"`
	JobInfo    string    `gorm:"column:job_info"`
	ExecutedOn time.Time `gorm:"column:executed_on"`
}

// TableName returns the table name.
func (JobAuditModel) TableName() string {
	return "job_audits"
}
