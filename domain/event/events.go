package event

import "time"

// CohortAssignedToProvider is delivered when a cohort of apprenticeship
// commitments is assigned to a training provider.
type CohortAssignedToProvider struct {
	CohortID   int64     `json:"cohort_id"`
	AssignedOn time.Time `json:"assigned_on"`
}

// VacancyApproved is delivered when a recruitment vacancy passes review.
type VacancyApproved struct {
	VacancyReference int64 `json:"vacancy_reference"`
}

// AccountCreated is delivered when an employer account is registered.
type AccountCreated struct {
	AccountID      int64     `json:"account_id"`
	HashedID       string    `json:"hashed_id"`
	PublicHashedID string    `json:"public_hashed_id"`
	Name           string    `json:"name"`
	Created        time.Time `json:"created"`
}

// AccountNameChanged is delivered when an employer account is renamed.
type AccountNameChanged struct {
	AccountID int64     `json:"account_id"`
	Name      string    `json:"name"`
	Changed   time.Time `json:"changed"`
}

// LegalEntityAdded is delivered when a legal entity is registered under an
// account. It carries enough of the owning account to create it on first
// reference.
type LegalEntityAdded struct {
	AccountID             int64     `json:"account_id"`
	AccountHashedID       string    `json:"account_hashed_id"`
	AccountPublicHashedID string    `json:"account_public_hashed_id"`
	AccountName           string    `json:"account_name"`
	LegalEntityID         int64     `json:"legal_entity_id"`
	Name                  string    `json:"name"`
	PublicHashedID        string    `json:"public_hashed_id"`
	Added                 time.Time `json:"added"`
}

// LegalEntityUpdated is delivered when a legal entity is renamed.
type LegalEntityUpdated struct {
	LegalEntityID int64     `json:"legal_entity_id"`
	Name          string    `json:"name"`
	Updated       time.Time `json:"updated"`
}

// LegalEntityRemoved is delivered when a legal entity is deregistered.
type LegalEntityRemoved struct {
	LegalEntityID int64     `json:"legal_entity_id"`
	Removed       time.Time `json:"removed"`
}
