package service

import "context"

// CohortDetails is the commitments service's view of one cohort.
type CohortDetails struct {
	CohortID             int64
	AccountID            int64
	AccountLegalEntityID int64
	LegalEntityName      string
	ProviderName         string
	ProviderID           int64
}

// CohortReader fetches cohort details from the commitments service.
type CohortReader interface {
	GetCohort(ctx context.Context, cohortID int64) (CohortDetails, error)
}

// LiveVacancy is the recruit service's view of one approved vacancy.
type LiveVacancy struct {
	VacancyID                        int64
	AccountPublicHashedID            string
	AccountLegalEntityPublicHashedID string
	TrainingProviderUkprn            int64
}

// VacancyReader fetches a live vacancy from the recruit service.
type VacancyReader interface {
	GetLiveVacancy(ctx context.Context, vacancyReference int64) (LiveVacancy, error)
}

// AccountDetails is the accounts service's view of one employer account.
type AccountDetails struct {
	HashedAccountID       string
	PublicHashedAccountID string
	DasAccountName        string
}

// AccountReader fetches account details from the employer accounts service.
type AccountReader interface {
	GetAccount(ctx context.Context, accountID int64) (AccountDetails, error)
}

// EmailSender delivers one templated email through the external channel.
// Only success or failure is observed; delivery is at-least-once overall, so
// downstream templates must tolerate duplicates.
type EmailSender interface {
	Send(ctx context.Context, ukprn int64, templateID string, tokens map[string]string) error
}
