package apiclient

import (
	"context"
	"fmt"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/config"
)

// CommitmentsClient reads cohort details from the commitments service.
type CommitmentsClient struct {
	client
}

// NewCommitmentsClient creates a CommitmentsClient.
func NewCommitmentsClient(cfg config.EndpointEnv) *CommitmentsClient {
	return &CommitmentsClient{client: newClient(cfg)}
}

type cohortResponse struct {
	CohortID             int64  `json:"cohortId"`
	AccountID            int64  `json:"accountId"`
	AccountLegalEntityID int64  `json:"accountLegalEntityId"`
	LegalEntityName      string `json:"legalEntityName"`
	ProviderName         string `json:"providerName"`
	ProviderID           int64  `json:"providerId"`
}

// GetCohort fetches one cohort by id.
func (c *CommitmentsClient) GetCohort(ctx context.Context, cohortID int64) (service.CohortDetails, error) {
	var resp cohortResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/api/cohorts/%d", cohortID), &resp); err != nil {
		return service.CohortDetails{}, fmt.Errorf("get cohort %d: %w", cohortID, err)
	}
	return service.CohortDetails{
		CohortID:             resp.CohortID,
		AccountID:            resp.AccountID,
		AccountLegalEntityID: resp.AccountLegalEntityID,
		LegalEntityName:      resp.LegalEntityName,
		ProviderName:         resp.ProviderName,
		ProviderID:           resp.ProviderID,
	}, nil
}

var _ service.CohortReader = (*CommitmentsClient)(nil)
