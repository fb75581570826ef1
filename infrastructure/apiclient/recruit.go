package apiclient

import (
	"context"
	"fmt"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/config"
)

// RecruitClient reads live vacancies from the recruit service.
type RecruitClient struct {
	client
}

// NewRecruitClient creates a RecruitClient.
func NewRecruitClient(cfg config.EndpointEnv) *RecruitClient {
	return &RecruitClient{client: newClient(cfg)}
}

type liveVacancyResponse struct {
	VacancyID                        int64  `json:"vacancyId"`
	AccountPublicHashedID            string `json:"accountPublicHashedId"`
	AccountLegalEntityPublicHashedID string `json:"accountLegalEntityPublicHashedId"`
	TrainingProviderUkprn            int64  `json:"trainingProviderUkprn"`
}

// GetLiveVacancy fetches one live vacancy by its vacancy reference.
func (c *RecruitClient) GetLiveVacancy(ctx context.Context, vacancyReference int64) (service.LiveVacancy, error) {
	var resp liveVacancyResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/api/livevacancies/%d", vacancyReference), &resp); err != nil {
		return service.LiveVacancy{}, fmt.Errorf("get live vacancy %d: %w", vacancyReference, err)
	}
	return service.LiveVacancy{
		VacancyID:                        resp.VacancyID,
		AccountPublicHashedID:            resp.AccountPublicHashedID,
		AccountLegalEntityPublicHashedID: resp.AccountLegalEntityPublicHashedID,
		TrainingProviderUkprn:            resp.TrainingProviderUkprn,
	}, nil
}

var _ service.VacancyReader = (*RecruitClient)(nil)
