package apiclient

import (
	"context"
	"fmt"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/config"
)

// AccountsClient reads employer account details from the accounts service.
type AccountsClient struct {
	client
}

// NewAccountsClient creates an AccountsClient.
func NewAccountsClient(cfg config.EndpointEnv) *AccountsClient {
	return &AccountsClient{client: newClient(cfg)}
}

type accountResponse struct {
	HashedAccountID       string `json:"hashedAccountId"`
	PublicHashedAccountID string `json:"publicHashedAccountId"`
	DasAccountName        string `json:"dasAccountName"`
}

// GetAccount fetches one employer account by id.
func (c *AccountsClient) GetAccount(ctx context.Context, accountID int64) (service.AccountDetails, error) {
	var resp accountResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/api/accounts/%d", accountID), &resp); err != nil {
		return service.AccountDetails{}, fmt.Errorf("get account %d: %w", accountID, err)
	}
	return service.AccountDetails{
		HashedAccountID:       resp.HashedAccountID,
		PublicHashedAccountID: resp.PublicHashedAccountID,
		DasAccountName:        resp.DasAccountName,
	}, nil
}

var _ service.AccountReader = (*AccountsClient)(nil)
