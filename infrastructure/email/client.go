// Package email delivers templated notification emails through the external
// messaging channel.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/config"
)

// Client posts one send command per notification to the messaging endpoint.
// Only the HTTP outcome is observed; downstream delivery is asynchronous.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an email Client.
func NewClient(cfg config.EndpointEnv) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

type sendRequest struct {
	RecipientUkprn int64             `json:"recipientUkprn"`
	TemplateID     string            `json:"templateId"`
	Tokens         map[string]string `json:"tokens"`
}

// Send posts one templated email command addressed to the provider.
func (c *Client) Send(ctx context.Context, ukprn int64, templateID string, tokens map[string]string) error {
	body, err := json.Marshal(sendRequest{
		RecipientUkprn: ukprn,
		TemplateID:     templateID,
		Tokens:         tokens,
	})
	if err != nil {
		return fmt.Errorf("marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email endpoint responded %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}

var _ service.EmailSender = (*Client)(nil)
