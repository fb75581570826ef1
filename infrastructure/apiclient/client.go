// Package apiclient provides HTTP read clients for the external services the
// jobs depend on: commitments (cohorts), recruit (vacancies), and employer
// accounts.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SkillsFundingAgency/das-pr-jobs/internal/config"
)

// APIError is returned when an external API responds with a non-2xx status.
type APIError struct {
	statusCode int
	body       string
}

// NewAPIError creates an APIError.
func NewAPIError(statusCode int, body string) *APIError {
	return &APIError{statusCode: statusCode, body: body}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.statusCode, e.body)
}

// StatusCode returns the HTTP status the API responded with.
func (e *APIError) StatusCode() int { return e.statusCode }

// IsNotFound reports whether the API responded 404.
func (e *APIError) IsNotFound() bool { return e.statusCode == http.StatusNotFound }

// client is the shared GET-and-decode core of the read clients.
type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newClient(cfg config.EndpointEnv) client {
	return client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// getJSON fetches baseURL+path and decodes the JSON body into out.
func (c client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return NewAPIError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
