package email

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

const defaultBaseURL = "https://api.resend.com"

// ResendClient calls the Resend transactional email API.
type ResendClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// resendPayload is the request body of POST /emails.
type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// NewResendClient creates a Resend API client. baseURL is overridable for
// tests; pass "" for the production endpoint.
func NewResendClient(apiKey, baseURL string) *ResendClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &ResendClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IsConfigured checks if the client has an API key to authenticate with.
func (c *ResendClient) IsConfigured() bool {
	return c.apiKey != ""
}

// Send delivers one HTML email through the Resend API. Any non-success
// status is an error; the response body goes into the error for server-side
// logs and is never shown to callers of the HTTP API.
func (c *ResendClient) Send(ctx context.Context, from string, to []string, subject, html string) error {
	payload, err := json.Marshal(resendPayload{
		From:    from,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("resend: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("resend: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("resend: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
