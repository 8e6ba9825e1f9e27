// Package sheets provides a client for the Google Apps Script web app
// that appends lead submissions to a spreadsheet. Uses raw HTTP calls
// (no SDK) to minimize external dependencies.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LeadPayload is the JSON shape the Apps Script endpoint expects. Unlike
// the database sink, it carries a client-generated timestamp.
type LeadPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Page      string `json:"page"`
	Timestamp string `json:"timestamp"`
}

// Client is the Apps Script web app client interface.
type Client interface {
	// Submit posts a lead to the spreadsheet web app.
	Submit(ctx context.Context, payload LeadPayload) error
}

// RealClient posts to a configured Apps Script web app URL.
type RealClient struct {
	WebAppURL  string
	httpClient *http.Client
}

// NewClient creates a RealClient for the given web app URL.
func NewClient(webAppURL string) *RealClient {
	return &RealClient{
		WebAppURL:  webAppURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ErrNotConfigured is returned when no web app URL is configured.
var ErrNotConfigured = errors.New("sheets: web app URL not configured")

// scriptResponse is the expected Apps Script reply:
// {"success": true} or {"success": false, "error": "..."}.
type scriptResponse struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

// Submit posts the payload as a JSON string with a text/plain content
// type. Apps Script web apps do not answer CORS preflights, so the
// request must stay a "simple" one. A non-2xx status is always an error;
// a 2xx body with success=false is an error carrying the embedded
// message; a 2xx body that is not JSON counts as success.
func (c *RealClient) Submit(ctx context.Context, payload LeadPayload) error {
	if c.WebAppURL == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.WebAppURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheets: request failed: %w", err)
	}
	defer resp.Body.Close()

	text, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(text)
		if msg == "" {
			msg = "unknown error"
		}
		return fmt.Errorf("sheets: request failed (%d): %s", resp.StatusCode, msg)
	}

	var parsed scriptResponse
	if err := json.Unmarshal(text, &parsed); err != nil {
		// Non-JSON 2xx responses are treated as success.
		return nil
	}
	if parsed.Success != nil && !*parsed.Success {
		if parsed.Error != "" {
			return fmt.Errorf("sheets: %s", parsed.Error)
		}
		return errors.New("sheets: submission failed")
	}
	return nil
}
