// Package upstream is the console's client for the attendance backend. It
// is the only place outbound HTTP happens: it attaches the bearer
// credential, decodes JSON payloads, and maps failure classes to sentinel
// errors. No call is retried; callers surface failures and stay re-actionable.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do issues one request. A non-empty token is attached as the backend's
// "Token" authorization scheme. out may be nil for calls whose body is
// irrelevant.
func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response body: %v", ErrUnavailable, err)
	}

	return nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	// Best effort: the backend sends {"message": ...} or {"detail": ...}.
	var payload struct {
		Message json.RawMessage `json:"message"`
		Detail  string          `json:"detail"`
	}
	message := ""
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		if json.Unmarshal(body, &payload) == nil {
			if payload.Detail != "" {
				message = payload.Detail
			} else if len(payload.Message) > 0 {
				message = strings.Trim(string(payload.Message), `"`)
			}
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
