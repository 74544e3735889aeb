// Package api implements the REST client for the FityBudget backend. Every
// response travels in a uniform envelope; raw record shapes are normalized
// into internal/model types at this boundary and nowhere else.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nyunja/fity-cli/internal/common"
	"github.com/nyunja/fity-cli/internal/session"
)

// DefaultBaseURL is used when no api.base_url is configured.
const DefaultBaseURL = "http://localhost:8080/api/v1"

// Error is an application-level failure carried in the response envelope.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// envelope is the uniform wrapper every backend response uses.
type envelope struct {
	Error   *Error          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Success bool            `json:"success"`
}

// Client talks to the FityBudget backend. It is safe for sequential reuse
// across commands; requests carry the session's bearer token when present.
type Client struct {
	httpClient *http.Client
	sess       *session.Session
	baseURL    string
}

// New creates a client against baseURL. A nil session issues anonymous
// requests (register and login need nothing more).
func New(baseURL string, sess *session.Session) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		sess:    sess,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetSession swaps the credentials used for subsequent requests. Called
// after login so the same client can immediately fetch the profile.
func (c *Client) SetSession(sess *session.Session) {
	c.sess = sess
}

// do issues one request and decodes the envelope. Transport and decode
// failures wrap common.ErrNetwork; envelope failures surface as *Error. The
// success payload, when out is non-nil, is unmarshaled into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.sess.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.sess.Token)
	}

	slog.Debug("API request", "method", method, "path", path, "query", u.RawQuery)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// 204 carries no envelope (delete endpoints).
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", common.ErrNetwork, err)
	}

	if !env.Success {
		if env.Error != nil && env.Error.Message != "" {
			return env.Error
		}
		return &Error{Code: "UNKNOWN", Message: "An error occurred"}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
	}

	return nil
}

// Message maps an error from this package onto the string a user should
// see, mirroring the three failure categories: transport problems get a
// fixed generic message, envelope failures use the backend message, and
// anything else falls back to a generic one.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	switch {
	case errors.Is(err, common.ErrNetwork):
		return "Network error. Please try again."
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "An error occurred"
	default:
		return "An error occurred"
	}
}
