// Package api wraps the retail backend's HTTP surface in typed, per-entity
// clients. Every call returns the decoded payload or a *RequestError; read
// fallbacks are a call-site decision, never applied here.
package api

import (
	"encoding/json"
	"strings"

	"github.com/go-resty/resty/v2"
)

// TokenProvider returns the current bearer token, or "" when anonymous.
type TokenProvider func() string

// Client talks to one backend instance. It is safe for concurrent use.
type Client struct {
	http *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTokenProvider attaches the bearer token to every outgoing request.
// This is the single interceptor point; individual calls never set auth
// headers themselves.
func WithTokenProvider(tokens TokenProvider) Option {
	return func(c *Client) {
		c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if tok := tokens(); tok != "" {
				req.SetAuthToken(tok)
			}
			return nil
		})
	}
}

// WithDebug enables request-level wire logging.
func WithDebug() Option {
	return func(c *Client) {
		c.http.SetDebug(true)
	}
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Accept", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL reports the configured server address.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// check converts an HTTP-level failure into a *RequestError. A nil return
// means the response can be decoded.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return &RequestError{Err: err}
	}
	if resp.IsError() {
		return &RequestError{
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(resp.String()),
		}
	}
	return nil
}

// stringBody extracts a plain-string payload. The backend returns these
// endpoints (token, account code, employee code) either as raw text or as a
// JSON-encoded string.
func stringBody(resp *resty.Response) string {
	s := strings.TrimSpace(resp.String())
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var out string
		if err := json.Unmarshal([]byte(s), &out); err == nil {
			return out
		}
	}
	return s
}
