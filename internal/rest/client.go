package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TokenSource yields the current session token. An empty string means no
// active session.
type TokenSource interface {
	Token() string
}

// Client is the shared HTTP plumbing for the backend service clients. No
// request deadline is set here: the workflow relies on the transport's own
// failure signaling and the caller's context.
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	breakers   *breakerGroup
}

func NewClient(tokens TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		tokens:     tokens,
		breakers:   newBreakerGroup(),
	}
}

// NewClientWithHTTP is for tests that need to swap the underlying client.
func NewClientWithHTTP(tokens TokenSource, hc *http.Client) *Client {
	return &Client{httpClient: hc, tokens: tokens, breakers: newBreakerGroup()}
}

type callOpts struct {
	method string
	url    string
	body   any
	authed bool
	out    any
}

func (c *Client) do(ctx context.Context, opts callOpts) error {
	var token string
	if opts.authed {
		token = c.tokens.Token()
		if token == "" {
			return ErrNoToken
		}
	}

	var reqBody io.Reader
	if opts.body != nil {
		buf, err := json.Marshal(opts.body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, opts.url, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.breakers.forHost(req.URL.Host).Execute(func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return &Error{Kind: KindService, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromStatus(resp.StatusCode, readDetail(resp.Body))
	}

	if opts.out != nil {
		if err := json.NewDecoder(resp.Body).Decode(opts.out); err != nil {
			return &Error{Kind: KindService, StatusCode: resp.StatusCode, Detail: "malformed response body"}
		}
	}
	return nil
}

// readDetail pulls the "detail" field the backends put on error responses,
// falling back to the raw body.
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Detail) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			return s
		}
		return string(envelope.Detail)
	}
	return strings.TrimSpace(string(raw))
}
