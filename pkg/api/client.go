// Package api is a typed client facade for the WattGrid dashboard backend.
// It centralizes request construction, parameter and body serialization,
// token injection, and response typing so callers never touch the transport
// directly. The facade is a single-shot request-response mapper: it never
// retries or caches, and failures propagate to the caller untouched.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wattgrid-hq/wattgrid-client/pkg/httpclient"
)

// tokenHeader is the fixed header key authenticated requests carry the
// session token under.
const tokenHeader = "token"

// TokenProvider supplies the current session token. The facade never
// inspects or mutates the token, only forwards it.
type TokenProvider interface {
	Token() string
	HasToken() bool
}

// emptyTokens is the default provider when none is injected; authenticated
// requests then carry an empty credential and the backend rejects them.
type emptyTokens struct{}

func (emptyTokens) Token() string  { return "" }
func (emptyTokens) HasToken() bool { return false }

// Client is the dashboard backend facade. All methods are safe for
// concurrent use; the only shared state is the injected token provider,
// which is read-only from this layer.
type Client struct {
	baseURL   string
	transport httpclient.Transport
	tokens    TokenProvider
	log       Logger
}

// New builds a Client for the backend at baseURL. A nil transport gets a
// resty transport with a 30 second timeout; a nil token provider means
// authenticated calls send an empty credential; a nil logger is a no-op.
func New(baseURL string, transport httpclient.Transport, tokens TokenProvider, log Logger) *Client {
	if transport == nil {
		transport = httpclient.NewRestyTransport(30 * time.Second)
	}
	if tokens == nil {
		tokens = emptyTokens{}
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport,
		tokens:    tokens,
		log:       ensureLogger(log),
	}
}

// url joins the endpoint path onto the base URL. Endpoint paths are kept
// exactly as the backend contract enumerates them, with or without a
// leading slash, so joining normalizes both forms.
func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// statusPredicate classifies a response status as acceptable or failing.
type statusPredicate func(int) bool

func accept2xx(code int) bool { return code >= 200 && code < 300 }

// doGet issues a GET with params as the query string and returns the
// response body decoded into R.
func doGet[R any](ctx context.Context, c *Client, path string, params, headers map[string]string) (R, error) {
	c.log.DebugObj("dispatch", "request", map[string]any{"method": "GET", "path": path})
	resp, err := c.transport.Get(ctx, c.url(path), params, headers)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("get %s: %w", path, err)
	}
	return decode[R](resp, accept2xx)
}

// doPost issues a POST with body as the JSON payload; same return contract
// as doGet.
func doPost[R any](ctx context.Context, c *Client, path string, body any, params, headers map[string]string) (R, error) {
	c.log.DebugObj("dispatch", "request", map[string]any{"method": "POST", "path": path})
	resp, err := c.transport.Post(ctx, c.url(path), body, params, headers)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("post %s: %w", path, err)
	}
	return decode[R](resp, accept2xx)
}

// doPostRaw issues a POST and returns the raw body after status acceptance,
// leaving payload interpretation to the caller.
func doPostRaw(ctx context.Context, c *Client, path string, body any, params, headers map[string]string, accept statusPredicate) ([]byte, error) {
	c.log.DebugObj("dispatch", "request", map[string]any{"method": "POST", "path": path})
	resp, err := c.transport.Post(ctx, c.url(path), body, params, headers)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	if !accept(resp.StatusCode()) {
		return nil, &StatusError{Code: resp.StatusCode(), Snippet: bodySnippet(resp.Body())}
	}
	return resp.Body(), nil
}

// doPut issues a PUT; same contract as doPost.
func doPut[R any](ctx context.Context, c *Client, path string, body any, params, headers map[string]string) (R, error) {
	c.log.DebugObj("dispatch", "request", map[string]any{"method": "PUT", "path": path})
	resp, err := c.transport.Put(ctx, c.url(path), body, params, headers)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("put %s: %w", path, err)
	}
	return decode[R](resp, accept2xx)
}

// doAuthGet decorates doGet with the session token header.
func doAuthGet[R any](ctx context.Context, c *Client, path string, params, headers map[string]string) (R, error) {
	return doGet[R](ctx, c, path, params, c.authHeaders(headers))
}

// doAuthPost decorates doPost with the session token header.
func doAuthPost[R any](ctx context.Context, c *Client, path string, body any, params, headers map[string]string) (R, error) {
	return doPost[R](ctx, c, path, body, params, c.authHeaders(headers))
}

// doAuthPut decorates doPut with the session token header.
func doAuthPut[R any](ctx context.Context, c *Client, path string, body any, params, headers map[string]string) (R, error) {
	return doPut[R](ctx, c, path, body, params, c.authHeaders(headers))
}

// authHeaders merges the session token into the caller's headers. The token
// entry is the base and caller headers are copied over it, so a caller
// supplying the token key wins and every other caller key survives. Tests
// pin this order; do not invert it.
func (c *Client) authHeaders(headers map[string]string) map[string]string {
	merged := map[string]string{tokenHeader: c.tokens.Token()}
	for k, v := range headers {
		merged[k] = v
	}
	return merged
}

// decode applies the status acceptance predicate, then unmarshals the body
// into R. An empty body decodes to R's zero value. Payload shape is not
// validated beyond what json.Unmarshal enforces; extra or missing fields
// pass through to the caller.
func decode[R any](resp httpclient.Response, accept statusPredicate) (R, error) {
	var out R
	if !accept(resp.StatusCode()) {
		return out, &StatusError{Code: resp.StatusCode(), Snippet: bodySnippet(resp.Body())}
	}
	body := resp.Body()
	if len(body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

func bodySnippet(body []byte) string {
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
