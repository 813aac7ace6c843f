// Package devapi implements the typed HTTP client for the remote DevApi
// backend that owns all 48 Hauling business data. The client holds the bearer
// token, attaches it to every request, and normalises every outcome into the
// uniform Response envelope.
//
// There is deliberately no retry, no backoff and no circuit breaking: a
// failed call surfaces a single error to the caller, and the operator retries
// manually.
package devapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/48hauling/web-panel/internal/api/metrics"
)

const defaultUserAgent = "48hauling-web-panel"

// Client is the single point of contact with the DevApi backend.
//
// The token has exactly one writer (the login/logout flow) and many readers
// (every outbound call); access is guarded by mu. Use ForToken to derive a
// per-request client bound to an operator's session token.
type Client struct {
	baseURL        string
	http           *http.Client
	log            zerolog.Logger
	userAgent      string
	onUnauthorized func()

	mu    sync.RWMutex
	token string
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport. The default carries no
// timeout, matching the observed baseline behaviour.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithUserAgent overrides the User-Agent header sent upstream.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithUnauthorizedHook installs a callback invoked whenever the backend
// answers 401 on an authenticated call. Not wired by default: token expiry is
// surfaced to each screen individually and the operator re-logs in manually.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New constructs a Client targeting baseURL. The base URL is fixed for the
// lifetime of the client.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      http.DefaultClient,
		log:       zerolog.Nop(),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken stores the bearer token, effective immediately for all subsequent
// calls on this client.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the token; subsequent calls proceed unauthenticated.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently held bearer token, or "" when unauthenticated.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ForToken derives a client bound to the given token, sharing the transport
// and configuration of the receiver. Used to serve one operator session per
// request without mutating the shared base client.
func (c *Client) ForToken(token string) *Client {
	dup := &Client{
		baseURL:        c.baseURL,
		http:           c.http,
		log:            c.log,
		userAgent:      c.userAgent,
		onUnauthorized: c.onUnauthorized,
	}
	dup.token = token
	return dup
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// decorate applies the headers common to every upstream request.
func (c *Client) decorate(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if t := c.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
}

// request issues a JSON call against the backend and normalises the outcome.
// On 2xx the backend envelope is decoded verbatim (pass-through); on any
// failure the result is the failure variant with a best-effort message. It
// never panics and never returns a Go error.
func request[T any](ctx context.Context, c *Client, method, endpoint string, body any) Response[T] {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			c.log.Error().Err(err).Str("endpoint", endpoint).Msg("encode request body")
			return failure[T]("Request failed")
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, rd)
	if err != nil {
		return failure[T]("Request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	c.decorate(req)

	resp, err := c.roundTrip(req, endpoint)
	if err != nil {
		return failure[T]("Network error: " + err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure[T]("Network error: " + err.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return failure[T](backendError(raw))
	}

	var out Response[T]
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("malformed backend payload")
		return failure[T]("Request failed")
	}
	return out
}

// roundTrip executes the request and records upstream metrics. The returned
// error is a pure transport error; HTTP-level failures come back as responses.
func (c *Client) roundTrip(req *http.Request, endpoint string) (*http.Response, error) {
	group := endpointGroup(endpoint)
	start := time.Now()

	resp, err := c.http.Do(req)

	metrics.UpstreamRequestDuration.WithLabelValues(group).Observe(time.Since(start).Seconds())
	switch {
	case err != nil:
		metrics.UpstreamRequestsTotal.WithLabelValues(group, "network_error").Inc()
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("devapi request failed")
	case resp.StatusCode >= http.StatusBadRequest:
		metrics.UpstreamRequestsTotal.WithLabelValues(group, "error").Inc()
	default:
		metrics.UpstreamRequestsTotal.WithLabelValues(group, "success").Inc()
	}
	return resp, err
}

// backendError extracts the backend's error or message field from a non-2xx
// body, falling back to a generic message.
func backendError(raw []byte) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &e) == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return "Request failed"
}

// endpointGroup reduces a concrete endpoint to a low-cardinality metric label:
// the first two path segments, without IDs or query strings.
func endpointGroup(endpoint string) string {
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		endpoint = endpoint[:i]
	}
	parts := strings.Split(strings.Trim(endpoint, "/"), "/")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, "/")
}

// withQuery appends url-encoded parameters to an endpoint.
func withQuery(endpoint string, q url.Values) string {
	if len(q) == 0 {
		return endpoint
	}
	return endpoint + "?" + q.Encode()
}
