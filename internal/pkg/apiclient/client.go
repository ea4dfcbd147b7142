// Package apiclient is the shared HTTP client for the inventory/payroll REST
// backend. Every operation issues exactly one request: there is no retry,
// caching or request de-duplication.
package apiclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-mobile-go/internal/config"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/oauth"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const userAgent = "hris-mobile-go/1.0"

// Client wraps a resty client configured for the backend.
type Client struct {
	http    *resty.Client
	tokens  oauth2.TokenSource
	metrics *metrics.Upstream
}

// New creates a client. tokens may be nil when every call carries the
// caller's own bearer token (see WithBearer); m may be nil.
func New(cfg config.UpstreamConfig, tokens oauth2.TokenSource, m *metrics.Upstream) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	return &Client{
		http:    httpClient,
		tokens:  tokens,
		metrics: m,
	}
}

// Get performs a GET request with query parameters. Empty parameters are
// dropped before the request is built.
func (c *Client) Get(ctx context.Context, path string, params Params) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Patch performs a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params Params, body any) ([]byte, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestIDOrNew(ctx))

	if q := params.Values(); len(q) > 0 {
		req.SetQueryParamsFromValues(q)
	}
	if body != nil {
		req.SetBody(body)
	}

	token, err := c.bearer(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtaining upstream token: %w", err)
	}
	if token != "" {
		req.SetAuthToken(token)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}
	c.metrics.ObserveRequest(method, path, status, elapsed)

	if err != nil {
		slog.WarnContext(ctx, "Upstream request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	slog.DebugContext(ctx, "Upstream request",
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
	)

	if resp.IsError() {
		return nil, newError(status, resp.Body())
	}
	return resp.Body(), nil
}

// bearer picks the caller's token when present, otherwise the configured
// token source.
func (c *Client) bearer(ctx context.Context) (string, error) {
	if token := BearerFromContext(ctx); token != "" {
		return token, nil
	}
	if c.tokens == nil {
		return "", nil
	}
	return oauth.AccessToken(c.tokens)
}

type ctxKey int

const (
	bearerKey ctxKey = iota
	requestIDKey
)

// WithBearer attaches the caller's access token; it is forwarded upstream
// instead of the service credentials.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey, token)
}

// BearerFromContext returns the token set by WithBearer.
func BearerFromContext(ctx context.Context) string {
	token, _ := ctx.Value(bearerKey).(string)
	return token
}

// WithRequestID propagates an inbound request id to upstream calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the id set by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func requestIDOrNew(ctx context.Context) string {
	if id := RequestIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
