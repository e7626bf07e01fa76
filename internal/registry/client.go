// Package registry is the HTTP client for the monkey registry API.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/monkeyreg/internal/log"
	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/tracing"
)

// DefaultTimeout bounds each request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// CollectionPath is the registry resource path under the base URL.
const CollectionPath = "/api/monkeys"

// RequestIDHeader carries a per-request id for correlating client and server
// logs.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// Client is the registry resource API. Every error it returns is a
// *RemoteError. Calls are never retried.
type Client interface {
	List(ctx context.Context, query url.Values) ([]monkey.Monkey, error)
	Get(ctx context.Context, id string) (monkey.Monkey, error)
	Create(ctx context.Context, in monkey.Input) (monkey.Monkey, error)
	Update(ctx context.Context, id string, in monkey.Input) (monkey.Monkey, error)
	Delete(ctx context.Context, id string) error
}

// HTTPClient implements Client over JSON/HTTP.
type HTTPClient struct {
	http    *http.Client
	baseURL string
	tracer  trace.Tracer
	newID   func() string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithTracer records a client span around every call.
func WithTracer(t trace.Tracer) Option {
	return func(c *HTTPClient) { c.tracer = t }
}

// WithRequestIDs overrides request id generation.
func WithRequestIDs(fn func() string) Option {
	return func(c *HTTPClient) { c.newID = fn }
}

// NewHTTPClient returns a client for the registry at baseURL, for example
// "http://localhost:8000".
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	baseURL = strings.TrimSpace(baseURL)
	u, err := url.ParseRequestURI(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid registry base url %q", baseURL)
	}

	c := &HTTPClient{
		http:    &http.Client{Timeout: DefaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL is the normalized registry address.
func (c *HTTPClient) BaseURL() string { return c.baseURL }

// List fetches records matching query.
func (c *HTTPClient) List(ctx context.Context, query url.Values) (_ []monkey.Monkey, err error) {
	encoded := query.Encode()
	ctx, span := tracing.StartClientSpan(ctx, c.tracer, "list", attribute.String(tracing.AttrQuery, encoded))
	defer func() { tracing.EndSpan(span, err) }()

	path := CollectionPath
	if encoded != "" {
		path += "?" + encoded
	}

	var records []Record
	if err := c.do(ctx, span, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}

	out := make([]monkey.Monkey, 0, len(records))
	for _, r := range records {
		out = append(out, r.ToMonkey())
	}
	span.SetAttributes(attribute.Int(tracing.AttrResultCount, len(out)))
	return out, nil
}

// Get fetches a single record.
func (c *HTTPClient) Get(ctx context.Context, id string) (_ monkey.Monkey, err error) {
	ctx, span := tracing.StartClientSpan(ctx, c.tracer, "get", attribute.String(tracing.AttrMonkeyID, id))
	defer func() { tracing.EndSpan(span, err) }()

	var r Record
	if err := c.do(ctx, span, http.MethodGet, itemPath(id), nil, &r); err != nil {
		return monkey.Monkey{}, err
	}
	return r.ToMonkey(), nil
}

// Create posts a new record; the server assigns its id.
func (c *HTTPClient) Create(ctx context.Context, in monkey.Input) (_ monkey.Monkey, err error) {
	ctx, span := tracing.StartClientSpan(ctx, c.tracer, "create")
	defer func() { tracing.EndSpan(span, err) }()

	var r Record
	if err := c.do(ctx, span, http.MethodPost, CollectionPath, NewPayload(in), &r); err != nil {
		return monkey.Monkey{}, err
	}
	return r.ToMonkey(), nil
}

// Update replaces the fields of record id.
func (c *HTTPClient) Update(ctx context.Context, id string, in monkey.Input) (_ monkey.Monkey, err error) {
	ctx, span := tracing.StartClientSpan(ctx, c.tracer, "update", attribute.String(tracing.AttrMonkeyID, id))
	defer func() { tracing.EndSpan(span, err) }()

	var r Record
	if err := c.do(ctx, span, http.MethodPut, itemPath(id), NewPayload(in), &r); err != nil {
		return monkey.Monkey{}, err
	}
	return r.ToMonkey(), nil
}

// Delete removes record id. Any response body is ignored.
func (c *HTTPClient) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.StartClientSpan(ctx, c.tracer, "delete", attribute.String(tracing.AttrMonkeyID, id))
	defer func() { tracing.EndSpan(span, err) }()

	return c.do(ctx, span, http.MethodDelete, itemPath(id), nil, nil)
}

func itemPath(id string) string {
	return CollectionPath + "/" + url.PathEscape(id)
}

// do sends a JSON request and decodes a 2xx body into out when out is
// non-nil. All failures come back as *RemoteError.
func (c *HTTPClient) do(ctx context.Context, span trace.Span, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &RemoteError{Category: CategoryClient, Message: GenericMessage, Err: fmt.Errorf("marshal request: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return &RemoteError{Category: CategoryTransport, Message: GenericMessage, Err: fmt.Errorf("new request: %w", err)}
	}

	requestID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	span.SetAttributes(
		attribute.String(tracing.AttrHTTPMethod, method),
		attribute.String(tracing.AttrURL, fullURL),
		attribute.String(tracing.AttrRequestID, requestID),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.ErrorErr(log.CatAPI, "request failed", err, "method", method, "path", path, "request_id", requestID)
		return &RemoteError{Category: CategoryTransport, Message: GenericMessage, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &RemoteError{Category: CategoryTransport, StatusCode: resp.StatusCode, Message: GenericMessage, Err: fmt.Errorf("read body: %w", err)}
	}

	span.SetAttributes(attribute.Int(tracing.AttrHTTPStatus, resp.StatusCode))
	log.Debug(log.CatAPI, "response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remote := newStatusError(resp.StatusCode, raw)
		log.Warn(log.CatAPI, "registry error", "status", resp.StatusCode, "message", remote.Message, "request_id", requestID)
		return remote
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RemoteError{Category: CategoryDecode, StatusCode: resp.StatusCode, Message: GenericMessage, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
