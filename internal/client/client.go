// Package client talks to the analysis service: it submits analysis jobs and
// fetches their status and finished reports.
//
// Each call is a single HTTP request. There is no timeout, retry, caching or
// de-duplication here; callers that want any of those wrap the Client. A
// Client holds no per-call state and is safe for concurrent use.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/abelbrown/atlas/internal/logging"
	"golang.org/x/time/rate"
)

// Fixed resource paths on the analysis service.
const (
	analysisPath = "/api/v1/analysis"
	reportsPath  = "/api/v1/reports"
	healthPath   = "/api/v1/health"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 32 << 20

// Errors returned for non-2xx responses. Their messages are meant for the
// user as-is; the HTTP status is logged, not attached.
var (
	ErrSubmissionFailed  = errors.New("Failed to create analysis job.")
	ErrReportUnavailable = errors.New("Report not available.")
	ErrStatusUnavailable = errors.New("Analysis job not found.")
	ErrServiceUnhealthy  = errors.New("Analysis service is unhealthy.")
)

// Client is an analysis service client.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter // nil = unlimited
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithRateLimit spaces out requests issued through this Client. A limit of
// rate.Inf (or burst <= 0) removes the limiter.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit == rate.Inf || burst <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// New creates a Client for the service at baseURL, e.g.
// "http://localhost:8000". The default http.Client has no timeout.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root this Client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubmitAnalysis posts req as a new analysis job and returns the service's
// job handle unchanged. A non-2xx response returns ErrSubmissionFailed.
func (c *Client) SubmitAnalysis(ctx context.Context, req AnalysisRequest) (Payload, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("client: failed to marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, analysisPath, body, ErrSubmissionFailed)
}

// FetchReport gets the finished report for analysisID and returns it
// unchanged. The ID is escaped as a single path segment. A non-2xx response
// returns ErrReportUnavailable.
func (c *Client) FetchReport(ctx context.Context, analysisID string) (Payload, error) {
	return c.do(ctx, http.MethodGet, reportsPath+"/"+url.PathEscape(analysisID), nil, ErrReportUnavailable)
}

// FetchStatus gets the job status for analysisID. A non-2xx response
// returns ErrStatusUnavailable.
func (c *Client) FetchStatus(ctx context.Context, analysisID string) (Payload, error) {
	return c.do(ctx, http.MethodGet, analysisPath+"/"+url.PathEscape(analysisID), nil, ErrStatusUnavailable)
}

// Health calls the service health endpoint. A non-2xx response returns
// ErrServiceUnhealthy.
func (c *Client) Health(ctx context.Context) (Payload, error) {
	return c.do(ctx, http.MethodGet, healthPath, nil, ErrServiceUnhealthy)
}

// do issues one request and decodes a 2xx body. Any other status maps to
// failure.
func (c *Client) do(ctx context.Context, method, path string, body []byte, failure error) (Payload, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("client: rate limiter wait failed: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	logging.Debug("Analysis request", "method", method, "path", path)

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("client: request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		logging.Warn("Analysis service rejected request", "method", method, "path", path, "status", resp.StatusCode)
		return nil, failure
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("client: failed to read response: %w", err)
	}

	payload, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("client: failed to parse response: %w", err)
	}
	return payload, nil
}

// decode parses exactly one JSON value, keeping numbers as json.Number.
func decode(data []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}
