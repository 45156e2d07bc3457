// Package gateway is the only place that talks HTTP to the football-data API.
package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/football-data-client/internal/logging"
	"github.com/preston-bernstein/football-data-client/internal/metrics"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how the gateway reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Throttle   Throttle // nil means no throttling
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client issues GET requests against the API base.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	throttle   Throttle
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs a gateway client with the provided configuration.
func NewClient(cfg Config) *Client {
	throttle := cfg.Throttle
	if throttle == nil {
		throttle = NoThrottle{}
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		throttle:   throttle,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// Get fetches one resource and returns the raw JSON body. It waits on the
// throttle first, so every call (including ones that fail) is spaced out.
func (c *Client) Get(ctx context.Context, r Request) (json.RawMessage, error) {
	waitStart := c.now()
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, err
	}
	c.metrics.RecordThrottleWait(c.now().Sub(waitStart))

	req, err := c.buildRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	requestID := req.Header.Get(requestIDHeader)
	logArgs := []any{
		logging.FieldResource, r.Resource,
		logging.FieldPath, req.URL.Path,
		logging.FieldRequestID, requestID,
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstreamCall(r.Resource, 0, c.now().Sub(start), err)
		logging.Warn(c.logger, "football-data request failed", append(logArgs, "error", err)...)
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tErr := c.statusError(req, resp)
		c.metrics.RecordUpstreamCall(r.Resource, resp.StatusCode, c.now().Sub(start), tErr)
		logging.Warn(c.logger, "football-data unexpected status",
			append(logArgs, logging.FieldStatusCode, resp.StatusCode)...)

		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := parseRetryAfter(resp.Header, c.now())
			c.metrics.RecordRateLimit(r.Resource, retryAfter)
			return nil, &RateLimitError{TransportError: tErr, RetryAfter: retryAfter}
		}
		return nil, tErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tErr := &TransportError{Method: req.Method, URL: req.URL.String(), StatusCode: resp.StatusCode, Err: err}
		c.metrics.RecordUpstreamCall(r.Resource, resp.StatusCode, c.now().Sub(start), tErr)
		return nil, tErr
	}
	if !jsonAPI.Valid(body) {
		c.metrics.RecordUpstreamCall(r.Resource, resp.StatusCode, c.now().Sub(start), ErrInvalidBody)
		return nil, ErrInvalidBody
	}

	duration := c.now().Sub(start)
	c.metrics.RecordUpstreamCall(r.Resource, resp.StatusCode, duration, nil)
	logging.Debug(c.logger, "football-data request",
		append(logArgs,
			logging.FieldStatusCode, resp.StatusCode,
			logging.FieldDurationMS, duration.Milliseconds(),
		)...)

	return json.RawMessage(body), nil
}

func (c *Client) buildRequest(ctx context.Context, r Request) (*http.Request, error) {
	target := c.baseURL + r.Path()
	if q := r.Query.Encode(); q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set(authHeader, c.apiKey)
	}
	return req, nil
}

func (c *Client) statusError(req *http.Request, resp *http.Response) *TransportError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &TransportError{
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
