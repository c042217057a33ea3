package api

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
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/traikoa-go/internal/adapters/metrics"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/config"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/logging"
)

const (
	tracerName = "github.com/andrescamacho/traikoa-go/internal/adapters/api"

	// RequestIDHeader carries a per-request id the server can log
	RequestIDHeader = "X-Request-ID"
)

// TraikoaClient performs single round trips against the Traikoa API.
//
// Everything it holds is fixed at construction, so one client can be shared
// by any number of goroutines. It never retries and never caches; callers
// bound each call with a context deadline.
type TraikoaClient struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter // nil when rate limiting is disabled
	baseURL     string
	version     string
	logger      logging.Logger
	recorder    metrics.APIRecorder
	tracer      trace.Tracer
	propagator  propagation.TextMapPropagator
}

// Option customizes a TraikoaClient at construction
type Option func(*TraikoaClient)

// WithHTTPClient replaces the default *http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *TraikoaClient) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the structured logger used for per-request debug lines
func WithLogger(logger logging.Logger) Option {
	return func(c *TraikoaClient) {
		c.logger = logger
	}
}

// WithMetrics records every round trip on recorder
func WithMetrics(recorder metrics.APIRecorder) Option {
	return func(c *TraikoaClient) {
		c.recorder = recorder
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *TraikoaClient) {
		c.tracer = provider.Tracer(tracerName)
	}
}

// NewTraikoaClient creates a client for the API described by cfg.
// cfg is copied; later changes to the caller's value have no effect.
func NewTraikoaClient(cfg config.APIConfig, opts ...Option) *TraikoaClient {
	version := cfg.Version
	if version == "" {
		version = config.APIVersion
	}

	c := &TraikoaClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		version:    strings.Trim(version, "/"),
		logger:     logging.Noop(),
		tracer:     otel.Tracer(tracerName),
		propagator: otel.GetTextMapPropagator(),
	}

	if cfg.RateLimit.Requests > 0 {
		burst := cfg.RateLimit.Burst
		if burst <= 0 {
			burst = cfg.RateLimit.Requests
		}
		c.rateLimiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.Requests), burst)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get issues GET {base}/{version}/{path}?{query} and decodes the JSON body into out
func (c *TraikoaClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.request(ctx, http.MethodGet, path, path, query, nil, out)
}

// Post issues POST {base}/{version}/{path} with payload as a JSON body and decodes the JSON response into out
func (c *TraikoaClient) Post(ctx context.Context, path string, payload any, out any) error {
	return c.request(ctx, http.MethodPost, path, path, nil, payload, out)
}

// URL returns the absolute URL for path, without a query
func (c *TraikoaClient) URL(path string) string {
	return c.baseURL + "/" + c.version + "/" + strings.TrimLeft(path, "/")
}

// request performs one round trip. endpoint is the route template used for
// metrics and span names so concrete ids never become label values.
func (c *TraikoaClient) request(
	ctx context.Context,
	method, endpoint, path string,
	query url.Values,
	body any,
	out any,
) (err error) {
	fullURL := c.URL(path)
	if encoded := encodeQuery(query); encoded != "" {
		fullURL += "?" + encoded
	}

	requestID := uuid.NewString()
	log := c.logger.With(
		logging.String("request_id", requestID),
		logging.String("method", method),
		logging.String("endpoint", endpoint),
	)

	ctx, span := c.tracer.Start(ctx, method+" "+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", fullURL),
			attribute.String("traikoa.request_id", requestID),
		),
	)
	defer span.End()

	start := time.Now()
	statusCode := metrics.StatusNetworkError
	defer func() {
		elapsed := time.Since(start)
		if c.recorder != nil {
			c.recorder.RecordAPIRequest(method, endpoint, statusCode, elapsed.Seconds())
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Debug(ctx, "api request failed",
				logging.Int("status", statusCode),
				logging.Duration("duration", elapsed),
				logging.Err(err),
			)
			return
		}
		log.Debug(ctx, "api request completed",
			logging.Int("status", statusCode),
			logging.Duration("duration", elapsed),
		)
	}()

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return &NetworkError{Method: method, URL: fullURL, Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Method: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	statusCode = resp.StatusCode
	span.SetAttributes(attribute.Int("http.response.status_code", statusCode))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: method, URL: fullURL, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(method, fullURL, resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return &DecodeError{Method: method, URL: fullURL, Err: errors.New("empty response body")}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &DecodeError{Method: method, URL: fullURL, Err: err}
	}

	return nil
}

// encodeQuery encodes query with spaces as %20 rather than '+'.
// A literal '+' in a value is already escaped as %2B, so the replacement is safe.
func encodeQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}
	return strings.ReplaceAll(query.Encode(), "+", "%20")
}
