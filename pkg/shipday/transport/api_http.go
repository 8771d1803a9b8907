package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the Shipday API root.
	DefaultBaseURL = "https://api.shipday.com"

	// DefaultTimeout applies when HTTPAPIClientConfig.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	tracerName = "github.com/tournevent/shipday/pkg/shipday/transport"
	userAgent  = "tournevent-shipday/1.0"
)

// HTTPAPIClient is the production HTTPClient.
type HTTPAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
	metrics    MetricsRecorder
}

// HTTPAPIClientConfig holds configuration for the HTTP client.
type HTTPAPIClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Tracer  trace.Tracer    // optional, defaults to the global provider
	Metrics MetricsRecorder // optional
}

// NewHTTPAPIClient creates a new HTTP-based API client.
func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &HTTPAPIClient{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tracer:  tracer,
		metrics: cfg.Metrics,
	}
}

// Get issues a GET and decodes the JSON response.
func (c *HTTPAPIClient) Get(ctx context.Context, path string) (any, error) {
	return c.call(ctx, http.MethodGet, path, nil)
}

// Post issues a POST with a JSON body and decodes the JSON response.
func (c *HTTPAPIClient) Post(ctx context.Context, path string, body map[string]any) (any, error) {
	return c.call(ctx, http.MethodPost, path, body)
}

// Put issues a PUT with a JSON body and decodes the JSON response.
func (c *HTTPAPIClient) Put(ctx context.Context, path string, body map[string]any) (any, error) {
	return c.call(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE and returns the response undecoded, whatever its
// status.
func (c *HTTPAPIClient) Delete(ctx context.Context, path string) (*RawResponse, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *HTTPAPIClient) call(ctx context.Context, method, path string, body map[string]any) (any, error) {
	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if !raw.OK() {
		return nil, ParseError(raw)
	}

	v, err := raw.JSON()
	if err != nil {
		return nil, errs.NewAPIError("INVALID_RESPONSE", "response is not valid JSON").
			WithStatusCode(raw.StatusCode).
			WithCause(err)
	}
	return v, nil
}

// do performs an HTTP request with authentication, tracing and metrics.
func (c *HTTPAPIClient) do(ctx context.Context, method, path string, body map[string]any) (raw *RawResponse, err error) {
	route := Route(path)
	requestID := uuid.New().String()

	ctx, span := c.tracer.Start(ctx, "shipday "+method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
			attribute.String("shipday.request_id", requestID),
		),
	)
	start := time.Now()
	defer func() {
		status := "error"
		if raw != nil {
			status = strconv.Itoa(raw.StatusCode)
			span.SetAttributes(attribute.Int("http.response.status_code", raw.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			c.recordError(route, errorType(err))
		} else if !raw.OK() {
			span.SetStatus(codes.Error, http.StatusText(raw.StatusCode))
			c.recordError(route, fmt.Sprintf("HTTP_%d", raw.StatusCode))
		}
		if c.metrics != nil {
			c.metrics.RecordRequest(method, route, status, time.Since(start).Seconds())
		}
		span.End()
	}()

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Basic "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shipday %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

func (c *HTTPAPIClient) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *HTTPAPIClient) recordError(route, errorType string) {
	if c.metrics != nil {
		c.metrics.RecordError(route, errorType)
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "transport"
	}
}

// ParseError converts a non-2xx RawResponse into an *errs.APIError. Shipday
// error bodies carry errorCode and errorMessage.
func ParseError(raw *RawResponse) error {
	code := fmt.Sprintf("HTTP_%d", raw.StatusCode)

	var shaped struct {
		ErrorCode    any    `json:"errorCode"`
		ErrorMessage string `json:"errorMessage"`
		Error        string `json:"error"`
		Message      string `json:"message"`
	}
	if err := json.Unmarshal(raw.Body, &shaped); err == nil {
		if shaped.ErrorCode != nil {
			code = fmt.Sprint(shaped.ErrorCode)
		}
		for _, msg := range []string{shaped.ErrorMessage, shaped.Message, shaped.Error} {
			if msg != "" {
				return errs.NewAPIError(code, msg).WithStatusCode(raw.StatusCode)
			}
		}
	}

	msg := strings.TrimSpace(string(raw.Body))
	if msg == "" {
		msg = http.StatusText(raw.StatusCode)
	}
	return errs.NewAPIError(code, msg).WithStatusCode(raw.StatusCode)
}

var _ HTTPClient = (*HTTPAPIClient)(nil)
