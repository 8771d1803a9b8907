// Package shipday is a client for the Shipday delivery-dispatch API.
//
// A Client exposes three services sharing one API key:
//
//	client, err := shipday.New(shipday.Config{APIKey: key}, logger, tracer)
//	if err != nil {
//		return err
//	}
//	resp, err := client.Orders.InsertOrder(ctx, o)
package shipday

import (
	"fmt"
	"strings"
	"time"

	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/services"
	"github.com/tournevent/shipday/pkg/shipday/transport"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// MinAPIKeyLength is the shortest API key accepted by New.
const MinAPIKeyLength = 10

// Config holds Shipday configuration.
type Config struct {
	APIKey  string
	BaseURL string        // defaults to transport.DefaultBaseURL
	Timeout time.Duration // defaults to transport.DefaultTimeout
	UseMock bool          // When true, uses the in-memory mock transport
	Metrics transport.MetricsRecorder
}

// Client bundles the Shipday services.
type Client struct {
	Orders   *services.OrderService
	Carriers *services.CarrierService
	OnDemand *services.OnDemandDeliveryService

	config    Config
	apiClient transport.HTTPClient
	logger    *otelzap.Logger
}

// New creates a new Shipday client.
// If cfg.UseMock is true, it uses a mock transport and the API key is not
// checked. Otherwise, it uses the real HTTP transport.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) (*Client, error) {
	if cfg.UseMock {
		return NewWithAPIClient(cfg, transport.NewMockAPIClient(), logger), nil
	}

	if err := CheckAPIKey(cfg.APIKey); err != nil {
		return nil, err
	}

	apiClient := transport.NewHTTPAPIClient(transport.HTTPAPIClientConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
		Tracer:  tracer,
		Metrics: cfg.Metrics,
	})
	return NewWithAPIClient(cfg, apiClient, logger), nil
}

// NewWithAPIClient creates a new Shipday client with a custom transport.
// This is useful for injecting mock clients in tests.
func NewWithAPIClient(cfg Config, apiClient transport.HTTPClient, logger *otelzap.Logger) *Client {
	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}
	return &Client{
		Orders:    services.NewOrderService(apiClient, logger),
		Carriers:  services.NewCarrierService(apiClient, logger),
		OnDemand:  services.NewOnDemandDeliveryService(apiClient, logger),
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
	}
}

// APIClient returns the transport shared by the services.
func (c *Client) APIClient() transport.HTTPClient {
	return c.apiClient
}

// CheckAPIKey rejects empty, blank or too short keys.
func CheckAPIKey(key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return fmt.Errorf("%w: api key is empty", errs.ErrInvalidAPIKey)
	}
	if len(trimmed) < MinAPIKeyLength {
		return fmt.Errorf("%w: api key must be at least %d characters", errs.ErrInvalidAPIKey, MinAPIKeyLength)
	}
	return nil
}
