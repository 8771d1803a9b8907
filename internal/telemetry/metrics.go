package telemetry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the Prometheus metrics of Shipday API calls. It satisfies
// transport.MetricsRecorder.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	APIErrors       *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates the metrics and registers them with reg, or with a
// fresh registry when reg is nil.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipday_requests_total",
				Help: "Total number of Shipday API requests by method, route, and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shipday_request_duration_seconds",
				Help:    "Shipday API request duration in seconds by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		APIErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipday_api_errors_total",
				Help: "Total Shipday API errors by route and error type",
			},
			[]string{"route", "error_type"},
		),
		registry: reg,
	}
}

// RecordRequest records a request metric.
func (m *Metrics) RecordRequest(method, route, status string, duration float64) {
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration)
}

// RecordError records an API error metric.
func (m *Metrics) RecordError(route, errorType string) {
	m.APIErrors.WithLabelValues(route, errorType).Inc()
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Push sends the collected metrics to a Prometheus Pushgateway. The CLI is
// short-lived, so it pushes once before exiting instead of being scraped.
func (m *Metrics) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("pushing metrics: %w", err)
	}
	return nil
}
