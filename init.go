package main

import (
	"context"

	"github.com/tournevent/shipday/internal/cli"
	"github.com/tournevent/shipday/internal/config"
	"github.com/tournevent/shipday/internal/telemetry"
	"github.com/tournevent/shipday/pkg/shipday"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

// initTracer falls back to the global no-op tracer when OTEL is disabled.
func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return otel.Tracer(cfg.ServiceName), func(context.Context) error { return nil }, nil
	}

	tracer, shutdown, err := telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version, cfg.Attributes()...)
	if err != nil {
		return otel.Tracer(cfg.ServiceName), nil, err
	}
	return tracer, shutdown, nil
}

func initMetrics() *telemetry.Metrics {
	return telemetry.NewMetrics(nil)
}

func pushMetrics(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *otelzap.Logger) {
	if cfg.PushgatewayURL == "" {
		return
	}
	if err := metrics.Push(context.WithoutCancel(ctx), cfg.PushgatewayURL, cfg.ServiceName); err != nil {
		logger.Warn("Failed to push metrics", zap.String("url", cfg.PushgatewayURL), zap.Error(err))
	}
}

func connector(cfg *config.Config, logger *otelzap.Logger, tracer trace.Tracer, metrics *telemetry.Metrics) cli.Connector {
	return func(ctx context.Context) (*shipday.Client, error) {
		client, err := shipday.New(shipday.Config{
			APIKey:  cfg.ShipdayAPIKey,
			BaseURL: cfg.ShipdayBaseURL,
			Timeout: cfg.ShipdayTimeout,
			UseMock: cfg.ShipdayUseMock,
			Metrics: metrics,
		}, logger, tracer)
		if err != nil {
			return nil, err
		}
		logger.Ctx(ctx).Debug("Shipday client ready",
			zap.String("base_url", cfg.ShipdayBaseURL),
			zap.Bool("mock", cfg.ShipdayUseMock),
		)
		return client, nil
	}
}
