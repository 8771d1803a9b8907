package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the CLI.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Shipday
	ShipdayAPIKey  string        `envconfig:"SHIPDAY_API_KEY"`
	ShipdayBaseURL string        `envconfig:"SHIPDAY_BASE_URL" default:"https://api.shipday.com"`
	ShipdayTimeout time.Duration `envconfig:"SHIPDAY_TIMEOUT" default:"30s"`
	ShipdayUseMock bool          `envconfig:"SHIPDAY_USE_MOCK" default:"false"`

	// Telemetry
	OTELEnabled    bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint   string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	PushgatewayURL string `envconfig:"PUSHGATEWAY_URL"`
	ServiceName    string `envconfig:"SERVICE_NAME" default:"shipday-cli"`
	Version        string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables, after loading the
// given .env files (".env" when none are named). Missing files are ignored;
// variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.String("shipday.base_url", c.ShipdayBaseURL),
		attribute.Bool("shipday.mock", c.ShipdayUseMock),
	}
}
