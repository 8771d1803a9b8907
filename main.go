package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tournevent/shipday/internal/cli"
	"go.uber.org/zap"
)

var version = "0.0.1"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Version == "" {
		cfg.Version = version
	}

	// Initialize telemetry
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tracer, tracerShutdown, err := initTracer(ctx, cfg)
	if err != nil {
		logger.Warn("Failed to initialize tracer", zap.Error(err))
	} else {
		defer tracerShutdown(context.WithoutCancel(ctx))
	}

	metrics := initMetrics()
	defer pushMetrics(ctx, cfg, metrics, logger)

	root := cli.NewRootCommand(version, connector(cfg, logger, tracer, metrics))
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
