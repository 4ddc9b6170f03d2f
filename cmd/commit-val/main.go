package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nathantilsley/commit-val/internal/platform/config"
	"github.com/nathantilsley/commit-val/internal/platform/logger"
	"github.com/nathantilsley/commit-val/internal/platform/telemetry"
)

// errVerificationFailed signals a clean verification failure, already
// reported to the console by the reporter.
var errVerificationFailed = errors.New("verification failed")

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, errVerificationFailed) {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)

	// Initialize telemetry (noop unless OTEL_ENABLED=true)
	tel, err := telemetry.New(ctx, cfg.OTelEnabled)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if err := tel.Shutdown(ctx); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()

	// Build dependency container
	container, err := NewContainer(cfg, log)
	if err != nil {
		return fmt.Errorf("building container: %w", err)
	}

	// Verify every task in sequence; all must pass.
	failed := false
	for _, task := range container.Tasks {
		report, err := container.Verifier.Execute(ctx, task)
		if err != nil {
			return fmt.Errorf("verifying %q: %w", task.Name, err)
		}
		if !report.OK() {
			failed = true
		}
	}
	if failed {
		return errVerificationFailed
	}
	return nil
}
