package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/portfolio-dashboard/internal/platform/config"
	"github.com/louisbranch/portfolio-dashboard/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// ServiceDashboard names the admin dashboard in telemetry and logs.
const ServiceDashboard = "dashboard"

// RunOptions controls shared entrypoint behavior.
type RunOptions struct {
	// ShutdownTimeout bounds the telemetry flush on exit.
	ShutdownTimeout time.Duration
	// SkipDotEnv disables loading .env files before env parsing.
	SkipDotEnv bool
}

// ParseConfig loads .env files and environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	return ParseConfigWithOptions(cfg, RunOptions{})
}

// ParseConfigWithOptions is ParseConfig with explicit options.
func ParseConfigWithOptions[T any](cfg *T, options RunOptions) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if !options.SkipDotEnv {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry configures tracing and executes a service run loop.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions configures tracing and executes a service run loop.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		timeout := options.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
