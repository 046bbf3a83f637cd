// Package main starts the portfolio dashboard.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	dashboardcmd "github.com/louisbranch/portfolio-dashboard/internal/cmd/dashboard"
	platformcmd "github.com/louisbranch/portfolio-dashboard/internal/platform/cmd"
	"github.com/louisbranch/portfolio-dashboard/internal/platform/config"
)

func main() {
	cfg, err := dashboardcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	log.SetPrefix("[DASHBOARD] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceDashboard, func(ctx context.Context) error {
		return dashboardcmd.Run(ctx, cfg)
	}); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
