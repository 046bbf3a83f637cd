package dashboard

import (
	"context"
	"flag"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("COSMIC_BUCKET_SLUG", "portfolio")
	t.Setenv("COSMIC_READ_KEY", "read")
	t.Setenv("COSMIC_WRITE_KEY", "write")
}

func TestParseConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := ParseConfig(flag.NewFlagSet("dashboard", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.DBPath != "data/dashboard.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "data/dashboard.db")
	}
	if cfg.CosmicAPIURL != "https://api.cosmicjs.com/v3" {
		t.Fatalf("CosmicAPIURL = %q", cfg.CosmicAPIURL)
	}
	if cfg.BucketSlug != "portfolio" || cfg.ReadKey != "read" || cfg.WriteKey != "write" {
		t.Fatalf("cosmic config = %+v", cfg)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORTFOLIO_DASHBOARD_HTTP_ADDR", "0.0.0.0:9000")

	cfg, err := ParseConfig(flag.NewFlagSet("dashboard", flag.ContinueOnError), []string{"-http-addr", "127.0.0.1:9100", "-db-path", ""})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9100" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9100")
	}
	if cfg.DBPath != "" {
		t.Fatalf("DBPath = %q, want empty", cfg.DBPath)
	}
}

func TestParseConfigRequiresCosmicKeys(t *testing.T) {
	t.Setenv("COSMIC_BUCKET_SLUG", "")
	t.Setenv("COSMIC_READ_KEY", "")
	t.Setenv("COSMIC_WRITE_KEY", "")

	if _, err := ParseConfig(flag.NewFlagSet("dashboard", flag.ContinueOnError), nil); err == nil {
		t.Fatalf("expected missing cosmic keys error")
	}
}

func TestRunRejectsIncompleteBackendConfig(t *testing.T) {
	if err := Run(context.Background(), Config{HTTPAddr: "127.0.0.1:0"}); err == nil {
		t.Fatalf("expected backend config error")
	}
}
