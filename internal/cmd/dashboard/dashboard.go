// Package dashboard wires the dashboard command: configuration, the content
// backend, the activity journal and the HTTP server.
package dashboard

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/content/cosmic"
	platformcmd "github.com/louisbranch/portfolio-dashboard/internal/platform/cmd"
	"github.com/louisbranch/portfolio-dashboard/internal/platform/i18n/catalog"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/storage/sqlite"
)

// Config holds the dashboard command configuration.
type Config struct {
	HTTPAddr     string `env:"PORTFOLIO_DASHBOARD_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath       string `env:"PORTFOLIO_DASHBOARD_DB_PATH" envDefault:"data/dashboard.db"`
	CosmicAPIURL string `env:"COSMIC_API_URL" envDefault:"https://api.cosmicjs.com/v3"`
	BucketSlug   string `env:"COSMIC_BUCKET_SLUG,required,notEmpty"`
	ReadKey      string `env:"COSMIC_READ_KEY,required,notEmpty"`
	WriteKey     string `env:"COSMIC_WRITE_KEY,required,notEmpty"`
}

// ParseConfig reads .env files and the environment, then applies flag
// overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "activity journal SQLite path (empty disables the journal)")
	fs.StringVar(&cfg.CosmicAPIURL, "cosmic-api-url", cfg.CosmicAPIURL, "Cosmic API base URL")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dashboard server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	bucket, err := cosmic.NewBucket(cosmic.Config{
		BaseURL:    cfg.CosmicAPIURL,
		BucketSlug: cfg.BucketSlug,
		ReadKey:    cfg.ReadKey,
		WriteKey:   cfg.WriteKey,
	})
	if err != nil {
		return fmt.Errorf("init content backend: %w", err)
	}

	serverCfg := dashboard.Config{
		HTTPAddr: cfg.HTTPAddr,
		Content:  content.NewClient(bucket, log.Default()),
		Copy:     catalog.Default(),
		Logger:   log.Default(),
	}
	if path := strings.TrimSpace(cfg.DBPath); path != "" {
		store, err := sqlite.Open(path)
		if err != nil {
			return fmt.Errorf("open activity journal: %w", err)
		}
		defer store.Close()
		serverCfg.Activity = store
	} else {
		log.Printf("activity journal disabled")
	}

	server, err := dashboard.NewServer(ctx, serverCfg)
	if err != nil {
		return fmt.Errorf("init dashboard server: %w", err)
	}
	defer server.Close()

	log.Printf("dashboard listening addr=%s", server.Addr())
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve dashboard: %w", err)
	}
	return nil
}
