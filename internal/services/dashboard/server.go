// Package dashboard hosts the portfolio admin dashboard HTTP service.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio-dashboard/internal/platform/timeouts"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/app"
	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/modules"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/observability"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
	dashboardstatic "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/static"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/storage"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/templates"
)

// Config defines startup inputs for the dashboard service.
type Config struct {
	HTTPAddr string
	Content  module.ContentClient
	Activity storage.ActivityStore
	Copy     templates.Localizer
	Logger   *log.Logger
}

// Server hosts the dashboard HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Content == nil {
		return nil, errors.New("content client is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	renderer, err := templates.New(cfg.Copy)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	deps := module.Dependencies{
		Content:        cfg.Content,
		Renderer:       renderer,
		Copy:           cfg.Copy,
		Logger:         logger,
		ContentTimeout: timeouts.ContentRequest,
	}
	if cfg.Activity != nil {
		deps.Activity = cfg.Activity
	}
	composed, err := app.Composer{}.Compose(app.ComposeInput{
		Dependencies: deps,
		Modules:      modules.Default(),
	})
	if err != nil {
		return nil, err
	}
	composed.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(dashboardstatic.FS))))
	composed.Handle(http.MethodGet+" "+routepath.Health, http.HandlerFunc(handleHealth))
	return httpx.Chain(composed,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewServer validates config and constructs a dashboard server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose dashboard handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("dashboard server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown dashboard http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve dashboard http: %w", err)
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
