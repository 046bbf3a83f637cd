// Package home serves the dashboard overview.
package home

import (
	"net/http"

	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/modulehandler"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
)

// Module provides the overview route.
type Module struct{}

// New returns the home module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the overview handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := modulehandler.Validate(deps); err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.Content), deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
