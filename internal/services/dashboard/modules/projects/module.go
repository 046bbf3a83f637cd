// Package projects serves the project list, detail and edit routes.
package projects

import (
	"net/http"

	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/modulehandler"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
)

// Module provides project routes.
type Module struct{}

// New returns the projects module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "projects" }

// Mount wires project route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := modulehandler.Validate(deps); err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.Content), deps))
	return module.Mount{Prefix: routepath.ProjectsPrefix, Handler: mux}, nil
}
