// Package experience serves the career history timeline and its mutations.
package experience

import (
	"net/http"

	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/modulehandler"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
)

// Module provides work experience routes.
type Module struct{}

// New returns the experience module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "experience" }

// Mount wires work experience route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := modulehandler.Validate(deps); err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps.Content, deps))
	return module.Mount{Prefix: routepath.ExperiencePrefix, Handler: mux}, nil
}
