// Package app composes dashboard modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
)

// ComposeInput carries the modules to mount and their shared dependencies.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Composer wires module mounts onto a root mux.
type Composer struct{}

// Compose builds a root HTTP handler from modules. Each module owns its
// prefix subtree and the bare collection path without the trailing slash.
func (Composer) Compose(input ComposeInput) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()

		root.Handle(prefix, mount.Handler)
		if exact := strings.TrimSuffix(prefix, "/"); exact != "" {
			root.Handle(exact, mount.Handler)
		}
	}
	return root, nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := normalizePrefix(mount.Prefix)
	if prefix == "" {
		return module.Mount{}, "", fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
