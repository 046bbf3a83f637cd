package home

import (
	"net/http"

	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Root, h.WriteNotFound)
}
