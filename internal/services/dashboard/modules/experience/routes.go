package experience

import (
	"net/http"

	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Experience, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ExperiencePrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ExperienceNew, h.handleNew)
	mux.HandleFunc(http.MethodPost+" "+routepath.ExperienceNew, h.handleCreate)
	mux.HandleFunc(http.MethodPost+" "+routepath.ExperienceDeletePattern, h.handleDelete)
}
