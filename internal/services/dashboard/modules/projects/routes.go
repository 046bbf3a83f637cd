package projects

import (
	"net/http"

	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Projects, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsNew, h.handleNew)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectsNew, h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectPattern, h.handleDetail)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectEditPattern, h.handleUpdate)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectDeletePattern, h.handleDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsPrefix+"{slug}/{rest...}", h.WriteNotFound)
}
