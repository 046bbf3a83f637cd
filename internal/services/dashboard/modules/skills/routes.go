package skills

import (
	"net/http"

	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Skills, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SkillsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SkillsNew, h.handleNew)
	mux.HandleFunc(http.MethodPost+" "+routepath.SkillsNew, h.handleCreate)
	mux.HandleFunc(http.MethodPost+" "+routepath.SkillDeletePattern, h.handleDelete)
}
