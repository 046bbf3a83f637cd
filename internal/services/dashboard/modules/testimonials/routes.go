package testimonials

import (
	"net/http"

	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Testimonials, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.TestimonialsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.TestimonialsNew, h.handleNew)
	mux.HandleFunc(http.MethodPost+" "+routepath.TestimonialsNew, h.handleCreate)
	mux.HandleFunc(http.MethodPost+" "+routepath.TestimonialDeletePattern, h.handleDelete)
}
