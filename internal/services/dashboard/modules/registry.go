package modules

import (
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/modules/experience"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/modules/home"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/modules/projects"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/modules/skills"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/modules/testimonials"
)

// Default returns the dashboard modules in mount order.
func Default() []Module {
	return []Module{
		home.New(),
		projects.New(),
		skills.New(),
		experience.New(),
		testimonials.New(),
	}
}
