// Package routepath stores canonical HTTP paths for dashboard modules.
package routepath

import (
	"net/url"
	"strings"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
)

const (
	Root         = "/"
	Health       = "/up"
	StaticPrefix = "/static/"

	Projects                 = "/projects"
	ProjectsPrefix           = "/projects/"
	ProjectsNew              = "/projects/new"
	ProjectPattern           = ProjectsPrefix + "{slug}"
	ProjectEditPattern       = ProjectsPrefix + "{id}/edit"
	ProjectDeletePattern     = ProjectsPrefix + "{id}/delete"
	Skills                   = "/skills"
	SkillsPrefix             = "/skills/"
	SkillsNew                = "/skills/new"
	SkillDeletePattern       = SkillsPrefix + "{id}/delete"
	Experience               = "/experience"
	ExperiencePrefix         = "/experience/"
	ExperienceNew            = "/experience/new"
	ExperienceDeletePattern  = ExperiencePrefix + "{id}/delete"
	Testimonials             = "/testimonials"
	TestimonialsPrefix       = "/testimonials/"
	TestimonialsNew          = "/testimonials/new"
	TestimonialDeletePattern = TestimonialsPrefix + "{id}/delete"
)

// Project returns the detail route for a project slug.
func Project(slug string) string {
	return ProjectsPrefix + escapeSegment(slug)
}

// ProjectEdit returns the update route for a project id.
func ProjectEdit(id string) string {
	return ProjectsPrefix + escapeSegment(id) + "/edit"
}

// List returns the list route of kind.
func List(kind content.Kind) string {
	switch kind {
	case content.KindProject:
		return Projects
	case content.KindSkill:
		return Skills
	case content.KindWorkExperience:
		return Experience
	case content.KindTestimonial:
		return Testimonials
	default:
		return Root
	}
}

// New returns the creation form route of kind.
func New(kind content.Kind) string {
	if kind.Valid() {
		return List(kind) + "/new"
	}
	return Root
}

// Delete returns the delete route for an object of kind.
func Delete(kind content.Kind, id string) string {
	if !kind.Valid() {
		return Root
	}
	return List(kind) + "/" + escapeSegment(id) + "/delete"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
