package testimonials

import (
	"context"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/content/collate"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/formx"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/templates"
)

// Client is the content client surface the testimonials module calls.
type Client interface {
	ListTestimonials(ctx context.Context) ([]content.Testimonial, error)
	ListProjects(ctx context.Context) ([]content.Project, error)
	CreateObject(ctx context.Context, input content.ObjectInput) (content.Object, error)
	DeleteObject(ctx context.Context, id string) error
}

// projectChoices lists the projects a testimonial may reference, newest
// first, keyed by object id.
func projectChoices(ctx context.Context, client Client) ([]templates.Choice, error) {
	projects, err := client.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	projects = collate.SortProjects(projects)
	choices := make([]templates.Choice, 0, len(projects))
	for _, p := range projects {
		choices = append(choices, templates.Choice{Value: p.ID, Label: p.Title})
	}
	return choices, nil
}

// testimonialInput validates a posted testimonial form. The related project
// must be one of projects.
func testimonialInput(form *formx.Form, projects []templates.Choice) content.ObjectInput {
	title := form.Required("title")
	metadata := map[string]any{
		"client_name":      form.Required("client_name"),
		"client_title":     form.Get("client_title"),
		"company":          form.Get("company"),
		"testimonial_text": form.Required("testimonial_text"),
		"rating":           form.Option("rating", content.Ratings),
		"date_received":    formx.DateValue(form.Date("date_received")),
	}
	if id := form.Get("project"); id != "" {
		if knownProject(projects, id) {
			metadata["project"] = id
		} else {
			form.Fail("project", "error.invalid_option", form.Label("project"))
		}
	}
	return content.ObjectInput{
		Type:     content.KindTestimonial,
		Title:    title,
		Metadata: formx.Compact(metadata),
	}
}

func knownProject(projects []templates.Choice, id string) bool {
	for _, choice := range projects {
		if choice.Value == id {
			return true
		}
	}
	return false
}
