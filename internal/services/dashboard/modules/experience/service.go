package experience

import (
	"context"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/formx"
)

// Client is the content client surface the experience module calls.
type Client interface {
	ListWorkExperience(ctx context.Context) ([]content.WorkExperience, error)
	CreateObject(ctx context.Context, input content.ObjectInput) (content.Object, error)
	DeleteObject(ctx context.Context, id string) error
}

// experienceInput validates a posted work experience form. The end date may
// not precede the start date.
func experienceInput(form *formx.Form) content.ObjectInput {
	title := form.Required("title")
	start := form.Date("start_date")
	if start.IsZero() {
		form.Required("start_date")
	}
	end := form.Date("end_date")
	if !start.IsZero() && !end.IsZero() && end.Before(start.Time) {
		form.Fail("end_date", "error.date_order")
	}
	metadata := map[string]any{
		"job_title":        form.Required("job_title"),
		"company":          form.Required("company"),
		"start_date":       formx.DateValue(start),
		"end_date":         formx.DateValue(end),
		"current_position": form.Bool("current_position"),
		"location":         form.Get("location"),
		"employment_type":  form.Option("employment_type", content.EmploymentTypes),
		"description":      form.Get("description"),
		"achievements":     form.Get("achievements"),
	}
	return content.ObjectInput{
		Type:     content.KindWorkExperience,
		Title:    title,
		Metadata: formx.Compact(metadata),
	}
}
