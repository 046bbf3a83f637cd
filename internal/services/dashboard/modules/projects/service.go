package projects

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/content/collate"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/formx"
)

// Client is the content client surface the projects module calls.
type Client interface {
	ListProjects(ctx context.Context) ([]content.Project, error)
	CreateObject(ctx context.Context, input content.ObjectInput) (content.Object, error)
	UpdateObject(ctx context.Context, id string, input content.ObjectInput) (content.Object, error)
	DeleteObject(ctx context.Context, id string) error
}

// Filter narrows the project list.
type Filter struct {
	FeaturedOnly bool
	Type         string
}

// ParseFilter reads list filters from query. Unknown project types are
// ignored.
func ParseFilter(query url.Values) Filter {
	filter := Filter{}
	if featured, err := strconv.ParseBool(strings.TrimSpace(query.Get("featured"))); err == nil {
		filter.FeaturedOnly = featured
	}
	if key := strings.TrimSpace(query.Get("type")); key != "" {
		if _, ok := content.LookupOption(content.ProjectTypes, key); ok {
			filter.Type = key
		}
	}
	return filter
}

// Active reports whether any filter narrows the list.
func (f Filter) Active() bool {
	return f.FeaturedOnly || f.Type != ""
}

// Match reports whether p passes the filter.
func (f Filter) Match(p content.Project) bool {
	if f.FeaturedOnly && !p.Metadata.Featured {
		return false
	}
	if f.Type != "" && p.Metadata.ProjectType.Key != f.Type {
		return false
	}
	return true
}

type service struct {
	content Client
}

func newService(content Client) service {
	return service{content: content}
}

// list returns every project newest first together with the filtered view.
func (s service) list(ctx context.Context, filter Filter) (all, shown []content.Project, err error) {
	projects, err := s.content.ListProjects(ctx)
	if err != nil {
		return nil, nil, err
	}
	all = collate.SortProjects(projects)
	shown = make([]content.Project, 0, len(all))
	for _, p := range all {
		if filter.Match(p) {
			shown = append(shown, p)
		}
	}
	return all, shown, nil
}

// find returns the project matching key.
func (s service) find(ctx context.Context, match func(content.Project) bool) (content.Project, error) {
	projects, err := s.content.ListProjects(ctx)
	if err != nil {
		return content.Project{}, err
	}
	for _, p := range projects {
		if match(p) {
			return p, nil
		}
	}
	return content.Project{}, content.ErrNotFound
}

func (s service) bySlug(ctx context.Context, slug string) (content.Project, error) {
	return s.find(ctx, func(p content.Project) bool { return p.Slug == slug })
}

func (s service) byID(ctx context.Context, id string) (content.Project, error) {
	return s.find(ctx, func(p content.Project) bool { return p.ID == id })
}

// projectInput validates a posted project form.
func projectInput(form *formx.Form) content.ObjectInput {
	title := form.Required("title")
	metadata := map[string]any{
		"project_name":    form.Get("project_name"),
		"description":     form.Get("description"),
		"technologies":    form.Get("technologies"),
		"project_type":    form.Option("project_type", content.ProjectTypes),
		"demo_url":        form.URL("demo_url"),
		"github_url":      form.URL("github_url"),
		"completion_date": formx.DateValue(form.Date("completion_date")),
		"featured":        form.Bool("featured"),
	}
	return content.ObjectInput{
		Type:     content.KindProject,
		Title:    title,
		Slug:     form.Get("slug"),
		Metadata: metadata,
	}
}

// projectValues prefills the edit form from p.
func projectValues(p content.Project) url.Values {
	values := url.Values{}
	values.Set("title", p.Title)
	values.Set("slug", p.Slug)
	values.Set("project_name", p.Metadata.ProjectName)
	values.Set("description", p.Metadata.Description)
	values.Set("technologies", p.Metadata.Technologies)
	values.Set("project_type", p.Metadata.ProjectType.Key)
	values.Set("demo_url", p.Metadata.DemoURL)
	values.Set("github_url", p.Metadata.GithubURL)
	values.Set("completion_date", formx.DateValue(p.Metadata.CompletionDate))
	if p.Metadata.Featured {
		values.Set("featured", "on")
	}
	return values
}
