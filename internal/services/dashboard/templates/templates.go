// Package templates holds the dashboard's embedded page templates and exposes
// them as templ components.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/platform/icons"
)

//go:embed layout.html partials.html forms.html pages/*.html
var sources embed.FS

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key string, args ...any) string
}

// Notice is a one-line banner above the page content.
type Notice struct {
	Kind    string
	Message string
}

// View is the data every page template receives.
type View struct {
	Title  string
	Active string
	Notice *Notice
	Data   any
	// OOB marks fragment renders; the nav is then swapped out of band.
	OOB bool
}

// FormErrorKey holds the form-level error, shown above the fields.
const FormErrorKey = "_form"

// Header is the title row of a list page.
type Header struct {
	Heading     string
	Subtitle    string
	ActionURL   string
	ActionLabel string
}

// EmptyState is the placeholder shown for an empty collection.
type EmptyState struct {
	Icon   string
	Title  string
	Body   string
	CTA    string
	CTAURL string
}

// NavItem is one primary navigation link.
type NavItem struct {
	Href   string
	Label  string
	Icon   string
	Active bool
}

var navIcons = map[string]string{
	"dashboard":    string(icons.Dashboard),
	"projects":     string(icons.Project),
	"skills":       string(icons.Skill),
	"experience":   string(icons.Experience),
	"testimonials": string(icons.Testimonial),
}

// Choice is one select option.
type Choice struct {
	Value string
	Label string
}

// Form carries posted values and field errors back into a form.
type Form struct {
	Action  string
	Cancel  string
	Values  url.Values
	Errors  map[string]string
	Choices map[string][]Choice
}

// Field is one rendered form control.
type Field struct {
	Name     string
	Label    string
	Hint     string
	Type     string
	Value    string
	Error    string
	Required bool
	Checked  bool
	Choices  []Choice
}

// DeleteAction is the target of a delete button. Title is posted back for
// the confirmation notice.
type DeleteAction struct {
	URL   string
	Title string
}

// OptionChoices converts an option table to select choices.
func OptionChoices(options []content.Option) []Choice {
	choices := make([]Choice, 0, len(options))
	for _, option := range options {
		choices = append(choices, Choice{Value: option.Key, Label: option.Label})
	}
	return choices
}

// Renderer renders named pages.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template with copy resolved through loc.
func New(loc Localizer) (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs(loc)).ParseFS(sources, "layout.html", "partials.html", "forms.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	files, err := fs.Glob(sources, "pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		page, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", file, err)
		}
		if _, err := page.ParseFS(sources, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = page
	}
	return r, nil
}

// MustNew is New for process wiring and tests.
func MustNew(loc Localizer) *Renderer {
	r, err := New(loc)
	if err != nil {
		panic(err)
	}
	return r
}

// Has reports whether a page named name exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Page renders name inside the full layout.
func (r *Renderer) Page(name string, view View) templ.Component {
	return r.component(name, "layout", view)
}

// Fragment renders only the content block of name.
func (r *Renderer) Fragment(name string, view View) templ.Component {
	view.OOB = true
	return r.component(name, "fragment", view)
}

func (r *Renderer) component(name, entry string, view View) templ.Component {
	page, ok := r.pages[name]
	if !ok {
		return failed(fmt.Errorf("unknown page %q", name))
	}
	return templ.FromGoHTML(page.Lookup(entry), view)
}

func failed(err error) templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error {
		return err
	})
}

func funcs(loc Localizer) template.FuncMap {
	t := func(key string, args ...any) string {
		if loc == nil {
			return key
		}
		return loc.Sprintf(key, args...)
	}
	return template.FuncMap{
		"t": t,
		"icon": func(name string) template.HTML {
			id := icons.LucideSymbolID(icons.LucideNameOrDefault(icons.Name(name)))
			return template.HTML(`<svg class="icon" aria-hidden="true"><use href="#` + template.HTMLEscapeString(id) + `"></use></svg>`)
		},
		"sprite": func() template.HTML {
			return template.HTML(icons.LucideSprite())
		},
		"header": func(heading, subtitle, actionURL, actionLabel string) Header {
			return Header{Heading: heading, Subtitle: subtitle, ActionURL: actionURL, ActionLabel: actionLabel}
		},
		"empty": func(prefix, icon, ctaURL string) EmptyState {
			return EmptyState{
				Icon:   icon,
				Title:  prefix + ".empty.title",
				Body:   prefix + ".empty.body",
				CTA:    prefix + ".empty.cta",
				CTAURL: ctaURL,
			}
		},
		"navItem": func(view View, key, href, label string) NavItem {
			return NavItem{Href: href, Label: label, Icon: navIcons[key], Active: view.Active == key}
		},
		"deleteAction": func(url, title string) DeleteAction {
			return DeleteAction{URL: url, Title: title}
		},
		"stars": func(units []bool) int {
			n := 0
			for _, on := range units {
				if on {
					n++
				}
			}
			return n
		},
		"field": func(form *Form, name, inputType string, required bool) Field {
			field := Field{
				Name:     name,
				Label:    t("field." + name),
				Type:     inputType,
				Required: required,
			}
			if form != nil {
				field.Value = form.Values.Get(name)
				field.Error = form.Errors[name]
				field.Choices = form.Choices[name]
				switch strings.ToLower(field.Value) {
				case "on", "true", "1", "yes":
					field.Checked = true
				}
			}
			if hint := "field." + name + ".hint"; loc != nil && t(hint) != hint {
				field.Hint = t(hint)
			}
			return field
		},
	}
}
