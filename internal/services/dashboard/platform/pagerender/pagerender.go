// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/flash"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/templates"
)

// Renderer turns a named page into components.
type Renderer interface {
	Page(name string, view templates.View) templ.Component
	Fragment(name string, view templates.View) templ.Component
}

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key string, args ...any) string
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Name       string
	Title      string
	Active     string
	StatusCode int
	Notice     *templates.Notice
	Data       any
}

// WriteModulePage renders page. HTMX requests receive only the content
// fragment; full-page requests get the layout and any pending flash notice.
func WriteModulePage(w http.ResponseWriter, r *http.Request, renderer Renderer, loc Localizer, page ModulePage) {
	if w == nil || renderer == nil {
		return
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	view := templates.View{
		Title:  page.Title,
		Active: page.Active,
		Notice: page.Notice,
		Data:   page.Data,
	}
	if view.Notice == nil {
		view.Notice = flashNotice(w, r, loc)
	}

	var component templ.Component
	if httpx.IsHTMXRequest(r) {
		component = renderer.Fragment(page.Name, view)
	} else {
		component = renderer.Page(page.Name, view)
	}
	templ.Handler(component,
		templ.WithStatus(statusCode),
		templ.WithErrorHandler(renderFailed(page.Name)),
	).ServeHTTP(w, r)
}

func flashNotice(w http.ResponseWriter, r *http.Request, loc Localizer) *templates.Notice {
	notice, ok := flash.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := notice.Key
	if loc != nil {
		if notice.Arg == "" {
			message = loc.Sprintf(notice.Key)
		} else {
			message = loc.Sprintf(notice.Key, notice.Arg)
		}
	}
	return &templates.Notice{Kind: string(notice.Kind), Message: message}
}

func renderFailed(name string) func(*http.Request, error) http.Handler {
	return func(r *http.Request, err error) http.Handler {
		log.Printf("render page failed page=%s path=%s err=%v", name, r.URL.Path, err)
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	}
}
