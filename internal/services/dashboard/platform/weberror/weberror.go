// Package weberror renders shared error pages for dashboard modules.
package weberror

import (
	stderrors "errors"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	apperrors "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/pagerender"
)

// PageName is the template used for every error response.
const PageName = "error"

// View is the data of the error page.
type View struct {
	Status   int
	Heading  string
	Body     string
	RetryURL string
}

var collectionKeys = map[content.Kind]string{
	content.KindProject:        "projects.title",
	content.KindSkill:          "skills.title",
	content.KindWorkExperience: "experience.title",
	content.KindTestimonial:    "testimonials.title",
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc pagerender.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// ErrorView builds the error page for err.
func ErrorView(r *http.Request, loc pagerender.Localizer, err error) View {
	status := apperrors.HTTPStatus(err)
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	view := View{Status: status}

	var fetch *content.FetchFailure
	switch {
	case stderrors.As(err, &fetch):
		view.Heading = sprintf(loc, "error.fetch.title", sprintf(loc, collectionKey(fetch.Kind)))
		view.Body = sprintf(loc, "error.fetch.body")
		if r != nil && r.Method == http.MethodGet {
			view.RetryURL = r.URL.RequestURI()
		}
	case status == http.StatusNotFound:
		view.Heading = sprintf(loc, "error.not_found.title")
		view.Body = sprintf(loc, "error.not_found.body")
	case status == http.StatusBadRequest:
		view.Heading = sprintf(loc, "error.bad_request.title")
		view.Body = PublicMessage(loc, err)
	default:
		view.Heading = sprintf(loc, "error.page.title")
		view.Body = sprintf(loc, "error.unavailable.body")
	}
	return view
}

// WriteModuleError logs err and renders the error page with its mapped status.
func WriteModuleError(w http.ResponseWriter, r *http.Request, renderer pagerender.Renderer, loc pagerender.Localizer, err error) {
	if w == nil {
		return
	}
	view := ErrorView(r, loc, err)
	method, path, requestID := "-", "-", "-"
	if r != nil {
		method, path = r.Method, r.URL.Path
		if rid := strings.TrimSpace(r.Header.Get(httpx.RequestIDHeader)); rid != "" {
			requestID = rid
		}
	}
	log.Printf("dashboard request failed method=%s path=%s status=%d request_id=%s err=%v", method, path, view.Status, requestID, err)

	pagerender.WriteModulePage(w, r, renderer, loc, pagerender.ModulePage{
		Name:       PageName,
		Title:      view.Heading,
		StatusCode: view.Status,
		Data:       view,
	})
}

// NotFound renders the not-found page.
func NotFound(w http.ResponseWriter, r *http.Request, renderer pagerender.Renderer, loc pagerender.Localizer) {
	WriteModuleError(w, r, renderer, loc, apperrors.EK(apperrors.KindNotFound, "error.not_found.title", "page not found"))
}

func collectionKey(kind content.Kind) string {
	if key, ok := collectionKeys[kind]; ok {
		return key
	}
	return string(kind)
}

func sprintf(loc pagerender.Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}
