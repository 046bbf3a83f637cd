// Package modulehandler provides the shared base of dashboard module handlers.
//
// Modules embed Base for page rendering, error pages, bounded content calls
// and activity journaling instead of repeating that scaffold.
package modulehandler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/platform/timeouts"
	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
	apperrors "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/flash"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/formx"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/pagerender"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/weberror"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/storage"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/templates"
)

// Base carries the shared request-scoped services of module handlers.
type Base struct {
	renderer pagerender.Renderer
	copy     pagerender.Localizer
	activity storage.ActivityStore
	logger   *log.Logger
	timeout  time.Duration
	now      func() time.Time
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	b := Base{
		renderer: deps.Renderer,
		copy:     deps.Copy,
		activity: deps.Activity,
		logger:   deps.Logger,
		timeout:  deps.ContentTimeout,
		now:      deps.Now,
	}
	if b.logger == nil {
		b.logger = log.Default()
	}
	if b.timeout <= 0 {
		b.timeout = timeouts.ContentRequest
	}
	if b.now == nil {
		b.now = time.Now
	}
	return b
}

// Validate reports missing dependencies a module cannot mount without.
func Validate(deps module.Dependencies) error {
	switch {
	case deps.Content == nil:
		return errors.New("content client is required")
	case deps.Renderer == nil:
		return errors.New("renderer is required")
	default:
		return nil
	}
}

// T formats a catalog message.
func (b Base) T(key string, args ...any) string {
	if b.copy == nil {
		return key
	}
	return b.copy.Sprintf(key, args...)
}

// Copy returns the catalog the base formats through.
func (b Base) Copy() pagerender.Localizer {
	return b.copy
}

// Now returns the current time.
func (b Base) Now() time.Time {
	return b.now()
}

// ContentContext bounds content backend calls made for r.
func (b Base) ContentContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(httpx.RequestContext(r), b.timeout)
}

// WritePage renders a module page.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.ModulePage) {
	pagerender.WriteModulePage(w, r, b.renderer, b.copy, page)
}

// WriteError renders the error page mapped from err.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, b.renderer, b.copy, err)
}

// WriteNotFound renders the not-found page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.NotFound(w, r, b.renderer, b.copy)
}

// RedirectWithNotice stores a success notice and redirects to location.
func (b Base) RedirectWithNotice(w http.ResponseWriter, r *http.Request, location, key, arg string) {
	flash.Write(w, r, flash.Success(key, arg))
	httpx.WriteRedirect(w, r, location)
}

// Record journals a mutation attempt. Journal failures are logged and never
// surface to the request.
func (b Base) Record(ctx context.Context, op content.Operation, kind content.Kind, id, title string, err error) {
	if b.activity == nil {
		return
	}
	activity := storage.Activity{
		Op:       op,
		Kind:     kind,
		ObjectID: id,
		Title:    title,
		At:       b.now(),
	}
	if err != nil {
		activity.Failed = true
		activity.Detail = err.Error()
	}
	if recordErr := b.activity.RecordActivity(context.WithoutCancel(ctx), activity); recordErr != nil {
		b.logger.Printf("activity journal write failed op=%s kind=%s id=%s err=%v", op, kind, id, recordErr)
	}
}

// Recent lists the journal, returning nil when the journal is unavailable.
func (b Base) Recent(ctx context.Context, limit int) []storage.Activity {
	if b.activity == nil {
		return nil
	}
	items, err := b.activity.RecentActivity(ctx, limit)
	if err != nil {
		b.logger.Printf("activity journal read failed err=%v", err)
		return nil
	}
	return items
}

// FormPageName is the shared creation form page.
const FormPageName = "form"

// FormView is the data of the creation form page.
type FormView struct {
	Heading string
	Kind    string
	Form    *templates.Form
}

// WriteCreateForm renders the creation form of kind.
func (b Base) WriteCreateForm(w http.ResponseWriter, r *http.Request, kind content.Kind, active string, form *templates.Form, status int) {
	heading := b.T("form.create." + string(kind))
	b.WritePage(w, r, pagerender.ModulePage{
		Name:       FormPageName,
		Title:      heading,
		Active:     active,
		StatusCode: status,
		Data:       FormView{Heading: heading, Kind: string(kind), Form: form},
	})
}

// MutationStatus maps a failed mutation to the status of the redisplayed form.
func MutationStatus(err error) int {
	if status := apperrors.HTTPStatus(err); status >= http.StatusBadRequest {
		return status
	}
	return http.StatusBadGateway
}

// FailMutation marks form as rejected by the content backend.
func FailMutation(form *formx.Form) {
	form.Fail(templates.FormErrorKey, "error.mutation")
}

// Deleter removes content objects.
type Deleter interface {
	DeleteObject(ctx context.Context, id string) error
}

// Delete removes the object named by the {id} path value and redirects to the
// list of kind with a notice for the outcome.
func (b Base) Delete(w http.ResponseWriter, r *http.Request, deleter Deleter, kind content.Kind) {
	id := strings.TrimSpace(r.PathValue("id"))
	values, err := formx.Parse(w, r)
	if err != nil {
		b.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.bad_request.title", err.Error()))
		return
	}
	title := strings.TrimSpace(values.Get("title"))
	if title == "" {
		title = id
	}

	ctx, cancel := b.ContentContext(r)
	defer cancel()
	err = deleter.DeleteObject(ctx, id)
	b.Record(ctx, content.OpDelete, kind, id, title, err)
	if err != nil {
		flash.Write(w, r, flash.Failure("error.mutation"))
		httpx.WriteRedirect(w, r, routepath.List(kind))
		return
	}
	b.RedirectWithNotice(w, r, routepath.List(kind), "activity.delete", title)
}
