package testimonials

import (
	"net/http"
	"net/url"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/content/collate"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/cards"
	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
	apperrors "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/formx"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/modulehandler"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/pagerender"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/templates"
)

const activeNav = "testimonials"

// ListView is the data of the testimonials page.
type ListView struct {
	Subtitle string
	Cards    []cards.TestimonialCard
}

type handlers struct {
	modulehandler.Base
	client Client
}

func newHandlers(client Client, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(deps), client: client}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ContentContext(r)
	defer cancel()

	items, err := h.client.ListTestimonials(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, pagerender.ModulePage{
		Name:   "testimonials",
		Title:  h.T("testimonials.title"),
		Active: activeNav,
		Data: ListView{
			Subtitle: h.T("testimonials.count", len(items)),
			Cards:    cards.Testimonials(h.Copy(), collate.SortTestimonials(items)),
		},
	})
}

func (h handlers) handleNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ContentContext(r)
	defer cancel()

	projects, err := projectChoices(ctx, h.client)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WriteCreateForm(w, r, content.KindTestimonial, activeNav, newForm(projects, nil, nil), http.StatusOK)
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	values, err := formx.Parse(w, r)
	if err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.bad_request.title", err.Error()))
		return
	}

	ctx, cancel := h.ContentContext(r)
	defer cancel()
	projects, err := projectChoices(ctx, h.client)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	form := formx.New(values, h.Copy())
	input := testimonialInput(form, projects)
	if !form.Valid() {
		h.WriteCreateForm(w, r, content.KindTestimonial, activeNav, newForm(projects, values, form.Errors), http.StatusBadRequest)
		return
	}

	obj, err := h.client.CreateObject(ctx, input)
	h.Record(ctx, content.OpCreate, content.KindTestimonial, obj.ID, input.Title, err)
	if err != nil {
		modulehandler.FailMutation(form)
		h.WriteCreateForm(w, r, content.KindTestimonial, activeNav, newForm(projects, values, form.Errors), modulehandler.MutationStatus(err))
		return
	}
	h.RedirectWithNotice(w, r, routepath.Testimonials, "activity.create", input.Title)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.Delete(w, r, h.client, content.KindTestimonial)
}

func newForm(projects []templates.Choice, values url.Values, errs map[string]string) *templates.Form {
	return &templates.Form{
		Action: routepath.TestimonialsNew,
		Cancel: routepath.Testimonials,
		Values: values,
		Errors: errs,
		Choices: map[string][]templates.Choice{
			"rating":  templates.OptionChoices(content.Ratings),
			"project": projects,
		},
	}
}
