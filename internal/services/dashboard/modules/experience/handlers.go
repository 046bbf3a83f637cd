package experience

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

const activeNav = "experience"

// ListView is the data of the experience page.
type ListView struct {
	Subtitle string
	Cards    []cards.ExperienceCard
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

	items, err := h.client.ListWorkExperience(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, pagerender.ModulePage{
		Name:   "experience",
		Title:  h.T("experience.title"),
		Active: activeNav,
		Data: ListView{
			Subtitle: h.T("experience.count", len(items)),
			Cards:    cards.ExperienceList(collate.SortWorkExperience(items)),
		},
	})
}

func (h handlers) handleNew(w http.ResponseWriter, r *http.Request) {
	h.WriteCreateForm(w, r, content.KindWorkExperience, activeNav, newForm(nil, nil), http.StatusOK)
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	values, err := formx.Parse(w, r)
	if err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.bad_request.title", err.Error()))
		return
	}
	form := formx.New(values, h.Copy())
	input := experienceInput(form)
	if !form.Valid() {
		h.WriteCreateForm(w, r, content.KindWorkExperience, activeNav, newForm(values, form.Errors), http.StatusBadRequest)
		return
	}

	ctx, cancel := h.ContentContext(r)
	defer cancel()
	obj, err := h.client.CreateObject(ctx, input)
	h.Record(ctx, content.OpCreate, content.KindWorkExperience, obj.ID, input.Title, err)
	if err != nil {
		modulehandler.FailMutation(form)
		h.WriteCreateForm(w, r, content.KindWorkExperience, activeNav, newForm(values, form.Errors), modulehandler.MutationStatus(err))
		return
	}
	h.RedirectWithNotice(w, r, routepath.Experience, "activity.create", input.Title)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.Delete(w, r, h.client, content.KindWorkExperience)
}

func newForm(values url.Values, errs map[string]string) *templates.Form {
	return &templates.Form{
		Action:  routepath.ExperienceNew,
		Cancel:  routepath.Experience,
		Values:  values,
		Errors:  errs,
		Choices: map[string][]templates.Choice{"employment_type": templates.OptionChoices(content.EmploymentTypes)},
	}
}
