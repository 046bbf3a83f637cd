package projects

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/cards"
	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
	apperrors "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/formx"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/modulehandler"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/pagerender"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/templates"
)

const activeNav = "projects"

// ListView is the data of the project list page.
type ListView struct {
	Subtitle     string
	Total        int
	Filtered     bool
	FeaturedOnly bool
	Types        []templates.Choice
	Type         string
	Cards        []cards.ProjectCard
}

// DetailView is the data of the project detail page.
type DetailView struct {
	Project cards.ProjectDetail
	Form    *templates.Form
}

type handlers struct {
	modulehandler.Base
	service service
	client  Client
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(deps), service: s, client: s.content}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ContentContext(r)
	defer cancel()

	filter := ParseFilter(r.URL.Query())
	all, shown, err := h.service.list(ctx, filter)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, pagerender.ModulePage{
		Name:   "projects",
		Title:  h.T("projects.title"),
		Active: activeNav,
		Data: ListView{
			Subtitle:     h.T("projects.count", len(all)),
			Total:        len(all),
			Filtered:     filter.Active(),
			FeaturedOnly: filter.FeaturedOnly,
			Types:        templates.OptionChoices(content.ProjectTypes),
			Type:         filter.Type,
			Cards:        cards.Projects(h.Copy(), shown),
		},
	})
}

func (h handlers) handleNew(w http.ResponseWriter, r *http.Request) {
	h.WriteCreateForm(w, r, content.KindProject, activeNav, newForm(routepath.ProjectsNew, routepath.Projects, nil, nil), http.StatusOK)
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	values, err := formx.Parse(w, r)
	if err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.bad_request.title", err.Error()))
		return
	}
	form := formx.New(values, h.Copy())
	input := projectInput(form)
	if !form.Valid() {
		h.WriteCreateForm(w, r, content.KindProject, activeNav, newForm(routepath.ProjectsNew, routepath.Projects, values, form.Errors), http.StatusBadRequest)
		return
	}

	ctx, cancel := h.ContentContext(r)
	defer cancel()
	obj, err := h.client.CreateObject(ctx, input)
	h.Record(ctx, content.OpCreate, content.KindProject, obj.ID, input.Title, err)
	if err != nil {
		modulehandler.FailMutation(form)
		h.WriteCreateForm(w, r, content.KindProject, activeNav, newForm(routepath.ProjectsNew, routepath.Projects, values, form.Errors), modulehandler.MutationStatus(err))
		return
	}
	h.RedirectWithNotice(w, r, detailOrList(obj.Slug), "activity.create", input.Title)
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ContentContext(r)
	defer cancel()

	project, err := h.service.bySlug(ctx, strings.TrimSpace(r.PathValue("slug")))
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}
	h.writeDetail(w, r, project, editForm(project, projectValues(project), nil), http.StatusOK)
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	values, err := formx.Parse(w, r)
	if err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.bad_request.title", err.Error()))
		return
	}

	ctx, cancel := h.ContentContext(r)
	defer cancel()
	form := formx.New(values, h.Copy())
	input := projectInput(form)
	if !form.Valid() {
		h.redisplayEdit(w, r, id, values, form.Errors, http.StatusBadRequest)
		return
	}

	obj, err := h.client.UpdateObject(ctx, id, input)
	h.Record(ctx, content.OpUpdate, content.KindProject, id, input.Title, err)
	if err != nil {
		modulehandler.FailMutation(form)
		h.redisplayEdit(w, r, id, values, form.Errors, modulehandler.MutationStatus(err))
		return
	}
	slug := obj.Slug
	if slug == "" {
		slug = input.Slug
	}
	h.RedirectWithNotice(w, r, detailOrList(slug), "activity.update", input.Title)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.Delete(w, r, h.client, content.KindProject)
}

// redisplayEdit renders the detail page of id around the rejected form.
func (h handlers) redisplayEdit(w http.ResponseWriter, r *http.Request, id string, values url.Values, errs map[string]string, status int) {
	ctx, cancel := h.ContentContext(r)
	defer cancel()

	project, err := h.service.byID(ctx, id)
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}
	h.writeDetail(w, r, project, editForm(project, values, errs), status)
}

func (h handlers) writeDetail(w http.ResponseWriter, r *http.Request, project content.Project, form *templates.Form, status int) {
	detail := cards.Detail(h.Copy(), project)
	h.WritePage(w, r, pagerender.ModulePage{
		Name:       "project",
		Title:      detail.Name,
		Active:     activeNav,
		StatusCode: status,
		Data:       DetailView{Project: detail, Form: form},
	})
}

func (h handlers) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, content.ErrNotFound) {
		h.WriteNotFound(w, r)
		return
	}
	h.WriteError(w, r, err)
}

func newForm(action, cancel string, values url.Values, errs map[string]string) *templates.Form {
	return &templates.Form{
		Action:  action,
		Cancel:  cancel,
		Values:  values,
		Errors:  errs,
		Choices: map[string][]templates.Choice{"project_type": templates.OptionChoices(content.ProjectTypes)},
	}
}

func editForm(project content.Project, values url.Values, errs map[string]string) *templates.Form {
	return newForm(routepath.ProjectEdit(project.ID), routepath.Project(project.Slug), values, errs)
}

func detailOrList(slug string) string {
	if strings.TrimSpace(slug) == "" {
		return routepath.Projects
	}
	return routepath.Project(slug)
}
