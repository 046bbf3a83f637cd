package home

import (
	"net/http"

	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/modulehandler"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/pagerender"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/storage"
)

const (
	activityTimeLayout = "Jan 02, 2006 15:04"
	activeNav          = "dashboard"
)

// ActivityItem is one rendered journal line.
type ActivityItem struct {
	Message string
	Failed  bool
	At      string
	When    string
}

// View is the data of the overview page.
type View struct {
	Summary
	Activity []ActivityItem
}

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(deps), service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ContentContext(r)
	defer cancel()

	summary, err := h.service.summarize(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, pagerender.ModulePage{
		Name:   "home",
		Title:  h.T("nav.dashboard"),
		Active: activeNav,
		Data: View{
			Summary:  summary,
			Activity: h.activityItems(h.Recent(ctx, storage.DefaultRecentLimit)),
		},
	})
}

func (h handlers) activityItems(entries []storage.Activity) []ActivityItem {
	items := make([]ActivityItem, 0, len(entries))
	for _, entry := range entries {
		title := entry.Title
		if title == "" {
			title = entry.ObjectID
		}
		items = append(items, ActivityItem{
			Message: h.T("activity."+string(entry.Op), title),
			Failed:  entry.Failed,
			At:      entry.At.UTC().Format("2006-01-02T15:04:05Z07:00"),
			When:    entry.At.Format(activityTimeLayout),
		})
	}
	return items
}
