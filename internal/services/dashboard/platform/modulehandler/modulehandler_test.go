package modulehandler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/platform/timeouts"
	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module/moduletest"
	apperrors "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/flash"
)

func TestNewBaseDefaults(t *testing.T) {
	t.Parallel()

	b := NewBase(module.Dependencies{})
	if b.logger == nil {
		t.Fatalf("logger = nil, want default logger")
	}
	if b.timeout != timeouts.ContentRequest {
		t.Fatalf("timeout = %v, want %v", b.timeout, timeouts.ContentRequest)
	}
	if b.Now().IsZero() {
		t.Fatalf("Now() returned zero time")
	}
	if got := b.T("nav.projects"); got != "nav.projects" {
		t.Fatalf("T() without catalog = %q, want key", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := Validate(module.Dependencies{}); err == nil {
		t.Fatalf("expected missing content client error")
	}
	deps := moduletest.Dependencies(&moduletest.Content{}, nil)
	if err := Validate(deps); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	deps.Renderer = nil
	if err := Validate(deps); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}

func TestContentContextHasDeadline(t *testing.T) {
	t.Parallel()

	b := NewBase(module.Dependencies{ContentTimeout: time.Minute})
	ctx, cancel := b.ContentContext(httptest.NewRequest(http.MethodGet, "/", nil))
	defer cancel()
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("content context has no deadline")
	}
	if remaining := time.Until(deadline); remaining > time.Minute {
		t.Fatalf("deadline in %v, want at most 1m", remaining)
	}
}

func TestRecordJournalsOutcome(t *testing.T) {
	t.Parallel()

	journal := &moduletest.Journal{}
	b := NewBase(moduletest.Dependencies(&moduletest.Content{}, journal))

	b.Record(context.Background(), content.OpCreate, content.KindProject, "p1", "Atlas", nil)
	b.Record(context.Background(), content.OpDelete, content.KindSkill, "s1", "Go", errors.New("boom"))

	if len(journal.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(journal.Entries))
	}
	first := journal.Entries[0]
	if first.Failed || first.Title != "Atlas" || !first.At.Equal(moduletest.Now) {
		t.Fatalf("first entry = %+v", first)
	}
	second := journal.Entries[1]
	if !second.Failed || second.Detail != "boom" {
		t.Fatalf("second entry = %+v, want failed with detail", second)
	}
}

func TestRecentToleratesJournalFailure(t *testing.T) {
	t.Parallel()

	b := NewBase(moduletest.Dependencies(&moduletest.Content{}, &moduletest.Journal{Err: errors.New("disk full")}))
	if got := b.Recent(context.Background(), 5); got != nil {
		t.Fatalf("Recent() = %v, want nil", got)
	}
	b.Record(context.Background(), content.OpCreate, content.KindProject, "p1", "Atlas", nil)

	none := NewBase(moduletest.Dependencies(&moduletest.Content{}, nil))
	if got := none.Recent(context.Background(), 5); got != nil {
		t.Fatalf("Recent() without journal = %v, want nil", got)
	}
}

func TestMutationStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "backend failure", err: &content.MutationFailure{Op: content.OpCreate, Kind: content.KindSkill, Err: errors.New("upstream")}, want: http.StatusBadGateway},
		{name: "missing title", err: &content.MutationFailure{Op: content.OpCreate, Kind: content.KindSkill, Err: content.ErrTitleRequired}, want: http.StatusBadRequest},
		{name: "invalid input", err: apperrors.EK(apperrors.KindInvalidInput, "error.bad_request.title", "bad"), want: http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := MutationStatus(tc.err); got != tc.want {
				t.Fatalf("MutationStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func deleteRequest(id, title string) *http.Request {
	form := url.Values{"title": {title}}
	req := httptest.NewRequest(http.MethodPost, "/skills/"+id+"/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", id)
	return req
}

func readNotice(t *testing.T, rec *httptest.ResponseRecorder) flash.Notice {
	t.Helper()
	next := httptest.NewRequest(http.MethodGet, "/skills", nil)
	for _, cookie := range rec.Result().Cookies() {
		next.AddCookie(cookie)
	}
	notice, ok := flash.ReadAndClear(httptest.NewRecorder(), next)
	if !ok {
		t.Fatalf("no flash notice after delete")
	}
	return notice
}

func TestDeleteRedirectsWithNotice(t *testing.T) {
	t.Parallel()

	client := &moduletest.Content{}
	journal := &moduletest.Journal{}
	b := NewBase(moduletest.Dependencies(client, journal))

	rec := httptest.NewRecorder()
	b.Delete(rec, deleteRequest("s1", "Go"), client, content.KindSkill)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/skills" {
		t.Fatalf("Location = %q, want %q", got, "/skills")
	}
	if len(client.Deletes) != 1 || client.Deletes[0] != "s1" {
		t.Fatalf("deletes = %v, want [s1]", client.Deletes)
	}
	notice := readNotice(t, rec)
	if notice.Kind != flash.KindSuccess || notice.Key != "activity.delete" || notice.Arg != "Go" {
		t.Fatalf("notice = %+v", notice)
	}
	if len(journal.Entries) != 1 || journal.Entries[0].Op != content.OpDelete {
		t.Fatalf("journal = %+v", journal.Entries)
	}
}

func TestDeleteFailureRedirectsWithError(t *testing.T) {
	t.Parallel()

	client := &moduletest.Content{MutateErr: errors.New("cosmic down")}
	journal := &moduletest.Journal{}
	b := NewBase(moduletest.Dependencies(client, journal))

	rec := httptest.NewRecorder()
	b.Delete(rec, deleteRequest("s1", ""), client, content.KindSkill)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	notice := readNotice(t, rec)
	if notice.Kind != flash.KindError || notice.Key != "error.mutation" {
		t.Fatalf("notice = %+v", notice)
	}
	if len(journal.Entries) != 1 || !journal.Entries[0].Failed || journal.Entries[0].Title != "s1" {
		t.Fatalf("journal = %+v, want failed entry titled by id", journal.Entries)
	}
}
