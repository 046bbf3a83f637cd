package home

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module/moduletest"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/storage"
)

func serve(t *testing.T, client *moduletest.Content, journal *moduletest.Journal, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New().Mount(moduletest.Dependencies(client, journal))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func portfolio() *moduletest.Content {
	return &moduletest.Content{
		Projects: []content.Project{
			{Object: content.Object{ID: "p1", Title: "Atlas"}, Metadata: content.ProjectMetadata{Featured: true}},
			{Object: content.Object{ID: "p2", Title: "Zen"}},
			{Object: content.Object{ID: "p3", Title: "Orbit"}, Metadata: content.ProjectMetadata{Featured: true}},
		},
		Skills: []content.Skill{
			{Object: content.Object{ID: "s1", Title: "Go"}},
			{Object: content.Object{ID: "s2", Title: "SQL"}},
		},
		Experience: []content.WorkExperience{
			{Object: content.Object{ID: "w1", Title: "Acme"}},
		},
	}
}

func TestSummarizeCountsEveryCollection(t *testing.T) {
	t.Parallel()

	summary, err := newService(portfolio()).summarize(t.Context())
	if err != nil {
		t.Fatalf("summarize() error = %v", err)
	}
	want := Summary{TotalProjects: 3, FeaturedProjects: 2, TotalSkills: 2, TotalExperience: 1, TotalTestimonials: 0}
	if summary != want {
		t.Fatalf("summary = %+v, want %+v", summary, want)
	}
}

func TestSummarizeFailsAsAWhole(t *testing.T) {
	t.Parallel()

	client := portfolio()
	client.ListErr = map[content.Kind]error{content.KindSkill: errors.New("timeout")}
	_, err := newService(client).summarize(t.Context())
	var fetch *content.FetchFailure
	if !errors.As(err, &fetch) || fetch.Kind != content.KindSkill {
		t.Fatalf("summarize() error = %v, want skills FetchFailure", err)
	}
}

// rendezvousLister holds every list call until all four have started, so it
// only succeeds when the calls overlap.
type rendezvousLister struct {
	arrived sync.WaitGroup
	all     chan struct{}
	wait    time.Duration

	// fail makes ListProjects return at once with this error.
	fail error

	// cancelled counts calls that returned because their context ended.
	cancelled atomic.Int32
}

func newRendezvousLister(fail error) *rendezvousLister {
	l := &rendezvousLister{all: make(chan struct{}), wait: 2 * time.Second, fail: fail}
	l.arrived.Add(4)
	go func() {
		l.arrived.Wait()
		close(l.all)
	}()
	return l
}

func (l *rendezvousLister) meet(ctx context.Context) error {
	l.arrived.Done()
	if l.fail != nil {
		select {
		case <-ctx.Done():
			l.cancelled.Add(1)
			return ctx.Err()
		case <-time.After(l.wait):
			return errors.New("context was not cancelled")
		}
	}
	select {
	case <-l.all:
		return nil
	case <-time.After(l.wait):
		return errors.New("list calls ran one after another")
	}
}

func (l *rendezvousLister) ListProjects(ctx context.Context) ([]content.Project, error) {
	if l.fail != nil {
		l.arrived.Done()
		return nil, l.fail
	}
	return []content.Project{{Metadata: content.ProjectMetadata{Featured: true}}}, l.meet(ctx)
}

func (l *rendezvousLister) ListSkills(ctx context.Context) ([]content.Skill, error) {
	return []content.Skill{{}, {}}, l.meet(ctx)
}

func (l *rendezvousLister) ListWorkExperience(ctx context.Context) ([]content.WorkExperience, error) {
	return []content.WorkExperience{{}}, l.meet(ctx)
}

func (l *rendezvousLister) ListTestimonials(ctx context.Context) ([]content.Testimonial, error) {
	return nil, l.meet(ctx)
}

func TestSummarizeFetchesConcurrently(t *testing.T) {
	t.Parallel()

	summary, err := newService(newRendezvousLister(nil)).summarize(context.Background())
	if err != nil {
		t.Fatalf("summarize() error = %v", err)
	}
	want := Summary{TotalProjects: 1, FeaturedProjects: 1, TotalSkills: 2, TotalExperience: 1}
	if summary != want {
		t.Fatalf("summarize() = %+v, want %+v", summary, want)
	}
}

func TestSummarizeFailureCancelsPendingFetches(t *testing.T) {
	t.Parallel()

	boom := errors.New("cosmic unavailable")
	lister := newRendezvousLister(boom)
	_, err := newService(lister).summarize(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("summarize() error = %v, want %v", err, boom)
	}
	if got := lister.cancelled.Load(); got != 3 {
		t.Fatalf("cancelled fetches = %d, want 3", got)
	}
}

func TestIndexRendersCounters(t *testing.T) {
	t.Parallel()

	rr := serve(t, portfolio(), nil, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`<span class="stat-value">3</span>`,
		`<span class="stat-value">2</span>`,
		`<span class="stat-value">1</span>`,
		`<span class="stat-value">0</span>`,
		"2 Featured Projects",
		"No changes recorded yet.",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestIndexFetchFailureRendersBadGateway(t *testing.T) {
	t.Parallel()

	client := portfolio()
	client.ListErr = map[content.Kind]error{content.KindTestimonial: errors.New("unreachable")}
	rr := serve(t, client, nil, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadGateway)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Could not load Testimonials") {
		t.Fatalf("body does not name the failed collection: %s", body)
	}
	if strings.Contains(body, "stat-value") {
		t.Fatalf("failure page must not render counters")
	}
}

func TestIndexShowsRecentActivity(t *testing.T) {
	t.Parallel()

	journal := &moduletest.Journal{Entries: []storage.Activity{
		{Op: content.OpCreate, Kind: content.KindSkill, ObjectID: "s1", Title: "Go", At: time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)},
		{Op: content.OpDelete, Kind: content.KindProject, ObjectID: "p9", Title: "Legacy", Failed: true, At: time.Date(2024, time.June, 2, 9, 30, 0, 0, time.UTC)},
	}}
	rr := serve(t, portfolio(), journal, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rr.Body.String()
	legacy := strings.Index(body, "Deleted Legacy")
	golang := strings.Index(body, "Created Go")
	if legacy < 0 || golang < 0 || legacy > golang {
		t.Fatalf("activity not rendered newest first: %s", body)
	}
	if !strings.Contains(body, "Jun 02, 2024 09:30") {
		t.Fatalf("body missing activity time")
	}
}

func TestIndexToleratesJournalFailure(t *testing.T) {
	t.Parallel()

	journal := &moduletest.Journal{Err: errors.New("disk full")}
	rr := serve(t, portfolio(), journal, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, portfolio(), nil, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestIndexHTMXRequestRendersFragment(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rr := serve(t, portfolio(), nil, req)
	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatalf("htmx response rendered the full layout")
	}
	if !strings.Contains(body, "hx-swap-oob") {
		t.Fatalf("htmx response missing out-of-band nav")
	}
}
