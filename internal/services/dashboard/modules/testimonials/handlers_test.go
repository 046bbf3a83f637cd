package testimonials

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module/moduletest"
)

func serve(t *testing.T, client *moduletest.Content, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New().Mount(moduletest.Dependencies(client, &moduletest.Journal{}))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestIndexZeroTestimonialsRendersEmptyState(t *testing.T) {
	t.Parallel()

	rr := serve(t, &moduletest.Content{}, httptest.NewRequest(http.MethodGet, "/testimonials", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"No testimonials yet", `href="/testimonials/new"`, "0 client testimonials"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestIndexFetchFailureRendersFailurePage(t *testing.T) {
	t.Parallel()

	client := &moduletest.Content{ListErr: map[content.Kind]error{content.KindTestimonial: errors.New("reset by peer")}}
	rr := serve(t, client, httptest.NewRequest(http.MethodGet, "/testimonials", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadGateway)
	}
	body := rr.Body.String()
	if strings.Contains(body, "No testimonials yet") {
		t.Fatalf("failure rendered as empty state")
	}
	if !strings.Contains(body, "Try again") || !strings.Contains(body, "Could not load Testimonials") {
		t.Fatalf("failure page missing retry link")
	}
}

func TestIndexRendersCardsNewestFirst(t *testing.T) {
	t.Parallel()

	atlas := &content.Project{Object: content.Object{ID: "p1", Slug: "atlas", Title: "Atlas"}, Metadata: content.ProjectMetadata{DemoURL: "https://atlas.example"}}
	client := &moduletest.Content{Testimonials: []content.Testimonial{
		{Object: content.Object{ID: "t1"}, Metadata: content.TestimonialMetadata{ClientName: "Ada", TestimonialText: "Older", DateReceived: content.NewDate(2022, time.January, 5)}},
		{Object: content.Object{ID: "t2"}, Metadata: content.TestimonialMetadata{
			ClientName:      "Grace",
			ClientTitle:     "CTO",
			Company:         "Navy",
			TestimonialText: "Newer",
			Rating:          content.Option{Key: "4", Label: "4 Stars"},
			Project:         atlas,
			DateReceived:    content.NewDate(2023, time.July, 9),
		}},
	}}
	rr := serve(t, client, httptest.NewRequest(http.MethodGet, "/testimonials", nil))
	body := rr.Body.String()
	newer, older := strings.Index(body, "Newer"), strings.Index(body, "Older")
	if newer < 0 || older < 0 || newer > older {
		t.Fatalf("cards out of order")
	}
	for _, want := range []string{"2 client testimonials", "CTO at Navy", "Received Jul 09, 2023", "https://atlas.example"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestNewOffersProjectsAsChoices(t *testing.T) {
	t.Parallel()

	client := &moduletest.Content{Projects: []content.Project{{Object: content.Object{ID: "p1", Title: "Atlas"}}}}
	rr := serve(t, client, httptest.NewRequest(http.MethodGet, "/testimonials/new", nil))
	if !strings.Contains(rr.Body.String(), `<option value="p1">Atlas</option>`) {
		t.Fatalf("project choice missing: %s", rr.Body.String())
	}
}

func TestCreateLinksProjectByID(t *testing.T) {
	t.Parallel()

	client := &moduletest.Content{Projects: []content.Project{{Object: content.Object{ID: "p1", Title: "Atlas"}}}}
	rr := serve(t, client, postForm("/testimonials/new", url.Values{
		"title":            {"Grace on Atlas"},
		"client_name":      {"Grace"},
		"testimonial_text": {"Great work"},
		"rating":           {"5"},
		"project":          {"p1"},
	}))
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/testimonials" {
		t.Fatalf("response = %d %q", rr.Code, rr.Header().Get("Location"))
	}
	if got := client.Creates[0].Metadata["project"]; got != "p1" {
		t.Fatalf("project = %v, want p1", got)
	}
}

func TestCreateRejectsUnknownProject(t *testing.T) {
	t.Parallel()

	client := &moduletest.Content{}
	rr := serve(t, client, postForm("/testimonials/new", url.Values{
		"title":            {"x"},
		"client_name":      {"Grace"},
		"testimonial_text": {"Great work"},
		"project":          {"ghost"},
	}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rr.Body.String(), "Related project has an unknown value.") {
		t.Fatalf("project error missing")
	}
	if len(client.Creates) != 0 {
		t.Fatalf("invalid form reached the backend")
	}
}
