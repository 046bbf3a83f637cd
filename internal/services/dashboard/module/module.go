// Package module defines the feature contract used by dashboard composition.
package module

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/pagerender"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/storage"
)

// ContentClient is the slice of content.Client the modules call.
type ContentClient interface {
	ListProjects(ctx context.Context) ([]content.Project, error)
	ListSkills(ctx context.Context) ([]content.Skill, error)
	ListWorkExperience(ctx context.Context) ([]content.WorkExperience, error)
	ListTestimonials(ctx context.Context) ([]content.Testimonial, error)
	CreateObject(ctx context.Context, input content.ObjectInput) (content.Object, error)
	UpdateObject(ctx context.Context, id string, input content.ObjectInput) (content.Object, error)
	DeleteObject(ctx context.Context, id string) error
}

// Dependencies carries the shared services every module may use.
type Dependencies struct {
	Content  ContentClient
	Activity storage.ActivityStore
	Renderer pagerender.Renderer
	Copy     pagerender.Localizer
	Logger   *log.Logger
	// ContentTimeout bounds each request's content backend calls.
	ContentTimeout time.Duration
	Now            func() time.Time
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by dashboard composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
