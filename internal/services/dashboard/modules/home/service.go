package home

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
)

// lister is the read side of the content client the overview needs.
type lister interface {
	ListProjects(ctx context.Context) ([]content.Project, error)
	ListSkills(ctx context.Context) ([]content.Skill, error)
	ListWorkExperience(ctx context.Context) ([]content.WorkExperience, error)
	ListTestimonials(ctx context.Context) ([]content.Testimonial, error)
}

// Summary holds the overview counters.
type Summary struct {
	TotalProjects     int
	FeaturedProjects  int
	TotalSkills       int
	TotalExperience   int
	TotalTestimonials int
}

type service struct {
	content lister
}

func newService(content lister) service {
	return service{content: content}
}

// summarize fetches the four collections concurrently. The first failure
// cancels the remaining fetches and fails the whole summary.
func (s service) summarize(ctx context.Context) (Summary, error) {
	var (
		projects     []content.Project
		skills       []content.Skill
		experience   []content.WorkExperience
		testimonials []content.Testimonial
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = s.content.ListProjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		skills, err = s.content.ListSkills(gctx)
		return err
	})
	g.Go(func() (err error) {
		experience, err = s.content.ListWorkExperience(gctx)
		return err
	})
	g.Go(func() (err error) {
		testimonials, err = s.content.ListTestimonials(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		TotalProjects:     len(projects),
		TotalSkills:       len(skills),
		TotalExperience:   len(experience),
		TotalTestimonials: len(testimonials),
	}
	for _, p := range projects {
		if p.Metadata.Featured {
			summary.FeaturedProjects++
		}
	}
	return summary, nil
}
