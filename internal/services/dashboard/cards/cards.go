package cards

import (
	"html/template"
	"strings"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/content/collate"
	"github.com/louisbranch/portfolio-dashboard/internal/platform/assets/imagecdn"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/richtext"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/routepath"
)

// ProjectCard is one project tile.
type ProjectCard struct {
	ID           string
	Title        string
	DetailURL    string
	DeleteURL    string
	Featured     bool
	TypeLabel    string
	ImageURL     string
	Excerpt      string
	Technologies string
	Completed    string
	DemoURL      string
	GithubURL    string
}

// Project projects p into a card.
func Project(loc Localizer, p content.Project) ProjectCard {
	card := ProjectCard{
		ID:           p.ID,
		Title:        p.Title,
		DetailURL:    routepath.Project(p.Slug),
		DeleteURL:    routepath.Delete(content.KindProject, p.ID),
		Featured:     p.Metadata.Featured,
		TypeLabel:    p.Metadata.ProjectType.Label,
		ImageURL:     imagecdn.URLOrEmpty(p.Metadata.FeaturedImage.TemplateURL(), imagecdn.ProjectCard),
		Excerpt:      richtext.Excerpt(p.Metadata.Description, richtext.ExcerptLength),
		Technologies: strings.TrimSpace(p.Metadata.Technologies),
		DemoURL:      p.Metadata.DemoURL,
		GithubURL:    p.Metadata.GithubURL,
	}
	if completed := formatDate(p.Metadata.CompletionDate, MonthYearLayout); completed != "" {
		card.Completed = sprintf(loc, "projects.completed", completed)
	}
	return card
}

// Projects projects every project in order.
func Projects(loc Localizer, projects []content.Project) []ProjectCard {
	out := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		out = append(out, Project(loc, p))
	}
	return out
}

// ProjectDetail is the full project view.
type ProjectDetail struct {
	ProjectCard
	Name        string
	Description template.HTML
	HeroURL     string
	Gallery     []string
	EditURL     string
}

// Detail projects p into its detail view.
func Detail(loc Localizer, p content.Project) ProjectDetail {
	name := strings.TrimSpace(p.Metadata.ProjectName)
	if name == "" {
		name = p.Title
	}
	detail := ProjectDetail{
		ProjectCard: Project(loc, p),
		Name:        name,
		Description: richtext.Sanitize(p.Metadata.Description),
		HeroURL:     imagecdn.URLOrEmpty(p.Metadata.FeaturedImage.TemplateURL(), imagecdn.ProjectDetail),
		EditURL:     routepath.ProjectEdit(p.ID),
	}
	for _, image := range p.Metadata.Gallery {
		if url := imagecdn.URLOrEmpty(image.TemplateURL(), imagecdn.GalleryThumb); url != "" {
			detail.Gallery = append(detail.Gallery, url)
		}
	}
	return detail
}

// SkillCard is one skill tile.
type SkillCard struct {
	ID          string
	Name        string
	DeleteURL   string
	Proficiency string
	Tone        string
	Stars       []bool
	Years       string
	Description string
}

// Skill projects s into a card.
func Skill(loc Localizer, s content.Skill) SkillCard {
	return SkillCard{
		ID:          s.ID,
		Name:        s.DisplayName(),
		DeleteURL:   routepath.Delete(content.KindSkill, s.ID),
		Proficiency: s.Metadata.Proficiency.Label,
		Tone:        ProficiencyTone(s.Metadata.Proficiency.Key),
		Stars:       StarUnits(collate.SkillOrdinal(s)),
		Years:       YearsExperience(loc, s.Metadata.YearsExperience),
		Description: strings.TrimSpace(s.Metadata.Description),
	}
}

// SkillGroup is one category section of the skills page.
type SkillGroup struct {
	Name   string
	Count  string
	Skills []SkillCard
}

// SkillGroups projects grouped skills.
func SkillGroups(loc Localizer, groups []collate.Group[content.Skill]) []SkillGroup {
	out := make([]SkillGroup, 0, len(groups))
	for _, group := range groups {
		section := SkillGroup{
			Name:   group.Name,
			Count:  sprintf(loc, "skills.group.count", len(group.Items)),
			Skills: make([]SkillCard, 0, len(group.Items)),
		}
		for _, s := range group.Items {
			section.Skills = append(section.Skills, Skill(loc, s))
		}
		out = append(out, section)
	}
	return out
}

// ExperienceCard is one career history entry.
type ExperienceCard struct {
	ID             string
	JobTitle       string
	Company        string
	DeleteURL      string
	LogoURL        string
	EmploymentType string
	Current        bool
	DateRange      string
	Location       string
	Description    template.HTML
	Achievements   template.HTML
}

// Experience projects w into a card.
func Experience(w content.WorkExperience) ExperienceCard {
	jobTitle := strings.TrimSpace(w.Metadata.JobTitle)
	if jobTitle == "" {
		jobTitle = w.Title
	}
	dateRange, _ := FormatDateRange(w.Metadata.StartDate, w.Metadata.EndDate, w.Metadata.CurrentPosition)
	return ExperienceCard{
		ID:             w.ID,
		JobTitle:       jobTitle,
		Company:        strings.TrimSpace(w.Metadata.Company),
		DeleteURL:      routepath.Delete(content.KindWorkExperience, w.ID),
		LogoURL:        imagecdn.URLOrEmpty(w.Metadata.CompanyLogo.TemplateURL(), imagecdn.CompanyLogo),
		EmploymentType: w.Metadata.EmploymentType.Label,
		Current:        w.Metadata.CurrentPosition,
		DateRange:      dateRange,
		Location:       strings.TrimSpace(w.Metadata.Location),
		Description:    richtext.Sanitize(w.Metadata.Description),
		Achievements:   richtext.Sanitize(w.Metadata.Achievements),
	}
}

// ExperienceList projects every position in order.
func ExperienceList(items []content.WorkExperience) []ExperienceCard {
	out := make([]ExperienceCard, 0, len(items))
	for _, w := range items {
		out = append(out, Experience(w))
	}
	return out
}

// ProjectRef is the related project shown under a testimonial.
type ProjectRef struct {
	Title     string
	DetailURL string
	DemoURL   string
}

// TestimonialCard is one client quote.
type TestimonialCard struct {
	ID         string
	ClientName string
	Initial    string
	DeleteURL  string
	PhotoURL   string
	Byline     string
	Quote      string
	Rated      bool
	Stars      []bool
	Project    *ProjectRef
	Received   string
}

// Testimonial projects t into a card.
func Testimonial(loc Localizer, t content.Testimonial) TestimonialCard {
	name := strings.TrimSpace(t.Metadata.ClientName)
	if name == "" {
		name = t.Title
	}
	rating := collate.RatingOrdinal(t.Metadata.Rating.Key)
	card := TestimonialCard{
		ID:         t.ID,
		ClientName: name,
		Initial:    initial(name),
		DeleteURL:  routepath.Delete(content.KindTestimonial, t.ID),
		PhotoURL:   imagecdn.URLOrEmpty(t.Metadata.ClientPhoto.TemplateURL(), imagecdn.ClientPhoto),
		Byline:     ClientByline(loc, strings.TrimSpace(t.Metadata.ClientTitle), strings.TrimSpace(t.Metadata.Company)),
		Quote:      strings.TrimSpace(t.Metadata.TestimonialText),
		Rated:      rating > 0,
		Stars:      StarUnits(rating),
	}
	if project := t.Metadata.Project; project != nil && project.Title != "" {
		ref := &ProjectRef{Title: project.Title, DemoURL: project.Metadata.DemoURL}
		if project.Slug != "" {
			ref.DetailURL = routepath.Project(project.Slug)
		}
		card.Project = ref
	}
	if received := formatDate(t.Metadata.DateReceived, ReceivedLayout); received != "" {
		card.Received = sprintf(loc, "testimonials.received", received)
	}
	return card
}

// Testimonials projects every testimonial in order.
func Testimonials(loc Localizer, items []content.Testimonial) []TestimonialCard {
	out := make([]TestimonialCard, 0, len(items))
	for _, t := range items {
		out = append(out, Testimonial(loc, t))
	}
	return out
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}
