package skills

import (
	"context"
	"net/url"
	"strings"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/content/collate"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/platform/formx"
)

// Client is the content client surface the skills module calls.
type Client interface {
	ListSkills(ctx context.Context) ([]content.Skill, error)
	CreateObject(ctx context.Context, input content.ObjectInput) (content.Object, error)
	DeleteObject(ctx context.Context, id string) error
}

// Listing is the grouped skill collection.
type Listing struct {
	Total      int
	Categories int
	Groups     []collate.Group[content.Skill]
}

// parseProficiency reads the proficiency filter, ignoring unknown levels.
func parseProficiency(query url.Values) string {
	key := strings.TrimSpace(query.Get("proficiency"))
	if _, ok := content.LookupOption(content.Proficiencies, key); !ok {
		return ""
	}
	return key
}

// listGrouped groups skills by category. Counts cover the whole collection;
// groups only hold skills at proficiency when it is set.
func listGrouped(ctx context.Context, client Client, proficiency string) (Listing, error) {
	skills, err := client.ListSkills(ctx)
	if err != nil {
		return Listing{}, err
	}
	shown := skills
	if proficiency != "" {
		shown = make([]content.Skill, 0, len(skills))
		for _, s := range skills {
			if s.Metadata.Proficiency.Key == proficiency {
				shown = append(shown, s)
			}
		}
	}
	return Listing{
		Total:      len(skills),
		Categories: collate.CountCategories(skills, collate.SkillCategory),
		Groups:     collate.GroupSkills(shown),
	}, nil
}

// skillInput validates a posted skill form.
func skillInput(form *formx.Form) content.ObjectInput {
	title := form.Required("title")
	metadata := map[string]any{
		"skill_name":  form.Get("skill_name"),
		"category":    form.Option("category", content.SkillCategories),
		"proficiency": form.Option("proficiency", content.Proficiencies),
		"description": form.Get("description"),
	}
	if years := form.Number("years_experience"); years.Valid {
		metadata["years_experience"] = years.Value
	}
	return content.ObjectInput{
		Type:     content.KindSkill,
		Title:    title,
		Metadata: formx.Compact(metadata),
	}
}
