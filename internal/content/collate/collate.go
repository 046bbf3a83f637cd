// Package collate orders and groups content records for display.
package collate

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
)

// OtherCategory collects records without a category.
const OtherCategory = "Other"

// SortByDateDescending returns a copy of items ordered newest first by the
// primary date, falling back to the creation time when the primary date is
// zero. Ties keep their input order; items is not modified.
func SortByDateDescending[T content.Record](items []T, primary func(T) time.Time) []T {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []T{}
	}
	effective := func(item T) time.Time {
		if primary != nil {
			if t := primary(item); !t.IsZero() {
				return t
			}
		}
		return item.Created()
	}
	slices.SortStableFunc(sorted, func(a, b T) int {
		return effective(b).Compare(effective(a))
	})
	return sorted
}

// Group is one named bucket of records.
type Group[T any] struct {
	Name  string
	Items []T
}

// GroupByCategory buckets items by the name category returns, or
// OtherCategory when it returns "". Buckets are emitted in order and empty
// ones are skipped. Names missing from order are dropped.
func GroupByCategory[T any](items []T, category func(T) string, order []string) []Group[T] {
	buckets := map[string][]T{}
	for _, item := range items {
		name := strings.TrimSpace(category(item))
		if name == "" {
			name = OtherCategory
		}
		buckets[name] = append(buckets[name], item)
	}
	groups := make([]Group[T], 0, len(order))
	for _, name := range order {
		if members := buckets[name]; len(members) > 0 {
			groups = append(groups, Group[T]{Name: name, Items: members})
		}
	}
	return groups
}

// CountCategories returns how many distinct bucket names items fall into,
// including names GroupByCategory would drop.
func CountCategories[T any](items []T, category func(T) string) int {
	seen := map[string]struct{}{}
	for _, item := range items {
		name := strings.TrimSpace(category(item))
		if name == "" {
			name = OtherCategory
		}
		seen[name] = struct{}{}
	}
	return len(seen)
}

// DeriveLevelOrdinal looks key up in table, returning fallback when absent.
func DeriveLevelOrdinal(key string, table map[string]int, fallback int) int {
	if level, ok := table[key]; ok {
		return level
	}
	return fallback
}

// SkillProficiencyLevels ranks skill proficiency keys.
var SkillProficiencyLevels = map[string]int{
	"expert":       5,
	"advanced":     4,
	"intermediate": 3,
	"beginner":     2,
}

// DefaultProficiencyLevel applies to skills without a known proficiency.
const DefaultProficiencyLevel = 1

// SkillOrdinal returns the star count for a skill.
func SkillOrdinal(skill content.Skill) int {
	return DeriveLevelOrdinal(skill.Metadata.Proficiency.Key, SkillProficiencyLevels, DefaultProficiencyLevel)
}

// RatingOrdinal parses a rating key as an integer, returning 0 when it is
// not one.
func RatingOrdinal(key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0
	}
	return n
}

// SkillCategoryOrder is the display order of skill buckets.
var SkillCategoryOrder = []string{"Frontend", "Backend", "Database", "Tools & DevOps", "Design", OtherCategory}

// SkillCategory maps a skill's category key to its bucket name. Unknown keys
// come back unchanged and therefore never match SkillCategoryOrder.
func SkillCategory(skill content.Skill) string {
	key := skill.Metadata.Category.Key
	if key == "" {
		return ""
	}
	if option, ok := content.LookupOption(content.SkillCategories, key); ok {
		return option.Label
	}
	return key
}

// SortProjects orders projects by completion date.
func SortProjects(projects []content.Project) []content.Project {
	return SortByDateDescending(projects, func(p content.Project) time.Time { return p.Metadata.CompletionDate.Time })
}

// SortWorkExperience orders positions by start date.
func SortWorkExperience(items []content.WorkExperience) []content.WorkExperience {
	return SortByDateDescending(items, func(w content.WorkExperience) time.Time { return w.Metadata.StartDate.Time })
}

// SortTestimonials orders testimonials by date received.
func SortTestimonials(items []content.Testimonial) []content.Testimonial {
	return SortByDateDescending(items, func(t content.Testimonial) time.Time { return t.Metadata.DateReceived.Time })
}

// GroupSkills buckets skills by category in display order.
func GroupSkills(skills []content.Skill) []Group[content.Skill] {
	return GroupByCategory(skills, SkillCategory, SkillCategoryOrder)
}
