package cards

import (
	"strconv"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
)

const (
	// MonthYearLayout renders dates on project and experience cards.
	MonthYearLayout = "Jan 2006"
	// ReceivedLayout renders the testimonial received date.
	ReceivedLayout = "Jan 02, 2006"
	// PresentLabel closes the range of an ongoing position.
	PresentLabel = "Present"
	// MaxStars is the width of every star row.
	MaxStars = 5
)

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key string, args ...any) string
}

// FormatDateRange renders "Jan 2006 - Jan 2006". The end reads PresentLabel
// when current is set or the end date is missing. ok is false when the start
// date is missing and the line should be omitted.
func FormatDateRange(start, end content.Date, current bool) (string, bool) {
	if start.IsZero() {
		return "", false
	}
	last := PresentLabel
	if !current && !end.IsZero() {
		last = end.Format(MonthYearLayout)
	}
	return start.Format(MonthYearLayout) + " - " + last, true
}

// StarUnits returns MaxStars flags with the first n set; n is clamped.
func StarUnits(n int) []bool {
	n = max(0, min(n, MaxStars))
	stars := make([]bool, MaxStars)
	for i := range n {
		stars[i] = true
	}
	return stars
}

// ProficiencyTone returns the badge color for a proficiency key.
func ProficiencyTone(key string) string {
	switch key {
	case "expert":
		return "green"
	case "advanced":
		return "blue"
	case "intermediate":
		return "yellow"
	default:
		return "gray"
	}
}

// YearsExperience renders "N year(s) experience"; it is empty when years is
// absent.
func YearsExperience(loc Localizer, years content.Number) string {
	if !years.Valid {
		return ""
	}
	key := "skills.years.other"
	if years.Value == 1 {
		key = "skills.years.one"
	}
	return sprintf(loc, key, strconv.FormatFloat(years.Value, 'f', -1, 64))
}

// ClientByline renders "title at company", falling back to whichever part is
// present.
func ClientByline(loc Localizer, title, company string) string {
	switch {
	case title != "" && company != "":
		return sprintf(loc, "testimonials.title_at", title, company)
	case title != "":
		return title
	default:
		return company
	}
}

func formatDate(d content.Date, layout string) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layout)
}

func sprintf(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}
