package content

// Option tables for the select fields defined in the bucket. Keys are what
// logic compares; labels are what forms and badges show.
var (
	ProjectTypes = []Option{
		{Key: "web_app", Label: "Web App"},
		{Key: "website", Label: "Website"},
		{Key: "mobile_app", Label: "Mobile App"},
		{Key: "api", Label: "API"},
	}

	SkillCategories = []Option{
		{Key: "frontend", Label: "Frontend"},
		{Key: "backend", Label: "Backend"},
		{Key: "database", Label: "Database"},
		{Key: "tools", Label: "Tools & DevOps"},
		{Key: "design", Label: "Design"},
	}

	Proficiencies = []Option{
		{Key: "beginner", Label: "Beginner"},
		{Key: "intermediate", Label: "Intermediate"},
		{Key: "advanced", Label: "Advanced"},
		{Key: "expert", Label: "Expert"},
	}

	EmploymentTypes = []Option{
		{Key: "full_time", Label: "Full-time"},
		{Key: "part_time", Label: "Part-time"},
		{Key: "contract", Label: "Contract"},
		{Key: "freelance", Label: "Freelance"},
		{Key: "internship", Label: "Internship"},
	}

	Ratings = []Option{
		{Key: "5", Label: "5 Stars"},
		{Key: "4", Label: "4 Stars"},
		{Key: "3", Label: "3 Stars"},
		{Key: "2", Label: "2 Stars"},
		{Key: "1", Label: "1 Star"},
	}
)

// LookupOption finds the option with key in table.
func LookupOption(table []Option, key string) (Option, bool) {
	for _, option := range table {
		if option.Key == key {
			return option, true
		}
	}
	return Option{}, false
}
