package icons

import (
	"fmt"
	"strings"
)

// Name identifies a dashboard icon independent of the icon set.
type Name string

const (
	Dashboard   Name = "dashboard"
	Project     Name = "project"
	Skill       Name = "skill"
	Experience  Name = "experience"
	Testimonial Name = "testimonial"
	Star        Name = "star"
	Add         Name = "add"
	Delete      Name = "delete"
	External    Name = "external"
	Source      Name = "source"
	Location    Name = "location"
	Calendar    Name = "calendar"
	User        Name = "user"
	Alert       Name = "alert"
	Activity    Name = "activity"
)

const (
	lucideSymbolPrefix = "lucide-"
	defaultLucid       = "sparkle"
)

var lucideNames = map[Name]string{
	Dashboard:   "layout-dashboard",
	Project:     "folder-kanban",
	Skill:       "code",
	Experience:  "briefcase",
	Testimonial: "message-square-quote",
	Star:        "star",
	Add:         "plus",
	Delete:      "trash-2",
	External:    "external-link",
	Source:      "github",
	Location:    "map-pin",
	Calendar:    "calendar",
	User:        "circle-user",
	Alert:       "triangle-alert",
	Activity:    "activity",
}

// Names lists every icon the sprite provides.
func Names() []Name {
	return []Name{
		Dashboard, Project, Skill, Experience, Testimonial, Star, Add, Delete,
		External, Source, Location, Calendar, User, Alert, Activity,
	}
}

// LucideName returns the Lucide icon name for a dashboard icon.
func LucideName(name Name) (string, bool) {
	lucide, ok := lucideNames[name]
	return lucide, ok
}

// LucideNameOrDefault returns a stable Lucide name even for unknown icons.
func LucideNameOrDefault(name Name) string {
	if lucide, ok := lucideNames[name]; ok {
		return lucide
	}
	return defaultLucid
}

// LucideSymbolID returns the sprite symbol id for a Lucide icon name.
func LucideSymbolID(lucide string) string {
	return lucideSymbolPrefix + lucide
}

// LucideSprite returns the hidden SVG sprite holding every dashboard icon.
func LucideSprite() string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none">`)
	for _, lucide := range append(spriteOrder(), defaultLucid) {
		fmt.Fprintf(&b,
			`<symbol id="%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">%s</symbol>`,
			LucideSymbolID(lucide), lucidePaths[lucide])
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func spriteOrder() []string {
	names := Names()
	order := make([]string, 0, len(names))
	for _, name := range names {
		order = append(order, lucideNames[name])
	}
	return order
}

var lucidePaths = map[string]string{
	"layout-dashboard":     `<rect width="7" height="9" x="3" y="3" rx="1"/><rect width="7" height="5" x="14" y="3" rx="1"/><rect width="7" height="9" x="14" y="12" rx="1"/><rect width="7" height="5" x="3" y="16" rx="1"/>`,
	"folder-kanban":        `<path d="M4 20h16a2 2 0 0 0 2-2V8a2 2 0 0 0-2-2h-7.93a2 2 0 0 1-1.66-.9l-.82-1.2A2 2 0 0 0 7.93 3H4a2 2 0 0 0-2 2v13c0 1.1.9 2 2 2Z"/><path d="M8 10v4"/><path d="M12 10v2"/><path d="M16 10v6"/>`,
	"code":                 `<polyline points="16 18 22 12 16 6"/><polyline points="8 6 2 12 8 18"/>`,
	"briefcase":            `<path d="M16 20V4a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"/><rect width="20" height="14" x="2" y="6" rx="2"/>`,
	"message-square-quote": `<path d="M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"/><path d="M8 12a2 2 0 0 0 2-2V8H8"/><path d="M14 12a2 2 0 0 0 2-2V8h-2"/>`,
	"star":                 `<polygon points="12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"/>`,
	"plus":                 `<path d="M5 12h14"/><path d="M12 5v14"/>`,
	"trash-2":              `<path d="M3 6h18"/><path d="M19 6v14c0 1-1 2-2 2H7c-1 0-2-1-2-2V6"/><path d="M8 6V4c0-1 1-2 2-2h4c1 0 2 1 2 2v2"/><line x1="10" x2="10" y1="11" y2="17"/><line x1="14" x2="14" y1="11" y2="17"/>`,
	"external-link":        `<path d="M15 3h6v6"/><path d="M10 14 21 3"/><path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"/>`,
	"github":               `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,
	"map-pin":              `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,
	"calendar":             `<rect width="18" height="18" x="3" y="4" rx="2"/><line x1="16" x2="16" y1="2" y2="6"/><line x1="8" x2="8" y1="2" y2="6"/><line x1="3" x2="21" y1="10" y2="10"/>`,
	"circle-user":          `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="10" r="3"/><path d="M7 20.662V19a2 2 0 0 1 2-2h6a2 2 0 0 1 2 2v1.662"/>`,
	"triangle-alert":       `<path d="m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3"/><path d="M12 9v4"/><path d="M12 17h.01"/>`,
	"activity":             `<path d="M22 12h-4l-3 9L9 3l-3 9H2"/>`,
	"sparkle":              `<path d="M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"/>`,
}
