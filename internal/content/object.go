package content

import (
	"strings"
	"time"
)

// Kind identifies a content type by its bucket slug.
type Kind string

const (
	KindProject        Kind = "projects"
	KindSkill          Kind = "skills"
	KindWorkExperience Kind = "work-experience"
	KindTestimonial    Kind = "testimonials"
)

// Kinds lists every content kind the dashboard manages.
func Kinds() []Kind {
	return []Kind{KindProject, KindSkill, KindWorkExperience, KindTestimonial}
}

// Valid reports whether k is a known content kind.
func (k Kind) Valid() bool {
	switch k {
	case KindProject, KindSkill, KindWorkExperience, KindTestimonial:
		return true
	default:
		return false
	}
}

// Object is the base shape shared by every content kind.
type Object struct {
	ID         string
	Slug       string
	Title      string
	Type       Kind
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Created returns the backend creation timestamp.
func (o Object) Created() time.Time {
	return o.CreatedAt
}

// ObjectID returns the immutable backend identifier.
func (o Object) ObjectID() string {
	return o.ID
}

// Record is implemented by every decoded content kind through Object.
type Record interface {
	Created() time.Time
	ObjectID() string
}

// ObjectInput carries the writable fields of an object for create and update
// calls. Empty Slug lets the backend derive one from the title.
type ObjectInput struct {
	Type     Kind
	Title    string
	Slug     string
	Metadata map[string]any
}

func (in ObjectInput) normalized() ObjectInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	return in
}
