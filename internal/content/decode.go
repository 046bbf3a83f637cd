package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// envelope is the wire shape of a bucket object.
type envelope struct {
	ID         string                     `json:"id"`
	Slug       string                     `json:"slug"`
	Title      string                     `json:"title"`
	Type       string                     `json:"type"`
	Metadata   map[string]json.RawMessage `json:"metadata"`
	CreatedAt  time.Time                  `json:"created_at"`
	ModifiedAt time.Time                  `json:"modified_at"`
}

func decodeEnvelope(raw json.RawMessage) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, err
	}
	if env.ID == "" {
		return envelope{}, fmt.Errorf("object id is missing")
	}
	return env, nil
}

func (e envelope) object() Object {
	return Object{
		ID:         e.ID,
		Slug:       e.Slug,
		Title:      e.Title,
		Type:       Kind(e.Type),
		CreatedAt:  e.CreatedAt,
		ModifiedAt: e.ModifiedAt,
	}
}

// field decodes one metadata value. Missing or malformed values yield the
// zero value so a single bad field never rejects the whole record.
func field[T any](metadata map[string]json.RawMessage, name string) T {
	var value T
	raw, ok := metadata[name]
	if !ok {
		return value
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		var zero T
		return zero
	}
	return value
}

// DecodeObject decodes the base shape of a bucket object.
func DecodeObject(raw json.RawMessage) (Object, error) {
	env, err := decodeEnvelope(raw)
	if err != nil {
		return Object{}, err
	}
	return env.object(), nil
}

// DecodeProject decodes a project object.
func DecodeProject(raw json.RawMessage) (Project, error) {
	env, err := decodeEnvelope(raw)
	if err != nil {
		return Project{}, err
	}
	return projectFromEnvelope(env), nil
}

func projectFromEnvelope(env envelope) Project {
	md := env.Metadata
	return Project{
		Object: env.object(),
		Metadata: ProjectMetadata{
			ProjectName:    field[string](md, "project_name"),
			Description:    field[string](md, "description"),
			Technologies:   field[string](md, "technologies"),
			ProjectType:    field[Option](md, "project_type"),
			FeaturedImage:  field[Image](md, "featured_image"),
			Gallery:        field[[]Image](md, "gallery"),
			DemoURL:        field[string](md, "demo_url"),
			GithubURL:      field[string](md, "github_url"),
			CompletionDate: field[Date](md, "completion_date"),
			Featured:       field[bool](md, "featured"),
		},
	}
}

// DecodeSkill decodes a skill object.
func DecodeSkill(raw json.RawMessage) (Skill, error) {
	env, err := decodeEnvelope(raw)
	if err != nil {
		return Skill{}, err
	}
	md := env.Metadata
	return Skill{
		Object: env.object(),
		Metadata: SkillMetadata{
			SkillName:       field[string](md, "skill_name"),
			Category:        field[Option](md, "category"),
			Proficiency:     field[Option](md, "proficiency"),
			YearsExperience: field[Number](md, "years_experience"),
			Description:     field[string](md, "description"),
		},
	}, nil
}

// DecodeWorkExperience decodes a work experience object.
func DecodeWorkExperience(raw json.RawMessage) (WorkExperience, error) {
	env, err := decodeEnvelope(raw)
	if err != nil {
		return WorkExperience{}, err
	}
	md := env.Metadata
	return WorkExperience{
		Object: env.object(),
		Metadata: WorkExperienceMetadata{
			JobTitle:        field[string](md, "job_title"),
			Company:         field[string](md, "company"),
			CompanyLogo:     field[Image](md, "company_logo"),
			StartDate:       field[Date](md, "start_date"),
			EndDate:         field[Date](md, "end_date"),
			CurrentPosition: field[bool](md, "current_position"),
			Location:        field[string](md, "location"),
			EmploymentType:  field[Option](md, "employment_type"),
			Description:     field[string](md, "description"),
			Achievements:    field[string](md, "achievements"),
		},
	}, nil
}

// DecodeTestimonial decodes a testimonial object. An embedded project that
// the bucket left unresolved (a bare id) is dropped.
func DecodeTestimonial(raw json.RawMessage) (Testimonial, error) {
	env, err := decodeEnvelope(raw)
	if err != nil {
		return Testimonial{}, err
	}
	md := env.Metadata
	return Testimonial{
		Object: env.object(),
		Metadata: TestimonialMetadata{
			ClientName:      field[string](md, "client_name"),
			ClientTitle:     field[string](md, "client_title"),
			Company:         field[string](md, "company"),
			ClientPhoto:     field[Image](md, "client_photo"),
			TestimonialText: field[string](md, "testimonial_text"),
			Rating:          field[Option](md, "rating"),
			Project:         embeddedProject(md["project"]),
			DateReceived:    field[Date](md, "date_received"),
		},
	}, nil
}

func embeddedProject(raw json.RawMessage) *Project {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}
	env, err := decodeEnvelope(raw)
	if err != nil {
		return nil
	}
	project := projectFromEnvelope(env)
	return &project
}
