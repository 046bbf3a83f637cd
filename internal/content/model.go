package content

// Project is a portfolio project.
type Project struct {
	Object
	Metadata ProjectMetadata
}

// ProjectMetadata holds the optional project fields.
type ProjectMetadata struct {
	ProjectName    string
	Description    string
	Technologies   string
	ProjectType    Option
	FeaturedImage  Image
	Gallery        []Image
	DemoURL        string
	GithubURL      string
	CompletionDate Date
	Featured       bool
}

// Skill is a technical skill.
type Skill struct {
	Object
	Metadata SkillMetadata
}

// SkillMetadata holds the optional skill fields.
type SkillMetadata struct {
	SkillName       string
	Category        Option
	Proficiency     Option
	YearsExperience Number
	Description     string
}

// DisplayName returns skill_name, falling back to the object title.
func (s Skill) DisplayName() string {
	if s.Metadata.SkillName != "" {
		return s.Metadata.SkillName
	}
	return s.Title
}

// WorkExperience is a position in the career history.
type WorkExperience struct {
	Object
	Metadata WorkExperienceMetadata
}

// WorkExperienceMetadata holds the optional work experience fields.
type WorkExperienceMetadata struct {
	JobTitle        string
	Company         string
	CompanyLogo     Image
	StartDate       Date
	EndDate         Date
	CurrentPosition bool
	Location        string
	EmploymentType  Option
	Description     string
	Achievements    string
}

// Testimonial is client feedback.
type Testimonial struct {
	Object
	Metadata TestimonialMetadata
}

// TestimonialMetadata holds the optional testimonial fields. Project is a
// read-only snapshot resolved by the bucket, not an owned record.
type TestimonialMetadata struct {
	ClientName      string
	ClientTitle     string
	Company         string
	ClientPhoto     Image
	TestimonialText string
	Rating          Option
	Project         *Project
	DateReceived    Date
}
