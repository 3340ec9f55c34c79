package model

import "strings"

// Go models matching schema/resume.schema.json. Every field is optional: the
// renderer falls back to placeholders rather than failing.

type WorkExperience struct {
	Position    string   `json:"position,omitempty" yaml:"position"`
	Company     string   `json:"company,omitempty" yaml:"company"`
	Location    string   `json:"location,omitempty" yaml:"location"`
	Link        string   `json:"link,omitempty" yaml:"link"`
	StartDate   string   `json:"startDate,omitempty" yaml:"startDate"`
	EndDate     string   `json:"endDate,omitempty" yaml:"endDate"`
	Description []string `json:"description,omitempty" yaml:"description"`
}

type Project struct {
	Title       string   `json:"title,omitempty" yaml:"title"`
	TechStack   string   `json:"techStack,omitempty" yaml:"techStack"`
	Link        string   `json:"link,omitempty" yaml:"link"`
	StartDate   string   `json:"startDate,omitempty" yaml:"startDate"`
	EndDate     string   `json:"endDate,omitempty" yaml:"endDate"`
	Description []string `json:"description,omitempty" yaml:"description"`
}

type Education struct {
	Degree      string   `json:"degree,omitempty" yaml:"degree"`
	School      string   `json:"school,omitempty" yaml:"school"`
	Location    string   `json:"location,omitempty" yaml:"location"`
	Grade       string   `json:"grade,omitempty" yaml:"grade"`
	StartDate   string   `json:"startDate,omitempty" yaml:"startDate"`
	EndDate     string   `json:"endDate,omitempty" yaml:"endDate"`
	Description []string `json:"description,omitempty" yaml:"description"`
}

// PositionOfResponsibility is a leadership or organizational role.
type PositionOfResponsibility struct {
	Role         string   `json:"role,omitempty" yaml:"role"`
	Organization string   `json:"organization,omitempty" yaml:"organization"`
	Location     string   `json:"location,omitempty" yaml:"location"`
	StartDate    string   `json:"startDate,omitempty" yaml:"startDate"`
	EndDate      string   `json:"endDate,omitempty" yaml:"endDate"`
	Description  []string `json:"description,omitempty" yaml:"description"`
}

// SkillGroup is one labelled line of skills, e.g. "Languages: Go, SQL".
type SkillGroup struct {
	Label  string   `json:"label,omitempty" yaml:"label"`
	Skills []string `json:"skills,omitempty" yaml:"skills"`
}

type Certification struct {
	Name   string `json:"name,omitempty" yaml:"name"`
	Issuer string `json:"issuer,omitempty" yaml:"issuer"`
	Date   string `json:"date,omitempty" yaml:"date"`
	Link   string `json:"link,omitempty" yaml:"link"`
}

type Achievement struct {
	Title       string   `json:"title,omitempty" yaml:"title"`
	Date        string   `json:"date,omitempty" yaml:"date"`
	Description []string `json:"description,omitempty" yaml:"description"`
}

type Extracurricular struct {
	Activity     string   `json:"activity,omitempty" yaml:"activity"`
	Organization string   `json:"organization,omitempty" yaml:"organization"`
	StartDate    string   `json:"startDate,omitempty" yaml:"startDate"`
	EndDate      string   `json:"endDate,omitempty" yaml:"endDate"`
	Description  []string `json:"description,omitempty" yaml:"description"`
}

// CustomSection is a user-defined section rendered under its own title.
type CustomSection struct {
	Title   string               `json:"title,omitempty" yaml:"title"`
	Entries []CustomSectionEntry `json:"entries,omitempty" yaml:"entries"`
}

type CustomSectionEntry struct {
	Heading     string   `json:"heading,omitempty" yaml:"heading"`
	Subheading  string   `json:"subheading,omitempty" yaml:"subheading"`
	Location    string   `json:"location,omitempty" yaml:"location"`
	StartDate   string   `json:"startDate,omitempty" yaml:"startDate"`
	EndDate     string   `json:"endDate,omitempty" yaml:"endDate"`
	Description []string `json:"description,omitempty" yaml:"description"`
}

// Structured reports whether the entry renders with a heading/date block rather
// than as a plain bullet list.
func (e CustomSectionEntry) Structured() bool {
	return strings.TrimSpace(e.Heading) != "" || strings.TrimSpace(e.Subheading) != "" || strings.TrimSpace(e.Location) != ""
}

// CustomizationValues parameterizes a template. Empty fields mean "use the
// template default".
type CustomizationValues struct {
	FontSize       string            `json:"fontSize,omitempty" yaml:"fontSize"`
	Margin         string            `json:"margin,omitempty" yaml:"margin"`
	LineSpacing    string            `json:"lineSpacing,omitempty" yaml:"lineSpacing"`
	SectionSpacing string            `json:"sectionSpacing,omitempty" yaml:"sectionSpacing"`
	ItemSpacing    string            `json:"itemSpacing,omitempty" yaml:"itemSpacing"`
	WordSpacing    string            `json:"wordSpacing,omitempty" yaml:"wordSpacing"`
	BulletIcon     string            `json:"bulletIcon,omitempty" yaml:"bulletIcon"`
	PrimaryColor   string            `json:"primaryColor,omitempty" yaml:"primaryColor"`
	SectionOrder   []string          `json:"sectionOrder,omitempty" yaml:"sectionOrder"`
	SectionTitles  map[string]string `json:"sectionTitles,omitempty" yaml:"sectionTitles"`
}

type ResumeValues struct {
	Title       string `json:"title,omitempty" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`

	FirstName string `json:"firstName,omitempty" yaml:"firstName"`
	LastName  string `json:"lastName,omitempty" yaml:"lastName"`
	JobTitle  string `json:"jobTitle,omitempty" yaml:"jobTitle"`
	Email     string `json:"email,omitempty" yaml:"email"`
	Phone     string `json:"phone,omitempty" yaml:"phone"`
	Location  string `json:"location,omitempty" yaml:"location"`
	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin"`
	GitHub    string `json:"github,omitempty" yaml:"github"`
	Website   string `json:"website,omitempty" yaml:"website"`

	Customization *CustomizationValues `json:"customization,omitempty" yaml:"customization"`

	Summary          string                     `json:"summary,omitempty" yaml:"summary"`
	WorkExperiences  []WorkExperience           `json:"workExperiences,omitempty" yaml:"workExperiences"`
	Projects         []Project                  `json:"projects,omitempty" yaml:"projects"`
	Educations       []Education                `json:"educations,omitempty" yaml:"educations"`
	POR              []PositionOfResponsibility `json:"por,omitempty" yaml:"por"`
	Skills           []SkillGroup               `json:"skills,omitempty" yaml:"skills"`
	Certifications   []Certification            `json:"certifications,omitempty" yaml:"certifications"`
	Achievements     []Achievement              `json:"achievements,omitempty" yaml:"achievements"`
	Extracurriculars []Extracurricular          `json:"extracurriculars,omitempty" yaml:"extracurriculars"`
	CustomSections   []CustomSection            `json:"customSections,omitempty" yaml:"customSections"`
}
