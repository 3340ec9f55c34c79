// Package section holds the closed vocabulary of résumé sections shared by the
// customization editor, the title resolver, the injector and every theme.
package section

import (
	"strings"
)

// Kind is one orderable résumé section. Header and summary are placed by the
// base template and are not Kinds.
type Kind int

const (
	Experience Kind = iota + 1
	Education
	Projects
	Certifications
	POR
	Skills
	Achievements
	Extracurriculars
	CustomSections
)

// All lists every Kind in declaration order.
func All() []Kind {
	return []Kind{
		Experience,
		Education,
		Projects,
		Certifications,
		POR,
		Skills,
		Achievements,
		Extracurriculars,
		CustomSections,
	}
}

// Key is the lowercase canonical key stored in customization.sectionOrder.
func (k Kind) Key() string {
	switch k {
	case Experience:
		return "experience"
	case Education:
		return "education"
	case Projects:
		return "projects"
	case Certifications:
		return "certifications"
	case POR:
		return "por"
	case Skills:
		return "skills"
	case Achievements:
		return "achievements"
	case Extracurriculars:
		return "extracurriculars"
	case CustomSections:
		return "customsections"
	}
	return ""
}

// Token is the uppercase form used to address fragments.
func (k Kind) Token() string {
	return strings.ToUpper(k.Key())
}

// DefaultTitle is the heading printed when the user has not renamed the section.
func (k Kind) DefaultTitle() string {
	switch k {
	case Experience:
		return "Experience"
	case Education:
		return "Education"
	case Projects:
		return "Projects"
	case Certifications:
		return "Certifications"
	case POR:
		return "Positions of Responsibility"
	case Skills:
		return "Technical Skills"
	case Achievements:
		return "Achievements"
	case Extracurriculars:
		return "Extracurricular Activities"
	case CustomSections:
		return "Additional Information"
	}
	return ""
}

func (k Kind) String() string {
	return k.Key()
}

// Valid reports whether k is a member of the vocabulary.
func (k Kind) Valid() bool {
	return k.Key() != ""
}

// Parse normalizes key (trim, lowercase) and looks it up.
func Parse(key string) (Kind, bool) {
	key = Normalize(key)
	for _, k := range All() {
		if k.Key() == key {
			return k, true
		}
	}
	return 0, false
}

// Normalize trims and lowercases a section key.
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// DefaultOrder is used when the user never reordered the sections.
func DefaultOrder() []string {
	return Keys(All())
}

// Keys maps kinds to their canonical keys.
func Keys(kinds []Kind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.Key())
	}
	return out
}
