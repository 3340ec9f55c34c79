package render

import (
	"resume-builder/internal/model"
	"resume-builder/internal/section"
)

// Document is the theme-independent content of one résumé. Every string in it
// is already escaped markup.
type Document struct {
	Header   Header
	Summary  string
	Sections []Section
	Style    model.CustomizationValues
}

type Header struct {
	Name     string
	JobTitle string
	Email    string
	// EmailURL is the raw address for mailto links.
	EmailURL string
	Phone    string
	Location string
	Links    []Link
}

type LinkKind string

const (
	LinkLinkedIn LinkKind = "linkedin"
	LinkGitHub   LinkKind = "github"
	LinkWebsite  LinkKind = "website"
	LinkEntry    LinkKind = "entry"
)

type Link struct {
	Kind  LinkKind
	URL   string
	Label string
}

type BlockKind int

const (
	// BlockEntry has a heading/date layout followed by optional bullets.
	BlockEntry BlockKind = iota
	// BlockBullets is a plain bullet list without a sub-heading.
	BlockBullets
	// BlockSkills is a list of labelled skill lines.
	BlockSkills
)

type SkillLine struct {
	Label  string
	Skills string
}

type Block struct {
	Kind       BlockKind
	Heading    string
	Subheading string
	Location   string
	Dates      string
	Link       *Link
	Bullets    []string
	Skills     []SkillLine
}

// Section is one titled node of the ordered body. Several custom sections
// share Kind section.CustomSections and render into one fragment.
type Section struct {
	Kind   section.Kind
	Title  string
	Blocks []Block
}
