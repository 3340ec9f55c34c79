package render

import (
	"resume-builder/internal/model"
	"resume-builder/internal/section"
	"resume-builder/pkg/latex"
)

// compact fits dense one-page résumés: one line per entry heading.
type compact struct{}

func (compact) Name() string { return "compact" }

func (compact) Defaults() model.CustomizationValues {
	return model.CustomizationValues{
		FontSize:       "10pt",
		Margin:         "0.4in",
		LineSpacing:    "0.95",
		SectionSpacing: "2pt",
		ItemSpacing:    "-1pt",
		WordSpacing:    "0.3em",
		BulletIcon:     `\textbullet`,
		PrimaryColor:   "0,0,0",
		SectionOrder: section.Keys([]section.Kind{
			section.Experience, section.Projects, section.Skills, section.Education,
			section.Certifications, section.Achievements, section.POR,
			section.Extracurriculars, section.CustomSections,
		}),
	}
}

func (compact) Section(title, body string) string {
	return macro("compactsection", title) + "\n" + body
}

func (t compact) Entry(b Block) string {
	head := joinNonEmpty(` -- `, headingWithLink(t, `\textbf{`+b.Heading+`}`, b.Link, ` \textbar{} `), b.Subheading, b.Location)
	if b.Dates != "" {
		head += ` \hfill \textit{` + b.Dates + `}`
	}
	return joinNonEmpty("\n", head+`\\`, t.Bullets(b.Bullets))
}

func (compact) Bullets(items []string) string {
	return itemize("nosep", items)
}

func (compact) Skills(lines []SkillLine) string {
	items := make([]string, 0, len(lines))
	for _, l := range lines {
		items = append(items, labeled(l.Label, `\textbf{%s}`, ": ", l.Skills))
	}
	return itemize("nosep,label={}", items)
}

func (compact) Link(l Link) string {
	return latex.Href(l.URL, l.Label)
}

func (compact) Separator() string { return ` \textbar{} ` }

func (compact) EntryGap() string { return "\n" }
