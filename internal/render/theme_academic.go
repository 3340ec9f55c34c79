package render

import (
	"resume-builder/internal/model"
	"resume-builder/internal/section"
	"resume-builder/pkg/latex"
)

// academic leads with education and sets entries as a hanging CV list.
type academic struct{}

func (academic) Name() string { return "academic" }

func (academic) Defaults() model.CustomizationValues {
	return model.CustomizationValues{
		FontSize:       "11pt",
		Margin:         "0.8in",
		LineSpacing:    "1.15",
		SectionSpacing: "10pt",
		ItemSpacing:    "2pt",
		WordSpacing:    "0.33em",
		BulletIcon:     `$\circ$`,
		PrimaryColor:   "0.45,0.05,0.1",
		SectionOrder: section.Keys([]section.Kind{
			section.Education, section.Experience, section.Projects, section.Achievements,
			section.Certifications, section.POR, section.Skills,
			section.Extracurriculars, section.CustomSections,
		}),
	}
}

func (academic) Section(title, body string) string {
	return macro("academicsection", title) + "\n" + body
}

func (t academic) Entry(b Block) string {
	return joinNonEmpty("\n",
		macro("cventry", b.Dates, headingWithLink(t, b.Heading, b.Link, ` $\cdot$ `), joinNonEmpty(", ", b.Subheading, b.Location)),
		t.Bullets(b.Bullets),
	)
}

func (academic) Bullets(items []string) string {
	return itemize("leftmargin=1.2in", items)
}

func (t academic) Skills(lines []SkillLine) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, macro("cventry", l.Label, l.Skills, ""))
	}
	return joinNonEmpty("\n", out...)
}

func (academic) Link(l Link) string {
	return latex.Href(l.URL, `\texttt{`+l.Label+`}`)
}

func (academic) Separator() string { return ` $\cdot$ ` }

func (academic) EntryGap() string { return "\n\\medskip\n" }
