package render

import (
	"resume-builder/internal/model"
	"resume-builder/internal/section"
	"resume-builder/pkg/latex"
)

// executive uses small-caps headings over a colored rule and puts the
// organization first.
type executive struct{}

func (executive) Name() string { return "executive" }

func (executive) Defaults() model.CustomizationValues {
	return model.CustomizationValues{
		FontSize:       "11pt",
		Margin:         "0.7in",
		LineSpacing:    "1.1",
		SectionSpacing: "8pt",
		ItemSpacing:    "2pt",
		WordSpacing:    "0.35em",
		BulletIcon:     `\textcolor{primary}{$\blacktriangleright$}`,
		PrimaryColor:   "0.1,0.2,0.35",
		SectionOrder:   section.DefaultOrder(),
	}
}

func (executive) Section(title, body string) string {
	return macro("execsection", title) + "\n" + body
}

func (t executive) Entry(b Block) string {
	return joinNonEmpty("\n",
		macro("execentry", b.Subheading, b.Location, headingWithLink(t, b.Heading, b.Link, ` $\diamond$ `), b.Dates),
		t.Bullets(b.Bullets),
	)
}

func (executive) Bullets(items []string) string {
	return itemize("leftmargin=0.25in", items)
}

func (executive) Skills(lines []SkillLine) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, labeled(l.Label, `\textsc{%s}`, ` \quad `, l.Skills)+`\\`)
	}
	return joinNonEmpty("\n", out...)
}

func (executive) Link(l Link) string {
	return latex.Href(l.URL, l.Label)
}

func (executive) Separator() string { return ` $\diamond$ ` }

func (executive) EntryGap() string { return "\n\\vspace{4pt}\n" }
