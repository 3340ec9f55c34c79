package render

import (
	"resume-builder/internal/model"
	"resume-builder/internal/section"
	"resume-builder/pkg/latex"
)

// elegant centers the header and sets headings in spaced serif caps.
type elegant struct{}

func (elegant) Name() string { return "elegant" }

func (elegant) Defaults() model.CustomizationValues {
	return model.CustomizationValues{
		FontSize:       "11pt",
		Margin:         "0.75in",
		LineSpacing:    "1.1",
		SectionSpacing: "8pt",
		ItemSpacing:    "1pt",
		WordSpacing:    "0.33em",
		BulletIcon:     `\textperiodcentered`,
		PrimaryColor:   "0.3,0.25,0.2",
		SectionOrder:   section.DefaultOrder(),
	}
}

func (elegant) Section(title, body string) string {
	return macro("elegantsection", title) + "\n" + body
}

func (t elegant) Entry(b Block) string {
	return joinNonEmpty("\n",
		macro("elegantentry", headingWithLink(t, b.Heading, b.Link, ` $\bullet$ `), b.Dates, joinNonEmpty(` $\bullet$ `, b.Subheading, b.Location)),
		t.Bullets(b.Bullets),
	)
}

func (elegant) Bullets(items []string) string {
	return itemize("", items)
}

func (elegant) Skills(lines []SkillLine) string {
	items := make([]string, 0, len(lines))
	for _, l := range lines {
		items = append(items, labeled(l.Label, `\textit{%s}`, ` -- `, l.Skills))
	}
	return itemize("label={}", items)
}

func (elegant) Link(l Link) string {
	return latex.Href(l.URL, `\textit{`+l.Label+`}`)
}

func (elegant) Separator() string { return ` $\bullet$ ` }

func (elegant) EntryGap() string { return "\n\\smallskip\n" }
