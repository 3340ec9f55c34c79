package render

import (
	"resume-builder/internal/model"
	"resume-builder/internal/section"
	"resume-builder/pkg/latex"
)

// classic is the single-column ATS layout with ruled section titles.
type classic struct{}

func (classic) Name() string { return "classic" }

func (classic) Defaults() model.CustomizationValues {
	return model.CustomizationValues{
		FontSize:       "11pt",
		Margin:         "0.5in",
		LineSpacing:    "1.0",
		SectionSpacing: "4pt",
		ItemSpacing:    "0pt",
		WordSpacing:    "0.33em",
		BulletIcon:     `\textbullet`,
		PrimaryColor:   "0,0,0",
		SectionOrder:   section.DefaultOrder(),
	}
}

func (classic) Section(title, body string) string {
	return `\section{` + title + "}\n" + body
}

func (t classic) Entry(b Block) string {
	return joinNonEmpty("\n",
		macro("resumeSubheading", headingWithLink(t, b.Heading, b.Link, ` $|$ `), b.Dates, b.Subheading, b.Location),
		t.Bullets(b.Bullets),
	)
}

func (classic) Bullets(items []string) string {
	return itemize("", items)
}

func (classic) Skills(lines []SkillLine) string {
	items := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Label == "" {
			items = append(items, l.Skills)
			continue
		}
		items = append(items, `\textbf{`+l.Label+`}{: `+l.Skills+`}`)
	}
	return itemize("label={}", items)
}

func (classic) Link(l Link) string {
	return latex.Href(l.URL, `\underline{`+l.Label+`}`)
}

func (classic) Separator() string { return ` $|$ ` }

func (classic) EntryGap() string { return "\n" }
