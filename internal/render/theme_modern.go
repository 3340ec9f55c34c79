package render

import (
	"resume-builder/internal/model"
	"resume-builder/internal/section"
	"resume-builder/pkg/latex"
)

// modern colors headings and links with the primary color.
type modern struct{}

func (modern) Name() string { return "modern" }

func (modern) Defaults() model.CustomizationValues {
	return model.CustomizationValues{
		FontSize:       "11pt",
		Margin:         "0.6in",
		LineSpacing:    "1.05",
		SectionSpacing: "6pt",
		ItemSpacing:    "1pt",
		WordSpacing:    "0.33em",
		BulletIcon:     `\textcolor{primary}{\textbullet}`,
		PrimaryColor:   "0.12,0.35,0.65",
		SectionOrder:   section.DefaultOrder(),
	}
}

func (modern) Section(title, body string) string {
	return macro("modernsection", title) + "\n" + body
}

func (t modern) Entry(b Block) string {
	return joinNonEmpty("\n",
		macro("modernentry", headingWithLink(t, b.Heading, b.Link, ` \enspace `), b.Subheading, b.Dates, b.Location),
		t.Bullets(b.Bullets),
	)
}

func (modern) Bullets(items []string) string {
	return itemize("", items)
}

func (modern) Skills(lines []SkillLine) string {
	var rows []string
	for _, l := range lines {
		rows = append(rows, labeled(l.Label, `\textcolor{primary}{\textbf{%s}}`, "", "")+` & `+l.Skills+` \\`)
	}
	out := "\\begin{tabular}{@{}p{0.22\\textwidth}p{0.74\\textwidth}@{}}\n"
	for _, r := range rows {
		out += "  " + r + "\n"
	}
	return out + `\end{tabular}`
}

func (modern) Link(l Link) string {
	return latex.Href(l.URL, `\textcolor{primary}{`+l.Label+`}`)
}

func (modern) Separator() string { return ` \textcolor{primary}{\textbullet} ` }

func (modern) EntryGap() string { return "\n\\vspace{2pt}\n" }
