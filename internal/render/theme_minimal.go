package render

import (
	"resume-builder/internal/model"
	"resume-builder/internal/section"
	"resume-builder/pkg/latex"
)

// minimal drops rules and colors; entries are one bold line plus an italic one.
type minimal struct{}

func (minimal) Name() string { return "minimal" }

func (minimal) Defaults() model.CustomizationValues {
	return model.CustomizationValues{
		FontSize:       "11pt",
		Margin:         "0.75in",
		LineSpacing:    "1.1",
		SectionSpacing: "8pt",
		ItemSpacing:    "0pt",
		WordSpacing:    "0.33em",
		BulletIcon:     `--`,
		PrimaryColor:   "0.2,0.2,0.2",
		SectionOrder:   section.DefaultOrder(),
	}
}

func (minimal) Section(title, body string) string {
	return macro("minimalsection", title) + "\n" + body
}

func (t minimal) Entry(b Block) string {
	first := joinNonEmpty(", ", headingWithLink(t, `\textbf{`+b.Heading+`}`, b.Link, ` \quad `), b.Subheading)
	if b.Dates != "" {
		first += ` \hfill ` + b.Dates
	}
	lines := first + `\\`
	if b.Location != "" {
		lines += "\n" + `\textit{` + b.Location + `}\\`
	}
	return joinNonEmpty("\n", lines, t.Bullets(b.Bullets))
}

func (minimal) Bullets(items []string) string {
	return itemize("nosep", items)
}

func (minimal) Skills(lines []SkillLine) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += labeled(l.Label, `\textbf{%s}`, ": ", l.Skills) + `\\`
	}
	return out
}

func (minimal) Link(l Link) string {
	return latex.Href(l.URL, l.Label)
}

func (minimal) Separator() string { return ` \quad ` }

func (minimal) EntryGap() string { return "\n\\smallskip\n" }
