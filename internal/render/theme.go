package render

import (
	"strings"

	"resume-builder/internal/model"
)

// Theme supplies the markup that differs between visual designs. Everything
// else (walking the document, header tokens, ordering, substitution) is shared.
type Theme interface {
	Name() string
	// Defaults are the customization values a résumé starts with on this theme.
	Defaults() model.CustomizationValues
	// Section wraps a non-empty body under its heading.
	Section(title, body string) string
	// Entry renders a heading/date block and its bullets.
	Entry(b Block) string
	// Bullets renders a balanced list environment.
	Bullets(items []string) string
	Skills(lines []SkillLine) string
	Link(l Link) string
	// Separator sits between header contact items.
	Separator() string
	// EntryGap joins consecutive blocks of one section.
	EntryGap() string
}

// itemize writes a balanced itemize environment. opts may be empty.
func itemize(opts string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`\begin{itemize}`)
	if opts != "" {
		b.WriteString("[" + opts + "]")
	}
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString("  \\item " + it + "\n")
	}
	b.WriteString(`\end{itemize}`)
	return b.String()
}

// joinNonEmpty joins the parts that are not blank.
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// labeled prefixes skills with the wrapped label, or returns skills alone when
// the group has no label.
func labeled(label, wrap, sep, skills string) string {
	if label == "" {
		return skills
	}
	return strings.Replace(wrap, "%s", label, 1) + sep + skills
}

// headingWithLink appends the theme's rendering of l to heading when present.
func headingWithLink(t Theme, heading string, l *Link, sep string) string {
	if l == nil {
		return heading
	}
	return joinNonEmpty(sep, heading, t.Link(*l))
}
