package latex

import (
	"regexp"
	"strings"
)

// escaper replaces every reserved character in a single pass, so the braces
// and backslashes it introduces are never escaped a second time.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`%`, `\%`,
	`&`, `\&`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
)

// emphasisSpan matches a single-level {…} marker. Nested markers only match the
// innermost span; the outer braces fall through to plain escaping.
var emphasisSpan = regexp.MustCompile(`\{([^{}]+)\}`)

// Escape makes arbitrary user text safe to place inside LaTeX markup.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	return escaper.Replace(text)
}

// HighlightAndEscape escapes text and turns every {span} into \textbf{span}.
// Unmatched braces are escaped literally.
func HighlightAndEscape(text string) string {
	if text == "" {
		return ""
	}
	matches := emphasisSpan.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return Escape(text)
	}

	var b strings.Builder
	b.Grow(len(text) + 16*len(matches))
	last := 0
	for _, m := range matches {
		b.WriteString(Escape(text[last:m[0]]))
		b.WriteString(Bold(Escape(text[m[2]:m[3]])))
		last = m[1]
	}
	b.WriteString(Escape(text[last:]))
	return b.String()
}

// Bold wraps already-escaped markup in \textbf.
func Bold(markup string) string {
	return `\textbf{` + markup + `}`
}

// Italic wraps already-escaped markup in \textit.
func Italic(markup string) string {
	return `\textit{` + markup + `}`
}

// Href builds a hyperlink. The URL is only stripped of characters that would
// break the argument; the label must be escaped by the caller.
func Href(url, label string) string {
	u := strings.NewReplacer(`%`, `\%`, `#`, `\#`, `{`, "", `}`, "", `\`, "").Replace(url)
	return `\href{` + u + `}{` + label + `}`
}
