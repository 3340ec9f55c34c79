// Package formatters builds the per-section prompts sent to a language model.
package formatters

import (
	"strings"
)

// Formatter writes the instruction for one kind of section.
type Formatter interface {
	Section() string
	Prompt(context, language string) string
}

var registry = map[string]Formatter{}

func register(f Formatter) {
	registry[f.Section()] = f
}

func init() {
	register(summaryFormatter{})
	register(experienceFormatter{section: "experience", noun: "work experience"})
	register(experienceFormatter{section: "por", noun: "position of responsibility"})
	register(experienceFormatter{section: "extracurriculars", noun: "extracurricular activity"})
	register(projectFormatter{})
	register(skillsFormatter{})
	register(achievementsFormatter{})
}

// For returns the formatter for a section key (case-insensitive).
func For(section string) (Formatter, bool) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(section))]
	return f, ok
}

// Sections lists the keys with a formatter.
func Sections() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}

func language(l string) string {
	if strings.TrimSpace(l) == "" {
		return "English"
	}
	return l
}

// rules are shared by every prompt so the output parses into bullets.
const rules = `Formatting rules:
- Answer in %s only.
- Use markdown. One "- " bullet per line unless told otherwise.
- Wrap at most two key results per bullet in **double asterisks**.
- No headings, no preamble, no closing remarks, no code fences.`
