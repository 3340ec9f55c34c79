package render

import (
	"sort"
	"strings"

	"resume-builder/internal/model"
)

// Generator turns a base template and résumé values into final markup.
type Generator func(base string, values model.ResumeValues) string

var themes = map[string]Theme{}

func register(t Theme) {
	themes[t.Name()] = t
}

func init() {
	register(classic{})
	register(modern{})
	register(minimal{})
	register(compact{})
	register(academic{})
	register(executive{})
	register(elegant{})
}

// NewGenerator binds a theme to the shared pipeline.
func NewGenerator(t Theme) Generator {
	return func(base string, values model.ResumeValues) string {
		return Render(t, base, Build(values, t.Defaults()))
	}
}

func noop(string, model.ResumeValues) string { return "" }

// Lookup selects the generator for a template name. Unknown names yield a
// generator that renders nothing.
func Lookup(name string) Generator {
	t, ok := ThemeFor(name)
	if !ok {
		return noop
	}
	return NewGenerator(t)
}

// Generate is Lookup(name)(base, values).
func Generate(name, base string, values model.ResumeValues) string {
	return Lookup(name)(base, values)
}

func ThemeFor(name string) (Theme, bool) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Themes lists registered themes by name.
func Themes() []Theme {
	out := make([]Theme, 0, len(themes))
	for _, t := range themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
