package render

import (
	"strings"
)

// sectionSeparator sits between two section fragments.
const sectionSeparator = "\n\n"

// JoinSections concatenates fragments in the given order. Keys are matched in
// uppercase; keys without a fragment contribute nothing, a repeated key is
// emitted once at its first position, and fragments whose key is not listed
// are dropped.
func JoinSections(order []string, fragments map[string]string) string {
	parts := make([]string, 0, len(order))
	seen := make(map[string]struct{}, len(order))
	for _, key := range order {
		key = strings.ToUpper(strings.TrimSpace(key))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		frag := fragments[key]
		if frag == "" {
			continue
		}
		parts = append(parts, frag)
	}
	return strings.Join(parts, sectionSeparator)
}

// InjectSections places the ordered body at the <<SECTIONS>> marker of base.
func InjectSections(base string, order []string, fragments map[string]string) string {
	return strings.Replace(base, Placeholder(TokenSections), JoinSections(order, fragments), 1)
}
