package section

import (
	"sort"

	"resume-builder/pkg/latex"
)

// Title resolves the escaped heading for key. Overrides are matched
// case-insensitively, then the built-in label is used, then "".
func Title(key string, overrides map[string]string) string {
	if v := Override(key, overrides); v != "" {
		return latex.Escape(v)
	}
	if kind, ok := Parse(key); ok {
		return latex.Escape(kind.DefaultTitle())
	}
	return ""
}

// Override returns the raw user title for key. An exact normalized key wins;
// otherwise the first case-insensitive match in sorted key order is used.
func Override(key string, overrides map[string]string) string {
	key = Normalize(key)
	if v := overrides[key]; v != "" {
		return v
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if Normalize(k) == key && overrides[k] != "" {
			return overrides[k]
		}
	}
	return ""
}
