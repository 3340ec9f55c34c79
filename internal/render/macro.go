package render

import "strings"

// macro writes \name{arg1}{arg2}... .
func macro(name string, args ...string) string {
	var b strings.Builder
	b.WriteString(`\` + name)
	for _, a := range args {
		b.WriteString("{" + a + "}")
	}
	return b.String()
}
