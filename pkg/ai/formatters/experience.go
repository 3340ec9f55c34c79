package formatters

import "fmt"

// experienceFormatter covers every entry with a role, an organization and dates.
type experienceFormatter struct {
	section string
	noun    string
}

func (f experienceFormatter) Section() string { return f.section }

func (f experienceFormatter) Prompt(context, lang string) string {
	return fmt.Sprintf(`Write 3 to 5 résumé bullets for this %s.
Start every bullet with a strong past-tense verb (present tense if the entry is ongoing).
Quantify impact where the notes allow it; never invent numbers that are not implied.
Keep each bullet under 200 characters.

Entry:
%s

`+rules, f.noun, context, language(lang))
}
