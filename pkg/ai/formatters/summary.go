package formatters

import "fmt"

type summaryFormatter struct{}

func (summaryFormatter) Section() string { return "summary" }

func (summaryFormatter) Prompt(context, lang string) string {
	return fmt.Sprintf(`Write a professional résumé summary of 2 to 3 sentences (150-300 characters) as a single paragraph, not a list.
Lead with the role and years of experience, then the strongest skills, then one concrete outcome.

About the candidate:
%s

`+rules, context, language(lang))
}
