package formatters

import "fmt"

type achievementsFormatter struct{}

func (achievementsFormatter) Section() string { return "achievements" }

func (achievementsFormatter) Prompt(context, lang string) string {
	return fmt.Sprintf(`Rewrite these achievements as 1 to 4 concise résumé bullets.
Name the award or result first, then the scale (rank, out of how many, who granted it).

Achievements:
%s

`+rules, context, language(lang))
}
