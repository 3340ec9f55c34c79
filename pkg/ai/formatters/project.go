package formatters

import "fmt"

type projectFormatter struct{}

func (projectFormatter) Section() string { return "projects" }

func (projectFormatter) Prompt(context, lang string) string {
	return fmt.Sprintf(`Write 2 to 4 résumé bullets for this project.
First bullet: what it does and for whom. Following bullets: technical decisions and measurable results.
Mention the tech stack only where it explains a result.

Project:
%s

`+rules, context, language(lang))
}
