package formatters

import "fmt"

// skillsFormatter groups a loose list of skills under short labels.
type skillsFormatter struct{}

func (skillsFormatter) Section() string { return "skills" }

func (skillsFormatter) Prompt(context, lang string) string {
	return fmt.Sprintf(`Group these skills into 2 to 5 categories.
Write one bullet per category as "- **Label**: skill, skill, skill".
Use conventional labels (Languages, Frameworks, Cloud, Databases, Tools). Drop duplicates.

Skills:
%s

`+rules, context, language(lang))
}
