package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	testCases := []struct {
		section string
		want    string
	}{
		{section: "summary", want: "single paragraph"},
		{section: " Experience ", want: "work experience"},
		{section: "por", want: "position of responsibility"},
		{section: "extracurriculars", want: "extracurricular activity"},
		{section: "projects", want: "this project"},
		{section: "skills", want: "**Label**"},
		{section: "achievements", want: "award"},
	}
	for _, tc := range testCases {
		t.Run(tc.section, func(t *testing.T) {
			f, ok := For(tc.section)
			require.True(t, ok)
			p := f.Prompt("Go developer at Acme", "")
			assert.Contains(t, p, tc.want)
			assert.Contains(t, p, "Go developer at Acme")
			assert.Contains(t, p, "Answer in English only.")
		})
	}
}

func TestForUnknown(t *testing.T) {
	_, ok := For("education")
	assert.False(t, ok)
}

func TestPromptLanguage(t *testing.T) {
	f, _ := For("summary")
	assert.Contains(t, f.Prompt("x", "Portuguese"), "Answer in Portuguese only.")
}

func TestSections(t *testing.T) {
	assert.ElementsMatch(t, []string{"summary", "experience", "por", "extracurriculars", "projects", "skills", "achievements"}, Sections())
}
