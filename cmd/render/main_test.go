package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adaYAML = `firstName: Ada
lastName: Lovelace
jobTitle: Engineer
workExperiences:
  - position: Developer
    company: Acme
    startDate: "2022-01"
    description:
      - Shipped {X}
customization:
  sectionOrder: [experience]
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestRunYAML(t *testing.T) {
	in := writeFile(t, "ada.yaml", adaYAML)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--in", in, "-t", "minimal"}, &out))
	assert.Contains(t, out.String(), "Acme")
	assert.Contains(t, out.String(), `\textbf{X}`)
	assert.NotContains(t, out.String(), "<<")
}

func TestRunJSONToFile(t *testing.T) {
	in := writeFile(t, "ada.json", `{"firstName":"Ada","skills":[{"label":"Languages","skills":["Go"]}]}`)
	outPath := filepath.Join(t.TempDir(), "ada.tex")
	require.NoError(t, run(context.Background(), []string{"--in", in, "--out", outPath}, &bytes.Buffer{}))
	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Languages")
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--list"}, &out))
	for _, name := range []string{"classic", "modern", "elegant"} {
		assert.Contains(t, out.String(), name)
	}
}

func TestRunErrors(t *testing.T) {
	yamlIn := writeFile(t, "ada.yaml", adaYAML)
	testCases := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "missing input", args: []string{}},
		{name: "pdf without engine", args: []string{"--in", yamlIn, "--pdf", "x.pdf", "--engine-url", ""}},
		{name: "unknown template", args: []string{"--in", yamlIn, "-t", "nope"}},
		{name: "unsupported extension", args: []string{"--in", writeFile(t, "ada.txt", "x")}},
		{
			name:    "schema violation",
			args:    []string{"--in", writeFile(t, "bad.json", `{"customization":{"primaryColor":"5,5,5"}}`)},
			wantErr: model.ErrInvalidResume,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(context.Background(), tc.args, &bytes.Buffer{})
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
