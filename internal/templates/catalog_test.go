package templates

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() model.ResumeValues {
	return model.ResumeValues{
		FirstName: "Ada",
		LastName:  "Lovelace",
		JobTitle:  "Engineer",
		Email:     "ada@example.com",
		Phone:     "+44 20 7946 0000",
		Location:  "London",
		GitHub:    "github.com/ada",
		LinkedIn:  "linkedin.com/in/ada",
		Website:   "ada.dev",
		Summary:   "Writes {programs} for engines & looms",
		WorkExperiences: []model.WorkExperience{{
			Position: "Engineer", Company: "Acme", StartDate: "2022-01",
			Link:        "https://acme.example/team",
			Description: []string{"Shipped X", "Cut costs by 30%"},
		}},
		Educations:     []model.Education{{School: "Cambridge", Degree: "BSc", StartDate: "2015", EndDate: "2019"}},
		Projects:       []model.Project{{Title: "Engine", TechStack: "Go, C", Description: []string{"{Fast} path"}}},
		Skills:         []model.SkillGroup{{Label: "Languages", Skills: []string{"Go", "C_99"}}},
		Certifications: []model.Certification{{Name: "CKA", Issuer: "CNCF", Date: "2023-05"}},
		POR:            []model.PositionOfResponsibility{{Role: "Chair", Organization: "Society"}},
		Achievements:   []model.Achievement{{Title: "Prize"}, {Description: []string{"Bare line"}}},
		Extracurriculars: []model.Extracurricular{{
			Activity: "Chess", Description: []string{"Captain"},
		}},
		CustomSections: []model.CustomSection{{Title: "Talks", Entries: []model.CustomSectionEntry{
			{Heading: "GopherCon", StartDate: "2024-06"},
			{Description: []string{"Many meetups"}},
		}}},
	}
}

// braceDepth reports the final depth of unescaped braces and whether it ever
// went negative.
func braceDepth(s string) (int, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return depth, false
			}
		}
	}
	return depth, true
}

func TestBuiltinsRender(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, len(render.Themes()))
	for _, tpl := range list {
		t.Run(tpl.Name, func(t *testing.T) {
			_, ok := render.ThemeFor(tpl.Name)
			require.True(t, ok)

			out := render.Generate(tpl.Name, tpl.Markup, sampleResume())
			require.NotEmpty(t, out)
			for _, want := range []string{"Ada", "Engineer", "Acme", "Jan 2022", "Present", "Shipped X", `\textbf{programs}`, "GopherCon"} {
				assert.Contains(t, out, want)
			}
			assert.NotContains(t, out, "<<")
			assert.Equal(t, strings.Count(out, `\begin{itemize}`), strings.Count(out, `\end{itemize}`))
			assert.Equal(t, 1, strings.Count(out, `\begin{document}`))
			assert.True(t, strings.HasSuffix(strings.TrimSpace(out), `\end{document}`))

			depth, ok := braceDepth(out)
			assert.True(t, ok)
			assert.Equal(t, 0, depth)
		})
	}
}

func TestBuiltinsUseEveryStyleToken(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	for _, tpl := range c.List() {
		for _, tok := range []string{
			render.TokenFontSize, render.TokenMargin, render.TokenLineSpacing,
			render.TokenSectionSpacing, render.TokenItemSpacing, render.TokenWordSpacing,
			render.TokenBulletIcon, render.TokenPrimaryColor, render.TokenName,
			render.TokenSummary, render.TokenSections,
		} {
			assert.Contains(t, tpl.Markup, render.Placeholder(tok), "%s lacks %s", tpl.Name, tok)
		}
	}
}

func TestCatalogGet(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)

	tpl, err := c.Get(" Modern ")
	require.NoError(t, err)
	assert.Equal(t, "modern", tpl.Name)
	assert.Equal(t, domain.TierPro, tpl.MinTier)

	_, err = c.Get("nope")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCatalogListOrder(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	list := c.List()
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].MinTier, list[i].MinTier)
	}
	assert.Equal(t, domain.TierFree, list[0].MinTier)
}

func TestCatalogOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Classic.tex"), []byte("custom <<SECTIONS>>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unknown.tex"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	c, err := New(dir)
	require.NoError(t, err)

	tpl, err := c.Get("classic")
	require.NoError(t, err)
	assert.Equal(t, "custom <<SECTIONS>>", tpl.Markup)
	assert.Equal(t, "Classic", tpl.DisplayName)

	_, err = c.Get("unknown")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCatalogMissingOverrideDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, err)
}

func TestCatalogWatch(t *testing.T) {
	dir := t.TempDir()
	c, err := New(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Watch(ctx) }()

	path := filepath.Join(dir, "minimal.tex")
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("reloaded"), 0o644)
		tpl, err := c.Get("minimal")
		return err == nil && tpl.Markup == "reloaded"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatchWithoutDir(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.NoError(t, c.Watch(context.Background()))
}

func TestBuiltinsContactLine(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)

	testCases := []struct {
		name   string
		mutate func(v *model.ResumeValues)
		want   []string
	}{
		{
			name: "no location with linkedin",
			mutate: func(v *model.ResumeValues) {
				v.Location, v.GitHub, v.Website = "", "", ""
			},
			want: []string{"linkedin.com/in/ada"},
		},
		{
			name: "location without links",
			mutate: func(v *model.ResumeValues) {
				v.LinkedIn, v.GitHub, v.Website = "", "", ""
			},
			want: []string{"London"},
		},
		{
			name:   "everything set",
			mutate: func(v *model.ResumeValues) {},
			want:   []string{"London", "linkedin.com/in/ada", "github.com/ada", "ada.dev"},
		},
	}
	for _, tpl := range c.List() {
		th, ok := render.ThemeFor(tpl.Name)
		require.True(t, ok)
		sep := th.Separator()
		for _, tc := range testCases {
			t.Run(tpl.Name+"/"+tc.name, func(t *testing.T) {
				v := sampleResume()
				tc.mutate(&v)
				out := render.Generate(tpl.Name, tpl.Markup, v)
				for _, want := range tc.want {
					assert.Contains(t, out, want)
				}
				assert.NotContains(t, out, sep+sep)
				assert.NotContains(t, out, sep+"}")
				assert.NotContains(t, out, sep+"\n")
				assert.NotContains(t, out, sep+" "+strings.TrimSpace(sep))
			})
		}
	}
}
