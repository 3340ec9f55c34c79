package render

import (
	"testing"

	"resume-builder/internal/model"
	"resume-builder/internal/section"

	"github.com/stretchr/testify/assert"
)

func TestMergeCustomization(t *testing.T) {
	defaults := classic{}.Defaults()

	t.Run("nil user keeps defaults", func(t *testing.T) {
		got := MergeCustomization(defaults, nil)
		assert.Equal(t, defaults, got)

		got.SectionOrder[0] = "skills"
		assert.Equal(t, "experience", defaults.SectionOrder[0])
	})

	t.Run("non-empty keys override", func(t *testing.T) {
		got := MergeCustomization(defaults, &model.CustomizationValues{
			FontSize:      "12pt",
			Margin:        " ",
			SectionOrder:  []string{"skills"},
			SectionTitles: map[string]string{" Experience ": "Work"},
		})
		assert.Equal(t, "12pt", got.FontSize)
		assert.Equal(t, defaults.Margin, got.Margin)
		assert.Equal(t, []string{"skills"}, got.SectionOrder)
		assert.Equal(t, map[string]string{"experience": "Work"}, got.SectionTitles)
	})

	t.Run("colliding title keys resolve to exact key", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			got := MergeCustomization(defaults, &model.CustomizationValues{
				SectionTitles: map[string]string{"Skills": "A", "skills": "B"},
			})
			assert.Equal(t, map[string]string{"skills": "B"}, got.SectionTitles)
		}
	})

	t.Run("empty order falls back", func(t *testing.T) {
		got := MergeCustomization(defaults, &model.CustomizationValues{SectionOrder: []string{}})
		assert.Equal(t, defaults.SectionOrder, got.SectionOrder)
	})
}

func TestEffectiveOrder(t *testing.T) {
	assert.Equal(t, section.DefaultOrder(), EffectiveOrder(model.CustomizationValues{}))
	assert.Equal(t, []string{"skills"}, EffectiveOrder(model.CustomizationValues{SectionOrder: []string{"skills"}}))
}
