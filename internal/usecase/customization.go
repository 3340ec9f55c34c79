package usecase

import (
	"fmt"
	"sort"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/section"
)

// CustomizationPatch overwrites the keys that are set. SectionTitles entries
// with an empty value remove the override.
type CustomizationPatch struct {
	FontSize       *string           `json:"fontSize,omitempty"`
	Margin         *string           `json:"margin,omitempty"`
	LineSpacing    *string           `json:"lineSpacing,omitempty"`
	SectionSpacing *string           `json:"sectionSpacing,omitempty"`
	ItemSpacing    *string           `json:"itemSpacing,omitempty"`
	WordSpacing    *string           `json:"wordSpacing,omitempty"`
	BulletIcon     *string           `json:"bulletIcon,omitempty"`
	PrimaryColor   *string           `json:"primaryColor,omitempty"`
	SectionOrder   []string          `json:"sectionOrder,omitempty"`
	SectionTitles  map[string]string `json:"sectionTitles,omitempty"`
}

// DefaultCustomization is what a résumé gets when it is bound to templateName.
func DefaultCustomization(templateName string) (model.CustomizationValues, error) {
	t, ok := render.ThemeFor(templateName)
	if !ok {
		return model.CustomizationValues{}, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, templateName)
	}
	return render.MergeCustomization(t.Defaults(), nil), nil
}

// MergeCustomization overlays every non-empty user key on defaults.
func MergeCustomization(defaults model.CustomizationValues, user *model.CustomizationValues) model.CustomizationValues {
	return render.MergeCustomization(defaults, user)
}

// ResetCustomization restores the template defaults.
func ResetCustomization(templateName string) (model.CustomizationValues, error) {
	return DefaultCustomization(templateName)
}

// ApplyCustomizationPatch returns current with the patch applied. current is
// not modified.
func ApplyCustomizationPatch(current model.CustomizationValues, patch CustomizationPatch) (model.CustomizationValues, error) {
	out := render.MergeCustomization(current, nil)
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&out.FontSize, patch.FontSize)
	set(&out.Margin, patch.Margin)
	set(&out.LineSpacing, patch.LineSpacing)
	set(&out.SectionSpacing, patch.SectionSpacing)
	set(&out.ItemSpacing, patch.ItemSpacing)
	set(&out.WordSpacing, patch.WordSpacing)
	set(&out.BulletIcon, patch.BulletIcon)
	set(&out.PrimaryColor, patch.PrimaryColor)

	if patch.SectionOrder != nil {
		order, err := NormalizeSectionOrder(patch.SectionOrder)
		if err != nil {
			return model.CustomizationValues{}, err
		}
		out.SectionOrder = order
	}
	for _, k := range titleKeys(patch.SectionTitles) {
		v := patch.SectionTitles[k]
		key := section.Normalize(k)
		if _, ok := section.Parse(key); !ok && key != "summary" {
			return model.CustomizationValues{}, fmt.Errorf("%w: unknown section %q", domain.ErrInvalidCustomization, k)
		}
		if out.SectionTitles == nil {
			out.SectionTitles = map[string]string{}
		}
		if v == "" {
			delete(out.SectionTitles, key)
			continue
		}
		out.SectionTitles[key] = v
	}
	return out, nil
}

// titleKeys orders keys so that an exact normalized key is applied after its
// case variants and so wins.
func titleKeys(titles map[string]string) []string {
	keys := make([]string, 0, len(titles))
	for k := range titles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ei, ej := keys[i] == section.Normalize(keys[i]), keys[j] == section.Normalize(keys[j])
		if ei != ej {
			return ej
		}
		return keys[i] < keys[j]
	})
	return keys
}

// NormalizeSectionOrder canonicalizes keys and drops duplicates. Unknown keys
// are rejected.
func NormalizeSectionOrder(keys []string) ([]string, error) {
	seen := make(map[section.Kind]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		kind, ok := section.Parse(k)
		if !ok {
			return nil, fmt.Errorf("%w: unknown section %q", domain.ErrInvalidCustomization, k)
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		out = append(out, kind.Key())
	}
	return out, nil
}
