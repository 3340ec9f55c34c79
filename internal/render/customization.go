package render

import (
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/section"
)

// MergeCustomization overlays every non-empty user key on the template
// defaults. The result shares no slices or maps with either input.
func MergeCustomization(defaults model.CustomizationValues, user *model.CustomizationValues) model.CustomizationValues {
	out := cloneCustomization(defaults)
	if user == nil {
		return out
	}
	pick := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	pick(&out.FontSize, user.FontSize)
	pick(&out.Margin, user.Margin)
	pick(&out.LineSpacing, user.LineSpacing)
	pick(&out.SectionSpacing, user.SectionSpacing)
	pick(&out.ItemSpacing, user.ItemSpacing)
	pick(&out.WordSpacing, user.WordSpacing)
	pick(&out.BulletIcon, user.BulletIcon)
	pick(&out.PrimaryColor, user.PrimaryColor)
	if len(user.SectionOrder) > 0 {
		out.SectionOrder = append([]string(nil), user.SectionOrder...)
	}
	for k := range user.SectionTitles {
		if out.SectionTitles == nil {
			out.SectionTitles = map[string]string{}
		}
		key := section.Normalize(k)
		out.SectionTitles[key] = section.Override(key, user.SectionTitles)
	}
	return out
}

func cloneCustomization(c model.CustomizationValues) model.CustomizationValues {
	out := c
	out.SectionOrder = append([]string(nil), c.SectionOrder...)
	if c.SectionTitles != nil {
		out.SectionTitles = make(map[string]string, len(c.SectionTitles))
		for k, v := range c.SectionTitles {
			out.SectionTitles[k] = v
		}
	}
	return out
}

// EffectiveOrder returns the user's order, or the built-in order when unset.
func EffectiveOrder(c model.CustomizationValues) []string {
	if len(c.SectionOrder) == 0 {
		return section.DefaultOrder()
	}
	return c.SectionOrder
}
