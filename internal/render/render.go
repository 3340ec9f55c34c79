package render

import (
	"regexp"
	"strings"

	"resume-builder/internal/model"
)

var (
	fontSizePattern = regexp.MustCompile(`^\d{1,2}pt$`)
	stretchPattern  = regexp.MustCompile(`^\d*\.?\d+$`)
	marginPattern   = regexp.MustCompile(`^\d*\.?\d+(pt|em|ex|in|cm|mm|bp|pc)$`)
	lengthPattern   = regexp.MustCompile(`^-?\d*\.?\d+(pt|em|ex|in|cm|mm|bp|pc)$`)
	colorPattern     = regexp.MustCompile(`^\s*(0(\.\d+)?|1(\.0+)?|\.\d+)\s*,\s*(0(\.\d+)?|1(\.0+)?|\.\d+)\s*,\s*(0(\.\d+)?|1(\.0+)?|\.\d+)\s*$`)
)

// Render walks doc with the theme's snippets and fills base in one pass.
func Render(t Theme, base string, doc Document) string {
	fragments := make(map[string]string, len(doc.Sections))
	for _, s := range doc.Sections {
		body := renderBlocks(t, s.Blocks)
		if body == "" {
			continue
		}
		frag := t.Section(s.Title, body)
		key := s.Kind.Token()
		if prev, ok := fragments[key]; ok {
			frag = prev + sectionSeparator + frag
		}
		fragments[key] = frag
	}

	tokens := styleTokens(t.Defaults(), doc.Style)
	for k, v := range headerTokens(t, doc.Header) {
		tokens[k] = v
	}
	if doc.Summary != "" {
		tokens[TokenSummary] = t.Section(SummaryTitle(doc.Style), doc.Summary)
	}
	tokens[TokenSections] = JoinSections(EffectiveOrder(doc.Style), fragments)
	return Substitute(base, tokens)
}

func renderBlocks(t Theme, blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		var out string
		switch b.Kind {
		case BlockEntry:
			out = t.Entry(b)
		case BlockBullets:
			out = t.Bullets(b.Bullets)
		case BlockSkills:
			if len(b.Skills) > 0 {
				out = t.Skills(b.Skills)
			}
		}
		if out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, t.EntryGap())
}

// styleTokens maps customization to tokens. A value that does not match its
// key's pattern falls back to the theme default.
func styleTokens(defaults, style model.CustomizationValues) map[string]string {
	valid := func(re *regexp.Regexp, v, def string) string {
		v = strings.TrimSpace(v)
		if re.MatchString(v) {
			return v
		}
		return def
	}
	color := style.PrimaryColor
	if !colorPattern.MatchString(color) {
		color = defaults.PrimaryColor
	}
	bullet := style.BulletIcon
	if strings.TrimSpace(bullet) == "" {
		bullet = defaults.BulletIcon
	}
	return map[string]string{
		TokenFontSize:       valid(fontSizePattern, style.FontSize, defaults.FontSize),
		TokenMargin:         valid(marginPattern, style.Margin, defaults.Margin),
		TokenLineSpacing:    valid(stretchPattern, style.LineSpacing, defaults.LineSpacing),
		TokenSectionSpacing: valid(lengthPattern, style.SectionSpacing, defaults.SectionSpacing),
		TokenItemSpacing:    valid(lengthPattern, style.ItemSpacing, defaults.ItemSpacing),
		TokenWordSpacing:    valid(lengthPattern, style.WordSpacing, defaults.WordSpacing),
		TokenBulletIcon:     bullet,
		TokenPrimaryColor:   strings.ReplaceAll(color, " ", ""),
	}
}

// headerTokens renders the contact line. Each link token carries its own
// leading separator so an absent link leaves nothing behind.
func headerTokens(t Theme, h Header) map[string]string {
	email := t.Link(Link{URL: h.EmailURL, Label: h.Email})
	out := map[string]string{
		TokenName:     h.Name,
		TokenJobTitle: h.JobTitle,
		TokenEmail:    email,
		TokenPhone:    h.Phone,
		TokenLocation: h.Location,
	}
	contact := []string{email, h.Phone, h.Location}
	for _, l := range h.Links {
		rendered := t.Link(l)
		contact = append(contact, rendered)
		switch l.Kind {
		case LinkLinkedIn:
			out[TokenLinkedIn] = t.Separator() + rendered
		case LinkGitHub:
			out[TokenGitHub] = t.Separator() + rendered
		case LinkWebsite:
			out[TokenWebsite] = t.Separator() + rendered
		}
	}
	out[TokenContact] = joinNonEmpty(t.Separator(), contact...)
	return out
}
