package render

import (
	"regexp"
	"strings"
)

// Token names understood by every generator. A base template writes them as
// <<NAME>>.
const (
	TokenFontSize       = "FONT_SIZE"
	TokenMargin         = "MARGIN"
	TokenLineSpacing    = "LINE_SPACING"
	TokenSectionSpacing = "SECTION_SPACING"
	TokenItemSpacing    = "ITEM_SPACING"
	TokenWordSpacing    = "WORD_SPACING"
	TokenBulletIcon     = "BULLET_ICON"
	TokenPrimaryColor   = "PRIMARY_COLOR"

	TokenName     = "NAME"
	TokenJobTitle = "JOB_TITLE"
	TokenEmail    = "EMAIL"
	TokenPhone    = "PHONE"
	TokenLocation = "LOCATION"
	TokenLinkedIn = "LINKEDIN"
	TokenGitHub   = "GITHUB"
	TokenWebsite  = "WEBSITE"
	TokenContact  = "CONTACT"

	TokenSummary  = "SUMMARY"
	TokenSections = "SECTIONS"
)

var knownTokens = map[string]struct{}{
	TokenFontSize: {}, TokenMargin: {}, TokenLineSpacing: {}, TokenSectionSpacing: {},
	TokenItemSpacing: {}, TokenWordSpacing: {}, TokenBulletIcon: {}, TokenPrimaryColor: {},
	TokenName: {}, TokenJobTitle: {}, TokenEmail: {}, TokenPhone: {}, TokenLocation: {},
	TokenLinkedIn: {}, TokenGitHub: {}, TokenWebsite: {}, TokenContact: {},
	TokenSummary: {}, TokenSections: {},
}

var tokenPattern = regexp.MustCompile(`<<([A-Z][A-Z0-9_]*)>>`)

// Placeholder returns the literal marker for a token name.
func Placeholder(name string) string {
	return "<<" + name + ">>"
}

// IsKnownToken reports whether name belongs to the generator vocabulary.
func IsKnownToken(name string) bool {
	_, ok := knownTokens[name]
	return ok
}

// Substitute replaces every known token in base in one pass. Known tokens
// without a value become ""; markers outside the vocabulary are left alone.
// Values are never rescanned, so user text cannot inject a token.
func Substitute(base string, values map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(base, func(m string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(m, "<<"), ">>")
		if !IsKnownToken(name) {
			return m
		}
		return values[name]
	})
}
