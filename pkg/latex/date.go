package latex

import (
	"strings"
	"time"
)

// Present is rendered for an absent end date: the entry is ongoing.
const Present = "Present"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
	"2006-01",
	"2006",
}

// ParseDate accepts the ISO shapes the editor produces.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatMonthYear renders "Jan 2006". Empty input means ongoing. Input that does
// not parse is returned as written.
func FormatMonthYear(date string) string {
	if strings.TrimSpace(date) == "" {
		return Present
	}
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	return t.Format("Jan 2006")
}

// FormatYear renders the four-digit year. Empty input means ongoing.
func FormatYear(date string) string {
	if strings.TrimSpace(date) == "" {
		return Present
	}
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	return t.Format("2006")
}

// DateRange joins two formatted dates with an en dash. A missing start yields
// only the end; both missing yields "".
func DateRange(start, end string, format func(string) string) string {
	if strings.TrimSpace(start) == "" {
		if strings.TrimSpace(end) == "" {
			return ""
		}
		return format(end)
	}
	return format(start) + " -- " + format(end)
}
