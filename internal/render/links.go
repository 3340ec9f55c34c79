package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NormalizeURL adds an https scheme when the user typed a bare host.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "mailto:") {
		return raw
	}
	return "https://" + raw
}

// LinkLabel produces the short human label printed for a URL, e.g.
// "https://www.linkedin.com/in/ada/" becomes "linkedin.com/in/ada".
func LinkLabel(raw string) string {
	candidate := NormalizeURL(raw)
	if candidate == "" {
		return ""
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return strings.TrimSpace(raw)
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil && strings.TrimPrefix(host, "www.") == etld {
		host = etld
	} else {
		host = strings.TrimPrefix(host, "www.")
	}
	return host + strings.TrimRight(parsed.EscapedPath(), "/")
}
