package normalize

import (
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// Href passes a CTA link through the scheme allow-list. Allowed:
// http/https, mailto, tel, hash fragments, relative paths and bare
// wa.me links (upgraded to https). Anything else collapses to "#".
func Href(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "#"
	}

	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "mailto:"),
		strings.HasPrefix(lower, "tel:"):
		return s
	case strings.HasPrefix(s, "#"),
		strings.HasPrefix(s, "/"),
		strings.HasPrefix(s, "./"):
		return s
	case strings.HasPrefix(lower, "wa.me/"):
		return "https://" + s
	}

	if schemeRe.MatchString(s) {
		return "#"
	}

	// Bare relative path like "eventos.html".
	return s
}
