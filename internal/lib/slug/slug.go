package slug

import "strings"

var accents = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
	"Ü", "u", "Ñ", "n",
)

// Make turns a free-text title into a URL-safe identifier. Returns fallback
// when the title contains nothing usable.
func Make(title, fallback string) string {
	s := accents.Replace(strings.ToLower(strings.TrimSpace(title)))

	var b strings.Builder
	lastDash := true

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	out := strings.Trim(b.String(), "-")
	if out == "" {
		return fallback
	}

	return out
}
