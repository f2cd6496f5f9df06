package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify turns a name or title into a lowercase, hyphen separated slug.
// Accents are folded to their base letter and anything that is not a letter
// or digit becomes a separator.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// EnsureSlug keeps slug when set and derives one from source otherwise.
// Uniqueness is not checked here.
func EnsureSlug(slug, source string) string {
	if s := strings.TrimSpace(slug); s != "" {
		return s
	}
	return Slugify(source)
}
