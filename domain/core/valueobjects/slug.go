package valueobjects

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug is a value object holding a URL-safe site identifier derived from the
// business name. It doubles as the stable site key for all hash-based
// creative choices, so its derivation must never change.
type Slug struct {
	value string
}

const maxSlugLen = 60

// fallbackSlug is used when the business name folds down to nothing.
const fallbackSlug = "nb-site"

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NewSlug derives a slug from a free-text name: lowercase, diacritics folded,
// non-alphanumeric runs collapsed to single dashes, trimmed to 60 chars.
func NewSlug(name string) Slug {
	s := strings.ToLower(strings.TrimSpace(name))
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}

	var b strings.Builder
	lastDash := true // suppress a leading dash
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
	if len(out) > maxSlugLen {
		out = strings.Trim(out[:maxSlugLen], "-")
	}
	if out == "" {
		out = fallbackSlug
	}
	return Slug{value: out}
}

// String returns the slug text.
func (s Slug) String() string {
	return s.value
}

// IsZero checks if the Slug is the zero value
func (s Slug) IsZero() bool {
	return s.value == ""
}

// FoldText lowercases, trims and strips diacritics from free text. All
// keyword classifiers match against folded text so "Clínica" and "clinica"
// behave identically.
func FoldText(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(deaccent, t); err == nil {
		return folded
	}
	return t
}
