package catalog

import (
	"strings"
	"unicode"
)

// slugify приводит заголовок к виду "serengeti-migration-safari"
func slugify(s string) string {
	var b strings.Builder
	dash := false

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}

func validSlug(s string) bool {
	return s != "" && slugify(s) == s
}
