package daocache

import (
	"strings"
	"unicode"
)

// toSnake turns a kind name such as "clientOrg" into "client_org". Anything
// that is not a letter or digit becomes a single underscore, so the result is
// safe to use as a key namespace.
func toSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	pendingSep := false
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				pendingSep = true
			}
			r = unicode.ToLower(r)
		case unicode.IsLower(r), unicode.IsDigit(r):
		default:
			pendingSep = true
			continue
		}

		if pendingSep && b.Len() > 0 {
			b.WriteByte('_')
		}
		pendingSep = false
		b.WriteRune(r)
	}
	return b.String()
}
