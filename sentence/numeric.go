package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Private use code points, never produced by Normalize.
const (
	guardSentinel = '\uE000' // stands in for a protected '.'
	guardEscape   = '\uE001' // precedes a literal sentinel or escape
)

// Protect hides the period of numeric literals such as 25.50, $2.50, $.50,
// 1.2.3 or 192.168.0.1 so that it is not seen as a sentence terminal. A period
// is protected when it is followed by a digit and preceded by a digit or a
// currency symbol. Restore(Protect(s)) == s for every s.
func Protect(text string) string {
	if !strings.ContainsAny(text, ".\uE000\uE001") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	var prev rune
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == guardSentinel || r == guardEscape:
			b.WriteRune(guardEscape)
			b.WriteRune(r)
		case r == '.' && (unicode.IsDigit(prev) || isCurrency(prev)) && digitAt(text, i+size):
			b.WriteRune(guardSentinel)
		default:
			b.WriteString(text[i : i+size])
		}
		prev = r
		i += size
	}
	return b.String()
}

// Restore undoes Protect.
func Restore(text string) string {
	if !strings.ContainsAny(text, "\uE000\uE001") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	escaped := false
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case escaped:
			b.WriteString(text[i : i+size])
			escaped = false
		case r == guardEscape:
			escaped = true
		case r == guardSentinel:
			b.WriteByte('.')
		default:
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	if escaped {
		b.WriteRune(guardEscape)
	}
	return b.String()
}

func digitAt(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsDigit(r)
}

func isCurrency(r rune) bool {
	switch r {
	case '$', '€', '£', '¥':
		return true
	}
	return false
}
