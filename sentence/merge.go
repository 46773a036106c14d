package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxAbbreviationLen is the longest final word, in codepoints, that is still
// read as an abbreviation ("Mr.", "B.", "Co.").
const maxAbbreviationLen = 3

// mergeAbbreviations glues fragments ending in a short capitalised word with
// a period onto the fragment that follows.
//
//	["Director of the F.", "B.", "I.", " James was fired."]
//	  -> ["Director of the F.B.I. James was fired."]
func mergeAbbreviations(fragments []string) []string {
	merged := make([]string, 0, len(fragments))
	previousIsAbbreviation := false

	for _, fragment := range fragments {
		isAbbreviation := endsInAbbreviation(fragment)
		if previousIsAbbreviation && len(merged) > 0 {
			merged[len(merged)-1] += fragment
		} else {
			merged = append(merged, fragment)
		}
		previousIsAbbreviation = isAbbreviation
	}
	return merged
}

// endsInAbbreviation reports whether the last word of fragment starts with an
// uppercase letter, ends in '.' and is at most maxAbbreviationLen long.
func endsInAbbreviation(fragment string) bool {
	trimmed := Trim(fragment)
	if !strings.HasSuffix(trimmed, ".") {
		return false
	}
	words := strings.Fields(trimmed)
	last := words[len(words)-1]
	first, _ := utf8.DecodeRuneInString(last)
	return unicode.IsUpper(first) && utf8.RuneCountInString(last) <= maxAbbreviationLen
}

// mergeClosingQuotes appends closing quotes to the statement they close.
//
//	[`"Stop!`, `" he said.`] -> [`"Stop!" he said.`]
func mergeClosingQuotes(fragments []string) []string {
	merged := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if isClosingQuote(fragment) && len(merged) > 0 {
			merged[len(merged)-1] += fragment
			continue
		}
		merged = append(merged, fragment)
	}
	return merged
}

// isClosingQuote reports whether fragment is a lone quote, or a quote
// followed by a space and a lowercase letter.
func isClosingQuote(fragment string) bool {
	switch Trim(fragment) {
	case `"`, "'":
		return true
	}

	var lead [3]rune
	n := 0
	for _, r := range fragment {
		lead[n] = r
		n++
		if n == len(lead) {
			break
		}
	}
	return n == len(lead) && isQuote(lead[0]) && lead[1] == ' ' && unicode.IsLower(lead[2])
}

func isQuote(r rune) bool {
	return r == '"' || r == '\''
}
