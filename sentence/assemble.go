package sentence

import (
	"strings"
	"unicode/utf8"
)

// assemble merges fragments into sentences.
//
// A new sentence starts after a fragment ending in a definite terminal, or
// when a multi-word fragment follows a sentence that already holds one. Single
// words therefore stay with their neighbours unless '!' or '?' separates them.
// Whitespace-only fragments never start a sentence.
func assemble(fragments []string) []string {
	var sentences []string
	var sentence strings.Builder
	hasMultiWord := false
	var previousEnding rune

	for _, fragment := range fragments {
		words := len(strings.Fields(fragment))

		if words > 0 && sentence.Len() > 0 &&
			(isDefiniteTerminal(previousEnding) || (hasMultiWord && words > 1)) {
			sentences = append(sentences, sentence.String())
			sentence.Reset()
			hasMultiWord = false
		}

		hasMultiWord = hasMultiWord || words > 1
		sentence.WriteString(fragment)
		if words > 0 {
			previousEnding, _ = utf8.DecodeLastRuneInString(fragment)
		}
	}

	if sentence.Len() > 0 {
		sentences = append(sentences, sentence.String())
	}
	return sentences
}
