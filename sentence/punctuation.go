package sentence

import (
	"strings"
	"unicode/utf8"
)

const (
	// terminals can end a sentence.
	terminals = ".!?"
	// abbreviators are terminals that also appear inside abbreviations.
	abbreviators = "."
)

func isTerminal(r rune) bool {
	return strings.ContainsRune(terminals, r)
}

// isDefiniteTerminal reports whether r always ends a sentence.
func isDefiniteTerminal(r rune) bool {
	return isTerminal(r) && !strings.ContainsRune(abbreviators, r)
}

// tokenize splits a line into alternating runs of terminal and non-terminal
// characters.
//
//	"There ... is. More!" -> ["There ", "...", " is", ".", " More", "!"]
func tokenize(line string) []string {
	var runs []string
	start := 0
	inTerminal := false
	for i, r := range line {
		terminal := isTerminal(r)
		if i > 0 && terminal != inTerminal {
			runs = append(runs, line[start:i])
			start = i
		}
		inTerminal = terminal
	}
	if start < len(line) {
		runs = append(runs, line[start:])
	}
	return runs
}

// mergeParens appends every fragment opening with ')' to the fragment before
// it. A leading ')' fragment with nothing before it is kept as is.
func mergeParens(fragments []string) []string {
	merged := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if strings.HasPrefix(fragment, ")") && len(merged) > 0 {
			merged[len(merged)-1] += fragment
			continue
		}
		merged = append(merged, fragment)
	}
	return merged
}

// mergeRuns joins terminal runs onto the text that precedes them.
//
//	["There ", "...", " is", ".", " More", "!"] -> ["There ... is.", " More!"]
//
// A fragment ends after a lone terminal character or after any run holding a
// definite terminal.
func mergeRuns(fragments []string) []string {
	var merged []string
	var buf strings.Builder

	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		buf.WriteString(fragment)
		if isSingleTerminal(fragment) || strings.ContainsFunc(fragment, isDefiniteTerminal) {
			merged = append(merged, buf.String())
			buf.Reset()
		}
	}
	if buf.Len() > 0 {
		merged = append(merged, buf.String())
	}
	return merged
}

func isSingleTerminal(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size == len(s) && isTerminal(r)
}
