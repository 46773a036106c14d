package sentence

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// PatternFlag controls the output of SplitPattern. Flags can be combined.
type PatternFlag int

const (
	// PatternNoEmpty omits zero-length pieces.
	PatternNoEmpty PatternFlag = 1 << iota
	// PatternDelimCapture includes the whole matched delimiter as a piece of
	// its own when the pattern's first group matched something.
	PatternDelimCapture
	// PatternOffsetCapture records the codepoint offset of every piece.
	PatternOffsetCapture
)

// Piece is a substring produced by SplitPattern. Offset counts codepoints
// (not bytes) from the start of the input and is only set when
// PatternOffsetCapture is requested.
type Piece struct {
	Text   string
	Offset int
}

// SplitPattern splits text around the matches of re.
//
// A limit greater than zero caps the number of non-delimiter pieces; the last
// of them holds the rest of the text unsplit. A limit of zero or less means
// no limit. Pieces are always cut on rune boundaries.
func SplitPattern(re *regexp.Regexp, text string, limit int, flags PatternFlag) []Piece {
	noEmpty := flags&PatternNoEmpty != 0
	delimCapture := flags&PatternDelimCapture != 0
	offsetCapture := flags&PatternOffsetCapture != 0

	var pieces []Piece
	emit := func(start, end int) {
		p := Piece{Text: text[start:end]}
		if offsetCapture {
			p.Offset = utf8.RuneCountInString(text[:start])
		}
		pieces = append(pieces, p)
	}

	count := 1
	position := 0
	for _, match := range re.FindAllStringSubmatchIndex(text, -1) {
		if !noEmpty || match[0] > position {
			count++
			if limit > 0 && count > limit {
				emit(position, len(text))
				return pieces
			}
			emit(position, match[0])
		}

		if delimCapture && len(match) > 3 && match[3] > match[2] {
			emit(match[0], match[1])
		}
		position = match[1]
	}

	if !noEmpty || position < len(text) {
		emit(position, len(text))
	}
	return pieces
}

// Texts returns the text of every piece.
func Texts(pieces []Piece) []string {
	texts := make([]string, len(pieces))
	for i, p := range pieces {
		texts[i] = p.Text
	}
	return texts
}

// Trim removes leading and trailing Unicode whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}
