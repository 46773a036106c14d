package sentence

import (
	"regexp"
	"strings"
)

var lineBreaks = regexp.MustCompile(`([\r\n]+)`)

// segmentLines breaks text into line groups. A run of \r and \n characters
// counts as one break and stays attached to the end of the line it closes,
// so joining the result gives back text.
func segmentLines(text string) []string {
	var lines []string
	var line strings.Builder

	for _, piece := range SplitPattern(lineBreaks, text, -1, PatternDelimCapture) {
		line.WriteString(piece.Text)
		if Trim(piece.Text) == "" {
			lines = append(lines, line.String())
			line.Reset()
		}
	}
	return append(lines, line.String())
}
