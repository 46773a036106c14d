package format

import (
	"regexp"
	"strconv"
	"strings"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
)

// A sentence starting with one of these would open a nested list.
var leadingListMarker = regexp.MustCompile(`^(?:[-+]|(\d+)([.)]))`)

func escapeMarkdownLine(line string) string {
	line = markdownEscaper.Replace(line)
	return leadingListMarker.ReplaceAllStringFunc(line, func(marker string) string {
		if n := len(marker); marker[n-1] == '.' || marker[n-1] == ')' {
			return marker[:n-1] + `\` + marker[n-1:]
		}
		return `\` + marker
	})
}

// SentencesMarkdown renders sentences as an ordered markdown list. Line
// breaks inside a sentence are folded into spaces so each sentence stays one
// list item.
func SentencesMarkdown(sentences []string) string {
	var b strings.Builder
	for i, s := range sentences {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(escapeMarkdownLine(strings.Join(strings.Fields(s), " ")))
		b.WriteString("\n")
	}
	return b.String()
}
