package sentence

import (
	"html"
	"strings"
)

// quoteReplacer maps typographic quotation marks to their ASCII form. The
// C1 control entries are Windows-1252 quotes that were decoded as Latin-1.
var quoteReplacer = strings.NewReplacer(
	// Windows-1252 read as Latin-1
	"\u0082", "'", // single low-9
	"\u0084", `"`, // double low-9
	"\u008B", "'", // single left-pointing angle
	"\u0091", "'", // left single
	"\u0092", "'", // right single
	"\u0093", `"`, // left double
	"\u0094", `"`, // right double
	"\u009B", "'", // single right-pointing angle

	"«", `"`, // left-pointing double angle
	"»", `"`, // right-pointing double angle
	"‘", "'", // left single
	"’", "'", // right single
	"‚", "'", // single low-9
	"‛", "'", // single high-reversed-9
	"“", `"`, // left double
	"”", `"`, // right double
	"„", `"`, // double low-9
	"‟", `"`, // double high-reversed-9
	"‹", "'", // single left-pointing angle
	"›", "'", // single right-pointing angle
)

// Normalize decodes HTML character entities and replaces curly, low and
// angle quotation marks with plain ' and ". Entities are decoded until none
// remain, so Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	for strings.Contains(text, "&") {
		decoded := html.UnescapeString(text)
		if decoded == text {
			break
		}
		text = decoded
	}
	return quoteReplacer.Replace(text)
}
