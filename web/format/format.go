package format

import (
	"fmt"
	"strings"
)

// Format selects how a list of sentences is rendered in API responses.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Parse maps a request value to a Format. An empty value is JSON.
func Parse(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q", value)
	}
}

// Render renders sentences in the given format. JSON has no text rendering
// and yields an empty string.
func Render(f Format, sentences []string) string {
	switch f {
	case FormatMarkdown:
		return SentencesMarkdown(sentences)
	case FormatHTML:
		return SentencesHTML(sentences)
	default:
		return ""
	}
}
