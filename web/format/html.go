package format

import (
	"html"
	"regexp"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

var newlines = regexp.MustCompile(`\r\n|\n\r|\n|\r`)

// SentenceHTML escapes a sentence for HTML and inserts <br /> before every
// line break, keeping the break itself.
func SentenceHTML(sentence string) string {
	return newlines.ReplaceAllString(html.EscapeString(sentence), "<br />$0")
}

// MarkdownToHTML converts markdown to HTML. Raw HTML in the input is
// escaped rather than passed through.
func MarkdownToHTML(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.SkipHTML,
	})
	return string(markdown.ToHTML([]byte(md), p, renderer))
}

// SentencesHTML renders sentences as an HTML ordered list.
func SentencesHTML(sentences []string) string {
	if len(sentences) == 0 {
		return ""
	}
	return MarkdownToHTML(SentencesMarkdown(sentences))
}
