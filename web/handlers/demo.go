package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sentencer/web/format"
	"sentencer/web/services"
)

const DemoTemplateName = "demo.html"

const demoTemplate = `<!DOCTYPE html>
<html>
    <head>
        <meta charset="UTF-8">
        <title>sentencer</title>
    </head>
    <body>
        <h1>Sentence example</h1>

        <h2>Text parsed</h2>
        {{.Text}}

        <h2>Sentences counted</h2>
        {{.Count}}

        <h2>Sentences</h2>
        <ol>
        {{range .Sentences}}<li>{{.}}</li>
        {{end}}</ol>
    </body>
</html>
`

// DemoTemplate parses the demo page template.
func DemoTemplate() *template.Template {
	return template.Must(template.New(DemoTemplateName).Parse(demoTemplate))
}

type demoPage struct {
	Text      template.HTML
	Count     int
	Sentences []template.HTML
}

type DemoHandler struct {
	service *services.SegmentService
	text    string
	logger  *zap.Logger
}

func NewDemoHandler(service *services.SegmentService, text string, logger *zap.Logger) *DemoHandler {
	return &DemoHandler{
		service: service,
		text:    text,
		logger:  logger,
	}
}

// Index renders the sample text, its sentence count and the sentences.
// A text query parameter replaces the sample text.
func (h *DemoHandler) Index(c *gin.Context) {
	text := c.DefaultQuery("text", h.text)

	sentences, err := h.service.Split(c.Request.Context(), text, false)
	if err != nil {
		respondWithServiceError(c, err, "Failed to split text", h.logger)
		return
	}

	// SentenceHTML escapes its input
	page := demoPage{
		Text:      template.HTML(format.SentenceHTML(text)),
		Count:     len(sentences),
		Sentences: make([]template.HTML, len(sentences)),
	}
	for i, s := range sentences {
		page.Sentences[i] = template.HTML(format.SentenceHTML(s))
	}

	c.HTML(http.StatusOK, DemoTemplateName, page)
}
