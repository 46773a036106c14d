package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sentencer/web/services"
	"sentencer/web/types"
)

type PDFHandler struct {
	pdf         *services.PDFService
	segments    *services.SegmentService
	defaultTrim bool
	logger      *zap.Logger
}

func NewPDFHandler(pdf *services.PDFService, segments *services.SegmentService, defaultTrim bool, logger *zap.Logger) *PDFHandler {
	return &PDFHandler{
		pdf:         pdf,
		segments:    segments,
		defaultTrim: defaultTrim,
		logger:      logger,
	}
}

// Upload handles POST /api/pdf. Form fields: file (required), trim and save
// (optional booleans). With save=true the result is archived under the
// file name.
func (h *PDFHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondWithClientError(c, http.StatusBadRequest, "A PDF file is required in the 'file' field")
		return
	}

	filename, err := h.pdf.ValidateUpload(file)
	if err != nil {
		respondWithServiceError(c, err, "Invalid upload", h.logger)
		return
	}

	trim := h.defaultTrim
	if value := c.PostForm("trim"); value != "" {
		if trim, err = strconv.ParseBool(value); err != nil {
			respondWithClientError(c, http.StatusBadRequest, "trim must be a boolean")
			return
		}
	}
	save, _ := strconv.ParseBool(c.PostForm("save"))

	text, err := h.pdf.ExtractFromUpload(c.Request.Context(), file)
	if err != nil {
		respondWithServiceError(c, err, "Failed to read PDF", h.logger, zap.String("filename", filename))
		return
	}

	if save {
		doc, err := h.segments.SaveDocument(c.Request.Context(), filename, text, trim)
		if err != nil {
			respondWithServiceError(c, err, "Failed to save document", h.logger, zap.String("filename", filename))
			return
		}
		id := doc.ID
		c.JSON(http.StatusCreated, types.SplitResponse{Sentences: doc.Sentences, Count: len(doc.Sentences), DocumentID: &id})
		return
	}

	sentences, err := h.segments.Split(c.Request.Context(), text, trim)
	if err != nil {
		respondWithServiceError(c, err, "Failed to split PDF text", h.logger, zap.String("filename", filename))
		return
	}

	c.JSON(http.StatusOK, types.SplitResponse{Sentences: sentences, Count: len(sentences)})
}
