package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sentencer/database"
	"sentencer/web/services"
	"sentencer/web/types"
)

type DocumentHandler struct {
	service     *services.SegmentService
	defaultTrim bool
	logger      *zap.Logger
}

func NewDocumentHandler(service *services.SegmentService, defaultTrim bool, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		service:     service,
		defaultTrim: defaultTrim,
		logger:      logger,
	}
}

func toDocumentResponse(doc database.Document) types.DocumentResponse {
	return types.DocumentResponse{
		ID:        doc.ID,
		Source:    doc.Source,
		Content:   doc.Content,
		Sentences: doc.Sentences,
		Count:     len(doc.Sentences),
		Trimmed:   doc.Trimmed,
		CreatedAt: doc.CreatedAt,
	}
}

// Create handles POST /api/documents.
func (h *DocumentHandler) Create(c *gin.Context) {
	var req types.SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	source := req.Source
	if source == "" {
		source = "api"
	}

	doc, err := h.service.SaveDocument(c.Request.Context(), source, req.Text, resolveTrim(req.Trim, h.defaultTrim))
	if err != nil {
		respondWithServiceError(c, err, "Failed to save document", h.logger)
		return
	}

	id := doc.ID
	c.JSON(http.StatusCreated, types.SplitResponse{
		Sentences:  doc.Sentences,
		Count:      len(doc.Sentences),
		DocumentID: &id,
	})
}

// Get handles GET /api/documents/:id.
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid document ID")
		return
	}

	doc, err := h.service.GetDocument(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err, "Failed to load document", h.logger, zap.String("document_id", id.String()))
		return
	}

	c.JSON(http.StatusOK, toDocumentResponse(doc))
}

// List handles GET /api/documents?limit=&offset=.
func (h *DocumentHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		respondWithClientError(c, http.StatusBadRequest, "limit must be between 1 and 500")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		respondWithClientError(c, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}

	summaries, err := h.service.ListDocuments(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list documents", h.logger)
		return
	}

	resp := types.DocumentListResponse{Documents: make([]types.DocumentSummary, len(summaries))}
	for i, s := range summaries {
		resp.Documents[i] = types.DocumentSummary{
			ID:        s.ID,
			Source:    s.Source,
			Count:     s.SentenceCount,
			CreatedAt: s.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/documents/:id.
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid document ID")
		return
	}

	if err := h.service.DeleteDocument(c.Request.Context(), id); err != nil {
		respondWithServiceError(c, err, "Failed to delete document", h.logger, zap.String("document_id", id.String()))
		return
	}

	c.Status(http.StatusNoContent)
}
