package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sentencer/web/format"
	"sentencer/web/services"
	"sentencer/web/types"
)

type SegmentHandler struct {
	service     *services.SegmentService
	defaultTrim bool
	logger      *zap.Logger
}

func NewSegmentHandler(service *services.SegmentService, defaultTrim bool, logger *zap.Logger) *SegmentHandler {
	return &SegmentHandler{
		service:     service,
		defaultTrim: defaultTrim,
		logger:      logger,
	}
}

func resolveTrim(requested *bool, fallback bool) bool {
	if requested == nil {
		return fallback
	}
	return *requested
}

// Split handles POST /api/split.
func (h *SegmentHandler) Split(c *gin.Context) {
	var req types.SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	f, err := format.Parse(req.Format)
	if err != nil {
		respondWithClientError(c, http.StatusBadRequest, err.Error())
		return
	}

	sentences, err := h.service.Split(c.Request.Context(), req.Text, resolveTrim(req.Trim, h.defaultTrim))
	if err != nil {
		respondWithServiceError(c, err, "Failed to split text", h.logger)
		return
	}

	c.JSON(http.StatusOK, types.SplitResponse{
		Sentences: sentences,
		Count:     len(sentences),
		Rendered:  format.Render(f, sentences),
	})
}

// Count handles POST /api/count.
func (h *SegmentHandler) Count(c *gin.Context) {
	var req types.SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	count, err := h.service.Count(c.Request.Context(), req.Text)
	if err != nil {
		respondWithServiceError(c, err, "Failed to count sentences", h.logger)
		return
	}

	c.JSON(http.StatusOK, types.CountResponse{Count: count})
}

// Batch handles POST /api/batch.
func (h *SegmentHandler) Batch(c *gin.Context) {
	var req types.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	results, err := h.service.SplitBatch(c.Request.Context(), req.Texts, resolveTrim(req.Trim, h.defaultTrim))
	if err != nil {
		respondWithServiceError(c, err, "Failed to split batch", h.logger, zap.Int("texts", len(req.Texts)))
		return
	}

	resp := types.BatchResponse{Results: make([]types.SplitResponse, len(results))}
	for i, sentences := range results {
		resp.Results[i] = types.SplitResponse{Sentences: sentences, Count: len(sentences)}
	}
	c.JSON(http.StatusOK, resp)
}

// Compare handles POST /api/compare.
func (h *SegmentHandler) Compare(c *gin.Context) {
	var req types.SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmp, err := h.service.Compare(c.Request.Context(), req.Text)
	if err != nil {
		respondWithServiceError(c, err, "Failed to compare splitters", h.logger)
		return
	}

	c.JSON(http.StatusOK, types.CompareResponse{
		Rule:     types.SplitResponse{Sentences: cmp.Rule, Count: len(cmp.Rule)},
		Baseline: types.SplitResponse{Sentences: cmp.Baseline, Count: len(cmp.Baseline)},
		Agree:    cmp.Agree,
	})
}
