package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "sentencer/errors"
	"sentencer/web/middleware"
)

// respondWithError logs the technical error and returns a user-friendly message
func respondWithError(c *gin.Context, statusCode int, technicalError error, userMessage string, logger *zap.Logger, fields ...zap.Field) {
	// Prefer the request-scoped logger so the request id is attached
	if reqLogger := middleware.LoggerFrom(c); reqLogger != nil {
		logger = reqLogger
	}
	if logger != nil {
		fields = append(fields, zap.Error(technicalError))
		logger.Error("Request failed", fields...)
	}

	c.JSON(statusCode, gin.H{"error": userMessage})
}

// respondWithClientError returns a client error (no logging needed for validation errors)
func respondWithClientError(c *gin.Context, statusCode int, userMessage string) {
	c.JSON(statusCode, gin.H{"error": userMessage})
}

// respondWithServiceError maps a service error to a status code. Client
// errors carry the error text; server errors are logged and get userMessage.
func respondWithServiceError(c *gin.Context, err error, userMessage string, logger *zap.Logger, fields ...zap.Field) {
	switch {
	case apperrors.IsInvalidInput(err):
		respondWithClientError(c, http.StatusBadRequest, err.Error())
	case apperrors.IsTooLarge(err):
		respondWithClientError(c, http.StatusRequestEntityTooLarge, err.Error())
	case apperrors.IsNotFound(err):
		respondWithClientError(c, http.StatusNotFound, "not found")
	case apperrors.IsExtraction(err):
		respondWithClientError(c, http.StatusUnprocessableEntity, "could not extract text from the uploaded file")
	case apperrors.IsServiceUnavailable(err):
		respondWithError(c, http.StatusServiceUnavailable, err, "service unavailable", logger, fields...)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondWithClientError(c, http.StatusRequestTimeout, "request cancelled")
	default:
		respondWithError(c, http.StatusInternalServerError, err, userMessage, logger, fields...)
	}
}
