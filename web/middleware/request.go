package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sentencer/metrics"
	"sentencer/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestContext tags every request with an id and stores a logger carrying
// that id in the context under "logger".
func RequestContext(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = utils.GenerateRequestID()
		}

		c.Set("requestID", requestID)
		c.Set("logger", logger.With(zap.String("request_id", requestID)))
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// LoggerFrom returns the request logger, or nil before RequestContext ran.
func LoggerFrom(c *gin.Context) *zap.Logger {
	value, exists := c.Get("logger")
	if !exists {
		return nil
	}
	logger, _ := value.(*zap.Logger)
	return logger
}

// Instrument records request latency by route template.
func Instrument(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
