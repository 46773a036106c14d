package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sentencer/config"
	"sentencer/metrics"
	"sentencer/web/handlers"
	"sentencer/web/middleware"
	"sentencer/web/services"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	router   *gin.Engine
	segments *services.SegmentService
	pdf      *services.PDFService
	metrics  *metrics.Metrics
	limiter  *middleware.ClientRateLimiter
	store    Pinger
	logger   *zap.Logger
	config   *config.Config
}

// NewServer wires routes and middleware. store may be nil when persistence
// is disabled.
func NewServer(segments *services.SegmentService, pdf *services.PDFService, m *metrics.Metrics, store Pinger, logger *zap.Logger, config *config.Config) *Server {
	// Set Gin mode based on environment
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestContext(logger))
	router.Use(middleware.Instrument(m))
	router.SetHTMLTemplate(handlers.DemoTemplate())

	server := &Server{
		router:   router,
		segments: segments,
		pdf:      pdf,
		metrics:  m,
		store:    store,
		logger:   logger,
		config:   config,
		limiter: middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerMinute: config.RateLimitRequestsPerMin,
			BurstSize:         config.RateLimitBurstSize,
			CleanupInterval:   config.RateLimitCleanupInterval,
		}, logger),
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	segmentHandler := handlers.NewSegmentHandler(s.segments, s.config.DefaultTrim, s.logger)
	documentHandler := handlers.NewDocumentHandler(s.segments, s.config.DefaultTrim, s.logger)
	pdfHandler := handlers.NewPDFHandler(s.pdf, s.segments, s.config.DefaultTrim, s.logger)
	demoHandler := handlers.NewDemoHandler(s.segments, s.config.DemoText, s.logger)

	// Web routes
	s.router.GET("/", demoHandler.Index)
	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := s.router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(s.limiter))
	{
		api.POST("/split", segmentHandler.Split)
		api.POST("/count", segmentHandler.Count)
		api.POST("/batch", segmentHandler.Batch)
		api.POST("/compare", segmentHandler.Compare)
		api.POST("/pdf", pdfHandler.Upload)

		api.POST("/documents", documentHandler.Create)
		api.GET("/documents", documentHandler.List)
		api.GET("/documents/:id", documentHandler.Get)
		api.DELETE("/documents/:id", documentHandler.Delete)
	}
}

func (s *Server) health(c *gin.Context) {
	status := gin.H{"status": "ok", "persistence": s.store != nil}
	if s.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.store.Ping(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			status["status"] = "degraded"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
	}
	c.JSON(http.StatusOK, status)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))
	defer s.limiter.Stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
			errCh <- err
		}
	}()

	// Wait for context cancellation
	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	s.logger.Info("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
