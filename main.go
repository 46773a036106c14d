package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sentencer/config"
	"sentencer/database"
	"sentencer/metrics"
	"sentencer/web"
	"sentencer/web/services"
)

func main() {
	ctx := context.Background()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := metrics.New()

	var (
		docStore services.DocumentStore
		pinger   web.Pinger
	)
	if cfg.PersistenceEnabled {
		store, err := database.NewPostgresStore(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer store.Close()

		// --- Ensure Schema Exists ---
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal("Failed to ensure database schema", zap.Error(err))
		}
		docStore, pinger = store, store

		// Initialize cleanup service and start background cleanup routine
		cleanupService := web.NewCleanupService(store, logger)
		go web.StartDocumentCleanup(ctx, cfg, cleanupService, logger)
	} else {
		logger.Info("Persistence disabled, document endpoints will return 503")
	}

	segments, err := services.NewSegmentService(services.SegmentConfig{
		CacheSize:       cfg.CacheSize,
		Workers:         cfg.BatchWorkers,
		MaxBatchTexts:   cfg.MaxBatchTexts,
		MaxTextBytes:    cfg.MaxTextBytes,
		BaselineEnabled: cfg.BaselineEnabled,
	}, docStore, m, logger)
	if err != nil {
		logger.Fatal("Failed to initialize segment service", zap.Error(err))
	}
	defer segments.Close()

	pdfService := services.NewPDFService(logger, cfg.MaxPDFSize())

	// Initialize web server
	webServer := web.NewServer(segments, pdfService, m, pinger, logger, cfg)

	// Start web server
	port := fmt.Sprintf(":%d", cfg.WebPort)
	logger.Info("Starting sentencer web server", zap.String("port", port))
	if err := webServer.Start(ctx, port); err != nil {
		logger.Error("Web server error", zap.Error(err))
		os.Exit(1)
	}
}
