package web

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sentencer/config"
)

// DocumentPruner deletes archived documents created before a cutoff.
type DocumentPruner interface {
	DeleteDocumentsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// CleanupService removes archived documents past their retention age
type CleanupService struct {
	store  DocumentPruner
	logger *zap.Logger
	now    func() time.Time
}

// NewCleanupService creates a new cleanup service instance
func NewCleanupService(store DocumentPruner, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CleanupStaleDocuments deletes documents older than maxAge and returns how
// many were deleted.
func (cs *CleanupService) CleanupStaleDocuments(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoffTime := cs.now().Add(-maxAge)

	cs.logger.Info("Starting stale document cleanup",
		zap.Time("cutoff_time", cutoffTime),
		zap.Duration("max_age", maxAge))

	deleted, err := cs.store.DeleteDocumentsOlderThan(ctx, cutoffTime)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale documents: %w", err)
	}

	cs.logger.Info("Stale document cleanup completed",
		zap.Int64("documents_deleted", deleted))

	return deleted, nil
}

// StartDocumentCleanup runs CleanupStaleDocuments every CleanupInterval
// until ctx is cancelled.
func StartDocumentCleanup(ctx context.Context, cfg *config.Config, cs *CleanupService, logger *zap.Logger) {
	if !cfg.CleanupEnabled || cfg.CleanupInterval <= 0 {
		logger.Info("Document cleanup disabled")
		return
	}

	ticker := time.NewTicker(cfg.CleanupInterval)
	defer ticker.Stop()

	logger.Info("Document cleanup scheduled",
		zap.Duration("interval", cfg.CleanupInterval),
		zap.Duration("retention", cfg.DocumentRetentionAge))

	for {
		select {
		case <-ticker.C:
			if _, err := cs.CleanupStaleDocuments(ctx, cfg.DocumentRetentionAge); err != nil {
				logger.Error("Document cleanup failed", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}
