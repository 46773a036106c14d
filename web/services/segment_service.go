package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"sentencer/database"
	apperrors "sentencer/errors"
	"sentencer/metrics"
	"sentencer/splitter"
	"sentencer/utils"
)

// DocumentStore is the part of the Postgres store the segment service uses.
type DocumentStore interface {
	CreateDocument(ctx context.Context, doc database.Document) (database.Document, error)
	FindDocumentByHash(ctx context.Context, contentHash string, trimmed bool) (uuid.UUID, error)
	GetDocument(ctx context.Context, id uuid.UUID) (database.Document, error)
	ListDocuments(ctx context.Context, limit, offset int) ([]database.DocumentSummary, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

// SegmentConfig holds the limits and sizes of the segment service.
type SegmentConfig struct {
	CacheSize       int
	Workers         int
	MaxBatchTexts   int
	MaxTextBytes    int
	BaselineEnabled bool
}

// SegmentService splits texts with the rule-based splitter, caching results,
// and optionally archives them in a DocumentStore.
type SegmentService struct {
	rule     splitter.SentenceSplitter
	baseline splitter.SentenceSplitter
	cache    *lru.Cache
	pool     *ants.Pool
	store    DocumentStore
	metrics  *metrics.Metrics
	config   SegmentConfig
	logger   *zap.Logger
}

// NewSegmentService builds the service. store and m may be nil; without a
// store the document operations return ErrServiceUnavailable.
func NewSegmentService(cfg SegmentConfig, store DocumentStore, m *metrics.Metrics, logger *zap.Logger) (*SegmentService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	cache, err := lru.New(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create segment cache: %w", err)
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch worker pool: %w", err)
	}

	s := &SegmentService{
		rule:    splitter.NewRuleSplitter(),
		cache:   cache,
		pool:    pool,
		store:   store,
		metrics: m,
		config:  cfg,
		logger:  logger,
	}
	if cfg.BaselineEnabled {
		s.baseline = splitter.NewProseSplitter(logger)
	}
	return s, nil
}

// Close releases the worker pool.
func (s *SegmentService) Close() {
	s.pool.Release()
}

// HasStore reports whether documents can be archived.
func (s *SegmentService) HasStore() bool {
	return s.store != nil
}

// Validate rejects texts the service will not split.
func (s *SegmentService) Validate(text string) error {
	if !utils.ValidText(text) {
		return apperrors.WrapError(apperrors.ErrInvalidInput, "text is not valid UTF-8")
	}
	if s.config.MaxTextBytes > 0 && len(text) > s.config.MaxTextBytes {
		return apperrors.WrapErrorf(apperrors.ErrTooLarge, "text is %d bytes, limit is %d", len(text), s.config.MaxTextBytes)
	}
	return nil
}

// Split returns the sentences of text. Results are cached by content and
// trim flag; callers get their own copy.
func (s *SegmentService) Split(ctx context.Context, text string, trim bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.Validate(text); err != nil {
		return nil, err
	}
	return s.split(text, trim), nil
}

func (s *SegmentService) split(text string, trim bool) []string {
	key := cacheKey(text, trim)
	if cached, ok := s.cache.Get(key); ok {
		s.metrics.ObserveCache(true)
		return append([]string(nil), cached.([]string)...)
	}
	s.metrics.ObserveCache(false)

	sentences := s.rule.Split(text, trim)
	s.metrics.ObserveSplit(s.rule.Name(), len(sentences))
	s.cache.Add(key, sentences)
	return append(make([]string, 0, len(sentences)), sentences...)
}

func cacheKey(text string, trim bool) string {
	if trim {
		return utils.ContentHash(text) + ":trim"
	}
	return utils.ContentHash(text)
}

// Count returns the number of sentences in text.
func (s *SegmentService) Count(ctx context.Context, text string) (int, error) {
	sentences, err := s.Split(ctx, text, false)
	if err != nil {
		return 0, err
	}
	return len(sentences), nil
}

// SplitBatch splits every text on the worker pool. Results keep input order.
func (s *SegmentService) SplitBatch(ctx context.Context, texts []string, trim bool) ([][]string, error) {
	if len(texts) == 0 {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, "no texts given")
	}
	if s.config.MaxBatchTexts > 0 && len(texts) > s.config.MaxBatchTexts {
		return nil, apperrors.WrapErrorf(apperrors.ErrTooLarge, "batch has %d texts, limit is %d", len(texts), s.config.MaxBatchTexts)
	}
	for i, text := range texts {
		if err := s.Validate(text); err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
	}
	s.metrics.ObserveBatch(len(texts))

	results := make([][]string, len(texts))
	var wg sync.WaitGroup
	var submitErr error

	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			submitErr = err
			break
		}

		wg.Add(1)
		idx, t := i, text
		err := s.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			results[idx] = s.split(t, trim)
		})
		if err != nil {
			wg.Done()
			submitErr = fmt.Errorf("failed to submit batch task: %w", err)
			break
		}
	}

	wg.Wait()
	if submitErr != nil {
		return nil, submitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug("Batch split completed", zap.Int("texts", len(texts)))
	return results, nil
}

// Comparison holds the rule-based and baseline sentences of one text.
type Comparison struct {
	Rule     []string
	Baseline []string
	Agree    bool
}

// Compare splits text with both splitters. Sentences are trimmed on both
// sides so that only boundaries are compared.
func (s *SegmentService) Compare(ctx context.Context, text string) (Comparison, error) {
	if s.baseline == nil {
		return Comparison{}, apperrors.WrapError(apperrors.ErrServiceUnavailable, "baseline splitter is disabled")
	}

	rule, err := s.Split(ctx, text, true)
	if err != nil {
		return Comparison{}, err
	}

	baseline := s.baseline.Split(text, true)
	s.metrics.ObserveSplit(s.baseline.Name(), len(baseline))

	return Comparison{
		Rule:     rule,
		Baseline: baseline,
		Agree:    splitter.Agree(rule, baseline),
	}, nil
}

// SaveDocument splits text and archives the result. Saving the same text
// with the same trim flag twice returns the existing document.
func (s *SegmentService) SaveDocument(ctx context.Context, source, text string, trim bool) (database.Document, error) {
	if s.store == nil {
		return database.Document{}, apperrors.WrapError(apperrors.ErrServiceUnavailable, "persistence is disabled")
	}

	sentences, err := s.Split(ctx, text, trim)
	if err != nil {
		return database.Document{}, err
	}

	hash := utils.ContentHash(text)
	existingID, err := s.store.FindDocumentByHash(ctx, hash, trim)
	if err != nil {
		s.logger.Warn("Failed to check for existing document", zap.Error(err))
	} else if existingID != uuid.Nil {
		s.logger.Debug("Document already archived", zap.String("document_id", existingID.String()))
		return s.store.GetDocument(ctx, existingID)
	}

	doc, err := s.store.CreateDocument(ctx, database.Document{
		ID:          uuid.New(),
		Source:      source,
		Content:     text,
		ContentHash: hash,
		Sentences:   sentences,
		Trimmed:     trim,
	})
	if err != nil {
		return database.Document{}, err
	}

	s.logger.Info("Document archived",
		zap.String("document_id", doc.ID.String()),
		zap.String("source", source),
		zap.Int("sentences", len(sentences)))
	return doc, nil
}

func (s *SegmentService) GetDocument(ctx context.Context, id uuid.UUID) (database.Document, error) {
	if s.store == nil {
		return database.Document{}, apperrors.WrapError(apperrors.ErrServiceUnavailable, "persistence is disabled")
	}
	return s.store.GetDocument(ctx, id)
}

func (s *SegmentService) ListDocuments(ctx context.Context, limit, offset int) ([]database.DocumentSummary, error) {
	if s.store == nil {
		return nil, apperrors.WrapError(apperrors.ErrServiceUnavailable, "persistence is disabled")
	}
	return s.store.ListDocuments(ctx, limit, offset)
}

func (s *SegmentService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if s.store == nil {
		return apperrors.WrapError(apperrors.ErrServiceUnavailable, "persistence is disabled")
	}
	return s.store.DeleteDocument(ctx, id)
}
