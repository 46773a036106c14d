package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "sentencer/errors"
)

// Document is a segmented text kept in the archive.
type Document struct {
	ID          uuid.UUID
	Source      string
	Content     string
	ContentHash string
	Sentences   []string
	Trimmed     bool
	CreatedAt   time.Time
}

// DocumentSummary is the listing view of a Document.
type DocumentSummary struct {
	ID            uuid.UUID
	Source        string
	SentenceCount int
	CreatedAt     time.Time
}

// CreateDocument inserts a document. A document with the same content hash
// and trim flag is returned instead of inserting a duplicate.
func (s *PostgresStore) CreateDocument(ctx context.Context, doc Document) (Document, error) {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.Sentences == nil {
		doc.Sentences = []string{}
	}

	query := `
		INSERT INTO documents (id, source, content, content_hash, sentences, trimmed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (content_hash, trimmed) DO UPDATE SET id = documents.id
		RETURNING id, created_at
	`

	err := s.DB.QueryRowContext(ctx, query,
		doc.ID,
		doc.Source,
		doc.Content,
		doc.ContentHash,
		pq.Array(doc.Sentences),
		doc.Trimmed,
	).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return Document{}, fmt.Errorf("failed to create document: %w: %w", apperrors.ErrDatabaseOperation, err)
	}
	return doc, nil
}

// GetDocument returns the document with the given id or ErrNotFound.
func (s *PostgresStore) GetDocument(ctx context.Context, id uuid.UUID) (Document, error) {
	const query = `
		SELECT id, source, content, content_hash, sentences, trimmed, created_at
		FROM documents
		WHERE id = $1
	`

	var doc Document
	var sentences pq.StringArray
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&doc.ID,
		&doc.Source,
		&doc.Content,
		&doc.ContentHash,
		&sentences,
		&doc.Trimmed,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, apperrors.WrapErrorf(apperrors.ErrNotFound, "document %s", id)
		}
		return Document{}, fmt.Errorf("failed to fetch document: %w: %w", apperrors.ErrDatabaseOperation, err)
	}

	doc.Sentences = []string(sentences)
	if doc.Sentences == nil {
		doc.Sentences = []string{}
	}
	return doc, nil
}

// FindDocumentByHash looks for an existing document with the same content
// and trim flag. Returns uuid.Nil when none exists or the hash is empty.
func (s *PostgresStore) FindDocumentByHash(ctx context.Context, contentHash string, trimmed bool) (uuid.UUID, error) {
	if contentHash == "" {
		return uuid.Nil, nil
	}

	const query = `SELECT id FROM documents WHERE content_hash = $1 AND trimmed = $2 LIMIT 1`

	var id uuid.UUID
	if err := s.DB.QueryRowContext(ctx, query, contentHash, trimmed).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, nil
		}
		return uuid.Nil, fmt.Errorf("failed to lookup document by hash: %w", err)
	}
	return id, nil
}

// ListDocuments returns summaries, newest first.
func (s *PostgresStore) ListDocuments(ctx context.Context, limit, offset int) ([]DocumentSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
		SELECT id, source, cardinality(sentences), created_at
		FROM documents
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w: %w", apperrors.ErrDatabaseOperation, err)
	}
	defer rows.Close()

	summaries := make([]DocumentSummary, 0)
	for rows.Next() {
		var summary DocumentSummary
		if err := rows.Scan(&summary.ID, &summary.Source, &summary.SentenceCount, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document rows: %w", err)
	}
	return summaries, nil
}

// DeleteDocument removes one document. Returns ErrNotFound when nothing was
// deleted.
func (s *PostgresStore) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w: %w", id, apperrors.ErrDatabaseOperation, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to determine rows deleted for document %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return apperrors.WrapErrorf(apperrors.ErrNotFound, "document %s", id)
	}
	return nil
}

// DeleteDocumentsOlderThan removes documents created before cutoff and
// returns how many were removed.
func (s *PostgresStore) DeleteDocumentsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM documents WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete documents older than %s: %w", cutoff.Format(time.RFC3339), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to determine rows deleted: %w", err)
	}
	return rowsAffected, nil
}
