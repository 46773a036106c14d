package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sentencer/errors"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStore(db, nil), mock
}

func TestEnsureSchema(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS documents`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_documents_hash_trimmed`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_documents_created_at`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS documents`).WillReturnError(errors.New("permission denied"))

	err := store.EnsureSchema(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestCreateDocument(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	existing := uuid.New()

	mock.ExpectQuery(`INSERT INTO documents`).
		WithArgs(sqlmock.AnyArg(), "api", "Hello. Bye.", "abc", sqlmock.AnyArg(), true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(existing.String(), created))

	doc, err := store.CreateDocument(context.Background(), Document{
		Source:      "api",
		Content:     "Hello. Bye.",
		ContentHash: "abc",
		Sentences:   []string{"Hello.", "Bye."},
		Trimmed:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, existing, doc.ID)
	assert.Equal(t, created, doc.CreatedAt)
	assert.Equal(t, []string{"Hello.", "Bye."}, doc.Sentences)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDocumentError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO documents`).WillReturnError(errors.New("connection reset"))

	_, err := store.CreateDocument(context.Background(), Document{Content: "x", ContentHash: "h"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDatabaseOperation)
}

func TestGetDocument(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()
	created := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, source, content, content_hash, sentences, trimmed, created_at\s+FROM documents`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "source", "content", "content_hash", "sentences", "trimmed", "created_at"}).
			AddRow(id.String(), "pdf", "Hi. Yes.", "h", `{"Hi."," Yes."}`, false, created))

	doc, err := store.GetDocument(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "pdf", doc.Source)
	assert.Equal(t, []string{"Hi.", " Yes."}, doc.Sentences)
	assert.False(t, doc.Trimmed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDocumentNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM documents`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "source", "content", "content_hash", "sentences", "trimmed", "created_at"}))

	_, err := store.GetDocument(context.Background(), id)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFindDocumentByHash(t *testing.T) {
	tests := []struct {
		name   string
		hash   string
		setup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		wantID bool
	}{
		{
			name:  "empty hash skips query",
			hash:  "",
			setup: func(sqlmock.Sqlmock, uuid.UUID) {},
		},
		{
			name: "match",
			hash: "abc",
			setup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery(`SELECT id FROM documents WHERE content_hash = \$1 AND trimmed = \$2`).
					WithArgs("abc", false).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
			},
			wantID: true,
		},
		{
			name: "no match",
			hash: "abc",
			setup: func(mock sqlmock.Sqlmock, _ uuid.UUID) {
				mock.ExpectQuery(`SELECT id FROM documents`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			id := uuid.New()
			tt.setup(mock, id)

			got, err := store.FindDocumentByHash(context.Background(), tt.hash, false)
			require.NoError(t, err)
			if tt.wantID {
				assert.Equal(t, id, got)
			} else {
				assert.Equal(t, uuid.Nil, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListDocuments(t *testing.T) {
	store, mock := newMockStore(t)
	first, second := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, source, cardinality\(sentences\), created_at`).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "source", "count", "created_at"}).
			AddRow(first.String(), "api", 3, now).
			AddRow(second.String(), "pdf", 12, now.Add(-time.Hour)))

	summaries, err := store.ListDocuments(context.Background(), 0, -5)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, first, summaries[0].ID)
	assert.Equal(t, 12, summaries[1].SentenceCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDocument(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM documents WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, store.DeleteDocument(context.Background(), id))

	mock.ExpectExec(`DELETE FROM documents WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	err := store.DeleteDocument(context.Background(), id)
	assert.True(t, apperrors.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDocumentsOlderThan(t *testing.T) {
	store, mock := newMockStore(t)
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`DELETE FROM documents WHERE created_at < \$1`).WithArgs(cutoff).WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := store.DeleteDocumentsOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
