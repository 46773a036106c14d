package types

import (
	"time"

	"github.com/google/uuid"
)

// SplitRequest is the body of /api/split, /api/count, /api/compare and
// /api/documents. Trim defaults to the server's DEFAULT_TRIM when omitted.
type SplitRequest struct {
	Text   string `json:"text"`
	Trim   *bool  `json:"trim,omitempty"`
	Format string `json:"format,omitempty"`
	Source string `json:"source,omitempty"`
}

// SplitResponse carries the sentences found in one text.
type SplitResponse struct {
	Sentences  []string   `json:"sentences"`
	Count      int        `json:"count"`
	Rendered   string     `json:"rendered,omitempty"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
}

type CountResponse struct {
	Count int `json:"count"`
}

// BatchRequest is the body of /api/batch.
type BatchRequest struct {
	Texts []string `json:"texts"`
	Trim  *bool    `json:"trim,omitempty"`
}

// BatchResponse holds one result per input text, in input order.
type BatchResponse struct {
	Results []SplitResponse `json:"results"`
}

// CompareResponse puts the rule-based result next to the statistical
// baseline.
type CompareResponse struct {
	Rule     SplitResponse `json:"rule"`
	Baseline SplitResponse `json:"baseline"`
	Agree    bool          `json:"agree"`
}

// DocumentResponse is a stored document as returned by the API.
type DocumentResponse struct {
	ID        uuid.UUID `json:"id"`
	Source    string    `json:"source"`
	Content   string    `json:"content"`
	Sentences []string  `json:"sentences"`
	Count     int       `json:"count"`
	Trimmed   bool      `json:"trimmed"`
	CreatedAt time.Time `json:"created_at"`
}

type DocumentSummary struct {
	ID        uuid.UUID `json:"id"`
	Source    string    `json:"source"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

type DocumentListResponse struct {
	Documents []DocumentSummary `json:"documents"`
}
