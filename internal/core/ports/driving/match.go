package driving

import (
	"context"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

// MatchRequest describes one batch of documents to match.
type MatchRequest struct {
	// Documents are matched in order; results keep this order.
	Documents []domain.RequiredDocument

	// Reference is the ground-truth table to match against.
	Reference *domain.ReferenceTable

	// ArchiveRoot is the directory holding one folder per category.
	ArchiveRoot string

	// Extensions a resolved file may have. Empty means ".pdf".
	Extensions []string

	// FuzzyThreshold is the minimum fuzzy percentage. Zero uses the default.
	FuzzyThreshold int

	// Workers is the number of documents matched concurrently.
	// Values below one run sequentially.
	Workers int

	// Record persists the run when a run store is configured.
	Record bool
}

// MatchService maps required documents to archive files.
type MatchService interface {
	// Run matches every document and returns exactly one result per input.
	// Match outcomes are never errors; an error means an exceptional
	// condition (unreadable directory, cancelled context) aborted the batch.
	Run(ctx context.Context, req MatchRequest) (*domain.Run, error)
}
