package driven

import (
	"context"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

// TrackerStore reads and writes the document tracker spreadsheet.
type TrackerStore interface {
	// Load parses the tracker at path.
	// Returns domain.ErrInvalidTracker when required columns are missing.
	Load(ctx context.Context, path string) (*domain.Tracker, error)

	// Save writes the tracker to path, replacing any existing file.
	Save(ctx context.Context, path string, tracker *domain.Tracker) error
}
