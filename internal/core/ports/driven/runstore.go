package driven

import (
	"context"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

// RunStore persists match runs.
type RunStore interface {
	// SaveRun stores a run and all of its results.
	SaveRun(ctx context.Context, run *domain.Run) error

	// GetRun retrieves a run with its results.
	// Returns domain.ErrNotFound if the run does not exist.
	GetRun(ctx context.Context, id string) (*domain.Run, error)

	// ListRuns returns the most recent runs first, without results.
	// A limit of zero or less returns all runs.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)

	// DeleteRun removes a run and its results.
	DeleteRun(ctx context.Context, id string) error
}
