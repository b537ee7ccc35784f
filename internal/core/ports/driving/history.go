package driving

import (
	"context"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

// HistoryService gives access to recorded match runs.
type HistoryService interface {
	// List returns the most recent runs first, without results.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get returns a run with all of its results.
	Get(ctx context.Context, id string) (*domain.Run, error)

	// Delete removes a recorded run.
	Delete(ctx context.Context, id string) error
}
