package driven

import (
	"context"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

// ReferenceSource loads the reference table.
type ReferenceSource interface {
	// Load reads and validates the table at path.
	// An empty path loads the built-in table.
	Load(ctx context.Context, path string) (*domain.ReferenceTable, error)
}
