package driving

import (
	"context"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

// ReferenceService provides the reference table.
type ReferenceService interface {
	// Load reads the table at path, or the built-in table when path is empty.
	Load(ctx context.Context, path string) (*domain.ReferenceTable, error)

	// Describe returns the entry count per category in category order.
	Describe(table *domain.ReferenceTable) []CategoryCount
}

// CategoryCount is the number of reference entries in one category.
type CategoryCount struct {
	Category string
	Entries  int
}
