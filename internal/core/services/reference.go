package services

import (
	"context"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
	"github.com/custodia-labs/closeout/internal/core/ports/driving"
)

// Ensure ReferenceService implements the interface.
var _ driving.ReferenceService = (*ReferenceService)(nil)

// ReferenceService loads and describes reference tables.
type ReferenceService struct {
	source driven.ReferenceSource
}

// NewReferenceService creates a new reference service.
func NewReferenceService(source driven.ReferenceSource) *ReferenceService {
	return &ReferenceService{source: source}
}

// Load reads the table at path, or the built-in table when path is empty.
func (s *ReferenceService) Load(ctx context.Context, path string) (*domain.ReferenceTable, error) {
	if s.source == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.source.Load(ctx, path)
}

// Describe returns the entry count per category in category order.
func (s *ReferenceService) Describe(table *domain.ReferenceTable) []driving.CategoryCount {
	if table == nil {
		return nil
	}
	categories := table.Categories()
	counts := make([]driving.CategoryCount, 0, len(categories))
	for _, c := range categories {
		counts = append(counts, driving.CategoryCount{
			Category: c,
			Entries:  len(table.Entries(c)),
		})
	}
	return counts
}
