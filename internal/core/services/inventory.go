package services

import (
	"context"
	"sort"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
	"github.com/custodia-labs/closeout/internal/core/ports/driving"
)

// Ensure InventoryService implements the interface.
var _ driving.InventoryService = (*InventoryService)(nil)

// InventoryService catalogues archive files.
type InventoryService struct {
	scanner driven.ArchiveScanner
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(scanner driven.ArchiveScanner) *InventoryService {
	return &InventoryService{scanner: scanner}
}

// Scan lists every document file below root, sorted by category then path.
func (s *InventoryService) Scan(ctx context.Context, root string, extensions []string) ([]domain.ArchiveFile, error) {
	if s.scanner == nil {
		return nil, domain.ErrNotImplemented
	}
	if root == "" {
		return nil, domain.ErrArchiveRootRequired
	}
	if len(extensions) == 0 {
		extensions = domain.DefaultAppSettings().Archive.InventoryExtensions
	}

	files, err := s.scanner.Scan(ctx, root, extensions)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Category != files[j].Category {
			return files[i].Category < files[j].Category
		}
		return files[i].RelativePath < files[j].RelativePath
	})
	return files, nil
}

// CountByCategory returns the number of files per category.
func (s *InventoryService) CountByCategory(files []domain.ArchiveFile) map[string]int {
	counts := make(map[string]int)
	for i := range files {
		counts[files[i].Category]++
	}
	return counts
}
