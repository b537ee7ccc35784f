package driving

import (
	"context"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

// InventoryService catalogues the document files of the archive.
type InventoryService interface {
	// Scan lists every document file below root, sorted by category then path.
	Scan(ctx context.Context, root string, extensions []string) ([]domain.ArchiveFile, error)

	// CountByCategory returns the number of files per category.
	CountByCategory(files []domain.ArchiveFile) map[string]int
}
