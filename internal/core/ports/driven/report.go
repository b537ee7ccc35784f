package driven

import (
	"io"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

// ReportWriter renders a run for people or downstream dashboards.
type ReportWriter interface {
	// Format returns the format name, e.g. "text" or "json".
	Format() string

	// Write renders the run to w.
	Write(w io.Writer, run *domain.Run) error
}

// ReportRegistry looks up report writers by format name.
type ReportRegistry interface {
	// Get returns the writer for format, or an error naming the
	// registered formats.
	Get(format string) (ReportWriter, error)
}

// InventoryWriter renders an archive inventory.
type InventoryWriter interface {
	// WriteInventory writes files to w in the order given.
	WriteInventory(w io.Writer, files []domain.ArchiveFile) error
}
