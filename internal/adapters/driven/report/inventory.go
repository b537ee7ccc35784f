package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
)

// Ensure InventoryCSV implements the interface.
var _ driven.InventoryWriter = InventoryCSV{}

// InventoryCSV writes inventories as CSV.
type InventoryCSV struct{}

// WriteInventory writes files as CSV.
func (InventoryCSV) WriteInventory(w io.Writer, files []domain.ArchiveFile) error {
	return WriteInventory(w, files)
}

// inventoryHeader is the column layout of an inventory CSV.
var inventoryHeader = []string{"Category", "Appendix_Code", "Filename", "Relative_Path", "Size_MB", "Modified"}

// WriteInventory writes archive files as CSV in the order given.
func WriteInventory(w io.Writer, files []domain.ArchiveFile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(inventoryHeader); err != nil {
		return fmt.Errorf("writing inventory header: %w", err)
	}
	for _, f := range files {
		record := []string{
			f.Category,
			f.AppendixCode,
			f.Name,
			f.RelativePath,
			strconv.FormatFloat(f.SizeMB(), 'f', 2, 64),
			f.ModifiedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing inventory row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
