package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

// Scan command flags.
var (
	scanArchive    string
	scanOutput     string
	scanExtensions string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List every document file in the archive",
	Long: `Walks every category folder under the archive root and lists the
document files found, with the deepest "Appendix <code>" folder on each
file's path.

Without --output, prints the number of files per category.
With --output, writes the full inventory as CSV ("-" for stdout).`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanArchive, "archive", "a", "", "archive root (default archive.root)")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", `inventory CSV path, "-" for stdout`)
	scanCmd.Flags().StringVar(&scanExtensions, "ext", "", "comma-separated extensions (default .pdf,.docx,.doc,.xlsx,.xls)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}
	root := settings.Archive.Root
	if cmd.Flags().Changed("archive") {
		root = scanArchive
	}
	extensions := settings.Archive.InventoryExtensions
	if cmd.Flags().Changed("ext") {
		extensions = parseExtensions(scanExtensions)
	}

	files, err := inventoryService.Scan(cmd.Context(), expandPath(root), extensions)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	switch scanOutput {
	case "":
		counts := inventoryService.CountByCategory(files)
		categories := make([]string, 0, len(counts))
		for c := range counts {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			cmd.Printf("  %-50s %d\n", c, counts[c])
		}
		cmd.Printf("Total: %d files in %d categories\n", len(files), len(categories))
		return nil
	case "-":
		if inventoryWriter == nil {
			return errors.New("inventory writer not configured")
		}
		return inventoryWriter.WriteInventory(cmd.OutOrStdout(), files)
	default:
		if inventoryWriter == nil {
			return errors.New("inventory writer not configured")
		}
		err := writeReportFile(scanOutput, func(w io.Writer) error {
			return inventoryWriter.WriteInventory(w, files)
		})
		if err != nil {
			return err
		}
		cmd.Printf("Inventory of %d files written to %s\n", len(files), scanOutput)
		return nil
	}
}
