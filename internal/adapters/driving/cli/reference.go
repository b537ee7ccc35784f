package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var referenceCategory string

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Inspect the appendix reference table",
}

var referenceListCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List categories, or the entries of one category",
	Long: `Lists the categories of the reference table with their entry counts.
With --category, lists that category's codes and titles in tie-break order.
Without a file argument, the configured or built-in table is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReferenceList,
}

var referenceValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a reference table for errors",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReferenceValidate,
}

func init() {
	referenceListCmd.Flags().StringVarP(&referenceCategory, "category", "c", "", "category to list entries for")
	referenceCmd.AddCommand(referenceListCmd)
	referenceCmd.AddCommand(referenceValidateCmd)
	rootCmd.AddCommand(referenceCmd)
}

// referencePath returns the table path from args, else from settings.
func referencePath(args []string) (string, error) {
	if len(args) > 0 {
		return expandPath(args[0]), nil
	}
	settings, err := currentSettings()
	if err != nil {
		return "", err
	}
	return expandPath(settings.Reference.Path), nil
}

func runReferenceList(cmd *cobra.Command, args []string) error {
	if referenceService == nil {
		return errors.New("reference service not configured")
	}
	path, err := referencePath(args)
	if err != nil {
		return err
	}
	table, err := referenceService.Load(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to load reference table: %w", err)
	}

	if referenceCategory != "" {
		if !table.HasCategory(referenceCategory) {
			return fmt.Errorf("category %q not in reference table", referenceCategory)
		}
		for _, e := range table.Entries(referenceCategory) {
			cmd.Printf("  %-14s %s\n", e.Code, e.Title)
		}
		return nil
	}

	for _, c := range referenceService.Describe(table) {
		cmd.Printf("  %-50s %d\n", c.Category, c.Entries)
	}
	cmd.Printf("Version %d: %d entries\n", table.Version(), table.Len())
	return nil
}

func runReferenceValidate(cmd *cobra.Command, args []string) error {
	if referenceService == nil {
		return errors.New("reference service not configured")
	}
	path, err := referencePath(args)
	if err != nil {
		return err
	}
	table, err := referenceService.Load(cmd.Context(), path)
	if err != nil {
		return err
	}

	source := path
	if source == "" {
		source = "built-in table"
	}
	cmd.Printf("%s is valid: version %d, %d entries in %d categories\n",
		source, table.Version(), table.Len(), len(table.Categories()))
	return nil
}
