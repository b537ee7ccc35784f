package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the reference table in use",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// runVersion prints the build version, then the reference table the
// match command would load. A table that fails to load is reported, not
// returned as an error.
func runVersion(cmd *cobra.Command, _ []string) error {
	cmd.Printf("closeout version %s (%s)\n", version, runtime.Version())
	if referenceService == nil {
		return nil
	}

	path, err := referencePath(nil)
	if err != nil {
		return err
	}
	source := path
	if source == "" {
		source = "built-in"
	}

	table, err := referenceService.Load(cmd.Context(), path)
	if err != nil {
		cmd.Printf("reference table: %s (unavailable: %v)\n", source, err)
		return nil
	}
	cmd.Printf("reference table: %s, version %d, %d entries\n", source, table.Version(), table.Len())
	return nil
}
