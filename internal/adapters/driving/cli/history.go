package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

var (
	historyLimit  int
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded match runs",
	Long:  `List, show and delete match runs recorded in the history database.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the results of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [run-id]",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to list (0 for all)")
	historyShowCmd.Flags().StringVarP(&historyFormat, "format", "f", "text", "report format: text or json")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	cmd.Printf("%-36s  %-19s  %5s  %6s  %7s  %9s\n", "RUN", "STARTED", "TOTAL", "MAPPED", "NO FILE", "UNMATCHED")
	for i := range runs {
		r := &runs[i]
		cmd.Printf("%-36s  %-19s  %5d  %6d  %7d  %9d\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime),
			r.Summary.Total, r.Summary.MatchedWithFile, r.Summary.MatchedWithoutFile, r.Summary.Unmatched)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if reports == nil {
		return errors.New("report writers not configured")
	}
	writer, err := reports.Get(historyFormat)
	if err != nil {
		return err
	}

	run, err := historyService.Get(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("run %s not found", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	return writer.Write(cmd.OutOrStdout(), run)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if err := historyService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	cmd.Printf("Run %s deleted.\n", args[0])
	return nil
}
