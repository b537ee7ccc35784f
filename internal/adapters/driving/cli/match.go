package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driving"
)

// Match command flags.
var (
	matchTracker      string
	matchOutput       string
	matchReport       string
	matchFormat       string
	matchArchive      string
	matchReference    string
	matchExtensions   string
	matchWorkers      int
	matchThreshold    int
	matchContractOnly bool
	matchOnlyMissing  bool
	matchNoHistory    bool
	matchNoWrite      bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match tracker documents to archive files",
	Long: `Reads the tracker CSV, matches every selected document against the
reference table and the archive, writes the results back to a tracker
copy and prints or saves a report.

Matching tries an exact title match first, then a volume number match for
as-built plan volumes, then fuzzy title similarity at or above the threshold.`,
	Example: `  closeout match --tracker tracker.csv --archive ~/Appendices
  closeout match --tracker tracker.csv --contract-only --only-missing --report report.json --format json`,
	RunE: runMatch,
}

func init() {
	f := matchCmd.Flags()
	f.StringVarP(&matchTracker, "tracker", "t", "", "tracker CSV listing the required documents")
	f.StringVarP(&matchOutput, "output", "o", "", "updated tracker path (default <tracker>_matched.csv)")
	f.BoolVar(&matchNoWrite, "no-write", false, "do not write an updated tracker")
	f.StringVarP(&matchReport, "report", "r", "", "write the report to this file instead of stdout")
	f.StringVarP(&matchFormat, "format", "f", "text", "report format: text or json")
	f.StringVarP(&matchArchive, "archive", "a", "", "archive root holding one folder per category")
	f.StringVar(&matchReference, "reference", "", "reference table YAML (default built-in table)")
	f.StringVar(&matchExtensions, "ext", "", "comma-separated file extensions to resolve (default .pdf)")
	f.IntVarP(&matchWorkers, "workers", "w", 0, "documents matched concurrently")
	f.IntVar(&matchThreshold, "threshold", 0, "minimum fuzzy title similarity, 1-100")
	f.BoolVar(&matchContractOnly, "contract-only", false, "only documents from contract sections 1-8")
	f.BoolVar(&matchOnlyMissing, "only-missing", false, "skip documents that already have a representative file")
	f.BoolVar(&matchNoHistory, "no-history", false, "do not record this run")
	_ = matchCmd.MarkFlagRequired("tracker")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if matchService == nil {
		return errors.New("match service not configured")
	}
	if referenceService == nil {
		return errors.New("reference service not configured")
	}
	if trackerStore == nil {
		return errors.New("tracker store not configured")
	}
	if reports == nil {
		return errors.New("report writers not configured")
	}

	writer, err := reports.Get(matchFormat)
	if err != nil {
		return err
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}
	req, err := buildMatchRequest(cmd, settings)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	table, err := referenceService.Load(ctx, req.referencePath)
	if err != nil {
		return fmt.Errorf("failed to load reference table: %w", err)
	}
	req.Reference = table

	tracker, err := trackerStore.Load(ctx, matchTracker)
	if err != nil {
		return fmt.Errorf("failed to read tracker: %w", err)
	}
	rows := tracker.Select(domain.DocumentFilter{
		ContractOnly: matchContractOnly,
		OnlyMissing:  matchOnlyMissing,
	})
	req.Documents = tracker.Documents(rows)
	if len(req.Documents) == 0 {
		cmd.Println("No documents selected.")
		return nil
	}

	run, err := matchService.Run(ctx, req.MatchRequest)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	var trackerOut string
	if !matchNoWrite {
		for i, row := range rows {
			if err := tracker.Apply(row, run.Results[i]); err != nil {
				return err
			}
		}
		trackerOut = matchOutput
		if trackerOut == "" {
			trackerOut = defaultTrackerOutput(matchTracker)
		}
		if err := trackerStore.Save(ctx, trackerOut, tracker); err != nil {
			return fmt.Errorf("failed to write tracker: %w", err)
		}
	}

	if matchReport == "" {
		if err := writer.Write(cmd.OutOrStdout(), run); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	} else {
		if err := writeReportFile(matchReport, func(w io.Writer) error { return writer.Write(w, run) }); err != nil {
			return err
		}
		cmd.Println(renderSummary(run, isTerminal(cmd.OutOrStdout())))
		cmd.Printf("Report written to %s\n", matchReport)
	}
	if trackerOut != "" {
		cmd.Printf("Tracker written to %s\n", trackerOut)
	}
	return nil
}

// matchRequest is a MatchRequest plus the reference path to load.
type matchRequest struct {
	driving.MatchRequest
	referencePath string
}

// buildMatchRequest merges flags over settings. Flags win when set.
func buildMatchRequest(cmd *cobra.Command, settings *domain.AppSettings) (matchRequest, error) {
	flags := cmd.Flags()

	root := settings.Archive.Root
	if flags.Changed("archive") {
		root = matchArchive
	}
	if root == "" {
		return matchRequest{}, fmt.Errorf("%w: pass --archive or set archive.root", domain.ErrArchiveRootRequired)
	}

	refPath := settings.Reference.Path
	if flags.Changed("reference") {
		refPath = matchReference
	}

	extensions := settings.Archive.Extensions
	if flags.Changed("ext") {
		extensions = parseExtensions(matchExtensions)
	}

	threshold := settings.Matcher.FuzzyThreshold
	if flags.Changed("threshold") {
		threshold = matchThreshold
	}
	if threshold < 1 || threshold > 100 {
		return matchRequest{}, fmt.Errorf("%w: threshold must be between 1 and 100", domain.ErrInvalidInput)
	}

	workers := settings.Matcher.Workers
	if flags.Changed("workers") {
		workers = matchWorkers
	}
	if workers < 1 {
		return matchRequest{}, fmt.Errorf("%w: workers must be at least 1", domain.ErrInvalidInput)
	}

	return matchRequest{
		MatchRequest: driving.MatchRequest{
			ArchiveRoot:    expandPath(root),
			Extensions:     extensions,
			FuzzyThreshold: threshold,
			Workers:        workers,
			Record:         settings.History.Enabled && !matchNoHistory,
		},
		referencePath: expandPath(refPath),
	}, nil
}

// defaultTrackerOutput returns "<dir>/<name>_matched<ext>".
func defaultTrackerOutput(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_matched" + ext
}

// writeReportFile creates path and renders into it.
func writeReportFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}
