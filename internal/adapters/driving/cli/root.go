package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/closeout/internal/core/ports/driven"
	"github.com/custodia-labs/closeout/internal/core/ports/driving"
	"github.com/custodia-labs/closeout/internal/logger"
)

// version is set at build time.
var version = "dev"

// Global flags.
var (
	configPath string
	verbose    bool
)

// Services bundles what the commands need from the rest of the application.
type Services struct {
	Match     driving.MatchService
	Inventory driving.InventoryService
	History   driving.HistoryService
	Reference driving.ReferenceService
	Settings  driving.SettingsService

	Tracker         driven.TrackerStore
	Reports         driven.ReportRegistry
	InventoryWriter driven.InventoryWriter
}

// Options carries the parsed global flags to a Wiring.
type Options struct {
	// ConfigPath is the --config value. Empty means the default location.
	ConfigPath string
}

// Wiring builds the services once global flags are parsed.
// The returned cleanup runs once the command returns, even on error.
type Wiring func(opts Options) (*Services, func(), error)

var (
	wiring  Wiring
	cleanup func()

	matchService     driving.MatchService
	inventoryService driving.InventoryService
	historyService   driving.HistoryService
	referenceService driving.ReferenceService
	settingsService  driving.SettingsService

	trackerStore    driven.TrackerStore
	reports         driven.ReportRegistry
	inventoryWriter driven.InventoryWriter
)

var rootCmd = &cobra.Command{
	Use:   "closeout",
	Short: "Match required project documents to the closeout archive",
	Long: `closeout maps every document a project must deliver to an appendix
code in the reference table and to a file in the archive folder tree.

Documents come from a tracker CSV. Each one is matched by exact title,
then by volume number, then by fuzzy title similarity, and the results
are written back to the tracker and to a report.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.closeout/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print how each document was matched")
}

// setup applies global flags and builds services when a Wiring is set.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	if wiring == nil {
		return nil
	}
	s, done, err := wiring(Options{ConfigPath: configPath})
	if err != nil {
		return err
	}
	setServices(s)
	cleanup = done
	return nil
}

func setServices(s *Services) {
	if s == nil {
		return
	}
	matchService = s.Match
	inventoryService = s.Inventory
	historyService = s.History
	referenceService = s.Reference
	settingsService = s.Settings
	trackerStore = s.Tracker
	reports = s.Reports
	inventoryWriter = s.InventoryWriter
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with services built by w.
func Execute(ctx context.Context, w Wiring) error {
	wiring = w
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}
