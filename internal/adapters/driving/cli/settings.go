package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the archive location, matcher tuning and run history.

Settings live in ~/.closeout/config.toml (or the file given by --config).
CLOSEOUT_ARCHIVE_ROOT and CLOSEOUT_REFERENCE override the file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Archive]")
	cmd.Printf("  Root: %s\n", orNotSet(settings.Archive.Root))
	cmd.Printf("  Extensions: %s\n", strings.Join(settings.Archive.Extensions, ", "))
	cmd.Printf("  Inventory extensions: %s\n", strings.Join(settings.Archive.InventoryExtensions, ", "))
	cmd.Println()

	cmd.Println("[Reference]")
	cmd.Printf("  Table: %s\n", orDefault(settings.Reference.Path, "built-in"))
	cmd.Println()

	cmd.Println("[Matcher]")
	cmd.Printf("  Fuzzy threshold: %d%%\n", settings.Matcher.FuzzyThreshold)
	cmd.Printf("  Workers: %d\n", settings.Matcher.Workers)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %t\n", settings.History.Enabled)
	cmd.Printf("  Data dir: %s\n", orDefault(settings.History.DataDir, "~/.closeout/data"))

	if err := settingsService.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	updated := *current

	cmd.Println("Closeout Settings Wizard")
	cmd.Println("========================")
	cmd.Println("Press enter to keep the value in brackets.")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Printf("Step 1: Archive root [%s]: ", current.Archive.Root)
	if v := readLine(reader); v != "" {
		updated.Archive.Root = v
	}

	cmd.Printf("Step 2: File extensions [%s]: ", strings.Join(current.Archive.Extensions, ","))
	if v := readLine(reader); v != "" {
		updated.Archive.Extensions = parseExtensions(v)
	}

	cmd.Printf("Step 3: Fuzzy threshold 1-100 [%d]: ", current.Matcher.FuzzyThreshold)
	updated.Matcher.FuzzyThreshold = parseChoice(readLine(reader), 100, current.Matcher.FuzzyThreshold)

	cmd.Printf("Step 4: Workers 1-64 [%d]: ", current.Matcher.Workers)
	updated.Matcher.Workers = parseChoice(readLine(reader), 64, current.Matcher.Workers)

	cmd.Printf("Step 5: Record run history (y/n) [%s]: ", yesNo(current.History.Enabled))
	updated.History.Enabled = parseYesNo(readLine(reader), current.History.Enabled)
	cmd.Println()

	if err := settingsService.Save(&updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println("Settings saved.")
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// parseChoice parses an integer in 1..maxVal, falling back to defaultVal.
func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseYesNo(input string, defaultVal bool) bool {
	switch strings.ToLower(input) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultVal
	}
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func orNotSet(s string) string {
	return orDefault(s, "(not set)")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
