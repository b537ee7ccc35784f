package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/closeout/internal/adapters/driven/report"
	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
	"github.com/custodia-labs/closeout/internal/core/ports/driving"
)

// mockMatchService records the request and returns one result per document.
type mockMatchService struct {
	got driving.MatchRequest
	err error
}

func (m *mockMatchService) Run(_ context.Context, req driving.MatchRequest) (*domain.Run, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	results := make([]domain.MatchResult, len(req.Documents))
	for i, d := range req.Documents {
		results[i] = domain.MatchResult{
			Document:    d,
			Outcome:     domain.OutcomeMatched,
			Strategy:    domain.StrategyExact,
			MatchedCode: "D" + d.ID,
			FilePath:    "/archive/" + d.ID + ".pdf",
			Confidence:  100,
			Reason:      "exact title match",
		}
	}
	return &domain.Run{ID: "run-1", Results: results, Summary: domain.Summarise(results)}, nil
}

// mockReferenceService returns a fixed table.
type mockReferenceService struct {
	table   *domain.ReferenceTable
	err     error
	gotPath string
}

func (m *mockReferenceService) Load(_ context.Context, path string) (*domain.ReferenceTable, error) {
	m.gotPath = path
	if m.err != nil {
		return nil, m.err
	}
	return m.table, nil
}

func (m *mockReferenceService) Describe(table *domain.ReferenceTable) []driving.CategoryCount {
	var counts []driving.CategoryCount
	for _, c := range table.Categories() {
		counts = append(counts, driving.CategoryCount{Category: c, Entries: len(table.Entries(c))})
	}
	return counts
}

// mockTrackerStore serves a fixed tracker and captures saves.
type mockTrackerStore struct {
	tracker   *domain.Tracker
	loadErr   error
	saved     *domain.Tracker
	savedPath string
}

func (m *mockTrackerStore) Load(_ context.Context, _ string) (*domain.Tracker, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.tracker, nil
}

func (m *mockTrackerStore) Save(_ context.Context, path string, t *domain.Tracker) error {
	m.saved = t
	m.savedPath = path
	return nil
}

// mockSettingsService holds settings in memory.
type mockSettingsService struct {
	settings domain.AppSettings
	saved    *domain.AppSettings
	validErr error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(s *domain.AppSettings) error {
	m.saved = s
	m.settings = *s
	return nil
}

func (m *mockSettingsService) Validate() error {
	return m.validErr
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// mockHistoryService serves fixed runs.
type mockHistoryService struct {
	runs      []domain.Run
	deletedID string
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.Run, error) {
	if limit > 0 && len(m.runs) > limit {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.Run, error) {
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) Delete(_ context.Context, id string) error {
	m.deletedID = id
	return nil
}

// mockInventoryService returns fixed files.
type mockInventoryService struct {
	files   []domain.ArchiveFile
	gotRoot string
	gotExts []string
}

func (m *mockInventoryService) Scan(_ context.Context, root string, extensions []string) ([]domain.ArchiveFile, error) {
	m.gotRoot = root
	m.gotExts = extensions
	if root == "" {
		return nil, domain.ErrArchiveRootRequired
	}
	return m.files, nil
}

func (m *mockInventoryService) CountByCategory(files []domain.ArchiveFile) map[string]int {
	counts := make(map[string]int)
	for _, f := range files {
		counts[f.Category]++
	}
	return counts
}

// fakeReportWriter writes a one-line marker.
type fakeReportWriter struct {
	format string
}

func (w fakeReportWriter) Format() string {
	return w.format
}

func (w fakeReportWriter) Write(out io.Writer, run *domain.Run) error {
	_, err := fmt.Fprintf(out, "%s report for %s (%d results)\n", w.format, run.ID, len(run.Results))
	return err
}

// testReports registers fake text and json writers.
func testReports() *report.Registry {
	r := report.NewRegistry()
	r.Register(fakeReportWriter{format: "text"})
	r.Register(fakeReportWriter{format: "json"})
	return r
}

// fakeInventoryWriter writes one line per file.
type fakeInventoryWriter struct{}

func (fakeInventoryWriter) WriteInventory(w io.Writer, files []domain.ArchiveFile) error {
	for _, f := range files {
		if _, err := fmt.Fprintln(w, f.RelativePath); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ driving.MatchService     = (*mockMatchService)(nil)
	_ driving.ReferenceService = (*mockReferenceService)(nil)
	_ driving.SettingsService  = (*mockSettingsService)(nil)
	_ driving.HistoryService   = (*mockHistoryService)(nil)
	_ driving.InventoryService = (*mockInventoryService)(nil)
	_ driven.TrackerStore      = (*mockTrackerStore)(nil)
	_ driven.ReportWriter      = fakeReportWriter{}
	_ driven.InventoryWriter   = fakeInventoryWriter{}
)

// withServices installs s for the duration of the test.
func withServices(t *testing.T, s *Services) {
	t.Helper()
	old := Services{
		Match:           matchService,
		Inventory:       inventoryService,
		History:         historyService,
		Reference:       referenceService,
		Settings:        settingsService,
		Tracker:         trackerStore,
		Reports:         reports,
		InventoryWriter: inventoryWriter,
	}
	setServices(s)
	t.Cleanup(func() { setServices(&old) })
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// executeCommand runs the root command with fresh flag state.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd.PersistentFlags())
	for _, c := range []*cobra.Command{
		matchCmd, scanCmd, historyListCmd, historyShowCmd, referenceListCmd,
	} {
		resetFlags(c.Flags())
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
