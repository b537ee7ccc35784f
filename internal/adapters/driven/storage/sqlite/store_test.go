package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/closeout/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func newTestRun(id string, started time.Time) *domain.Run {
	results := []domain.MatchResult{
		{
			Document: domain.RequiredDocument{
				ID: "007", Name: "Bridge Design Manual", Category: "D - Manuals", ContractSection: "1.3",
			},
			Outcome:      domain.OutcomeMatched,
			Strategy:     domain.StrategyExact,
			MatchedCode:  "D1",
			MatchedTitle: "Bridge Design Manual",
			FilePath:     "/archive/D - Manuals/Appendix D1/manual.pdf",
			Confidence:   100,
			Reason:       "exact title match",
		},
		{
			Document: domain.RequiredDocument{ID: "008", Name: "Mystery", FullName: "Mystery Binder", Category: "Z"},
			Outcome:  domain.OutcomeUnknownCategory,
			Reason:   `category "Z" not in reference table`,
		},
	}
	return &domain.Run{
		ID:               id,
		StartedAt:        started,
		FinishedAt:       started.Add(2 * time.Second),
		ArchiveRoot:      "/archive",
		ReferenceVersion: 1,
		Summary:          domain.Summarise(results),
		Results:          results,
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)

	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, filepath.Join(dir, "history.db"), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()
	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.RunStore().SaveRun(context.Background(), newTestRun("r1", time.Now())))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var version int
	require.NoError(t, second.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)

	runs, err := second.RunStore().ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRunStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	rs := setupTestStore(t).RunStore()
	started := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	run := newTestRun("run-1", started)

	require.NoError(t, rs.SaveRun(ctx, run))
	got, err := rs.GetRun(ctx, "run-1")

	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
	assert.True(t, started.Equal(got.StartedAt))
	assert.True(t, run.FinishedAt.Equal(got.FinishedAt))
	assert.Equal(t, "/archive", got.ArchiveRoot)
	assert.Equal(t, 2, got.Summary.Total)
	assert.Equal(t, 1, got.Summary.MatchedWithFile)
	assert.Equal(t, 1, got.Summary.Unmatched)
	assert.Equal(t, 1, got.Summary.ByOutcome[domain.OutcomeUnknownCategory])
	assert.Equal(t, run.Results, got.Results)
}

func TestRunStore_SaveReplacesResults(t *testing.T) {
	ctx := context.Background()
	rs := setupTestStore(t).RunStore()
	run := newTestRun("run-1", time.Now())
	require.NoError(t, rs.SaveRun(ctx, run))

	run.Results = run.Results[:1]
	run.Summary = domain.Summarise(run.Results)
	require.NoError(t, rs.SaveRun(ctx, run))

	got, err := rs.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, got.Results, 1)
	assert.Equal(t, 1, got.Summary.Total)
}

func TestRunStore_GetRun_NotFound(t *testing.T) {
	rs := setupTestStore(t).RunStore()

	_, err := rs.GetRun(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunStore_ListRuns(t *testing.T) {
	ctx := context.Background()
	rs := setupTestStore(t).RunStore()
	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "new", "mid"} {
		offsets := []time.Duration{0, 2 * time.Hour, time.Hour}
		require.NoError(t, rs.SaveRun(ctx, newTestRun(id, base.Add(offsets[i]))))
	}

	runs, err := rs.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)
	assert.Equal(t, "old", runs[2].ID)
	assert.Empty(t, runs[0].Results)
	assert.Equal(t, 2, runs[0].Summary.Total)

	limited, err := rs.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRunStore_ListRuns_Empty(t *testing.T) {
	runs, err := setupTestStore(t).RunStore().ListRuns(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunStore_DeleteRun(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	rs := store.RunStore()
	require.NoError(t, rs.SaveRun(ctx, newTestRun("run-1", time.Now())))

	require.NoError(t, rs.DeleteRun(ctx, "run-1"))

	_, err := rs.GetRun(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM results").Scan(&count))
	assert.Equal(t, 0, count)

	// Deleting again is not an error.
	assert.NoError(t, rs.DeleteRun(ctx, "run-1"))
}
