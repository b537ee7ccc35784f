package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]domain.Run
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]domain.Run),
	}
}

// SaveRun stores a copy of run.
func (s *RunStore) SaveRun(_ context.Context, run *domain.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = copyRun(*run)
	return nil
}

// GetRun retrieves a run by ID.
func (s *RunStore) GetRun(_ context.Context, id string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := copyRun(run)
	return &c, nil
}

// ListRuns returns runs newest first, without results.
func (s *RunStore) ListRuns(_ context.Context, limit int) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Run, 0, len(s.runs))
	for _, run := range s.runs {
		run.Results = nil
		result = append(result, run)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].StartedAt.After(result[j].StartedAt)
		}
		return result[i].ID < result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// DeleteRun removes a run.
func (s *RunStore) DeleteRun(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, id)
	return nil
}

func copyRun(run domain.Run) domain.Run {
	run.Results = append([]domain.MatchResult(nil), run.Results...)
	counts := make(map[domain.Outcome]int, len(run.Summary.ByOutcome))
	for k, v := range run.Summary.ByOutcome {
		counts[k] = v
	}
	run.Summary.ByOutcome = counts
	return run
}
