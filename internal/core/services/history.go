package services

import (
	"context"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
	"github.com/custodia-labs/closeout/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads recorded match runs.
type HistoryService struct {
	runStore driven.RunStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(runStore driven.RunStore) *HistoryService {
	return &HistoryService{runStore: runStore}
}

// List returns the most recent runs first, without results.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.runStore.ListRuns(ctx, limit)
}

// Get returns a run with all of its results.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Run, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.runStore.GetRun(ctx, id)
}

// Delete removes a recorded run.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	if s.runStore == nil {
		return domain.ErrNotImplemented
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.runStore.DeleteRun(ctx, id)
}
