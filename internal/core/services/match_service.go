package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
	"github.com/custodia-labs/closeout/internal/core/ports/driving"
	"github.com/custodia-labs/closeout/internal/logger"
)

// Ensure MatchService implements the interface.
var _ driving.MatchService = (*MatchService)(nil)

// MatchService runs the matcher over a batch of documents.
type MatchService struct {
	archives driven.ArchiveFactory
	runStore driven.RunStore
	now      func() time.Time
}

// NewMatchService creates a match service. runStore may be nil, in which
// case runs are never recorded.
func NewMatchService(archives driven.ArchiveFactory, runStore driven.RunStore) *MatchService {
	return &MatchService{
		archives: archives,
		runStore: runStore,
		now:      time.Now,
	}
}

// Run matches every document in req and returns one result per document
// in input order. The order and content of results do not depend on
// req.Workers.
func (s *MatchService) Run(ctx context.Context, req driving.MatchRequest) (*domain.Run, error) {
	if s.archives == nil {
		return nil, domain.ErrNotImplemented
	}
	if req.Reference == nil {
		return nil, fmt.Errorf("%w: reference table is required", domain.ErrInvalidInput)
	}
	if req.ArchiveRoot == "" {
		return nil, domain.ErrArchiveRootRequired
	}

	extensions := req.Extensions
	if len(extensions) == 0 {
		extensions = domain.DefaultAppSettings().Archive.Extensions
	}
	archive := s.archives.Open(req.ArchiveRoot, extensions)
	matcher := NewMatcher(req.Reference, archive, req.FuzzyThreshold)

	run := &domain.Run{
		ID:               uuid.New().String(),
		StartedAt:        s.now(),
		ArchiveRoot:      req.ArchiveRoot,
		ReferenceVersion: req.Reference.Version(),
	}

	logger.Section("Matching")
	logger.L().Info("match run started",
		zap.String("run", run.ID),
		zap.Int("documents", len(req.Documents)),
		zap.Int("workers", req.Workers))

	results, err := matchAll(ctx, matcher, req.Documents, req.Workers)
	if err != nil {
		return nil, err
	}

	run.Results = results
	run.Summary = domain.Summarise(results)
	run.FinishedAt = s.now()

	if req.Record && s.runStore != nil {
		if err := s.runStore.SaveRun(ctx, run); err != nil {
			return run, fmt.Errorf("recording run: %w", err)
		}
	}

	logger.L().Info("match run finished",
		zap.String("run", run.ID),
		zap.Int("matched", run.Summary.MatchedWithFile),
		zap.Int("file_absent", run.Summary.MatchedWithoutFile),
		zap.Int("unmatched", run.Summary.Unmatched))
	return run, nil
}

// matchAll fans documents out to workers. Each worker writes only its own
// slots of results, so no locking is needed.
func matchAll(
	ctx context.Context,
	matcher *Matcher,
	docs []domain.RequiredDocument,
	workers int,
) ([]domain.MatchResult, error) {
	results := make([]domain.MatchResult, len(docs))
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range docs {
		if err := gctx.Err(); err != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := matcher.Match(docs[i])
			if err != nil {
				return fmt.Errorf("document %s: %w", docs[i].ID, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation seen only by the loop leaves results incomplete.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
