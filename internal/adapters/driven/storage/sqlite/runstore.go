package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/closeout/internal/core/domain"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

const runColumns = `id, started_at, finished_at, archive_root, reference_version,
	total, matched_with_file, matched_without_file, unmatched,
	high_confidence, medium_confidence, by_outcome`

// SaveRun stores a run and replaces any results previously saved under its ID.
func (s *runStore) SaveRun(ctx context.Context, run *domain.Run) error {
	byOutcome, err := json.Marshal(run.Summary.ByOutcome)
	if err != nil {
		return fmt.Errorf("marshalling outcome counts: %w", err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sum := run.Summary
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			archive_root = excluded.archive_root,
			reference_version = excluded.reference_version,
			total = excluded.total,
			matched_with_file = excluded.matched_with_file,
			matched_without_file = excluded.matched_without_file,
			unmatched = excluded.unmatched,
			high_confidence = excluded.high_confidence,
			medium_confidence = excluded.medium_confidence,
			by_outcome = excluded.by_outcome
	`, run.ID, run.StartedAt.UTC(), run.FinishedAt.UTC(), run.ArchiveRoot, run.ReferenceVersion,
		sum.Total, sum.MatchedWithFile, sum.MatchedWithoutFile, sum.Unmatched,
		sum.HighConfidence, sum.MediumConfidence, string(byOutcome))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM results WHERE run_id = ?", run.ID); err != nil {
		return fmt.Errorf("clearing results: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (run_id, position, doc_id, doc_name, full_name, category,
			contract_section, representative_file, outcome, strategy, matched_code,
			matched_title, file_path, confidence, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing result insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range run.Results {
		d := r.Document
		_, err := stmt.ExecContext(ctx, run.ID, i, d.ID, d.Name, d.FullName, d.Category,
			d.ContractSection, d.RepresentativeFile, string(r.Outcome), string(r.Strategy),
			r.MatchedCode, r.MatchedTitle, r.FilePath, r.Confidence, r.Reason)
		if err != nil {
			return fmt.Errorf("saving result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// GetRun retrieves a run with its results in input order.
func (s *runStore) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT doc_id, doc_name, full_name, category, contract_section, representative_file,
			outcome, strategy, matched_code, matched_title, file_path, confidence, reason
		FROM results WHERE run_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.MatchResult
		var outcome, strategy string
		d := &r.Document
		if err := rows.Scan(&d.ID, &d.Name, &d.FullName, &d.Category, &d.ContractSection,
			&d.RepresentativeFile, &outcome, &strategy, &r.MatchedCode, &r.MatchedTitle,
			&r.FilePath, &r.Confidence, &r.Reason); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Outcome = domain.Outcome(outcome)
		r.Strategy = domain.Strategy(strategy)
		run.Results = append(run.Results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}

	return run, nil
}

// ListRuns returns runs newest first, without results.
func (s *runStore) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY started_at DESC, id"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// DeleteRun removes a run and its results.
func (s *runStore) DeleteRun(ctx context.Context, id string) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM results WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("deleting results: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	return tx.Commit()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var byOutcome string
	sum := &run.Summary
	err := row.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.ArchiveRoot, &run.ReferenceVersion,
		&sum.Total, &sum.MatchedWithFile, &sum.MatchedWithoutFile, &sum.Unmatched,
		&sum.HighConfidence, &sum.MediumConfidence, &byOutcome)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	counts := make(map[string]int)
	if err := json.Unmarshal([]byte(byOutcome), &counts); err != nil {
		return nil, fmt.Errorf("unmarshalling outcome counts: %w", err)
	}
	sum.ByOutcome = make(map[domain.Outcome]int, len(counts))
	for k, v := range counts {
		sum.ByOutcome[domain.Outcome(k)] = v
	}
	return &run, nil
}
