package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aristath/dispatch/internal/bench"
)

// SaveRun persists a run summary and its cases in one transaction and
// returns the new run ID.
func (s *SQLiteStore) SaveRun(ctx context.Context, run RunRecord, cases []bench.Case) (int64, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (seed, workers, cases, failures, elapsed_ns, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, run.Seed, run.Workers, len(cases), run.Failures, run.Elapsed.Nanoseconds())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	for _, c := range cases {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_cases (
				run_id, size, gated, counts_match,
				greedy_count, greedy_comparisons, greedy_elapsed_ns,
				exhaustive_count, exhaustive_comparisons, exhaustive_elapsed_ns, exhaustive_max_depth
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, c.Size, boolToInt(c.Gated), boolToInt(c.Match),
			c.Greedy.Count, c.Greedy.Comparisons, c.Greedy.Elapsed.Nanoseconds(),
			c.Exhaustive.Count, c.Exhaustive.Comparisons, c.Exhaustive.Elapsed.Nanoseconds(), c.Exhaustive.MaxDepth)
		if err != nil {
			return 0, fmt.Errorf("failed to insert case for size %d: %w", c.Size, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return runID, nil
}

// GetRun retrieves a run summary by ID.
func (s *SQLiteStore) GetRun(ctx context.Context, runID int64) (*RunRecord, error) {
	run := &RunRecord{}
	var elapsedNS int64

	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed, workers, cases, failures, elapsed_ns, created_at
		FROM runs WHERE id = ?
	`, runID).Scan(&run.ID, &run.Seed, &run.Workers, &run.Cases, &run.Failures, &elapsedNS, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %d: %w", runID, err)
	}

	run.Elapsed = time.Duration(elapsedNS)
	return run, nil
}

// ListRuns returns run summaries, newest first. limit <= 0 returns all.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	query := `
		SELECT id, seed, workers, cases, failures, elapsed_ns, created_at
		FROM runs ORDER BY id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		var elapsedNS int64
		if err := rows.Scan(&run.ID, &run.Seed, &run.Workers, &run.Cases, &run.Failures, &elapsedNS, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Elapsed = time.Duration(elapsedNS)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// ListCases returns a run's cases ordered by size.
func (s *SQLiteStore) ListCases(ctx context.Context, runID int64) ([]bench.Case, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT size, gated, counts_match,
			greedy_count, greedy_comparisons, greedy_elapsed_ns,
			exhaustive_count, exhaustive_comparisons, exhaustive_elapsed_ns, exhaustive_max_depth
		FROM run_cases WHERE run_id = ? ORDER BY size
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases for run %d: %w", runID, err)
	}
	defer rows.Close()

	var cases []bench.Case
	for rows.Next() {
		var c bench.Case
		var gated, match int
		var greedyNS, exhaustiveNS int64
		err := rows.Scan(&c.Size, &gated, &match,
			&c.Greedy.Count, &c.Greedy.Comparisons, &greedyNS,
			&c.Exhaustive.Count, &c.Exhaustive.Comparisons, &exhaustiveNS, &c.Exhaustive.MaxDepth)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		c.Gated = gated != 0
		c.Match = match != 0
		c.Greedy.Elapsed = time.Duration(greedyNS)
		c.Exhaustive.Elapsed = time.Duration(exhaustiveNS)
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cases: %w", err)
	}

	return cases, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
