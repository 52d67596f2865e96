package persistence

import (
	"context"
)

// initSchema creates all required tables if they don't exist.
func (s *SQLiteStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seed INTEGER NOT NULL,
		workers INTEGER NOT NULL,
		cases INTEGER NOT NULL,
		failures INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS run_cases (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL,
		size INTEGER NOT NULL,
		gated INTEGER NOT NULL,
		counts_match INTEGER NOT NULL,
		greedy_count INTEGER NOT NULL,
		greedy_comparisons INTEGER NOT NULL,
		greedy_elapsed_ns INTEGER NOT NULL,
		exhaustive_count INTEGER NOT NULL,
		exhaustive_comparisons INTEGER NOT NULL,
		exhaustive_elapsed_ns INTEGER NOT NULL,
		exhaustive_max_depth INTEGER NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_run_cases_run_size ON run_cases(run_id, size);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}
