package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aristath/dispatch/internal/bench"
	_ "modernc.org/sqlite"
)

// RunRecord summarizes one persisted benchmark run.
type RunRecord struct {
	ID        int64
	Seed      int64
	Workers   int
	Cases     int
	Failures  int
	Elapsed   time.Duration
	CreatedAt time.Time
}

// Store defines the persistence interface for benchmark run history.
type Store interface {
	// SaveRun persists a run summary and its cases atomically and
	// returns the new run ID.
	SaveRun(ctx context.Context, run RunRecord, cases []bench.Case) (int64, error)

	// GetRun retrieves one run summary by ID.
	GetRun(ctx context.Context, runID int64) (*RunRecord, error)

	// ListRuns returns run summaries, newest first, up to limit
	// (<= 0 means no limit).
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)

	// ListCases returns a run's cases ordered by size.
	ListCases(ctx context.Context, runID int64) ([]bench.Case, error)

	// Lifecycle
	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed store at the given path.
// Creates parent directories if needed. Enables WAL mode, foreign keys,
// and busy timeout.
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent directories: %w", err)
	}

	// Note: modernc.org/sqlite doesn't support _foreign_keys in the
	// connection string, so that pragma runs separately below.
	connStr := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", dbPath)
	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return initStore(ctx, db)
}

// NewMemoryStore creates an in-memory SQLite store for testing.
// Uses a shared cache so multiple connections see the same database.
func NewMemoryStore(ctx context.Context) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", "file::memory:?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("failed to open memory database: %w", err)
	}

	return initStore(ctx, db)
}

// initStore applies pragmas, connection limits, and schema.
func initStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// One writer connection keeps run+case inserts serialized.
	db.SetMaxOpenConns(2)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
