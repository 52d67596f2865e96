package config

import (
	"os"
	"path/filepath"

	"github.com/aristath/dispatch/internal/bench"
	"github.com/aristath/dispatch/internal/gen"
	"github.com/aristath/dispatch/internal/selector"
)

// DefaultConfig returns the built-in configuration: a size sweep that
// crosses the exhaustive gate, a reproducible generator, and run
// history under the user's home directory.
func DefaultConfig() *DispatchConfig {
	return &DispatchConfig{
		Bench: bench.Config{
			Sizes:           []int{5, 10, 15, 20, 50, 100, 500},
			Workers:         4,
			ExhaustiveLimit: selector.DefaultExhaustiveLimit,
			Generator: gen.Config{
				Horizon:     1440, // one day of minutes
				MinDuration: 10,
				MaxDuration: 120,
				Seed:        1,
			},
		},
		Database: DatabaseConfig{
			Path: defaultDBPath(),
		},
	}
}

// defaultDBPath returns ~/.dispatch/history.db, or a relative fallback
// when the home directory cannot be resolved.
func defaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".dispatch", "history.db")
	}
	return filepath.Join(homeDir, ".dispatch", "history.db")
}
