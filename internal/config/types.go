package config

import (
	"github.com/aristath/dispatch/internal/bench"
)

// DatabaseConfig locates the run-history store.
type DatabaseConfig struct {
	Path string `json:"path"` // sqlite file path; empty disables persistence
}

// DispatchConfig is the top-level configuration.
type DispatchConfig struct {
	Bench    bench.Config   `json:"bench"`
	Database DatabaseConfig `json:"database"`
}
