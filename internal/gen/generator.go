// Package gen produces sample job batches for the benchmark harness
// and tests. Generation is deterministic per seed so runs can be
// reproduced and compared.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/aristath/dispatch/internal/interval"
)

// Config controls random task-set generation.
type Config struct {
	Count       int     `json:"count"`        // number of tasks to generate
	Horizon     float64 `json:"horizon"`      // start times drawn from [0, Horizon)
	MinDuration float64 `json:"min_duration"` // shortest task length, must be > 0
	MaxDuration float64 `json:"max_duration"` // longest task length, >= MinDuration
	Seed        int64   `json:"seed"`         // RNG seed; same seed, same tasks
}

// Generate builds a random task set: Count tasks with starts uniform
// over [0, Horizon) and durations uniform over
// [MinDuration, MaxDuration]. All generated tasks are valid by
// construction, so the TaskSet build cannot fail on bounds.
func Generate(cfg Config) (interval.TaskSet, error) {
	if cfg.Count < 0 {
		return interval.TaskSet{}, fmt.Errorf("negative task count %d", cfg.Count)
	}
	if cfg.MinDuration <= 0 {
		return interval.TaskSet{}, fmt.Errorf("min duration %g must be positive", cfg.MinDuration)
	}
	if cfg.MaxDuration < cfg.MinDuration {
		return interval.TaskSet{}, fmt.Errorf("max duration %g < min duration %g", cfg.MaxDuration, cfg.MinDuration)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	tasks := make([]interval.Task, cfg.Count)
	span := cfg.MaxDuration - cfg.MinDuration
	for i := range tasks {
		start := rng.Float64() * cfg.Horizon
		tasks[i] = interval.Task{
			Start: start,
			End:   start + cfg.MinDuration + rng.Float64()*span,
		}
	}

	return interval.New(tasks)
}

// WithCount returns a copy of the config sized to n tasks.
func (c Config) WithCount(n int) Config {
	c.Count = n
	return c
}

// Staircase builds n disjoint, evenly spaced tasks [i*10, i*10+5).
// Every task fits, so any optimal selection takes all n.
func Staircase(n int) (interval.TaskSet, error) {
	tasks := make([]interval.Task, n)
	for i := range tasks {
		tasks[i] = interval.Task{Start: float64(i * 10), End: float64(i*10 + 5)}
	}
	return interval.New(tasks)
}

// Pileup builds n identical tasks [0, 100); any optimal selection
// takes exactly one.
func Pileup(n int) (interval.TaskSet, error) {
	tasks := make([]interval.Task, n)
	for i := range tasks {
		tasks[i] = interval.Task{Start: 0, End: 100}
	}
	return interval.New(tasks)
}
