package selector

import (
	"time"

	"github.com/aristath/dispatch/internal/interval"
)

// Result is the outcome of a single selector run. Each run produces a
// fresh Result owned by the caller; nothing is shared across runs.
type Result struct {
	Selected    []interval.Task // chosen subset, in ascending end-time order
	Count       int             // len(Selected)
	Comparisons int64           // overlap tests (exhaustive) or ordering comparisons (greedy)
	Elapsed     time.Duration   // wall-clock duration of the run
	MaxDepth    int             // deepest recursion reached; 0 for the greedy pass
}

// Selector picks a maximum set of mutually non-overlapping tasks.
// Implementations are pure functions of the input set: no shared state,
// safe to invoke concurrently on the same TaskSet.
type Selector interface {
	Select(ts interval.TaskSet) (Result, error)
}
