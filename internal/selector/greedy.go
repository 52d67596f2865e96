package selector

import (
	"math"
	"sort"
	"time"

	"github.com/aristath/dispatch/internal/interval"
)

// Greedy selects by sorting a copy of the tasks on ascending end time
// and scanning once, accepting every task that starts at or after the
// last accepted end. The exchange argument for unweighted interval
// scheduling makes this optimal: any optimal solution's earliest
// finisher can be swapped for the globally earliest compatible
// finisher without losing a task, and induction over the remaining
// suffix does the rest. That argument leans on the objective being
// pure count maximization -- weight the tasks and this selector is
// wrong.
type Greedy struct{}

// NewGreedy returns a greedy selector.
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Select returns a maximum-cardinality non-overlapping subset of ts in
// O(n log n). The sort is stable, so tasks with equal end times keep
// their input order and repeated runs on the same set return identical
// subsets. Comparisons counts both sort comparator calls and the scan's
// start-against-boundary tests, for parity with the exhaustive
// selector's instrumentation. The error return exists only to satisfy
// the shared Selector contract; it is always nil.
func (g *Greedy) Select(ts interval.TaskSet) (Result, error) {
	start := time.Now()

	tasks := ts.Tasks()
	var comparisons int64

	sort.SliceStable(tasks, func(i, j int) bool {
		comparisons++
		return tasks[i].End < tasks[j].End
	})

	selected := make([]interval.Task, 0, len(tasks))
	lastEnd := math.Inf(-1)
	for _, t := range tasks {
		comparisons++
		if t.Start >= lastEnd {
			selected = append(selected, t)
			lastEnd = t.End
		}
	}

	return Result{
		Selected:    selected,
		Count:       len(selected),
		Comparisons: comparisons,
		Elapsed:     time.Since(start),
	}, nil
}
