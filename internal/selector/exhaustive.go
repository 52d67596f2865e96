package selector

import (
	"fmt"
	"sort"
	"time"

	"github.com/aristath/dispatch/internal/interval"
)

// DefaultExhaustiveLimit caps the input size the exhaustive selector
// accepts. The search visits up to 2^n subsets with an O(n) validity
// check per include branch, so anything much past this is impractical.
const DefaultExhaustiveLimit = 24

// SizeLimitError reports an input too large for the exhaustive search.
type SizeLimitError struct {
	Size  int
	Limit int
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("task set size %d exceeds exhaustive limit %d", e.Size, e.Limit)
}

// Exhaustive selects by exploring every include/exclude branch over the
// task indices, pruning branches whose partial set overlaps. The result
// is provably maximum in cardinality. Worst case O(n*2^n) time, O(n)
// recursion depth, so Select refuses inputs above Limit.
type Exhaustive struct {
	Limit int // maximum input size; <= 0 means DefaultExhaustiveLimit
}

// NewExhaustive returns an exhaustive selector with the given size cap.
// A cap <= 0 selects DefaultExhaustiveLimit.
func NewExhaustive(limit int) *Exhaustive {
	if limit <= 0 {
		limit = DefaultExhaustiveLimit
	}
	return &Exhaustive{Limit: limit}
}

// Select returns a maximum-cardinality non-overlapping subset of ts.
// When multiple maxima exist the specific subset is determined by the
// branch order (the exclude branch is explored first and wins ties), so
// only cardinality and validity are guaranteed, not set identity.
// Returns *SizeLimitError when the set is larger than the configured
// cap.
func (e *Exhaustive) Select(ts interval.TaskSet) (Result, error) {
	limit := e.Limit
	if limit <= 0 {
		limit = DefaultExhaustiveLimit
	}
	if n := ts.Len(); n > limit {
		return Result{}, &SizeLimitError{Size: n, Limit: limit}
	}

	start := time.Now()

	// All working state, instrumentation included, lives in the
	// per-run search value created here and discarded on return.
	run := &exhaustiveSearch{tasks: ts.Tasks()}
	run.explore(0, make([]interval.Task, 0, ts.Len()), 0)

	// Partial sets carry input order; the output contract is ascending
	// end time. Presentation only, not counted as search work.
	sort.SliceStable(run.best, func(i, j int) bool {
		return run.best[i].End < run.best[j].End
	})

	return Result{
		Selected:    run.best,
		Count:       len(run.best),
		Comparisons: run.comparisons,
		Elapsed:     time.Since(start),
		MaxDepth:    run.maxDepth,
	}, nil
}

// exhaustiveSearch holds the working state of one Select call.
type exhaustiveSearch struct {
	tasks       []interval.Task
	best        []interval.Task
	comparisons int64
	maxDepth    int
}

// explore recurses over the binary decision at index i: leave the task
// out, or take it if it fits the partial set. The exclude branch runs
// first, so the first maximum-size leaf in that order becomes the
// result and later leaves replace it only when strictly larger -- ties
// keep the exclude branch's leaf, an arbitrary but deterministic rule.
func (s *exhaustiveSearch) explore(i int, partial []interval.Task, depth int) {
	if depth > s.maxDepth {
		s.maxDepth = depth
	}

	if i == len(s.tasks) {
		if len(partial) > len(s.best) {
			s.best = append(s.best[:0], partial...)
		}
		return
	}

	s.explore(i+1, partial, depth+1)

	if s.fits(s.tasks[i], partial) {
		s.explore(i+1, append(partial, s.tasks[i]), depth+1)
	}
}

// fits reports whether candidate overlaps nothing already in partial.
// Every previously accepted task is checked, not just the last one, and
// each check counts toward the comparison total.
func (s *exhaustiveSearch) fits(candidate interval.Task, partial []interval.Task) bool {
	for _, accepted := range partial {
		s.comparisons++
		if interval.Overlaps(candidate, accepted) {
			return false
		}
	}
	return true
}
