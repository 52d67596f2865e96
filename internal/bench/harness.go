// Package bench runs both selectors side by side over generated job
// batches and cross-checks them. The selectors are pure functions, so
// the cases run concurrently with no coordination beyond collecting
// the results.
package bench

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aristath/dispatch/internal/events"
	"github.com/aristath/dispatch/internal/gen"
	"github.com/aristath/dispatch/internal/interval"
	"github.com/aristath/dispatch/internal/selector"
)

// Case is the outcome of one input size: both selector results plus
// the equivalence verdict.
type Case struct {
	Size       int
	Greedy     selector.Result
	Exhaustive selector.Result
	Gated      bool // exhaustive skipped: size above its cap
	Match      bool // equal counts (vacuously true when gated)
	Err        error
}

// Speedup returns the exhaustive/greedy elapsed ratio, or 0 when the
// exhaustive selector did not run or either duration is unusable.
func (c Case) Speedup() float64 {
	if c.Gated || c.Greedy.Elapsed <= 0 || c.Exhaustive.Elapsed <= 0 {
		return 0
	}
	return float64(c.Exhaustive.Elapsed) / float64(c.Greedy.Elapsed)
}

// Config configures a benchmark run.
type Config struct {
	Sizes           []int      `json:"sizes"`            // input sizes to exercise
	Workers         int        `json:"workers"`          // max concurrent cases (default 4)
	ExhaustiveLimit int        `json:"exhaustive_limit"` // cap passed to the exhaustive selector
	Generator       gen.Config `json:"generator"`        // template; Count is overridden per size
}

// Harness runs the configured benchmark and publishes progress events.
type Harness struct {
	cfg Config
	bus *events.EventBus

	mu    sync.Mutex
	cases []Case
}

// NewHarness creates a harness. bus may be nil to run silently.
func NewHarness(cfg Config, bus *events.EventBus) *Harness {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Harness{cfg: cfg, bus: bus}
}

// ErrCountMismatch marks a run in which the two selectors disagreed on
// cardinality for at least one case.
var ErrCountMismatch = errors.New("selector counts differ")

// Run executes every configured size with bounded concurrency and
// returns the cases ordered by size. Generation failures abort the
// run; a count mismatch finishes the run and is reported both on the
// offending Case and as ErrCountMismatch.
func (h *Harness) Run(ctx context.Context) ([]Case, error) {
	started := time.Now()
	h.publish(events.RunStartedEvent{
		Sizes:     append([]int(nil), h.cfg.Sizes...),
		Seed:      h.cfg.Generator.Seed,
		Timestamp: started,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.cfg.Workers)

	for _, size := range h.cfg.Sizes {
		n := size
		g.Go(func() error {
			return h.runCase(gctx, n)
		})
	}

	err := g.Wait()

	h.mu.Lock()
	cases := append([]Case(nil), h.cases...)
	h.mu.Unlock()
	sort.Slice(cases, func(i, j int) bool { return cases[i].Size < cases[j].Size })

	failures := 0
	for _, c := range cases {
		if !c.Match || c.Err != nil {
			failures++
		}
	}

	h.publish(events.RunFinishedEvent{
		Cases:     len(cases),
		Failures:  failures,
		Elapsed:   time.Since(started),
		Timestamp: time.Now(),
	})

	if err != nil {
		return cases, err
	}
	if failures > 0 {
		return cases, fmt.Errorf("%d of %d cases failed: %w", failures, len(cases), ErrCountMismatch)
	}
	return cases, nil
}

// runCase generates one batch and runs both selectors over it.
func (h *Harness) runCase(ctx context.Context, size int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.publish(events.CaseStartedEvent{TaskCount: size, Timestamp: time.Now()})

	ts, err := gen.Generate(h.cfg.Generator.WithCount(size))
	if err != nil {
		return fmt.Errorf("generating %d tasks: %w", size, err)
	}

	c := h.compare(ts)
	c.Size = size

	h.mu.Lock()
	h.cases = append(h.cases, c)
	h.mu.Unlock()

	if !c.Match {
		h.publish(events.CaseMismatchEvent{
			TaskCount:       size,
			GreedyCount:     c.Greedy.Count,
			ExhaustiveCount: c.Exhaustive.Count,
			Timestamp:       time.Now(),
		})
	}
	h.publish(events.CaseFinishedEvent{
		TaskCount:  size,
		Greedy:     c.Greedy,
		Exhaustive: c.Exhaustive,
		Gated:      c.Gated,
		Timestamp:  time.Now(),
	})

	return nil
}

// compare runs both selectors over one task set and checks the
// equivalence contract: identical counts, possibly different subsets.
func (h *Harness) compare(ts interval.TaskSet) Case {
	c := Case{Match: true}

	greedyRes, err := selector.NewGreedy().Select(ts)
	if err != nil {
		c.Err = err
		c.Match = false
		return c
	}
	c.Greedy = greedyRes

	exhaustiveRes, err := selector.NewExhaustive(h.cfg.ExhaustiveLimit).Select(ts)
	if err != nil {
		var limitErr *selector.SizeLimitError
		if errors.As(err, &limitErr) {
			c.Gated = true
			return c
		}
		c.Err = err
		c.Match = false
		return c
	}
	c.Exhaustive = exhaustiveRes
	c.Match = greedyRes.Count == exhaustiveRes.Count
	return c
}

func (h *Harness) publish(ev events.Event) {
	if h.bus != nil {
		h.bus.Publish(events.TopicBench, ev)
	}
}
