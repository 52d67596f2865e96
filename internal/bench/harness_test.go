package bench

import (
	"context"
	"testing"
	"time"

	"github.com/aristath/dispatch/internal/events"
	"github.com/aristath/dispatch/internal/gen"
)

func testConfig(sizes ...int) Config {
	return Config{
		Sizes:           sizes,
		Workers:         2,
		ExhaustiveLimit: 16,
		Generator: gen.Config{
			Horizon:     500,
			MinDuration: 5,
			MaxDuration: 40,
			Seed:        99,
		},
	}
}

// TestRunMatchesAcrossSizes verifies a clean run: one case per size,
// ordered output, counts agreeing wherever the exhaustive path ran.
func TestRunMatchesAcrossSizes(t *testing.T) {
	sizes := []int{4, 8, 12, 16}
	h := NewHarness(testConfig(sizes...), nil)

	cases, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(cases) != len(sizes) {
		t.Fatalf("got %d cases, want %d", len(cases), len(sizes))
	}

	for i, c := range cases {
		if c.Size != sizes[i] {
			t.Errorf("case %d size = %d, want %d (ordered by size)", i, c.Size, sizes[i])
		}
		if c.Err != nil {
			t.Errorf("case size %d: %v", c.Size, c.Err)
		}
		if c.Gated {
			t.Errorf("case size %d unexpectedly gated", c.Size)
		}
		if !c.Match {
			t.Errorf("case size %d: greedy count %d != exhaustive count %d", c.Size, c.Greedy.Count, c.Exhaustive.Count)
		}
		if c.Greedy.Count <= 0 {
			t.Errorf("case size %d: greedy selected nothing", c.Size)
		}
	}
}

// TestRunGatesLargeSizes verifies sizes above the exhaustive cap still
// produce greedy results, flagged as gated and still counted as a
// match.
func TestRunGatesLargeSizes(t *testing.T) {
	h := NewHarness(testConfig(8, 500), nil)

	cases, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	big := cases[1]
	if big.Size != 500 {
		t.Fatalf("second case size = %d, want 500", big.Size)
	}
	if !big.Gated {
		t.Error("size 500 should be gated")
	}
	if !big.Match {
		t.Error("gated case should not count as a mismatch")
	}
	if big.Greedy.Count <= 0 {
		t.Error("gated case still needs a greedy result")
	}
	if big.Speedup() != 0 {
		t.Errorf("gated case speedup = %g, want 0", big.Speedup())
	}
}

// TestRunPublishesEvents verifies the progress event sequence on the
// bench topic.
func TestRunPublishesEvents(t *testing.T) {
	bus := events.NewEventBus()
	defer bus.Close()
	sub := bus.Subscribe(events.TopicBench, 64)

	h := NewHarness(testConfig(5, 10), bus)
	if _, err := h.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	counts := map[string]int{}
	deadline := time.After(2 * time.Second)
collect:
	for {
		select {
		case ev := <-sub:
			counts[ev.EventType()]++
			if ev.EventType() == events.EventTypeRunFinished {
				break collect
			}
		case <-deadline:
			t.Fatal("timeout collecting events")
		}
	}

	if counts[events.EventTypeRunStarted] != 1 {
		t.Errorf("run.started events = %d, want 1", counts[events.EventTypeRunStarted])
	}
	if counts[events.EventTypeCaseStarted] != 2 {
		t.Errorf("case.started events = %d, want 2", counts[events.EventTypeCaseStarted])
	}
	if counts[events.EventTypeCaseFinished] != 2 {
		t.Errorf("case.finished events = %d, want 2", counts[events.EventTypeCaseFinished])
	}
	if counts[events.EventTypeCaseMismatch] != 0 {
		t.Errorf("case.mismatch events = %d, want 0", counts[events.EventTypeCaseMismatch])
	}
}

// TestRunCancelled verifies context cancellation aborts the run.
func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewHarness(testConfig(4, 8, 12), nil)
	if _, err := h.Run(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
}

// TestRunRejectsBadGenerator verifies generation failures abort.
func TestRunRejectsBadGenerator(t *testing.T) {
	cfg := testConfig(4)
	cfg.Generator.MinDuration = 0

	h := NewHarness(cfg, nil)
	if _, err := h.Run(context.Background()); err == nil {
		t.Error("expected error from invalid generator config")
	}
}
