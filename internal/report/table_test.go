package report

import (
	"strings"
	"testing"
	"time"

	"github.com/aristath/dispatch/internal/bench"
	"github.com/aristath/dispatch/internal/persistence"
	"github.com/aristath/dispatch/internal/selector"
)

// TestTable verifies the table carries the numbers a reader needs.
func TestTable(t *testing.T) {
	cases := []bench.Case{
		{
			Size:       10,
			Match:      true,
			Greedy:     selector.Result{Count: 4, Comparisons: 33, Elapsed: 10 * time.Microsecond},
			Exhaustive: selector.Result{Count: 4, Comparisons: 812, Elapsed: 400 * time.Microsecond, MaxDepth: 10},
		},
		{
			Size:   500,
			Gated:  true,
			Match:  true,
			Greedy: selector.Result{Count: 41, Comparisons: 4990, Elapsed: 120 * time.Microsecond},
		},
	}

	out := Table(cases)
	for _, want := range []string{"size", "812", "4990", "skipped", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

// TestRowMismatch verifies disagreeing counts are called out.
func TestRowMismatch(t *testing.T) {
	out := Row(bench.Case{
		Size:       6,
		Match:      false,
		Greedy:     selector.Result{Count: 3, Elapsed: time.Microsecond},
		Exhaustive: selector.Result{Count: 4, Elapsed: time.Microsecond},
	})
	if !strings.Contains(out, "MISMATCH") {
		t.Errorf("mismatch row missing marker:\n%s", out)
	}
}

// TestSummary covers both the clean and failing footers.
func TestSummary(t *testing.T) {
	clean := []bench.Case{{Size: 5, Match: true}}
	if out := Summary(clean, time.Second); !strings.Contains(out, "agree") {
		t.Errorf("clean summary = %q", out)
	}

	failed := []bench.Case{{Size: 5, Match: false}}
	if out := Summary(failed, time.Second); !strings.Contains(out, "1 failed") {
		t.Errorf("failing summary = %q", out)
	}
}

// TestHistory covers the saved-run listing.
func TestHistory(t *testing.T) {
	if out := History(nil); !strings.Contains(out, "no saved runs") {
		t.Errorf("empty history = %q", out)
	}

	runs := []persistence.RunRecord{
		{ID: 3, Seed: 7, Workers: 4, Cases: 5, Elapsed: 2 * time.Second, CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
	}
	out := History(runs)
	for _, want := range []string{"2026-08-01", "run"} {
		if !strings.Contains(out, want) {
			t.Errorf("history output missing %q:\n%s", want, out)
		}
	}
}
