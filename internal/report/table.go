// Package report renders benchmark output for the plain (non-TUI)
// path: a per-size comparison table and a one-line run summary.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aristath/dispatch/internal/bench"
	"github.com/aristath/dispatch/internal/persistence"
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	styleOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color("green"))

	styleMismatch = lipgloss.NewStyle().
			Foreground(lipgloss.Color("red")).
			Bold(true)

	styleGated = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Table renders the per-size comparison table for a finished run.
func Table(cases []bench.Case) string {
	var b strings.Builder

	header := fmt.Sprintf("%-8s %-10s %-14s %-12s %-10s %-14s %-12s %-8s %-10s %s",
		"size",
		"greedy", "comparisons", "elapsed",
		"exhaust", "comparisons", "elapsed", "depth",
		"speedup", "check")
	b.WriteString(styleHeader.Render(header))
	b.WriteString("\n")

	for _, c := range cases {
		b.WriteString(Row(c))
		b.WriteString("\n")
	}

	return b.String()
}

// Row renders one case as a table line.
func Row(c bench.Case) string {
	if c.Gated {
		line := fmt.Sprintf("%-8d %-10d %-14d %-12s %s",
			c.Size,
			c.Greedy.Count, c.Greedy.Comparisons, formatDuration(c.Greedy.Elapsed),
			"exhaustive skipped (over size cap)")
		return styleGated.Render(line)
	}

	check := styleOK.Render("ok")
	if !c.Match {
		check = styleMismatch.Render(fmt.Sprintf("MISMATCH %d != %d", c.Greedy.Count, c.Exhaustive.Count))
	}

	return fmt.Sprintf("%-8d %-10d %-14d %-12s %-10d %-14d %-12s %-8d %-10s %s",
		c.Size,
		c.Greedy.Count, c.Greedy.Comparisons, formatDuration(c.Greedy.Elapsed),
		c.Exhaustive.Count, c.Exhaustive.Comparisons, formatDuration(c.Exhaustive.Elapsed), c.Exhaustive.MaxDepth,
		formatSpeedup(c.Speedup()), check)
}

// Summary renders the one-line run footer.
func Summary(cases []bench.Case, elapsed time.Duration) string {
	failures := 0
	for _, c := range cases {
		if !c.Match || c.Err != nil {
			failures++
		}
	}

	line := fmt.Sprintf("%d cases in %s", len(cases), formatDuration(elapsed))
	if failures == 0 {
		return line + ", " + styleOK.Render("all selector counts agree")
	}
	return line + ", " + styleMismatch.Render(fmt.Sprintf("%d failed", failures))
}

// History renders persisted run summaries, newest first.
func History(runs []persistence.RunRecord) string {
	if len(runs) == 0 {
		return "no saved runs\n"
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("%-6s %-22s %-8s %-8s %-8s %-10s %s",
		"run", "created", "seed", "workers", "cases", "failures", "elapsed")))
	b.WriteString("\n")

	for _, r := range runs {
		line := fmt.Sprintf("%-6d %-22s %-8d %-8d %-8d %-10d %s",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Seed, r.Workers, r.Cases, r.Failures,
			formatDuration(r.Elapsed))
		if r.Failures > 0 {
			line = styleMismatch.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// formatDuration trims sub-microsecond noise for readability.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(time.Microsecond).String()
}

// formatSpeedup renders the exhaustive/greedy elapsed ratio.
func formatSpeedup(ratio float64) string {
	if ratio <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fx", ratio)
}
