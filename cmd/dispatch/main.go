package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aristath/dispatch/internal/bench"
	"github.com/aristath/dispatch/internal/config"
	"github.com/aristath/dispatch/internal/events"
	"github.com/aristath/dispatch/internal/persistence"
	"github.com/aristath/dispatch/internal/report"
	"github.com/aristath/dispatch/internal/tui"
)

func main() {
	// Create signal-aware context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults + global + project)
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config
	sizesFlag := flag.String("sizes", "", "comma-separated input sizes (overrides config)")
	seed := flag.Int64("seed", cfg.Bench.Generator.Seed, "generator seed")
	workers := flag.Int("workers", cfg.Bench.Workers, "max concurrent cases")
	limit := flag.Int("limit", cfg.Bench.ExhaustiveLimit, "exhaustive selector size cap")
	dbPath := flag.String("db", cfg.Database.Path, "run history database path (empty disables)")
	plain := flag.Bool("plain", false, "print a table instead of the live view")
	history := flag.Bool("history", false, "list saved runs and exit")
	flag.Parse()

	cfg.Bench.Generator.Seed = *seed
	cfg.Bench.Workers = *workers
	cfg.Bench.ExhaustiveLimit = *limit
	cfg.Database.Path = *dbPath
	if *sizesFlag != "" {
		sizes, err := parseSizes(*sizesFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -sizes: %v\n", err)
			os.Exit(1)
		}
		cfg.Bench.Sizes = sizes
	}

	// Open run history store when configured
	var store persistence.Store
	if cfg.Database.Path != "" {
		s, err := persistence.NewSQLiteStore(ctx, cfg.Database.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
			os.Exit(1)
		}
		defer s.Close()
		store = s
	}

	if *history {
		if store == nil {
			fmt.Fprintln(os.Stderr, "No database configured, nothing to list")
			os.Exit(1)
		}
		runs, err := store.ListRuns(ctx, 20)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(report.History(runs))
		return
	}

	// Create event bus feeding whichever view is active
	bus := events.NewEventBus()
	defer bus.Close()

	harness := bench.NewHarness(cfg.Bench, bus)

	if *plain {
		runPlain(ctx, harness, cfg, store)
		return
	}
	runTUI(ctx, harness, cfg, bus, store)
}

// runPlain runs the benchmark and prints the table once it finishes.
func runPlain(ctx context.Context, harness *bench.Harness, cfg *config.DispatchConfig, store persistence.Store) {
	started := time.Now()
	cases, err := harness.Run(ctx)
	elapsed := time.Since(started)

	if len(cases) > 0 {
		fmt.Print(report.Table(cases))
		fmt.Println(report.Summary(cases, elapsed))
	}

	saveRun(ctx, store, cfg, cases, elapsed)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI runs the benchmark behind the live view.
func runTUI(ctx context.Context, harness *bench.Harness, cfg *config.DispatchConfig, bus *events.EventBus, store persistence.Store) {
	model := tui.New(bus)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// TUI exit in its own goroutine so main can handle shutdown
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// The harness publishes to the bus; the TUI renders as it goes.
	benchDone := make(chan struct{})
	var benchErr error
	go func() {
		defer close(benchDone)
		started := time.Now()
		cases, err := harness.Run(ctx)
		benchErr = err
		saveRun(ctx, store, cfg, cases, time.Since(started))
	}()

	select {
	case err := <-errChan:
		// Normal TUI exit (user pressed 'q')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		// Signal received (Ctrl+C or SIGTERM)
		log.Println("Shutdown signal received, cleaning up...")
		p.Quit()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		select {
		case err := <-errChan:
			if err != nil {
				log.Printf("TUI exit error: %v", err)
			}
		case <-shutdownCtx.Done():
			log.Println("Shutdown timeout exceeded, forcing exit")
		}
	}

	// Surface a benchmark failure on exit if the run already finished.
	select {
	case <-benchDone:
		if benchErr != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", benchErr)
			os.Exit(1)
		}
	default:
	}
}

// saveRun persists a finished run when a store is configured.
func saveRun(ctx context.Context, store persistence.Store, cfg *config.DispatchConfig, cases []bench.Case, elapsed time.Duration) {
	if store == nil || len(cases) == 0 {
		return
	}

	failures := 0
	for _, c := range cases {
		if !c.Match || c.Err != nil {
			failures++
		}
	}

	_, err := store.SaveRun(ctx, persistence.RunRecord{
		Seed:     cfg.Bench.Generator.Seed,
		Workers:  cfg.Bench.Workers,
		Failures: failures,
		Elapsed:  elapsed,
	}, cases)
	if err != nil {
		log.Printf("WARNING: failed to save run history: %v", err)
	}
}

// parseSizes parses a comma-separated list of positive sizes.
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("size %d must be positive", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	return sizes, nil
}
