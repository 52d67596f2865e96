package gen

import (
	"reflect"
	"testing"

	"github.com/aristath/dispatch/internal/interval"
)

func validConfig() Config {
	return Config{
		Count:       50,
		Horizon:     1000,
		MinDuration: 5,
		MaxDuration: 60,
		Seed:        42,
	}
}

// TestGenerateValidity verifies every generated task satisfies the
// interval invariant and the requested count/duration bounds.
func TestGenerateValidity(t *testing.T) {
	cfg := validConfig()
	ts, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if ts.Len() != cfg.Count {
		t.Fatalf("Len() = %d, want %d", ts.Len(), cfg.Count)
	}
	for i := 0; i < ts.Len(); i++ {
		task := ts.At(i)
		if !task.Valid() {
			t.Errorf("task %d invalid: %v", i, task)
		}
		d := task.Duration()
		if d < cfg.MinDuration || d > cfg.MaxDuration {
			t.Errorf("task %d duration %g outside [%g, %g]", i, d, cfg.MinDuration, cfg.MaxDuration)
		}
	}
}

// TestGenerateDeterminism verifies same seed, same tasks; different
// seed, different tasks.
func TestGenerateDeterminism(t *testing.T) {
	cfg := validConfig()

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a.Tasks(), b.Tasks()) {
		t.Error("same seed produced different task sets")
	}

	cfg.Seed = 43
	c, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if reflect.DeepEqual(a.Tasks(), c.Tasks()) {
		t.Error("different seeds produced identical task sets")
	}
}

// TestGenerateRejects tests the config validation paths.
func TestGenerateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative count", func(c *Config) { c.Count = -1 }},
		{"zero min duration", func(c *Config) { c.MinDuration = 0 }},
		{"max below min", func(c *Config) { c.MaxDuration = c.MinDuration - 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if _, err := Generate(cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

// TestFixtures checks the boundary-case builders.
func TestFixtures(t *testing.T) {
	stairs, err := Staircase(10)
	if err != nil {
		t.Fatalf("Staircase: %v", err)
	}
	for i := 0; i < stairs.Len(); i++ {
		for j := i + 1; j < stairs.Len(); j++ {
			if interval.Overlaps(stairs.At(i), stairs.At(j)) {
				t.Errorf("staircase tasks %d and %d overlap", i, j)
			}
		}
	}

	pile, err := Pileup(10)
	if err != nil {
		t.Fatalf("Pileup: %v", err)
	}
	for i := 1; i < pile.Len(); i++ {
		if !interval.Overlaps(pile.At(0), pile.At(i)) {
			t.Errorf("pileup task %d does not overlap task 0", i)
		}
	}
}
