package interval

import (
	"errors"
	"testing"
)

// TestOverlaps tests the overlap predicate, including touching boundaries.
func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Task
		b    Task
		want bool
	}{
		{
			name: "identical tasks",
			a:    Task{Start: 0, End: 100},
			b:    Task{Start: 0, End: 100},
			want: true,
		},
		{
			name: "nested",
			a:    Task{Start: 1, End: 10},
			b:    Task{Start: 3, End: 5},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Task{Start: 1, End: 5},
			b:    Task{Start: 4, End: 8},
			want: true,
		},
		{
			name: "disjoint",
			a:    Task{Start: 1, End: 3},
			b:    Task{Start: 5, End: 7},
			want: false,
		},
		{
			name: "touching boundaries do not overlap",
			a:    Task{Start: 1, End: 3},
			b:    Task{Start: 3, End: 5},
			want: false,
		},
		{
			name: "touching boundaries reversed",
			a:    Task{Start: 3, End: 5},
			b:    Task{Start: 1, End: 3},
			want: false,
		},
		{
			name: "single interior point shared",
			a:    Task{Start: 0, End: 2},
			b:    Task{Start: 1.5, End: 4},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// The predicate is symmetric.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

// TestNew tests TaskSet construction and validation.
func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		tasks     []Task
		wantErr   bool
		wantIndex int
	}{
		{
			name:    "empty input",
			tasks:   nil,
			wantErr: false,
		},
		{
			name:    "valid tasks",
			tasks:   []Task{{Start: 1, End: 3}, {Start: 2, End: 5}},
			wantErr: false,
		},
		{
			name:    "duplicates are legal",
			tasks:   []Task{{Start: 1, End: 3}, {Start: 1, End: 3}},
			wantErr: false,
		},
		{
			name:      "zero-duration task",
			tasks:     []Task{{Start: 1, End: 3}, {Start: 5, End: 5}},
			wantErr:   true,
			wantIndex: 1,
		},
		{
			name:      "inverted task",
			tasks:     []Task{{Start: 7, End: 2}},
			wantErr:   true,
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := New(tt.tasks)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var invalid *InvalidIntervalError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidIntervalError, got %T: %v", err, err)
				}
				if invalid.Index != tt.wantIndex {
					t.Errorf("error index = %d, want %d", invalid.Index, tt.wantIndex)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ts.Len() != len(tt.tasks) {
				t.Errorf("Len() = %d, want %d", ts.Len(), len(tt.tasks))
			}
		})
	}
}

// TestTaskSetImmutable verifies a set is isolated from its input slice
// and from slices it hands out.
func TestTaskSetImmutable(t *testing.T) {
	input := []Task{{Start: 1, End: 3}, {Start: 4, End: 6}}
	ts, err := New(input)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Mutating the caller's slice must not leak in.
	input[0] = Task{Start: 99, End: 100}
	if got := ts.At(0); got != (Task{Start: 1, End: 3}) {
		t.Errorf("At(0) = %v after input mutation, want [1, 3)", got)
	}

	// Mutating an accessor copy must not leak back.
	out := ts.Tasks()
	out[1] = Task{Start: 42, End: 43}
	if got := ts.At(1); got != (Task{Start: 4, End: 6}) {
		t.Errorf("At(1) = %v after output mutation, want [4, 6)", got)
	}
}

// TestTaskSetOrder verifies input order is preserved.
func TestTaskSetOrder(t *testing.T) {
	input := []Task{{Start: 5, End: 9}, {Start: 1, End: 3}, {Start: 2, End: 5}}
	ts, err := New(input)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i, want := range input {
		if got := ts.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
}
