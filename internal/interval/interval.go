package interval

import "fmt"

// Task represents a single driver job as a half-open time span [Start, End).
// Tasks are plain values: construct them, never mutate them.
type Task struct {
	Start float64
	End   float64
}

// Valid reports whether the task spans a positive amount of time.
func (t Task) Valid() bool {
	return t.Start < t.End
}

// Duration returns End - Start.
func (t Task) Duration() float64 {
	return t.End - t.Start
}

// String formats the task as [start, end).
func (t Task) String() string {
	return fmt.Sprintf("[%g, %g)", t.Start, t.End)
}

// Overlaps reports whether two tasks share any interior time point.
// Strict on both sides: a task ending at 5 and a task starting at 5
// touch but do not overlap, so both may be selected.
func Overlaps(a, b Task) bool {
	return a.Start < b.End && b.Start < a.End
}
