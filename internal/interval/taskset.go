package interval

import "fmt"

// InvalidIntervalError reports a task whose bounds are inverted or
// zero-length. It carries the position of the offending task in the
// caller's input so batches can drop or report it.
type InvalidIntervalError struct {
	Index int
	Task  Task
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval at index %d: start %g >= end %g", e.Index, e.Task.Start, e.Task.End)
}

// TaskSet is an ordered, immutable collection of valid tasks.
// Input order is preserved so equal-end tie-breaks stay deterministic.
// The zero value is an empty set.
type TaskSet struct {
	tasks []Task
}

// New validates every task and builds a TaskSet from a private copy of
// the input slice. This is the only validation boundary: selectors
// trust a constructed set and never re-check bounds. Returns
// *InvalidIntervalError for the first task with Start >= End.
func New(tasks []Task) (TaskSet, error) {
	for i, t := range tasks {
		if !t.Valid() {
			return TaskSet{}, &InvalidIntervalError{Index: i, Task: t}
		}
	}

	cp := make([]Task, len(tasks))
	copy(cp, tasks)
	return TaskSet{tasks: cp}, nil
}

// Len returns the number of tasks in the set.
func (ts TaskSet) Len() int {
	return len(ts.tasks)
}

// At returns the task at index i in input order.
func (ts TaskSet) At(i int) Task {
	return ts.tasks[i]
}

// Tasks returns a copy of the tasks in input order. Mutating the
// returned slice does not affect the set.
func (ts TaskSet) Tasks() []Task {
	cp := make([]Task, len(ts.tasks))
	copy(cp, ts.tasks)
	return cp
}
