package events

import (
	"time"

	"github.com/aristath/dispatch/internal/selector"
)

// Event is the base interface for all benchmark progress events.
type Event interface {
	EventType() string
	Size() int
}

// Topic constants
const (
	TopicBench = "bench"
)

// Event type constants
const (
	EventTypeRunStarted   = "run.started"
	EventTypeCaseStarted  = "case.started"
	EventTypeCaseFinished = "case.finished"
	EventTypeCaseMismatch = "case.mismatch"
	EventTypeRunFinished  = "run.finished"
)

// RunStartedEvent is published once when a benchmark run begins.
type RunStartedEvent struct {
	Sizes     []int
	Seed      int64
	Timestamp time.Time
}

func (e RunStartedEvent) EventType() string { return EventTypeRunStarted }
func (e RunStartedEvent) Size() int         { return 0 }

// CaseStartedEvent is published when one input size starts executing.
type CaseStartedEvent struct {
	TaskCount int
	Timestamp time.Time
}

func (e CaseStartedEvent) EventType() string { return EventTypeCaseStarted }
func (e CaseStartedEvent) Size() int         { return e.TaskCount }

// CaseFinishedEvent is published when both selectors have run for one
// input size.
type CaseFinishedEvent struct {
	TaskCount  int
	Greedy     selector.Result
	Exhaustive selector.Result
	Gated      bool // exhaustive skipped, size above its cap
	Timestamp  time.Time
}

func (e CaseFinishedEvent) EventType() string { return EventTypeCaseFinished }
func (e CaseFinishedEvent) Size() int         { return e.TaskCount }

// CaseMismatchEvent is published when the two selectors disagree on
// cardinality, which breaks the engine's equivalence contract.
type CaseMismatchEvent struct {
	TaskCount       int
	GreedyCount     int
	ExhaustiveCount int
	Timestamp       time.Time
}

func (e CaseMismatchEvent) EventType() string { return EventTypeCaseMismatch }
func (e CaseMismatchEvent) Size() int         { return e.TaskCount }

// RunFinishedEvent is published once after every case has finished.
type RunFinishedEvent struct {
	Cases     int
	Failures  int
	Elapsed   time.Duration
	Timestamp time.Time
}

func (e RunFinishedEvent) EventType() string { return EventTypeRunFinished }
func (e RunFinishedEvent) Size() int         { return 0 }
