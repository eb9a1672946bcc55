package tabu

import "time"

// EventKind identifies a point of interest in a run.
type EventKind int

const (
	// EventConstructed fires once the constructive heuristic is done.
	EventConstructed EventKind = iota
	// EventIteration fires at the end of every main-loop iteration.
	EventIteration
	// EventImproved fires when a new best solution is recorded.
	EventImproved
	// EventIntensified fires when intensification beats the best solution.
	EventIntensified
	// EventDiversified fires after a restart.
	EventDiversified
	// EventFinished fires once, right before Solve returns.
	EventFinished
)

var eventKindNames = [...]string{
	EventConstructed: "constructed",
	EventIteration:   "iteration",
	EventImproved:    "improved",
	EventIntensified: "intensified",
	EventDiversified: "diversified",
	EventFinished:    "finished",
}

// String implements fmt.Stringer.
func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}

	return "unknown"
}

// Event is a snapshot of the engine state when something happened.
type Event struct {
	Kind      EventKind
	Iteration int
	Cost      float64 // working solution cost
	BestCost  float64
	Size      int // working solution size
	TabuSize  int // always 2*Tenure once the list exists, 0 before
	Elapsed   time.Duration
}

// Observer receives engine events synchronously on the engine goroutine.
// Implementations must be fast: they run inside the main loop.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(ev Event) { f(ev) }
