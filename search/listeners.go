package search

import "context"

// EventKind identifies what happened during a search.
type EventKind string

const (
	// EventSearchStart is emitted once, before the first pop.
	EventSearchStart EventKind = "search_start"

	// EventNodeExpanded is emitted for every node whose children are
	// generated.
	EventNodeExpanded EventKind = "node_expanded"

	// EventDepthCutoff is emitted when depth-limited search declines to
	// expand a node because of its limit.
	EventDepthCutoff EventKind = "depth_cutoff"

	// EventIterationStart is emitted by iterative deepening before each
	// depth-limited round.
	EventIterationStart EventKind = "iteration_start"

	// EventGoalFound is emitted when a goal node is returned.
	EventGoalFound EventKind = "goal_found"

	// EventSearchEnd is emitted once, when the strategy returns.
	EventSearchEnd EventKind = "search_end"
)

// Event describes one search event. Fields that do not apply to a kind
// are left zero.
type Event struct {
	Kind     EventKind
	Strategy Strategy

	// State is the node state for node events, the initial state for
	// EventSearchStart and the goal state for EventGoalFound.
	State any

	Depth        int
	PathCost     float64
	FrontierSize int

	// Limit is the depth limit of the current depth-limited round.
	Limit int

	// Outcome, Stats and Err are set on EventSearchEnd.
	Outcome Outcome
	Stats   Stats
	Err     error
}

// Listener receives search events. Listeners run synchronously on the
// searching goroutine, in registration order; a panicking listener is
// recovered and logged.
type Listener interface {
	OnSearchEvent(ctx context.Context, event Event)
}

// ListenerFunc is a function adapter for Listener
type ListenerFunc func(ctx context.Context, event Event)

// OnSearchEvent implements the Listener interface
func (f ListenerFunc) OnSearchEvent(ctx context.Context, event Event) {
	f(ctx, event)
}

// EventRecorder is a Listener that keeps every event it sees, optionally
// filtered by kind.
type EventRecorder struct {
	kinds  map[EventKind]bool
	Events []Event
}

// NewEventRecorder records events of the given kinds, or all kinds when
// none are given.
func NewEventRecorder(kinds ...EventKind) *EventRecorder {
	r := &EventRecorder{}
	if len(kinds) > 0 {
		r.kinds = make(map[EventKind]bool, len(kinds))
		for _, k := range kinds {
			r.kinds[k] = true
		}
	}
	return r
}

// OnSearchEvent implements Listener.
func (r *EventRecorder) OnSearchEvent(_ context.Context, event Event) {
	if r.kinds != nil && !r.kinds[event.Kind] {
		return
	}
	r.Events = append(r.Events, event)
}

// Count returns how many recorded events have kind.
func (r *EventRecorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
