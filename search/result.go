package search

import (
	"fmt"
	"math"
)

// Outcome tells how a search ended.
type Outcome int

const (
	// Failure means the reachable space was exhausted without a goal.
	Failure Outcome = iota
	// Found means a goal node was reached.
	Found
	// Cutoff means a depth bound stopped the search before exhaustion.
	Cutoff
)

func (o Outcome) String() string {
	switch o {
	case Failure:
		return "failure"
	case Found:
		return "found"
	case Cutoff:
		return "cutoff"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Stats counts the work done by one search call.
type Stats struct {
	// Expanded is the number of nodes whose children were generated.
	Expanded int
	// Generated is the number of child nodes produced.
	Generated int
	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
	// Cutoffs is the number of nodes not expanded because of a depth limit.
	Cutoffs int
	// Iterations is the number of depth-limited rounds run by iterative
	// deepening; zero for other strategies.
	Iterations int
}

// Result is what every strategy returns: a goal node, or one of the two
// outcomes that carry no node.
type Result[S comparable, A any] struct {
	Outcome Outcome

	// Node is the goal node when Outcome is Found, nil otherwise.
	Node *Node[S, A]

	Stats Stats
}

// Solution wraps a goal node.
func Solution[S comparable, A any](node *Node[S, A]) Result[S, A] {
	return Result[S, A]{Outcome: Found, Node: node}
}

// Failed is the "no solution exists" result.
func Failed[S comparable, A any]() Result[S, A] {
	return Result[S, A]{Outcome: Failure}
}

// CutOff is the "depth limit reached" result.
func CutOff[S comparable, A any]() Result[S, A] {
	return Result[S, A]{Outcome: Cutoff}
}

// Found reports whether r holds a goal node.
func (r Result[S, A]) Found() bool {
	return r.Outcome == Found && r.Node != nil
}

// PathCost returns the goal node's path cost, or +Inf for failure and
// cutoff so they lose every cost comparison.
func (r Result[S, A]) PathCost() float64 {
	if !r.Found() {
		return math.Inf(1)
	}
	return r.Node.PathCost
}

// Less orders results by path cost.
func (r Result[S, A]) Less(other Result[S, A]) bool {
	return r.PathCost() < other.PathCost()
}

// Depth returns the number of actions in the solution, 0 without one.
func (r Result[S, A]) Depth() int {
	if !r.Found() {
		return 0
	}
	return r.Node.Depth()
}

// PathActions returns the solution's actions; empty without a solution.
func (r Result[S, A]) PathActions() []A {
	if !r.Found() {
		return []A{}
	}
	return PathActions(r.Node)
}

// PathStates returns the solution's states from the initial state to the
// goal; empty without a solution.
func (r Result[S, A]) PathStates() []S {
	if !r.Found() {
		return []S{}
	}
	return PathStates(r.Node)
}

func (r Result[S, A]) String() string {
	if !r.Found() {
		return r.Outcome.String()
	}
	return fmt.Sprintf("%s cost=%g depth=%d", r.Node, r.Node.PathCost, r.Node.Depth())
}
