// Package search is a generic state-space search engine.
//
// A problem is described by implementing Problem: an initial state, a goal
// test, the actions applicable in a state, the transition function and a
// non-negative action cost. Any strategy in this package can then look for
// a path from the initial state to a goal.
//
// # Core Concepts
//
// ## Nodes
// A Node records a state, the node it was reached from, the action taken
// and the accumulated path cost. Nodes form a tree through their Parent
// pointers; a solution is read back with PathActions and PathStates.
//
// ## Frontiers
// Strategies keep pending nodes in a Frontier. FIFOQueue gives
// breadth-first order, LIFOQueue depth-first order and PriorityQueue
// best-first order under a caller-supplied scoring function f.
//
// ## Results
// Every strategy returns a Result whose Outcome is Found, Failure (the
// reachable space holds no goal) or Cutoff (a depth bound stopped the
// search). Neither Failure nor Cutoff is an error; errors are reserved for
// cancellation and misuse. A result without a node has an infinite
// PathCost and empty paths.
//
// # Strategies
//
//   - BestFirstSearch, BestFirstTreeSearch: generic best-first on f
//   - UniformCostSearch: f = g
//   - GreedyBestFirstSearch: f = h
//   - AStarSearch, AStarTreeSearch: f = g + h
//   - WeightedAStarSearch: f = g + w*h (w defaults to 1.4)
//   - BreadthFirstBestFirst, DepthFirstBestFirst: f = depth, f = -depth
//   - BreadthFirstSearch: FIFO frontier, goal test on generation
//   - DepthLimitedSearch, IterativeDeepeningSearch
//   - DepthFirstRecursiveSearch
//
// Run dispatches to any of them by Strategy name.
//
// # Example Usage
//
//	p := &search.Funcs[int, int]{
//		Start:     1,
//		GoalFn:    func(s int) bool { return s == 10 },
//		ActionsFn: func(s int) []int { return []int{1, s} },
//		ResultFn:  func(s, a int) int { return s + a },
//	}
//
//	res, err := search.BreadthFirstSearch(ctx, p)
//	if err != nil {
//		return err
//	}
//	if res.Found() {
//		fmt.Println(res.PathActions(), res.PathStates())
//	}
//
// # Configuration
//
// Options tune a single call: WithCycleDepth (default 30), WithWeight,
// WithDepthLimit, WithMaxDepthLimit, WithLogger, WithListener and
// WithTracer.
//
// # Observability
//
// Listeners receive Events synchronously: search start and end, node
// expansions, depth cutoffs, deepening rounds and goals. A Tracer records
// a span per call, and per deepening round, with uuid identifiers. An
// Exporter draws a solution path as Mermaid, DOT or ASCII.
//
// # Concurrency
//
// A search runs to completion on the calling goroutine. Each call owns its
// frontier and reached table, so separate calls may run concurrently as
// long as the Problem allows it. ctx is checked before every pop and every
// deepening round.
package search
