// Statespace - Generic State-Space Search in Go
//
// Statespace solves problems that can be phrased as "find a sequence of
// actions leading from an initial state to a goal state". A problem
// supplies its states, actions, transition function and action costs; the
// engine supplies the classic uninformed and informed strategies, with
// structured results, events, tracing and metrics around them.
//
// # Quick Start
//
// Install the package:
//
//	go get github.com/smallnest/statespace
//
// Basic example:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//
//		"github.com/smallnest/statespace/problems/rivercrossing"
//		"github.com/smallnest/statespace/search"
//	)
//
//	func main() {
//		p := rivercrossing.Classic(3)
//
//		res, err := search.AStarSearch(context.Background(), p, nil)
//		if err != nil {
//			panic(err)
//		}
//		fmt.Println(res.Outcome, res.PathActions())
//	}
//
// # Package Structure
//
// ## search
// The engine: Problem and Node types, FIFO, LIFO and priority frontiers,
// best-first search and its specialisations (uniform cost, greedy, A*,
// weighted A*), breadth-first, depth-limited, iterative deepening and
// recursive depth-first search, plus listeners, tracing and path export.
//
// ## problems
// Ready-made problems:
//   - rivercrossing: missionaries and cannibals with any number of pairs
//     and any boat capacity
//   - route: shortest routes on a road map, with the Romania map built in
//     and YAML maps loadable from disk
//
// ## metrics
// A Prometheus collector that records searches, expansions, cutoffs,
// frontier size and solution depth from search events.
//
// ## log
// Leveled logging with a golog-backed implementation.
//
// ## cmd/statespace
// A command line front end that solves the bundled problems with any
// strategy and prints the result as text, Mermaid, DOT or ASCII.
//
// # Outcomes
//
// Every search ends in one of three outcomes: Found, Failure (the
// reachable space holds no goal) or Cutoff (a depth limit stopped the
// search before it could decide). Errors are reserved for cancellation,
// unknown strategies and missing heuristics.
//
// # Examples
//
// See the examples directory for an eight puzzle built from plain
// functions, observability wiring and golog configuration.
package statespace
