package search

import (
	"context"
	"math"
	"math/rand"
	"slices"
	"strconv"
)

type edge struct {
	to   string
	cost float64
}

// weightedGraph is a directed graph problem where actions are the names
// of the target states.
type weightedGraph struct {
	start string
	goals map[string]bool
	edges map[string][]edge
	h     map[string]float64
}

func (g *weightedGraph) problem() *Funcs[string, string] {
	return &Funcs[string, string]{
		Start:  g.start,
		GoalFn: func(s string) bool { return g.goals[s] },
		ActionsFn: func(s string) []string {
			var out []string
			for _, e := range g.edges[s] {
				out = append(out, e.to)
			}
			return out
		},
		ResultFn: func(_, a string) string { return a },
		CostFn: func(s, a, _ string) float64 {
			for _, e := range g.edges[s] {
				if e.to == a {
					return e.cost
				}
			}
			return math.Inf(1)
		},
		HeuristicFn: func(n *Node[string, string]) float64 { return g.h[n.State] },
	}
}

// cheapest enumerates every simple path from start and returns the
// minimum cost of one that ends in a goal, or +Inf.
func (g *weightedGraph) cheapest() float64 {
	best := math.Inf(1)
	onPath := map[string]bool{}
	var walk func(s string, cost float64)
	walk = func(s string, cost float64) {
		if g.goals[s] {
			best = math.Min(best, cost)
		}
		onPath[s] = true
		for _, e := range g.edges[s] {
			if !onPath[e.to] {
				walk(e.to, cost+e.cost)
			}
		}
		onPath[s] = false
	}
	walk(g.start, 0)
	return best
}

// fewestActions is the minimum number of actions to a goal, or -1.
func (g *weightedGraph) fewestActions() int {
	depth := map[string]int{g.start: 0}
	queue := []string{g.start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if g.goals[s] {
			return depth[s]
		}
		for _, e := range g.edges[s] {
			if _, ok := depth[e.to]; !ok {
				depth[e.to] = depth[s] + 1
				queue = append(queue, e.to)
			}
		}
	}
	return -1
}

// diamond is the running example: the cheapest route S-A-B-C-G costs 7,
// the shortest S-B-G costs 11.
//
//	S -1-> A -2-> B -1-> C -3-> G
//	S -4-> B      A -5-> C
//	B -7-> G
func diamond() *weightedGraph {
	return &weightedGraph{
		start: "S",
		goals: map[string]bool{"G": true},
		edges: map[string][]edge{
			"S": {{"A", 1}, {"B", 4}},
			"A": {{"B", 2}, {"C", 5}},
			"B": {{"C", 1}, {"G", 7}},
			"C": {{"G", 3}},
		},
		h: map[string]float64{"S": 5, "A": 5, "B": 3, "C": 2, "G": 0},
	}
}

// randomGraph builds a reproducible graph with n states named 0..n-1 and
// an admissible heuristic derived from exact remaining costs.
func randomGraph(seed int64, n int) *weightedGraph {
	rng := rand.New(rand.NewSource(seed))
	g := &weightedGraph{
		start: "0",
		goals: map[string]bool{strconv.Itoa(n - 1): true},
		edges: map[string][]edge{},
		h:     map[string]float64{},
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < 0.3 {
				from := strconv.Itoa(i)
				g.edges[from] = append(g.edges[from], edge{to: strconv.Itoa(j), cost: float64(rng.Intn(10))})
			}
		}
	}
	for i := 0; i < n; i++ {
		s := strconv.Itoa(i)
		rest := &weightedGraph{start: s, goals: g.goals, edges: g.edges}
		if c := rest.cheapest(); !math.IsInf(c, 1) {
			g.h[s] = c * rng.Float64()
		}
	}
	return g
}

// counter counts from 0 by +1 or +2 up to max; the goal is target.
func counter(target, max int) *Funcs[int, int] {
	return &Funcs[int, int]{
		Start:  0,
		GoalFn: func(s int) bool { return s == target },
		ActionsFn: func(s int) []int {
			var out []int
			for _, a := range []int{1, 2} {
				if s+a <= max {
					out = append(out, a)
				}
			}
			return out
		},
		ResultFn: func(s, a int) int { return s + a },
	}
}

// endless is an infinite space with no goal.
func endless() *Funcs[int, int] {
	return &Funcs[int, int]{
		Start:     0,
		GoalFn:    func(int) bool { return false },
		ActionsFn: func(int) []int { return []int{1} },
		ResultFn:  func(s, a int) int { return s + a },
	}
}

// replay applies actions from the initial state.
func replay[S comparable, A any](p Problem[S, A], actions []A) ([]S, float64) {
	s := p.Initial()
	states := []S{s}
	cost := 0.0
	for _, a := range actions {
		next := p.Result(s, a)
		cost += p.ActionCost(s, a, next)
		states = append(states, next)
		s = next
	}
	return states, cost
}

// everyStrategy runs every strategy Run knows on p.
func everyStrategy[S comparable, A any](p Problem[S, A], opts ...Option) map[Strategy]func() (Result[S, A], error) {
	runs := map[Strategy]func() (Result[S, A], error){}
	for _, s := range Strategies() {
		runs[s] = func() (Result[S, A], error) {
			return Run(context.Background(), s, p, nil, opts...)
		}
	}
	return runs
}

func sortedStrategies[S comparable, A any](runs map[Strategy]func() (Result[S, A], error)) []Strategy {
	keys := make([]Strategy, 0, len(runs))
	for k := range runs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
