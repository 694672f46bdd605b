package search

// Problem describes a state space to search.
//
// States must be comparable so they can key the reached table. Action
// costs must be non-negative and Actions must return a finite slice; the
// engine does not validate either, and a problem that breaks these rules
// gets undefined results.
type Problem[S comparable, A any] interface {
	// Initial returns the state the search starts from.
	Initial() S

	// IsGoal reports whether state satisfies the goal test.
	IsGoal(state S) bool

	// Actions returns the actions applicable in state, in the order the
	// strategies should try them.
	Actions(state S) []A

	// Result returns the state reached by applying action in state.
	Result(state S, action A) S

	// ActionCost returns the cost of moving from state to next via action.
	ActionCost(state S, action A, next S) float64
}

// InformedProblem is a Problem that carries its own heuristic. Informed
// strategies fall back to H when they are not given a Heuristic.
type InformedProblem[S comparable, A any] interface {
	Problem[S, A]

	// H estimates the remaining cost from node to the nearest goal.
	H(node *Node[S, A]) float64
}

// Heuristic estimates the remaining cost from a node to a goal. It must be
// non-negative; it is admissible when it never overestimates.
type Heuristic[S comparable, A any] func(node *Node[S, A]) float64

// Funcs adapts plain functions to Problem and InformedProblem.
//
// CostFn defaults to a unit cost per action and HeuristicFn defaults to
// the zero heuristic, so a Funcs value is always usable by every strategy.
type Funcs[S comparable, A any] struct {
	Start       S
	GoalFn      func(state S) bool
	ActionsFn   func(state S) []A
	ResultFn    func(state S, action A) S
	CostFn      func(state S, action A, next S) float64
	HeuristicFn func(node *Node[S, A]) float64
}

var _ InformedProblem[int, int] = (*Funcs[int, int])(nil)

// Initial implements Problem.
func (f *Funcs[S, A]) Initial() S {
	return f.Start
}

// IsGoal implements Problem.
func (f *Funcs[S, A]) IsGoal(state S) bool {
	return f.GoalFn(state)
}

// Actions implements Problem.
func (f *Funcs[S, A]) Actions(state S) []A {
	return f.ActionsFn(state)
}

// Result implements Problem.
func (f *Funcs[S, A]) Result(state S, action A) S {
	return f.ResultFn(state, action)
}

// ActionCost implements Problem.
func (f *Funcs[S, A]) ActionCost(state S, action A, next S) float64 {
	if f.CostFn == nil {
		return 1
	}
	return f.CostFn(state, action, next)
}

// H implements InformedProblem.
func (f *Funcs[S, A]) H(node *Node[S, A]) float64 {
	if f.HeuristicFn == nil {
		return 0
	}
	return f.HeuristicFn(node)
}

// resolveHeuristic implements the "given h, else problem.H" rule of the
// informed strategies.
func resolveHeuristic[S comparable, A any](p Problem[S, A], h Heuristic[S, A]) (Heuristic[S, A], error) {
	if h != nil {
		return h, nil
	}
	if ip, ok := p.(InformedProblem[S, A]); ok {
		return ip.H, nil
	}
	return nil, ErrNoHeuristic
}
