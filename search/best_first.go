package search

import "context"

// BestFirstSearch expands the frontier node with the lowest f first. A
// reached table keeps, per state, the cheapest node seen so far; a child
// is queued only when it is the first or a strictly cheaper path to its
// state. The goal test happens when a node is popped.
func BestFirstSearch[S comparable, A any](ctx context.Context, p Problem[S, A], f func(*Node[S, A]) float64, opts ...Option) (Result[S, A], error) {
	return bestFirst(newRun(ctx, StrategyBestFirst, opts), p, f)
}

// BestFirstTreeSearch is BestFirstSearch without a reached table. Children
// that repeat a state among their IsCycle ancestors are dropped instead.
func BestFirstTreeSearch[S comparable, A any](ctx context.Context, p Problem[S, A], f func(*Node[S, A]) float64, opts ...Option) (Result[S, A], error) {
	return bestFirstTree(newRun(ctx, StrategyBestFirstTree, opts), p, f)
}

// UniformCostSearch expands the cheapest path first: f(n) = g(n).
func UniformCostSearch[S comparable, A any](ctx context.Context, p Problem[S, A], opts ...Option) (Result[S, A], error) {
	return bestFirst(newRun(ctx, StrategyUniformCost, opts), p, pathCost[S, A])
}

// GreedyBestFirstSearch expands the node that looks closest to a goal
// first: f(n) = h(n). A nil h falls back to the problem's own heuristic.
func GreedyBestFirstSearch[S comparable, A any](ctx context.Context, p Problem[S, A], h Heuristic[S, A], opts ...Option) (Result[S, A], error) {
	h, err := resolveHeuristic(p, h)
	if err != nil {
		return Failed[S, A](), err
	}
	return bestFirst(newRun(ctx, StrategyGreedy, opts), p, func(n *Node[S, A]) float64 {
		return h(n)
	})
}

// AStarSearch expands the node with the lowest f(n) = g(n) + h(n) first.
// With non-negative costs and an admissible h the solution is optimal.
func AStarSearch[S comparable, A any](ctx context.Context, p Problem[S, A], h Heuristic[S, A], opts ...Option) (Result[S, A], error) {
	h, err := resolveHeuristic(p, h)
	if err != nil {
		return Failed[S, A](), err
	}
	return bestFirst(newRun(ctx, StrategyAStar, opts), p, func(n *Node[S, A]) float64 {
		return n.PathCost + h(n)
	})
}

// AStarTreeSearch is AStarSearch on top of BestFirstTreeSearch.
func AStarTreeSearch[S comparable, A any](ctx context.Context, p Problem[S, A], h Heuristic[S, A], opts ...Option) (Result[S, A], error) {
	h, err := resolveHeuristic(p, h)
	if err != nil {
		return Failed[S, A](), err
	}
	return bestFirstTree(newRun(ctx, StrategyAStarTree, opts), p, func(n *Node[S, A]) float64 {
		return n.PathCost + h(n)
	})
}

// WeightedAStarSearch expands the lowest f(n) = g(n) + w*h(n) first, where
// w comes from WithWeight and defaults to DefaultWeight. A weight above 1
// trades optimality for fewer expansions.
func WeightedAStarSearch[S comparable, A any](ctx context.Context, p Problem[S, A], h Heuristic[S, A], opts ...Option) (Result[S, A], error) {
	h, err := resolveHeuristic(p, h)
	if err != nil {
		return Failed[S, A](), err
	}
	r := newRun(ctx, StrategyWeightedAStar, opts)
	w := r.cfg.Weight
	return bestFirst(r, p, func(n *Node[S, A]) float64 {
		return n.PathCost + w*h(n)
	})
}

// BreadthFirstBestFirst runs BestFirstSearch with f(n) = depth(n). It
// reaches the same depth as BreadthFirstSearch, less efficiently.
func BreadthFirstBestFirst[S comparable, A any](ctx context.Context, p Problem[S, A], opts ...Option) (Result[S, A], error) {
	return bestFirst(newRun(ctx, StrategyBreadthFirstBestFirst, opts), p, func(n *Node[S, A]) float64 {
		return float64(n.Depth())
	})
}

// DepthFirstBestFirst runs BestFirstSearch with f(n) = -depth(n).
func DepthFirstBestFirst[S comparable, A any](ctx context.Context, p Problem[S, A], opts ...Option) (Result[S, A], error) {
	return bestFirst(newRun(ctx, StrategyDepthFirstBestFirst, opts), p, func(n *Node[S, A]) float64 {
		return -float64(n.Depth())
	})
}

func pathCost[S comparable, A any](n *Node[S, A]) float64 {
	return n.PathCost
}

func bestFirst[S comparable, A any](r *searchRun, p Problem[S, A], f func(*Node[S, A]) float64) (Result[S, A], error) {
	node := NewRootNode[S, A](p.Initial())
	r.begin(node.State)

	frontier := newNodeQueue(f, node)
	reached := map[S]*Node[S, A]{node.State: node}
	r.observeFrontier(frontier.Len())

	for frontier.Len() > 0 {
		if err := r.checkpoint(); err != nil {
			return finish(r, Failed[S, A](), err)
		}
		node = frontier.Pop()
		if p.IsGoal(node.State) {
			return finish(r, Solution(node), nil)
		}
		r.expanded(node.State, node.Depth(), node.PathCost, frontier.Len())
		for child := range Expand(p, node) {
			r.stats.Generated++
			if prev, ok := reached[child.State]; !ok || child.PathCost < prev.PathCost {
				reached[child.State] = child
				frontier.Add(child)
			}
		}
		r.observeFrontier(frontier.Len())
	}
	return finish(r, Failed[S, A](), nil)
}

func bestFirstTree[S comparable, A any](r *searchRun, p Problem[S, A], f func(*Node[S, A]) float64) (Result[S, A], error) {
	node := NewRootNode[S, A](p.Initial())
	r.begin(node.State)

	frontier := newNodeQueue(f, node)
	r.observeFrontier(frontier.Len())

	for frontier.Len() > 0 {
		if err := r.checkpoint(); err != nil {
			return finish(r, Failed[S, A](), err)
		}
		node = frontier.Pop()
		if p.IsGoal(node.State) {
			return finish(r, Solution(node), nil)
		}
		r.expanded(node.State, node.Depth(), node.PathCost, frontier.Len())
		for child := range Expand(p, node) {
			r.stats.Generated++
			if !IsCycle(child, r.cfg.CycleDepth) {
				frontier.Add(child)
			}
		}
		r.observeFrontier(frontier.Len())
	}
	return finish(r, Failed[S, A](), nil)
}
