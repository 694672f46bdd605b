package search

import (
	"context"
	"fmt"
	"strings"
)

// Strategy names a search algorithm. The names double as metric labels
// and CLI values.
type Strategy string

const (
	StrategyBreadthFirst          Strategy = "bfs"
	StrategyDepthFirstRecursive   Strategy = "dfs"
	StrategyDepthLimited          Strategy = "dls"
	StrategyIterativeDeepening    Strategy = "ids"
	StrategyUniformCost           Strategy = "ucs"
	StrategyGreedy                Strategy = "greedy"
	StrategyAStar                 Strategy = "astar"
	StrategyAStarTree             Strategy = "astar-tree"
	StrategyWeightedAStar         Strategy = "weighted-astar"
	StrategyBreadthFirstBestFirst Strategy = "breadth-first-bfs"
	StrategyDepthFirstBestFirst   Strategy = "depth-first-bfs"

	// StrategyBestFirst and StrategyBestFirstTree label direct calls with a
	// caller-supplied f; Run cannot dispatch to them.
	StrategyBestFirst     Strategy = "best-first"
	StrategyBestFirstTree Strategy = "best-first-tree"
)

var runnable = []Strategy{
	StrategyBreadthFirst,
	StrategyDepthFirstRecursive,
	StrategyDepthLimited,
	StrategyIterativeDeepening,
	StrategyUniformCost,
	StrategyGreedy,
	StrategyAStar,
	StrategyAStarTree,
	StrategyWeightedAStar,
	StrategyBreadthFirstBestFirst,
	StrategyDepthFirstBestFirst,
}

// Strategies lists the strategies Run accepts.
func Strategies() []Strategy {
	return append([]Strategy(nil), runnable...)
}

// Informed reports whether s needs a heuristic.
func (s Strategy) Informed() bool {
	switch s {
	case StrategyGreedy, StrategyAStar, StrategyAStarTree, StrategyWeightedAStar:
		return true
	}
	return false
}

// ParseStrategy resolves a strategy name, ignoring case and surrounding
// spaces.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range runnable {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Run dispatches to the strategy named s. h is used only by informed
// strategies and may be nil when p implements InformedProblem.
// Depth-limited search uses the limit from WithDepthLimit.
func Run[S comparable, A any](ctx context.Context, s Strategy, p Problem[S, A], h Heuristic[S, A], opts ...Option) (Result[S, A], error) {
	switch s {
	case StrategyBreadthFirst:
		return BreadthFirstSearch(ctx, p, opts...)
	case StrategyDepthFirstRecursive:
		return DepthFirstRecursiveSearch(ctx, p, opts...)
	case StrategyDepthLimited:
		return DepthLimitedSearch(ctx, p, NewConfig(opts...).DepthLimit, opts...)
	case StrategyIterativeDeepening:
		return IterativeDeepeningSearch(ctx, p, opts...)
	case StrategyUniformCost:
		return UniformCostSearch(ctx, p, opts...)
	case StrategyGreedy:
		return GreedyBestFirstSearch(ctx, p, h, opts...)
	case StrategyAStar:
		return AStarSearch(ctx, p, h, opts...)
	case StrategyAStarTree:
		return AStarTreeSearch(ctx, p, h, opts...)
	case StrategyWeightedAStar:
		return WeightedAStarSearch(ctx, p, h, opts...)
	case StrategyBreadthFirstBestFirst:
		return BreadthFirstBestFirst(ctx, p, opts...)
	case StrategyDepthFirstBestFirst:
		return DepthFirstBestFirst(ctx, p, opts...)
	default:
		return Failed[S, A](), fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}
