package search

import (
	"context"
	"fmt"
	"slices"
)

// BreadthFirstSearch explores shallowest nodes first with a FIFO frontier
// and a visited set. The goal test is applied to children as they are
// generated, so it can return one level earlier than the pop-time test of
// the best-first strategies.
func BreadthFirstSearch[S comparable, A any](ctx context.Context, p Problem[S, A], opts ...Option) (Result[S, A], error) {
	r := newRun(ctx, StrategyBreadthFirst, opts)

	node := NewRootNode[S, A](p.Initial())
	r.begin(node.State)
	if p.IsGoal(node.State) {
		return finish(r, Solution(node), nil)
	}

	frontier := NewFIFOQueue(node)
	reached := map[S]struct{}{node.State: {}}
	r.observeFrontier(frontier.Len())

	for frontier.Len() > 0 {
		if err := r.checkpoint(); err != nil {
			return finish(r, Failed[S, A](), err)
		}
		node = frontier.Pop()
		r.expanded(node.State, node.Depth(), node.PathCost, frontier.Len())
		for child := range Expand(p, node) {
			r.stats.Generated++
			if p.IsGoal(child.State) {
				return finish(r, Solution(child), nil)
			}
			if _, seen := reached[child.State]; !seen {
				reached[child.State] = struct{}{}
				frontier.Add(child)
			}
		}
		r.observeFrontier(frontier.Len())
	}
	return finish(r, Failed[S, A](), nil)
}

// DepthLimitedSearch explores deepest nodes first, never expanding a node
// whose depth has reached limit, nor one that closes a short cycle.
//
// It returns Cutoff when the frontier empties after at least one node was
// held back by the limit, and Failure when the space below the limit was
// exhausted without any such node.
func DepthLimitedSearch[S comparable, A any](ctx context.Context, p Problem[S, A], limit int, opts ...Option) (Result[S, A], error) {
	if limit < 0 {
		return Failed[S, A](), fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	r := newRun(ctx, StrategyDepthLimited, opts)
	r.begin(p.Initial())
	res, err := depthLimited(r, p, limit)
	return finish(r, res, err)
}

func depthLimited[S comparable, A any](r *searchRun, p Problem[S, A], limit int) (Result[S, A], error) {
	frontier := NewLIFOQueue(NewRootNode[S, A](p.Initial()))
	result := Failed[S, A]()
	r.observeFrontier(frontier.Len())

	for frontier.Len() > 0 {
		if err := r.checkpoint(); err != nil {
			return Failed[S, A](), err
		}
		node := frontier.Pop()
		switch {
		case p.IsGoal(node.State):
			return Solution(node), nil
		case node.Depth() >= limit:
			result = CutOff[S, A]()
			r.cutoff(node.State, node.Depth(), limit)
		case !IsCycle(node, r.cfg.CycleDepth):
			r.expanded(node.State, node.Depth(), node.PathCost, frontier.Len())
			for child := range Expand(p, node) {
				r.stats.Generated++
				frontier.Add(child)
			}
			r.observeFrontier(frontier.Len())
		}
	}
	return result, nil
}

// IterativeDeepeningSearch runs depth-limited search with limits 1, 2,
// 3, ... until a round ends with something other than Cutoff. On unit-cost
// problems the solution has the minimum number of actions.
//
// The loop is unbounded unless WithMaxDepthLimit is given, in which case
// Cutoff is returned once that limit has been tried; ctx cancellation is
// checked before every round.
func IterativeDeepeningSearch[S comparable, A any](ctx context.Context, p Problem[S, A], opts ...Option) (Result[S, A], error) {
	r := newRun(ctx, StrategyIterativeDeepening, opts)
	r.begin(p.Initial())

	maxLimit := r.cfg.MaxDepthLimit
	for limit := 1; maxLimit <= 0 || limit <= maxLimit; limit++ {
		if err := r.checkpoint(); err != nil {
			return finish(r, Failed[S, A](), err)
		}
		r.stats.Iterations++
		r.logger.Debug("%s: deepening to limit %d", r.strategy, limit)
		r.emit(Event{Kind: EventIterationStart, Limit: limit})

		res, err := deepen(r, p, limit)
		if err != nil {
			return finish(r, res, err)
		}
		if res.Outcome != Cutoff {
			return finish(r, res, nil)
		}
	}
	return finish(r, CutOff[S, A](), nil)
}

// deepen runs one depth-limited round inside its own trace span.
func deepen[S comparable, A any](r *searchRun, p Problem[S, A], limit int) (Result[S, A], error) {
	tracer := r.cfg.Tracer
	if tracer == nil {
		return depthLimited(r, p, limit)
	}

	parentCtx := r.ctx
	span := tracer.StartSpan(parentCtx, TraceEventIterationStart, r.strategy)
	span.Metadata["limit"] = limit
	r.ctx = ContextWithSpan(parentCtx, span)
	defer func() { r.ctx = parentCtx }()

	before := r.stats
	res, err := depthLimited(r, p, limit)
	round := r.stats
	round.Expanded -= before.Expanded
	round.Generated -= before.Generated
	round.Cutoffs -= before.Cutoffs
	round.Iterations = 1
	tracer.EndSpan(r.ctx, span, res.Outcome, round, err)
	return res, err
}

// DepthFirstRecursiveSearch explores depth first the way the classic
// recursive formulation does: at each node, return it if it is a goal,
// give up on it if it closes a cycle, otherwise try its children in order
// and return the first one that leads to a goal.
//
// The recursion is kept on an explicit stack, so deep solutions do not
// grow the goroutine stack. There is no depth bound; on infinite spaces
// pair it with a cancellable ctx.
func DepthFirstRecursiveSearch[S comparable, A any](ctx context.Context, p Problem[S, A], opts ...Option) (Result[S, A], error) {
	r := newRun(ctx, StrategyDepthFirstRecursive, opts)

	type frame struct {
		children []*Node[S, A]
		next     int
	}

	node := NewRootNode[S, A](p.Initial())
	r.begin(node.State)

	var stack []frame
	for node != nil {
		if err := r.checkpoint(); err != nil {
			return finish(r, Failed[S, A](), err)
		}
		if p.IsGoal(node.State) {
			return finish(r, Solution(node), nil)
		}
		if !IsCycle(node, r.cfg.CycleDepth) {
			r.expanded(node.State, node.Depth(), node.PathCost, len(stack))
			children := slices.Collect(Expand(p, node))
			r.stats.Generated += len(children)
			stack = append(stack, frame{children: children})
			r.observeFrontier(len(stack))
		}

		// resume the deepest frame that still has an untried child
		node = nil
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.children) {
				node = top.children[top.next]
				top.children[top.next] = nil
				top.next++
				break
			}
			stack = stack[:len(stack)-1]
		}
	}
	return finish(r, Failed[S, A](), nil)
}
