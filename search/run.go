package search

import (
	"context"
	"fmt"

	"github.com/smallnest/statespace/log"
)

// searchRun carries the bookkeeping of one strategy call: config, logger,
// stats, the tracing span and listener fan-out.
type searchRun struct {
	ctx      context.Context
	cfg      *Config
	logger   log.Logger
	strategy Strategy
	stats    Stats
	span     *TraceSpan
}

func newRun(ctx context.Context, strategy Strategy, opts []Option) *searchRun {
	cfg := NewConfig(opts...)
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	return &searchRun{
		ctx:      ctx,
		cfg:      cfg,
		logger:   logger,
		strategy: strategy,
	}
}

func (r *searchRun) begin(initial any) {
	r.logger.Debug("%s: search started from %v", r.strategy, initial)
	if r.cfg.Tracer != nil {
		r.span = r.cfg.Tracer.StartSpan(r.ctx, TraceEventSearchStart, r.strategy)
		r.ctx = ContextWithSpan(r.ctx, r.span)
	}
	r.emit(Event{Kind: EventSearchStart, State: initial})
}

// checkpoint is the cooperative cancellation point at the top of every
// pop and every deepening round.
func (r *searchRun) checkpoint() error {
	if err := r.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return nil
}

func (r *searchRun) observeFrontier(n int) {
	if n > r.stats.MaxFrontier {
		r.stats.MaxFrontier = n
	}
}

func (r *searchRun) expanded(state any, depth int, pathCost float64, frontier int) {
	r.stats.Expanded++
	if len(r.cfg.Listeners) == 0 {
		return
	}
	r.emit(Event{
		Kind:         EventNodeExpanded,
		State:        state,
		Depth:        depth,
		PathCost:     pathCost,
		FrontierSize: frontier,
	})
}

func (r *searchRun) cutoff(state any, depth, limit int) {
	r.stats.Cutoffs++
	if len(r.cfg.Listeners) == 0 {
		return
	}
	r.emit(Event{Kind: EventDepthCutoff, State: state, Depth: depth, Limit: limit})
}

func (r *searchRun) emit(ev Event) {
	ev.Strategy = r.strategy
	for _, l := range r.cfg.Listeners {
		r.notify(l, ev)
	}
}

func (r *searchRun) notify(l Listener, ev Event) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("%s: listener panicked on %s: %v", r.strategy, ev.Kind, rec)
		}
	}()
	l.OnSearchEvent(r.ctx, ev)
}

// finish stamps the stats on res, closes the span and emits the closing
// events. Every strategy returns through it exactly once.
func finish[S comparable, A any](r *searchRun, res Result[S, A], err error) (Result[S, A], error) {
	res.Stats = r.stats

	if err != nil {
		r.logger.Warn("%s: search stopped after %d expansions: %v", r.strategy, r.stats.Expanded, err)
	} else {
		r.logger.Debug("%s: %s after %d expansions", r.strategy, res, r.stats.Expanded)
	}

	if r.span != nil {
		r.cfg.Tracer.EndSpan(r.ctx, r.span, res.Outcome, res.Stats, err)
	}

	if res.Found() {
		r.emit(Event{
			Kind:     EventGoalFound,
			State:    res.Node.State,
			Depth:    res.Node.Depth(),
			PathCost: res.Node.PathCost,
		})
	}
	r.emit(Event{
		Kind:     EventSearchEnd,
		Depth:    res.Depth(),
		PathCost: res.PathCost(),
		Outcome:  res.Outcome,
		Stats:    res.Stats,
		Err:      err,
	})
	return res, err
}
