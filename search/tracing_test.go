package search

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracerSpanPerSearch(t *testing.T) {
	tracer := NewTracer()
	res, err := BreadthFirstSearch[string, string](context.Background(), diamond().problem(), WithTracer(tracer))
	require.NoError(t, err)

	spans := tracer.GetSpans()
	require.Len(t, spans, 1)
	for id, span := range spans {
		assert.Equal(t, id, span.ID)
		assert.Len(t, span.ID, 36)
		assert.Empty(t, span.ParentID)
		assert.Equal(t, TraceEventSearchEnd, span.Event)
		assert.Equal(t, StrategyBreadthFirst, span.Strategy)
		assert.Equal(t, Found, span.Outcome)
		assert.Equal(t, res.Stats, span.Stats)
		assert.NoError(t, span.Error)
		assert.False(t, span.EndTime.Before(span.StartTime))
		assert.Equal(t, span.EndTime.Sub(span.StartTime), span.Duration)
	}
}

func TestTracerSpanPerDeepeningRound(t *testing.T) {
	tracer := NewTracer()
	res, err := IterativeDeepeningSearch[int, int](context.Background(), counter(7, 10), WithTracer(tracer))
	require.NoError(t, err)
	require.True(t, res.Found())

	var root *TraceSpan
	var rounds []*TraceSpan
	for _, span := range tracer.GetSpans() {
		switch span.Event {
		case TraceEventSearchEnd:
			root = span
		case TraceEventIterationEnd:
			rounds = append(rounds, span)
		default:
			t.Errorf("unexpected span event %s", span.Event)
		}
	}
	require.NotNil(t, root)
	require.Len(t, rounds, 4)
	assert.Equal(t, 4, root.Stats.Iterations)

	sort.Slice(rounds, func(i, j int) bool {
		return rounds[i].Metadata["limit"].(int) < rounds[j].Metadata["limit"].(int)
	})
	expanded := 0
	for i, span := range rounds {
		assert.Equal(t, root.ID, span.ParentID)
		assert.Equal(t, i+1, span.Metadata["limit"])
		assert.Equal(t, 1, span.Stats.Iterations)
		expanded += span.Stats.Expanded
		if i < 3 {
			assert.Equal(t, Cutoff, span.Outcome)
		} else {
			assert.Equal(t, Found, span.Outcome)
		}
	}
	assert.Equal(t, root.Stats.Expanded, expanded)
}

func TestTracerParentFromContext(t *testing.T) {
	tracer := NewTracer()
	parent := tracer.StartSpan(context.Background(), TraceEventSearchStart, StrategyBestFirst)
	ctx := ContextWithSpan(context.Background(), parent)
	assert.Same(t, parent, SpanFromContext(ctx))
	assert.Nil(t, SpanFromContext(context.Background()))

	_, err := UniformCostSearch[int, int](ctx, counter(2, 2), WithTracer(tracer))
	require.NoError(t, err)

	spans := tracer.GetSpans()
	require.Len(t, spans, 2)
	delete(spans, parent.ID)
	for _, span := range spans {
		assert.Equal(t, parent.ID, span.ParentID)
		assert.Equal(t, StrategyUniformCost, span.Strategy)
	}
}

func TestTracerHooks(t *testing.T) {
	tracer := NewTracer()
	var mu sync.Mutex
	var events []TraceEvent
	tracer.AddHook(TraceHookFunc(func(_ context.Context, span *TraceSpan) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, span.Event)
	}))

	_, err := IterativeDeepeningSearch[int, int](context.Background(), counter(2, 2), WithTracer(tracer))
	require.NoError(t, err)

	// the search span wraps a single round: start, round start, round end, end
	assert.Equal(t, []TraceEvent{
		TraceEventSearchStart,
		TraceEventIterationStart,
		TraceEventIterationEnd,
		TraceEventSearchEnd,
	}, events)
}

func TestTracerRecordsErrors(t *testing.T) {
	tracer := NewTracer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AStarSearch[int, int](ctx, endless(), nil, WithTracer(tracer))
	require.Error(t, err)

	spans := tracer.GetSpans()
	require.Len(t, spans, 1)
	for _, span := range spans {
		assert.True(t, errors.Is(span.Error, ErrCancelled))
		assert.Equal(t, Failure, span.Outcome)
	}
}

func TestTracerClear(t *testing.T) {
	tracer := NewTracer()
	_, err := DepthFirstRecursiveSearch[int, int](context.Background(), counter(3, 3), WithTracer(tracer))
	require.NoError(t, err)
	_, err = DepthFirstRecursiveSearch[int, int](context.Background(), counter(3, 3), WithTracer(tracer))
	require.NoError(t, err)
	assert.Len(t, tracer.GetSpans(), 2)

	tracer.Clear()
	assert.Empty(t, tracer.GetSpans())
}
