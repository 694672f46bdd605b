package search

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallnest/statespace/log"
)

func TestListenerEventSequence(t *testing.T) {
	rec := NewEventRecorder()
	res, err := AStarSearch[string, string](context.Background(), diamond().problem(), nil, WithListener(rec))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.GreaterOrEqual(t, len(rec.Events), 3)

	first := rec.Events[0]
	assert.Equal(t, EventSearchStart, first.Kind)
	assert.Equal(t, "S", first.State)
	assert.Equal(t, StrategyAStar, first.Strategy)

	goal := rec.Events[len(rec.Events)-2]
	assert.Equal(t, EventGoalFound, goal.Kind)
	assert.Equal(t, "G", goal.State)
	assert.Equal(t, 4, goal.Depth)
	assert.Equal(t, 7.0, goal.PathCost)

	end := rec.Events[len(rec.Events)-1]
	assert.Equal(t, EventSearchEnd, end.Kind)
	assert.Equal(t, Found, end.Outcome)
	assert.Equal(t, res.Stats, end.Stats)
	assert.Equal(t, 7.0, end.PathCost)
	assert.NoError(t, end.Err)

	assert.Equal(t, res.Stats.Expanded, rec.Count(EventNodeExpanded))
	assert.Equal(t, 1, rec.Count(EventSearchStart))
	assert.Equal(t, 1, rec.Count(EventSearchEnd))
}

func TestListenerFailureHasNoGoalEvent(t *testing.T) {
	rec := NewEventRecorder(EventGoalFound, EventSearchEnd)
	res, err := UniformCostSearch[int, int](context.Background(), counter(-1, 4), WithListener(rec))
	require.NoError(t, err)
	assert.Equal(t, Failure, res.Outcome)

	require.Len(t, rec.Events, 1)
	assert.Equal(t, EventSearchEnd, rec.Events[0].Kind)
	assert.Equal(t, Failure, rec.Events[0].Outcome)
}

func TestDepthCutoffEvents(t *testing.T) {
	rec := NewEventRecorder(EventDepthCutoff)
	res, err := DepthLimitedSearch[int, int](context.Background(), counter(-1, 10), 2, WithListener(rec))
	require.NoError(t, err)
	assert.Equal(t, Cutoff, res.Outcome)

	// four paths of length two: 1+1, 1+2, 2+1, 2+2
	assert.Len(t, rec.Events, 4)
	assert.Equal(t, 4, res.Stats.Cutoffs)
	for _, ev := range rec.Events {
		assert.Equal(t, 2, ev.Depth)
		assert.Equal(t, 2, ev.Limit)
	}
}

func TestListenersRunInOrder(t *testing.T) {
	var order []string
	first := ListenerFunc(func(_ context.Context, ev Event) {
		if ev.Kind == EventSearchEnd {
			order = append(order, "first")
		}
	})
	second := ListenerFunc(func(_ context.Context, ev Event) {
		if ev.Kind == EventSearchEnd {
			order = append(order, "second")
		}
	})

	_, err := BreadthFirstSearch[int, int](context.Background(), counter(3, 3), WithListener(first), WithListener(second))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPanickingListener(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewCustomLogger(&buf, log.LogLevelWarn)

	boom := ListenerFunc(func(context.Context, Event) { panic("boom") })
	rec := NewEventRecorder(EventSearchEnd)

	res, err := BreadthFirstSearch[int, int](context.Background(), counter(3, 3),
		WithLogger(logger), WithListener(boom), WithListener(rec))
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, 1, rec.Count(EventSearchEnd), "later listeners still run")
	assert.Contains(t, buf.String(), "listener panicked")
	assert.Contains(t, buf.String(), "boom")
}

func TestListenerSeesSearchContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	var seen []any
	l := ListenerFunc(func(ctx context.Context, ev Event) {
		if ev.Kind == EventSearchStart {
			seen = append(seen, ctx.Value(key{}))
		}
	})
	_, err := GreedyBestFirstSearch[int, int](ctx, counter(2, 2), nil, WithListener(l))
	require.NoError(t, err)
	assert.Equal(t, []any{"v"}, seen)
}
