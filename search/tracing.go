package search

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TraceEvent represents the kind of a trace span
type TraceEvent string

const (
	// TraceEventSearchStart marks a running search call
	TraceEventSearchStart TraceEvent = "search_start"

	// TraceEventSearchEnd marks a finished search call
	TraceEventSearchEnd TraceEvent = "search_end"

	// TraceEventIterationStart marks a running depth-limited round of
	// iterative deepening
	TraceEventIterationStart TraceEvent = "iteration_start"

	// TraceEventIterationEnd marks a finished depth-limited round
	TraceEventIterationEnd TraceEvent = "iteration_end"
)

// TraceSpan represents a span of execution with timing and metadata
type TraceSpan struct {
	// ID is a unique identifier for this span
	ID string

	// ParentID is the ID of the parent span (empty for root spans)
	ParentID string

	// Event indicates the type of event this span represents
	Event TraceEvent

	// Strategy is the strategy that opened the span
	Strategy Strategy

	// StartTime is when this span began
	StartTime time.Time

	// EndTime is when this span completed (zero for ongoing spans)
	EndTime time.Time

	// Duration is the total time taken (calculated when span ends)
	Duration time.Duration

	// Outcome and Stats are filled in when the span ends
	Outcome Outcome
	Stats   Stats

	// Error contains the error the search returned, if any
	Error error

	// Metadata contains additional key-value pairs, e.g. "limit" for
	// deepening rounds
	Metadata map[string]any
}

// TraceHook defines the interface for trace event handlers
type TraceHook interface {
	// OnEvent is called when a span starts and when it ends
	OnEvent(ctx context.Context, span *TraceSpan)
}

// TraceHookFunc is a function adapter for TraceHook
type TraceHookFunc func(ctx context.Context, span *TraceSpan)

// OnEvent implements the TraceHook interface
func (f TraceHookFunc) OnEvent(ctx context.Context, span *TraceSpan) {
	f(ctx, span)
}

// Tracer manages trace collection and hooks. One tracer may be shared by
// several searches.
type Tracer struct {
	mu    sync.Mutex
	hooks []TraceHook
	spans map[string]*TraceSpan
}

// NewTracer creates a new tracer instance
func NewTracer() *Tracer {
	return &Tracer{
		hooks: make([]TraceHook, 0),
		spans: make(map[string]*TraceSpan),
	}
}

// AddHook registers a new trace hook
func (t *Tracer) AddHook(hook TraceHook) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hooks = append(t.hooks, hook)
}

// StartSpan creates a new span, parented to the span carried by ctx
func (t *Tracer) StartSpan(ctx context.Context, event TraceEvent, strategy Strategy) *TraceSpan {
	span := &TraceSpan{
		ID:        uuid.NewString(),
		Event:     event,
		Strategy:  strategy,
		StartTime: time.Now(),
		Metadata:  make(map[string]any),
	}

	if parentSpan := SpanFromContext(ctx); parentSpan != nil {
		span.ParentID = parentSpan.ID
	}

	t.mu.Lock()
	t.spans[span.ID] = span
	hooks := append([]TraceHook(nil), t.hooks...)
	t.mu.Unlock()

	for _, hook := range hooks {
		hook.OnEvent(ctx, span)
	}

	return span
}

// EndSpan completes a span with the outcome of the traced work
func (t *Tracer) EndSpan(ctx context.Context, span *TraceSpan, outcome Outcome, stats Stats, err error) {
	t.mu.Lock()
	span.EndTime = time.Now()
	span.Duration = span.EndTime.Sub(span.StartTime)
	span.Outcome = outcome
	span.Stats = stats
	span.Error = err

	switch span.Event {
	case TraceEventSearchStart:
		span.Event = TraceEventSearchEnd
	case TraceEventIterationStart:
		span.Event = TraceEventIterationEnd
	}
	hooks := append([]TraceHook(nil), t.hooks...)
	t.mu.Unlock()

	for _, hook := range hooks {
		hook.OnEvent(ctx, span)
	}
}

// GetSpans returns a snapshot of all collected spans
func (t *Tracer) GetSpans() map[string]*TraceSpan {
	t.mu.Lock()
	defer t.mu.Unlock()
	spans := make(map[string]*TraceSpan, len(t.spans))
	for id, span := range t.spans {
		spans[id] = span
	}
	return spans
}

// Clear removes all collected spans
func (t *Tracer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.spans = make(map[string]*TraceSpan)
}

type spanContextKey struct{}

// ContextWithSpan returns a new context with the span stored
func ContextWithSpan(ctx context.Context, span *TraceSpan) context.Context {
	return context.WithValue(ctx, spanContextKey{}, span)
}

// SpanFromContext extracts a span from context
func SpanFromContext(ctx context.Context) *TraceSpan {
	if span, ok := ctx.Value(spanContextKey{}).(*TraceSpan); ok {
		return span
	}
	return nil
}
