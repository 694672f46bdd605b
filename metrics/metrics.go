package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/smallnest/statespace/search"
)

const namespace = "statespace"

// OutcomeError labels searches that returned an error, such as a
// cancelled context.
const OutcomeError = "error"

// Collector is a search.Listener that exports search activity as
// Prometheus metrics.
//
// Metrics (all labelled by strategy):
//   - statespace_searches_total{outcome}: finished searches
//   - statespace_nodes_expanded_total: expanded nodes
//   - statespace_depth_cutoffs_total: nodes pruned by a depth limit
//   - statespace_frontier_size: frontier size at the last expansion
//   - statespace_solution_depth: number of actions in found solutions
type Collector struct {
	searches *prometheus.CounterVec
	expanded *prometheus.CounterVec
	cutoffs  *prometheus.CounterVec
	frontier *prometheus.GaugeVec
	depth    *prometheus.HistogramVec
}

var _ search.Listener = (*Collector)(nil)

// NewCollector creates the metrics and registers them on reg. A nil reg
// selects prometheus.DefaultRegisterer. Metrics already registered by an
// earlier Collector on the same registry are reused.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Finished searches by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_expanded_total",
			Help:      "Nodes expanded by strategy",
		}, []string{"strategy"}),
		cutoffs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "depth_cutoffs_total",
			Help:      "Nodes not expanded because of a depth limit",
		}, []string{"strategy"}),
		frontier: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frontier_size",
			Help:      "Frontier size observed at the most recent expansion",
		}, []string{"strategy"}),
		depth: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solution_depth",
			Help:      "Number of actions in found solutions",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128, 256},
		}, []string{"strategy"}),
	}

	var err error
	if c.searches, err = register(reg, c.searches); err != nil {
		return nil, err
	}
	if c.expanded, err = register(reg, c.expanded); err != nil {
		return nil, err
	}
	if c.cutoffs, err = register(reg, c.cutoffs); err != nil {
		return nil, err
	}
	if c.frontier, err = register(reg, c.frontier); err != nil {
		return nil, err
	}
	if c.depth, err = register(reg, c.depth); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewCollector is NewCollector that panics on error.
func MustNewCollector(reg prometheus.Registerer) *Collector {
	c, err := NewCollector(reg)
	if err != nil {
		panic(err)
	}
	return c
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// OnSearchEvent implements search.Listener.
func (c *Collector) OnSearchEvent(_ context.Context, ev search.Event) {
	strategy := string(ev.Strategy)

	switch ev.Kind {
	case search.EventNodeExpanded:
		c.frontier.WithLabelValues(strategy).Set(float64(ev.FrontierSize))
	case search.EventSearchEnd:
		outcome := ev.Outcome.String()
		if ev.Err != nil {
			outcome = OutcomeError
		}
		c.searches.WithLabelValues(strategy, outcome).Inc()
		c.expanded.WithLabelValues(strategy).Add(float64(ev.Stats.Expanded))
		c.cutoffs.WithLabelValues(strategy).Add(float64(ev.Stats.Cutoffs))
		if ev.Err == nil && ev.Outcome == search.Found {
			c.depth.WithLabelValues(strategy).Observe(float64(ev.Depth))
		}
	}
}
