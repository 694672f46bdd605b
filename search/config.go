package search

import "github.com/smallnest/statespace/log"

const (
	// DefaultCycleDepth is how many ancestors IsCycle inspects.
	DefaultCycleDepth = 30

	// DefaultWeight is the heuristic weight of WeightedAStarSearch.
	DefaultWeight = 1.4

	// DefaultDepthLimit is the limit Run uses for depth-limited search.
	DefaultDepthLimit = 10
)

// Config holds the tunables shared by every strategy. Each call builds
// its own Config from options; nothing is shared between calls.
type Config struct {
	// CycleDepth bounds the ancestor scan of IsCycle in tree searches.
	CycleDepth int

	// Weight multiplies the heuristic in WeightedAStarSearch.
	Weight float64

	// DepthLimit is the limit used when depth-limited search is run by name.
	DepthLimit int

	// MaxDepthLimit stops iterative deepening after this limit, returning
	// Cutoff. Zero means unbounded.
	MaxDepthLimit int

	// Logger receives debug and warning messages. Nil selects the
	// package-level logger of the log package.
	Logger log.Logger

	// Listeners are notified synchronously of search events.
	Listeners []Listener

	// Tracer records one span per search and per deepening round.
	Tracer *Tracer
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() *Config {
	return &Config{
		CycleDepth: DefaultCycleDepth,
		Weight:     DefaultWeight,
		DepthLimit: DefaultDepthLimit,
	}
}

// Option customises a Config.
type Option func(*Config)

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithConfig replaces the whole configuration with a copy of cfg. Later
// options still apply on top of it.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
		c.Listeners = append([]Listener(nil), cfg.Listeners...)
	}
}

// WithCycleDepth sets how many ancestors the cycle check inspects.
func WithCycleDepth(k int) Option {
	return func(c *Config) {
		c.CycleDepth = k
	}
}

// WithWeight sets the heuristic weight of weighted A*.
func WithWeight(w float64) Option {
	return func(c *Config) {
		c.Weight = w
	}
}

// WithDepthLimit sets the limit used when depth-limited search is run by
// name through Run.
func WithDepthLimit(limit int) Option {
	return func(c *Config) {
		c.DepthLimit = limit
	}
}

// WithMaxDepthLimit bounds iterative deepening.
func WithMaxDepthLimit(limit int) Option {
	return func(c *Config) {
		c.MaxDepthLimit = limit
	}
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithListener adds a listener.
func WithListener(l Listener) Option {
	return func(c *Config) {
		if l != nil {
			c.Listeners = append(c.Listeners, l)
		}
	}
}

// WithTracer sets the tracer.
func WithTracer(t *Tracer) Option {
	return func(c *Config) {
		c.Tracer = t
	}
}
