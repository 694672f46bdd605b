// Package log provides a small leveled logging interface for statespace.
//
// The search engine never writes to stdout. Strategies log through the
// Logger found in their search.Config, which defaults to the package-level
// logger returned by GetDefaultLogger.
//
// # Log Levels
//
// In order of increasing severity:
//
//   - LogLevelDebug: search start/end, each iterative-deepening round
//   - LogLevelInfo: general informational messages
//   - LogLevelWarn: cancelled searches and recovered listener panics
//   - LogLevelError: failures that need attention
//   - LogLevelNone: disables all logging output
//
// # Implementations
//
// DefaultLogger writes through the standard library log package with a
// "[statespace] " prefix. GologLogger wraps a github.com/kataras/golog
// logger and keeps its level in sync:
//
//	glogger := golog.New()
//	glogger.SetPrefix("[solver] ")
//
//	logger := log.NewGologLogger(glogger)
//	logger.SetLevel(log.LogLevelDebug)
//
//	res, err := search.AStarSearch(ctx, problem, nil, search.WithLogger(logger))
//
// NoOpLogger discards everything and is what SetDefaultLogger(nil) installs.
//
// # Configuration
//
// ParseLevel accepts the level names used in YAML config files and CLI
// flags ("debug", "info", "warn", "error", "none").
package log
