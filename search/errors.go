package search

import "errors"

var (
	// ErrNoHeuristic is returned by an informed strategy that was given no
	// heuristic for a problem that does not implement InformedProblem.
	ErrNoHeuristic = errors.New("no heuristic: pass one or implement InformedProblem")

	// ErrInvalidLimit is returned for a negative depth limit.
	ErrInvalidLimit = errors.New("depth limit must not be negative")

	// ErrUnknownStrategy is returned by Run and ParseStrategy for a name
	// that is not registered.
	ErrUnknownStrategy = errors.New("unknown search strategy")

	// ErrCancelled wraps the context error of a search stopped at a
	// cancellation check-point.
	ErrCancelled = errors.New("search cancelled")
)
