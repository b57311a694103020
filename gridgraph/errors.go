package gridgraph

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive shape, an out-of-range
	// start/end/obstacle cell, or an obstacle count that leaves no free cell.
	ErrInvalidDimensions = errors.New("gridgraph: invalid dimensions")
	// ErrStartBlocked indicates the start cell is an obstacle.
	ErrStartBlocked = errors.New("gridgraph: start cell is an obstacle")
	// ErrEndBlocked indicates the end cell is an obstacle.
	ErrEndBlocked = errors.New("gridgraph: end cell is an obstacle")
	// ErrNoPathFound indicates obstacles separate start from end.
	ErrNoPathFound = errors.New("gridgraph: no path between start and end")

	// ErrEdgesInitialized is returned by a second InitEdges call.
	ErrEdgesInitialized = errors.New("gridgraph: edges already initialized")
	// ErrEdgesNotInitialized is returned when an operation needs InitEdges first.
	ErrEdgesNotInitialized = errors.New("gridgraph: edges not initialized")
	// ErrNotTraversed is returned by ReconstructPath before any Traverse.
	ErrNotTraversed = errors.New("gridgraph: graph not traversed")
)

// FailureKind classifies why no path could be produced.
// It is what a rendering layer branches on.
type FailureKind string

const (
	// KindNone means no failure.
	KindNone FailureKind = ""
	// KindInvalidDimensions corresponds to ErrInvalidDimensions.
	KindInvalidDimensions FailureKind = "invalid_dimensions"
	// KindStartBlocked corresponds to ErrStartBlocked.
	KindStartBlocked FailureKind = "start_blocked"
	// KindEndBlocked corresponds to ErrEndBlocked.
	KindEndBlocked FailureKind = "end_blocked"
	// KindNoPathFound corresponds to ErrNoPathFound.
	KindNoPathFound FailureKind = "no_path_found"
)

// KindOf maps err to its FailureKind. Errors outside the taxonomy,
// including nil, map to KindNone.
func KindOf(err error) FailureKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidDimensions):
		return KindInvalidDimensions
	case errors.Is(err, ErrStartBlocked):
		return KindStartBlocked
	case errors.Is(err, ErrEndBlocked):
		return KindEndBlocked
	case errors.Is(err, ErrNoPathFound):
		return KindNoPathFound
	default:
		return KindNone
	}
}
