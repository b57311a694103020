package gridgraph

import (
	"github.com/katalvlaran/gridpath/bfs"
)

// Result is the snapshot handed to a rendering layer: grid shape,
// endpoints, obstacle cells, and either the path or the failure kind.
type Result struct {
	Rows      int   `json:"rows"`
	Cols      int   `json:"cols"`
	Start     int   `json:"start"`
	End       int   `json:"end"`
	Obstacles []int `json:"obstacles"`
	// Path is in start → end order; empty on failure.
	Path []int `json:"path"`
	// Hops is len(Path)-1, or -1 on failure.
	Hops int `json:"hops"`
	// Visited counts cells reached by the traversal.
	Visited int         `json:"visited"`
	Edges   int         `json:"edges"`
	Failure FailureKind `json:"failure,omitempty"`
	// Clearance is the fewest obstacles a route would have to cross;
	// set only when Failure is KindNoPathFound.
	Clearance int `json:"clearance,omitempty"`
}

// Solved reports whether a path was found.
func (r *Result) Solved() bool {
	return r.Failure == KindNone
}

// Solve runs the whole pipeline: Build, InitEdges, Traverse,
// ReconstructPath. Path failures (start/end blocked, no path) are outcomes,
// reported in Result.Failure with a nil error. The error is non-nil only
// when no Result can be produced: invalid configuration or an aborted
// traversal (e.g. a cancelled context passed via opts).
func Solve(cfg Config, rnd RandomSource, opts ...bfs.Option) (*Result, error) {
	gg, err := Build(cfg, rnd)
	if err != nil {
		return nil, err
	}
	if err = gg.InitEdges(); err != nil {
		return nil, err
	}
	if err = gg.Traverse(opts...); err != nil {
		return nil, err
	}

	return gg.Result()
}

// Result reconstructs the path and snapshots the graph. Lifecycle errors
// (ErrEdgesNotInitialized, ErrNotTraversed) are returned as errors; path
// failures land in Result.Failure.
func (gg *GridGraph) Result() (*Result, error) {
	res := &Result{
		Rows:      gg.Rows,
		Cols:      gg.Cols,
		Start:     gg.Start,
		End:       gg.End,
		Obstacles: append([]int{}, gg.obstacles...),
		Path:      []int{},
		Hops:      -1,
		Visited:   gg.VisitedCount(),
		Edges:     gg.edges,
	}

	if _, err := gg.ReconstructPath(); err != nil {
		res.Failure = KindOf(err)
		if res.Failure == KindNone {
			return nil, err
		}
		if res.Failure == KindNoPathFound {
			if _, cost, cerr := gg.MinClearance(); cerr == nil {
				res.Clearance = cost
			}
		}
		return res, nil
	}
	res.Path = gg.PathForward()
	res.Hops = len(res.Path) - 1

	return res, nil
}
