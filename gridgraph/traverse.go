package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
)

// Traverse runs breadth-first search from Start over the adjacency built
// by InitEdges, recording visited cells, BFS parents and hop distances.
//
// Obstacle membership is re-checked for every neighbor at traversal time.
// That filter is installed after opts, so a caller-supplied
// bfs.WithFilterNeighbor is replaced; hooks, context and depth limits pass
// through unchanged.
//
// Each call starts from a clean state, so repeated calls on the same graph
// produce identical results. Any previously reconstructed path is dropped.
// Complexity: O(V + E).
func (gg *GridGraph) Traverse(opts ...bfs.Option) error {
	if !gg.initialized {
		return ErrEdgesNotInitialized
	}
	gg.traversal = nil
	gg.path = nil

	all := make([]bfs.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, bfs.WithFilterNeighbor(func(_, nbr int) bool {
		return !gg.blocked[nbr]
	}))

	res, err := bfs.BFS(gg, gg.Start, all...)
	if err != nil {
		return fmt.Errorf("gridgraph: traverse from %d: %w", gg.Start, err)
	}
	gg.traversal = res

	return nil
}

// Traversed reports whether a completed traversal is available.
func (gg *GridGraph) Traversed() bool {
	return gg.traversal != nil
}

// Visited reports whether v was reached by the last traversal.
func (gg *GridGraph) Visited(v int) bool {
	return gg.traversal != nil && gg.traversal.Reached(v)
}

// HasPathTo is Visited under the name callers of a path API expect.
func (gg *GridGraph) HasPathTo(v int) bool {
	return gg.Visited(v)
}

// VisitedCount returns how many cells the last traversal reached.
func (gg *GridGraph) VisitedCount() int {
	if gg.traversal == nil {
		return 0
	}

	return len(gg.traversal.Order)
}

// VisitOrder returns a copy of the cells in the order BFS visited them.
func (gg *GridGraph) VisitOrder() []int {
	if gg.traversal == nil {
		return nil
	}

	return append([]int(nil), gg.traversal.Order...)
}

// Parent returns the cell v was first reached from. ok is false for the
// traversal's start cell, for unreached cells, and before Traverse.
func (gg *GridGraph) Parent(v int) (p int, ok bool) {
	if !gg.Visited(v) {
		return 0, false
	}
	p = gg.traversal.Parent[v]

	return p, p != bfs.Unreached
}

// Distance returns the BFS hop distance from Start to v.
func (gg *GridGraph) Distance(v int) (d int, ok bool) {
	if !gg.Visited(v) {
		return 0, false
	}

	return gg.traversal.Depth[v], true
}

// ReconstructPath walks parent pointers back from End to Start and returns
// the cells in end → start order, the order the path was historically
// exposed in. Use PathForward for start → end.
//
// Checks, in order, each a distinct failure:
//
//	InitEdges not run      → ErrEdgesNotInitialized
//	Start is an obstacle   → ErrStartBlocked
//	End is an obstacle     → ErrEndBlocked
//	Traverse not run       → ErrNotTraversed
//	End not visited        → ErrNoPathFound
//
// len(path)-1 equals the BFS hop distance from Start to End.
func (gg *GridGraph) ReconstructPath() ([]int, error) {
	if !gg.initialized {
		return nil, ErrEdgesNotInitialized
	}
	if gg.blocked[gg.Start] {
		return nil, fmt.Errorf("%w: start %d", ErrStartBlocked, gg.Start)
	}
	if gg.blocked[gg.End] {
		return nil, fmt.Errorf("%w: end %d", ErrEndBlocked, gg.End)
	}
	if gg.traversal == nil {
		return nil, ErrNotTraversed
	}
	if !gg.traversal.Reached(gg.End) {
		return nil, fmt.Errorf("%w: from %d to %d", ErrNoPathFound, gg.Start, gg.End)
	}

	path := make([]int, 0, gg.traversal.Depth[gg.End]+1)
	for cur := gg.End; cur != gg.Start; cur = gg.traversal.Parent[cur] {
		path = append(path, cur)
	}
	path = append(path, gg.Start)
	gg.path = path

	return append([]int(nil), path...), nil
}

// Path returns a copy of the last reconstructed path in end → start order,
// or nil if none.
func (gg *GridGraph) Path() []int {
	return append([]int(nil), gg.path...)
}

// PathForward returns the last reconstructed path in start → end order.
func (gg *GridGraph) PathForward() []int {
	if gg.path == nil {
		return nil
	}
	out := make([]int, len(gg.path))
	for i, v := range gg.path {
		out[len(gg.path)-1-i] = v
	}

	return out
}
