package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dfs"
)

// ConnectedComponents partitions the free (non-obstacle) cells into regions
// that are mutually reachable over the adjacency built by InitEdges.
// Each component is sorted ascending, and components are ordered by their
// smallest cell. Obstacle cells belong to no component.
//
// Two cells share a component exactly when a BFS from one visits the other,
// so this answers "is there any path" for every pair at once.
//
// Time:   O(V + E).
// Memory: O(V).
func (gg *GridGraph) ConnectedComponents() ([][]int, error) {
	if !gg.initialized {
		return nil, ErrEdgesNotInitialized
	}

	res, err := dfs.DFS(gg, 0, dfs.WithFullTraversal())
	if err != nil {
		return nil, fmt.Errorf("gridgraph: label components: %w", err)
	}

	// Roots are grown in index order, so each root is its component's minimum.
	slot := make(map[int]int, len(res.Roots))
	var comps [][]int
	for _, r := range res.Roots {
		if gg.blocked[r] {
			continue
		}
		slot[r] = len(comps)
		comps = append(comps, nil)
	}
	for v := 0; v < gg.Vertices(); v++ {
		if gg.blocked[v] {
			continue
		}
		k := slot[res.Root[v]]
		comps[k] = append(comps[k], v)
	}

	return comps, nil
}

// SameComponent reports whether free cells a and b are connected.
// It needs only InitEdges, not Traverse.
func (gg *GridGraph) SameComponent(a, b int) (bool, error) {
	if !gg.initialized {
		return false, ErrEdgesNotInitialized
	}
	n := gg.Vertices()
	if a < 0 || a >= n || b < 0 || b >= n {
		return false, fmt.Errorf("%w: cells %d,%d not in [0,%d)", ErrInvalidDimensions, a, b, n)
	}
	if gg.blocked[a] || gg.blocked[b] {
		return false, nil
	}

	res, err := dfs.DFS(gg, a)
	if err != nil {
		return false, fmt.Errorf("gridgraph: reach from %d: %w", a, err)
	}

	return res.Visited(b), nil
}
