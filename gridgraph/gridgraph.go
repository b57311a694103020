// Package gridgraph computes shortest paths between two cells of a
// rectangular grid containing impassable obstacles. It supports:
//
//   - Orthogonal 4-connectivity built from right/bottom edges
//   - Random or explicit obstacle placement through an injected RandomSource
//   - Breadth-first traversal and parent-pointer path reconstruction
//   - Typed failures (FailureKind) instead of panics or dialogs
package gridgraph

import (
	"fmt"
	"math"
	"sort"
)

// Build resolves cfg into a GridGraph ready for InitEdges.
// Unset optional fields are drawn from rnd in this order: obstacle count,
// end, start. A nil rnd falls back to NewRandomSource(0).
// After resolution Start and End are swapped if Start > End.
//
// Returns ErrInvalidDimensions (wrapped) for non-positive or overflowing
// shapes, out-of-range cells, and obstacle counts outside [0, vertices).
// Complexity: O(len(cfg.Obstacles) log len(cfg.Obstacles)).
func Build(cfg Config, rnd RandomSource) (*GridGraph, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d must be positive", ErrInvalidDimensions, cfg.Rows, cfg.Cols)
	}
	if cfg.Rows > math.MaxInt32 || cfg.Cols > math.MaxInt32/cfg.Rows {
		return nil, fmt.Errorf("%w: %d×%d grid is too large", ErrInvalidDimensions, cfg.Rows, cfg.Cols)
	}
	if rnd == nil {
		rnd = NewRandomSource(0)
	}

	vertices := cfg.Rows * cfg.Cols
	gg := &GridGraph{
		Rows: cfg.Rows,
		Cols: cfg.Cols,
		rnd:  rnd,
	}

	switch {
	case cfg.Obstacles != nil:
		obs, err := normalizeObstacles(cfg.Obstacles, vertices)
		if err != nil {
			return nil, err
		}
		gg.obstacles = obs
		gg.explicit = true
		gg.ObstacleCount = len(obs)
	case cfg.ObstacleCount != nil:
		gg.ObstacleCount = *cfg.ObstacleCount
	default:
		// [0, vertices/2) over the reals, i.e. up to ceil(vertices/2)-1.
		gg.ObstacleCount = rnd.Uniform(0, (vertices+1)/2)
	}
	if gg.ObstacleCount < 0 || gg.ObstacleCount >= vertices {
		return nil, fmt.Errorf("%w: obstacle count %d not in [0,%d)", ErrInvalidDimensions, gg.ObstacleCount, vertices)
	}

	var err error
	if gg.End, err = resolveCell("end", cfg.End, vertices, rnd); err != nil {
		return nil, err
	}
	if gg.Start, err = resolveCell("start", cfg.Start, vertices, rnd); err != nil {
		return nil, err
	}
	if gg.Start > gg.End {
		gg.Start, gg.End = gg.End, gg.Start
	}

	return gg, nil
}

// resolveCell returns *v after a range check, or a random cell when v is nil.
func resolveCell(name string, v *int, vertices int, rnd RandomSource) (int, error) {
	if v == nil {
		return rnd.Uniform(0, vertices), nil
	}
	if *v < 0 || *v >= vertices {
		return 0, fmt.Errorf("%w: %s %d not in [0,%d)", ErrInvalidDimensions, name, *v, vertices)
	}

	return *v, nil
}

// normalizeObstacles range-checks, deduplicates and sorts an explicit obstacle list.
func normalizeObstacles(in []int, vertices int) ([]int, error) {
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, c := range in {
		if c < 0 || c >= vertices {
			return nil, fmt.Errorf("%w: obstacle %d not in [0,%d)", ErrInvalidDimensions, c, vertices)
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Ints(out)

	return out, nil
}

// InitEdges lays out Grid, places obstacles (randomly unless they were
// given explicitly), and builds the undirected adjacency.
//
// For every free cell, an edge is added to its right and bottom
// neighbors when they exist and are free. Obstacle membership is tested on
// both endpoints, so no edge ever touches an obstacle. The reverse
// directions come from the neighbors' own right/bottom edges, giving full
// 4-connectivity.
//
// InitEdges is single-use: a second call returns ErrEdgesInitialized.
// Complexity: O(V) expected time and memory.
func (gg *GridGraph) InitEdges() error {
	if gg.initialized {
		return ErrEdgesInitialized
	}
	n := gg.Vertices()

	gg.Grid = make([][]int, gg.Rows)
	for i := 0; i < gg.Rows; i++ {
		gg.Grid[i] = make([]int, gg.Cols)
		for j := 0; j < gg.Cols; j++ {
			gg.Grid[i][j] = gg.Index(i, j)
		}
	}

	gg.blocked = make([]bool, n)
	if !gg.explicit {
		gg.placeObstacles()
	}
	for _, c := range gg.obstacles {
		gg.blocked[c] = true
	}

	gg.adj = make([][]int, n)
	for i := 0; i < gg.Rows; i++ {
		for j := 0; j < gg.Cols; j++ {
			from := gg.Grid[i][j]
			if gg.blocked[from] {
				continue
			}
			if j+1 < gg.Cols {
				if next := gg.Grid[i][j+1]; !gg.blocked[next] {
					gg.addEdge(from, next)
				}
			}
			if i+1 < gg.Rows {
				if bottom := gg.Grid[i+1][j]; !gg.blocked[bottom] {
					gg.addEdge(from, bottom)
				}
			}
		}
	}
	gg.initialized = true

	return nil
}

// placeObstacles draws cells until ObstacleCount distinct ones are collected.
// Terminates because Build guarantees ObstacleCount < Vertices().
func (gg *GridGraph) placeObstacles() {
	n := gg.Vertices()
	picked := make([]bool, n)
	gg.obstacles = make([]int, 0, gg.ObstacleCount)
	for len(gg.obstacles) < gg.ObstacleCount {
		c := gg.rnd.Uniform(0, n)
		if c < 0 || c >= n || picked[c] {
			continue
		}
		picked[c] = true
		gg.obstacles = append(gg.obstacles, c)
	}
	sort.Ints(gg.obstacles)
}

// addEdge records the undirected edge v–w in both neighbor lists.
func (gg *GridGraph) addEdge(v, w int) {
	gg.adj[v] = append(gg.adj[v], w)
	gg.adj[w] = append(gg.adj[w], v)
	gg.edges++
}

// Vertices returns Rows*Cols.
func (gg *GridGraph) Vertices() int {
	return gg.Rows * gg.Cols
}

// Order returns the vertex count; with Neighbors it makes GridGraph
// usable as a bfs.Graph or dfs.Graph.
func (gg *GridGraph) Order() int {
	return gg.Vertices()
}

// Neighbors returns the adjacency list of cell v, or nil before InitEdges.
// The returned slice must not be modified.
func (gg *GridGraph) Neighbors(v int) []int {
	if !gg.initialized || v < 0 || v >= len(gg.adj) {
		return nil
	}

	return gg.adj[v]
}

// Edges returns the number of undirected edges built by InitEdges.
func (gg *GridGraph) Edges() int {
	return gg.edges
}

// Initialized reports whether InitEdges has run.
func (gg *GridGraph) Initialized() bool {
	return gg.initialized
}

// Obstacles returns a sorted copy of the obstacle cells. For random
// placement it is empty until InitEdges has run.
func (gg *GridGraph) Obstacles() []int {
	return append([]int(nil), gg.obstacles...)
}

// IsObstacle reports whether cell v is an obstacle.
func (gg *GridGraph) IsObstacle(v int) bool {
	if gg.blocked != nil {
		return v >= 0 && v < len(gg.blocked) && gg.blocked[v]
	}
	i := sort.SearchInts(gg.obstacles, v)

	return i < len(gg.obstacles) && gg.obstacles[i] == v
}

// Index maps (row, col) to the row-major cell index row*Cols + col.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) int {
	return row*gg.Cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Cols, idx % gg.Cols
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Rows && col >= 0 && col < gg.Cols
}
