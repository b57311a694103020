// Package gridgraph defines core types for the gridgraph package of
// github.com/katalvlaran/gridpath.
package gridgraph

import "github.com/katalvlaran/gridpath/bfs"

// Config describes the grid to build. Nil optional fields are resolved
// by Build from a RandomSource.
type Config struct {
	// Rows and Cols give the grid shape; both must be positive.
	Rows, Cols int
	// Start and End are cell indices; nil draws a random cell.
	Start, End *int
	// ObstacleCount is the number of obstacles to scatter in InitEdges;
	// nil draws a count in [0, ceil(vertices/2)).
	ObstacleCount *int
	// Obstacles, if non-nil, fixes the obstacle cells explicitly.
	// It overrides ObstacleCount and suppresses random placement.
	Obstacles []int
}

// Int returns a pointer to v, for filling the optional Config fields.
func Int(v int) *int { return &v }

// GridGraph is a rows×cols grid of row-major cell indices with impassable
// obstacle cells, treated as an unweighted undirected graph.
//
// Lifecycle: Build → InitEdges (once) → Traverse → ReconstructPath.
// A GridGraph is owned by one caller and is not safe for concurrent use.
type GridGraph struct {
	// Rows and Cols define the shape; Rows*Cols cells in total.
	Rows, Cols int
	// Start and End satisfy Start <= End after Build.
	Start, End int
	// ObstacleCount is the resolved number of obstacle cells.
	ObstacleCount int
	// Grid holds Grid[row][col] = row*Cols+col once InitEdges has run.
	Grid [][]int

	rnd         RandomSource
	explicit    bool  // obstacles fixed by Config.Obstacles
	obstacles   []int // sorted ascending
	blocked     []bool
	adj         [][]int
	edges       int
	initialized bool

	traversal *bfs.BFSResult
	path      []int // end → start
}
