// Package gridpath finds shortest paths on rectangular grids that contain
// impassable obstacle cells.
//
// The grid is treated as an unweighted graph: every free cell is a vertex
// and orthogonally adjacent free cells are joined by an edge. A
// breadth-first search from the start cell yields hop distances and a parent
// tree, from which the path to the end cell is rebuilt.
//
// Layout:
//
//	gridgraph/     grid construction, obstacle placement, adjacency,
//	               BFS path reconstruction, components, clearance cost
//	bfs/           breadth-first engine over integer-indexed graphs
//	dfs/           explicit-stack depth-first engine with forest mode
//	internal/      config, logging, metrics, middleware, solver, HTTP API
//	cmd/gridpath/  CLI: `solve` prints one result as JSON, `serve` runs the API
//
// Quick example:
//
//	res, err := gridgraph.Solve(gridgraph.Config{
//		Rows: 3, Cols: 3,
//		Start: gridgraph.Int(0), End: gridgraph.Int(8),
//		Obstacles: []int{4},
//	}, gridgraph.NewRandomSource(1))
//	// res.Path == [0 1 2 5 8], res.Hops == 4
//
// Failures (an endpoint on an obstacle, or no route) are reported as typed
// values; see gridgraph.KindOf.
package gridpath
