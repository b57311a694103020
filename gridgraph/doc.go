// Package gridgraph treats a rows×cols grid with impassable obstacle cells
// as an unweighted graph and finds shortest start→end paths with BFS.
//
// What:
//
//   - Build resolves a Config (shape, optional start/end/obstacles) using an
//     injected RandomSource for anything left unset.
//   - InitEdges lays out row-major cell indices, places obstacles and builds
//     a symmetric 4-neighborhood adjacency that never touches an obstacle.
//   - Traverse runs BFS from Start (package bfs); ReconstructPath walks the
//     parent pointers back from End.
//   - ConnectedComponents labels free regions (package dfs); MinClearance
//     computes how many obstacles separate Start from End (0-1 BFS).
//   - Solve chains the pipeline and returns a Result for renderers.
//
// Cell indices:
//
//	index = row*Cols + col, 0 ≤ index < Rows*Cols
//
// Path order:
//
//	ReconstructPath and Path return end → start, the historical order.
//	PathForward and Result.Path are start → end.
//
// Complexity:
//
//   - InitEdges:            O(V) expected (random placement rejects duplicates).
//   - Traverse:             O(V + E), Memory: O(V).
//   - ConnectedComponents:  O(V + E), Memory: O(V).
//   - MinClearance:         O(V),     Memory: O(V).
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive shape, out-of-range cells, or an
//     obstacle count ≥ Rows*Cols.
//   - ErrStartBlocked / ErrEndBlocked: an endpoint is an obstacle.
//   - ErrNoPathFound: obstacles separate Start from End.
//   - ErrEdgesInitialized, ErrEdgesNotInitialized, ErrNotTraversed: lifecycle misuse.
//
// KindOf maps any of the first four to a FailureKind.
package gridgraph
