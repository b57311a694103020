// Package bfs provides a breadth-first search over an integer-indexed Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, Unreached if never discovered
//   - Parent: vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable regions of a grid with removed cells.
//
// Determinism
//
//	Neighbors are enqueued in the order Graph.Neighbors returns them,
//	so the visit sequence is fully reproducible for a given adjacency.
//
// Complexity (V = Order(), E = total neighbor entries)
//
//   - Time:   O(V + E)   (each vertex enqueued at most once)
//   - Memory: O(V)       (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return !blocked[nbr] }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if start is outside [0, Order()).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - context errors          if the context is cancelled mid-traversal.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
