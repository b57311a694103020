// Package dfs provides depth-first traversal over integer-indexed graphs.
//
// The walker keeps its own stack instead of recursing, so a single long
// corridor through a large grid costs heap, not goroutine stack.
// Vertices are discovered in pre-order; Parent and Depth describe the DFS
// tree, which is NOT a shortest-path tree. Use package bfs for hop distances.
//
// Forest mode (WithFullTraversal) grows one tree per undiscovered vertex in
// index order and records each vertex's tree root, which is how connected
// components are labelled.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook on vertex discovery; error aborts traversal.
//   - WithMaxDepth(limit)       stops descending beyond given depth (>=0).
//   - WithFilterNeighbor(fn)    filters edges; return false to skip.
//   - WithFullTraversal()       forest traversal over all vertices.
package dfs
