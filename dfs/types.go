// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-order hooks, depth limiting, neighbor filtering,
// and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start index is outside [0, Order()).
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Unreached marks vertices with no depth, parent, or root in a DFSResult.
const Unreached = -1

// Graph is the read-only adjacency view DFS walks.
type Graph interface {
	Order() int
	Neighbors(v int) []int
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int, depth int) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor.
	// Return false to skip it; skips are counted in SkippedNeighbors.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal, if true, restarts from every undiscovered vertex in
	// index order, covering disconnected components (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		FullTraversal:  false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the root vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters edges.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables forest traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in discovery sequence (pre-order).
	Order []int

	// Depth is each vertex's depth in its DFS tree, Unreached if undiscovered.
	Depth []int

	// Parent is the vertex each vertex was discovered from.
	// Roots and undiscovered vertices hold Unreached.
	Parent []int

	// Root is the root of the tree each vertex belongs to, Unreached if undiscovered.
	Root []int

	// Roots lists tree roots in the order the trees were grown.
	Roots []int

	// SkippedNeighbors reports how many edges FilterNeighbor rejected.
	SkippedNeighbors int
}

// Visited reports whether v was discovered.
func (r *DFSResult) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}
