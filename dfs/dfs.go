// Package dfs implements depth-first search (single-source and forest) on an
// integer-indexed Graph, driven by an explicit stack so that deep grids never
// grow the goroutine stack.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus overhead of hooks and filters.
//   - Memory: O(V + E) for the stack (lazy deletion may push a vertex once per edge).
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is out of range (single-source mode).
//   - context errors            if ctx is done.
//   - any error returned by OnVisit, wrapped.
package dfs

import (
	"fmt"
)

// frame is a pending discovery: vertex v reached from parent at depth.
type frame struct {
	v      int
	parent int
	depth  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// start is ignored and every vertex is covered in index order; otherwise the
// traversal grows a single tree from start.
// Neighbors are explored in the order Graph.Neighbors lists them.
// On abort the partial result is returned with the error.
func DFS(g Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.Order()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartVertexNotFound, start, n)
	}

	res := &DFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
		Root:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = Unreached
		res.Parent[i] = Unreached
		res.Root[i] = Unreached
	}

	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if !dopts.FullTraversal {
		return res, w.grow(start)
	}
	for v := 0; v < n; v++ {
		if res.Depth[v] != Unreached {
			continue
		}
		if err := w.grow(v); err != nil {
			return res, err
		}
	}

	return res, nil
}

// grow builds one DFS tree rooted at root.
func (w *dfsWalker) grow(root int) error {
	w.res.Roots = append(w.res.Roots, root)
	w.stack = append(w.stack[:0], frame{v: root, parent: Unreached, depth: 0})

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.res.Depth[top.v] != Unreached {
			continue
		}

		w.res.Depth[top.v] = top.depth
		w.res.Parent[top.v] = top.parent
		w.res.Root[top.v] = root
		w.res.Order = append(w.res.Order, top.v)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.v, top.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", top.v, err)
			}
		}

		if w.opts.MaxDepth >= 0 && top.depth >= w.opts.MaxDepth {
			continue
		}

		// push in reverse so the first listed neighbor is explored first
		nbs := w.graph.Neighbors(top.v)
		for i := len(nbs) - 1; i >= 0; i-- {
			nid := nbs[i]
			if nid == top.v || w.res.Depth[nid] != Unreached {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.v, nid) {
				w.res.SkippedNeighbors++
				continue
			}
			w.stack = append(w.stack, frame{v: nid, parent: top.v, depth: top.depth + 1})
		}
	}

	return nil
}
