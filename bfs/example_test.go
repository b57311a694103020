package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// Cells are numbered row-major; edges join right and bottom neighbors.
func ExampleBFS_gridTraversal() {
	const n = 3
	g := make(bfs.AdjacencyList, n*n)
	link := func(u, v int) {
		g[u] = append(g[u], v)
		g[v] = append(g[v], u)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j+1 < n {
				link(i*n+j, i*n+j+1)
			}
			if i+1 < n {
				link(i*n+j, (i+1)*n+j)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// visit order follows non-decreasing Manhattan distance
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleBFSResult_PathTo finds the fewest-hop path in a network of 11 vertices.
// Two competing routes exist from 0 to 10: one of 4 hops, another of 3.
func ExampleBFSResult_PathTo() {
	g := make(bfs.AdjacencyList, 11)
	link := func(u, v int) {
		g[u] = append(g[u], v)
		g[v] = append(g[v], u)
	}
	// Route1: 0–1–2–3–10 (4 hops)
	link(0, 1)
	link(1, 2)
	link(2, 3)
	link(3, 10)
	// Route2: 0–4–5–10 (3 hops)
	link(0, 4)
	link(4, 5)
	link(5, 10)
	// side branches
	link(2, 6)
	link(6, 7)
	link(3, 8)
	link(8, 9)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo(10)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 4 5 10]
}

// ExampleWithMaxDepth applies a depth limit to a chain of 10 vertices.
func ExampleWithMaxDepth() {
	g := make(bfs.AdjacencyList, 10)
	for i := 0; i < 9; i++ {
		g[i] = append(g[i], i+1)
		g[i+1] = append(g[i+1], i)
	}

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2]
}

// ExampleWithContext demonstrates the hooks alongside mid-traversal
// cancellation on a 7-vertex chain.
func ExampleWithContext() {
	g := make(bfs.AdjacencyList, 7)
	for i := 0; i < 6; i++ {
		g[i] = append(g[i], i+1)
		g[i+1] = append(g[i+1], i)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var enqSeq, deqSeq, visSeq []string
	hookVisit := func(v, d int) error {
		visSeq = append(visSeq, fmt.Sprintf("V[%d@%d]", v, d))
		if d == 4 {
			cancel()
		}
		return nil
	}

	_, err := bfs.BFS(g, 0,
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(v, d int) { enqSeq = append(enqSeq, fmt.Sprintf("E[%d@%d]", v, d)) }),
		bfs.WithOnDequeue(func(v, d int) { deqSeq = append(deqSeq, fmt.Sprintf("D[%d@%d]", v, d)) }),
		bfs.WithOnVisit(hookVisit),
	)

	fmt.Println("error:", err)
	fmt.Println("Enqueued:", enqSeq)
	fmt.Println("Dequeued:", deqSeq)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: context canceled
	// Enqueued: [E[0@0] E[1@1] E[2@2] E[3@3] E[4@4] E[5@5]]
	// Dequeued: [D[0@0] D[1@1] D[2@2] D[3@3] D[4@4]]
	// Visited:  [V[0@0] V[1@1] V[2@2] V[3@3] V[4@4]]
}
