package gridgraph

import (
	"container/list"
)

// neighborOffsets lists the orthogonal (row, col) steps: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// MinClearance finds the route from Start to End that crosses the fewest
// obstacle cells, treating the grid as if every cell were walkable and
// charging 1 for each obstacle entered (including Start itself when it is
// blocked). It returns that route in start → end order and its cost.
//
// A cost of 0 means a free path exists. When ReconstructPath reports
// ErrNoPathFound, the cost says how many obstacles would have to be cleared.
//
// Behavior:
//  1. 0–1 BFS over the full 4-neighborhood:
//     • moving into a free cell     → cost 0
//     • moving into an obstacle     → cost 1
//  2. Stop when End is dequeued.
//  3. Reconstruct via predecessors.
//
// Complexity: O(V) time and memory.
func (gg *GridGraph) MinClearance() (path []int, cost int, err error) {
	if !gg.initialized {
		return nil, 0, ErrEdgesNotInitialized
	}

	n := gg.Vertices()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	stepCost := func(v int) int {
		if gg.blocked[v] {
			return 1
		}
		return 0
	}

	// 0–1 BFS: deque processes cost-0 moves at the front, cost-1 at the back
	dq := list.New()
	dist[gg.Start] = stepCost(gg.Start)
	dq.PushFront(gg.Start)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == gg.End {
			break
		}
		ur, uc := gg.Coordinate(u)
		for _, d := range neighborOffsets {
			vr, vc := ur+d[0], uc+d[1]
			if !gg.InBounds(vr, vc) {
				continue
			}
			v := gg.Index(vr, vc)
			step := stepCost(v)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := gg.End; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[gg.End], nil
}
