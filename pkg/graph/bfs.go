package graph

// BFS visits every vertex of the graph in breadth-first order, calling
// visit exactly once per vertex. If start is a valid, not yet discovered
// vertex its reachable component is traversed first; afterwards the
// remaining vertices are scanned in ascending id order and any
// undiscovered vertex roots a new traversal, so a disconnected graph is
// always covered completely. An invalid start simply skips the seeded
// phase.
//
// A vertex is marked discovered when enqueued (so it is never enqueued
// twice) and processed when dequeued, immediately before visit runs.
// BFS does not reset markers: a second call without [Graph.Reset] visits
// nothing.
func (g *Graph) BFS(start int, visit func(v int)) {
	if start > 0 && start <= g.n && !g.discovered[start] {
		g.bfsFrom(start, visit)
	}
	for i := 1; i <= g.n; i++ {
		if !g.discovered[i] {
			g.bfsFrom(i, visit)
		}
	}
}

// BFSOrder runs BFS and collects the visitation order.
func (g *Graph) BFSOrder(start int) []int {
	order := make([]int, 0, g.n)
	g.BFS(start, func(v int) { order = append(order, v) })
	return order
}

// bfsFrom traverses the component reachable from start with a queue.
func (g *Graph) bfsFrom(start int, visit func(v int)) {
	queue := make([]int, 0, g.n)
	queue = append(queue, start)
	g.discovered[start] = true

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, e := range g.vertices[v].neighbors {
			if !g.discovered[e.to] {
				g.discovered[e.to] = true
				queue = append(queue, e.to)
			}
		}
		g.processed[v] = true
		visit(v)
	}
}
