package graph

// DFS visits every vertex of the graph in depth-first order, calling
// visit exactly once per vertex. The seeded-phase and full-coverage
// contract is the same as [Graph.BFS]: a valid undiscovered start is
// explored first, then an ascending id scan roots the remaining
// components.
//
// Emission is pre-order: a vertex is marked discovered and visited
// before its neighbors are explored, and marked processed only after
// all of them return. Recursion depth is bounded by [MaxVertices],
// which Go's growable stacks handle even for a single long chain.
//
// DFS does not reset markers: a second call without [Graph.Reset]
// visits nothing.
func (g *Graph) DFS(start int, visit func(v int)) {
	if start > 0 && start <= g.n && !g.discovered[start] {
		g.dfsFrom(start, visit)
	}
	for i := 1; i <= g.n; i++ {
		if !g.discovered[i] {
			g.dfsFrom(i, visit)
		}
	}
}

// DFSOrder runs DFS and collects the visitation order.
func (g *Graph) DFSOrder(start int) []int {
	order := make([]int, 0, g.n)
	g.DFS(start, func(v int) { order = append(order, v) })
	return order
}

// dfsFrom explores the component reachable from v recursively.
func (g *Graph) dfsFrom(v int, visit func(v int)) {
	g.discovered[v] = true
	visit(v)
	for _, e := range g.vertices[v].neighbors {
		if !g.discovered[e.to] {
			g.dfsFrom(e.to, visit)
		}
	}
	g.processed[v] = true
}
