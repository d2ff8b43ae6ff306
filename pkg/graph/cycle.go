package graph

// HasCycle reports whether the graph contains at least one cycle
// anywhere. Markers are reset before detection, so HasCycle is
// independent of prior traversals and safe to call repeatedly.
//
// Undirected graphs use depth-first search with parent tracking: an
// already-discovered neighbor that is not the immediate parent of the
// current vertex is a back-edge, hence a cycle. Every root is explored
// even after a cycle is found, matching the whole-graph contract.
//
// Directed graphs use Kahn-style topological processing over a private
// copy of the in-degree counters: if the zero-in-degree frontier drains
// before every vertex is processed, the leftover vertices form a cycle.
// Because the live degree counters are never touched, the result does
// not report cycle location or membership but is repeatable.
func (g *Graph) HasCycle() bool {
	if g.n == 0 {
		return false
	}
	g.Reset()
	if g.directed {
		return g.directedCycle()
	}

	cycle := false
	for i := 1; i <= g.n; i++ {
		if !g.discovered[i] {
			cycle = g.undirectedCycleFrom(i) || cycle
		}
	}
	return cycle
}

// undirectedCycleFrom explores the component of v depth-first. In a
// cycle-free undirected graph every vertex has exactly one parent, so
// any discovered neighbor other than the immediate parent closes a
// cycle. Note the mirrored arc back to the parent is what the parent
// check exists to skip.
func (g *Graph) undirectedCycleFrom(v int) bool {
	if g.discovered[v] {
		return false
	}
	g.discovered[v] = true

	for _, e := range g.vertices[v].neighbors {
		if !g.discovered[e.to] {
			g.parent[e.to] = v
			if g.undirectedCycleFrom(e.to) {
				return true
			}
		} else if g.parent[v] != e.to {
			return true
		}
	}
	return false
}

// directedCycle counts how many vertices can be removed in topological
// order, working on a copy of the in-degree counters.
func (g *Graph) directedCycle() bool {
	indeg := make([]int, g.n+1)
	frontier := make([]int, 0, g.n)
	for i := 1; i <= g.n; i++ {
		indeg[i] = g.vertices[i].in
		if indeg[i] == 0 {
			frontier = append(frontier, i)
		}
	}

	processed := 0
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, e := range g.vertices[v].neighbors {
			indeg[e.to]--
			if indeg[e.to] == 0 {
				frontier = append(frontier, e.to)
			}
		}
		processed++
	}
	return processed != g.n
}
