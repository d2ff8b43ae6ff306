package graph

// Components partitions the vertices into components and returns their
// membership lists in discovery order: component k is element k-1, and
// roots are chosen by scanning ids in ascending order. Markers are reset
// before the scan, so Components is independent of any prior traversal.
//
// For an undirected graph these are the connected components. For a
// directed graph the traversal follows edge direction, so the groups are
// forward-reachability sets from each unvisited root — equivalent to
// weak components only when reachability happens to be symmetric. No
// undirected shadow graph is built to compute true weak connectivity.
func (g *Graph) Components() [][]int {
	g.Reset()

	var components [][]int
	for i := 1; i <= g.n; i++ {
		if !g.discovered[i] {
			var members []int
			g.dfsFrom(i, func(v int) { members = append(members, v) })
			components = append(components, members)
		}
	}
	return components
}
