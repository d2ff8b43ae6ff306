package graph

import (
	"errors"
	"fmt"
)

// MaxVertices is the largest vertex count New accepts. The bound keeps
// pathological inputs from exhausting memory through a single malformed
// count token; it is validated explicitly rather than being an implicit
// storage limit.
const MaxVertices = 10000

var (
	// ErrVertexCount is returned by [New] when the requested vertex
	// count is negative or exceeds [MaxVertices].
	ErrVertexCount = errors.New("vertex count out of range")

	// ErrVertexRange is returned by [Graph.AddEdge] when an endpoint is
	// outside [1, n]. Id 0 is reserved for 1-based indexing and is never
	// a valid vertex.
	ErrVertexRange = errors.New("vertex id out of range")
)

// edge is a directed arc stored in its source vertex's adjacency list.
// Weight is accepted and stored but unused by the algorithms here; it is
// kept for extensions (shortest paths and the like).
type edge struct {
	to     int
	weight int
}

// vertex holds per-vertex adjacency and degree counters. Degrees are
// only maintained for directed graphs, matching the semantics of the
// edge-list input format.
type vertex struct {
	in        int
	out       int
	neighbors []edge
}

// Graph is an adjacency-list graph with vertex ids in [1, n] and shared
// traversal state. The zero value is not usable; construct with [New].
type Graph struct {
	vertices   []vertex
	n          int
	directed   bool
	edgeCount  int
	discovered []bool
	processed  []bool
	parent     []int
}

// New creates a graph with vertices 1..n. Slot 0 is allocated but never
// used. Returns ErrVertexCount if n is negative or exceeds MaxVertices.
func New(n int, directed bool) (*Graph, error) {
	if n < 0 || n > MaxVertices {
		return nil, fmt.Errorf("new graph with %d vertices: %w (max %d)", n, ErrVertexCount, MaxVertices)
	}
	g := &Graph{
		vertices:   make([]vertex, n+1),
		n:          n,
		directed:   directed,
		discovered: make([]bool, n+1),
		processed:  make([]bool, n+1),
		parent:     make([]int, n+1),
	}
	for i := range g.parent {
		g.parent[i] = -1
	}
	return g, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// Directed reports whether the graph was constructed as directed.
func (g *Graph) Directed() bool { return g.directed }

// EdgeCount returns the number of stored arcs. An undirected edge loaded
// through Read counts twice, once per direction.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// AddEdge appends the arc x→y to x's adjacency list. Parallel edges are
// allowed and kept in insertion order. For directed graphs it increments
// x's out-degree and y's in-degree. Undirected callers are responsible
// for adding the mirror arc themselves; [Graph.Read] does this for edge
// lists.
//
// Returns ErrVertexRange if either endpoint is outside [1, n].
func (g *Graph) AddEdge(x, y, weight int) error {
	if x < 1 || x > g.n {
		return fmt.Errorf("add edge %d→%d: source: %w", x, y, ErrVertexRange)
	}
	if y < 1 || y > g.n {
		return fmt.Errorf("add edge %d→%d: target: %w", x, y, ErrVertexRange)
	}
	g.vertices[x].neighbors = append(g.vertices[x].neighbors, edge{to: y, weight: weight})
	if g.directed {
		g.vertices[x].out++
		g.vertices[y].in++
	}
	g.edgeCount++
	return nil
}

// InDegree returns the number of incoming edges of v, or 0 for an
// out-of-range id. Only maintained for directed graphs.
func (g *Graph) InDegree(v int) int {
	if v < 1 || v > g.n {
		return 0
	}
	return g.vertices[v].in
}

// OutDegree returns the number of outgoing edges of v, or 0 for an
// out-of-range id. Only maintained for directed graphs.
func (g *Graph) OutDegree(v int) int {
	if v < 1 || v > g.n {
		return 0
	}
	return g.vertices[v].out
}

// Neighbors returns the targets of v's outgoing edges in insertion
// order. Returns nil for an out-of-range id. The slice is a copy.
func (g *Graph) Neighbors(v int) []int {
	if v < 1 || v > g.n {
		return nil
	}
	out := make([]int, len(g.vertices[v].neighbors))
	for i, e := range g.vertices[v].neighbors {
		out[i] = e.to
	}
	return out
}

// Discovered reports whether v has been visited by the current
// traversal run. Out-of-range ids report false.
func (g *Graph) Discovered(v int) bool {
	if v < 1 || v > g.n {
		return false
	}
	return g.discovered[v]
}

// Processed reports whether v's full neighbor exploration has completed
// in the current traversal run. Out-of-range ids report false.
func (g *Graph) Processed(v int) bool {
	if v < 1 || v > g.n {
		return false
	}
	return g.processed[v]
}

// Reset clears the discovered and processed markers and parent pointers,
// preparing the graph for an independent traversal run. Traversals never
// reset state themselves.
func (g *Graph) Reset() {
	for i := range g.discovered {
		g.discovered[i] = false
		g.processed[i] = false
		g.parent[i] = -1
	}
}
