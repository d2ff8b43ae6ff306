// Package graph implements an adjacency-list graph over integer vertex
// ids together with the classic traversal algorithms: breadth-first and
// depth-first search, connected-component discovery, and cycle detection
// for both directed and undirected graphs.
//
// Vertices are identified by integers in [1, n]; id 0 is reserved so
// that storage can be indexed 1-based. The vertex count and directedness
// are fixed at construction. Edges are appended with [Graph.AddEdge] or
// bulk-loaded from a plain text edge list with [Graph.Read]; there is no
// edge removal.
//
// # Traversal state
//
// A Graph carries shared traversal bookkeeping: a discovered flag (set
// the first time a vertex is seen), a processed flag (set once all of a
// vertex's neighbors have been explored), and a parent pointer (used by
// undirected cycle detection). BFS and DFS deliberately do NOT reset
// this state, so partial traversals can be combined; call [Graph.Reset]
// between independent runs. Components and HasCycle reset the markers
// themselves before running.
//
// # Concurrency
//
// Graph is not safe for concurrent use. All mutation must complete
// before traversal begins, and algorithm calls must be serialized by the
// caller.
package graph
