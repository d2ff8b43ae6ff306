// Package pkg provides the core libraries for the graphwalk toolkit.
//
// # Overview
//
// Graphwalk reads a graph from a plain text edge list and runs the
// classic traversal algorithms over it. The pkg directory is organized
// into five areas:
//
//  1. [graph] - The graph structure and algorithms (BFS, DFS,
//     components, cycle detection)
//  2. [analyze] - The shared analysis run used by CLI and API
//  3. [dot] - Graphviz node-link rendering of a loaded graph
//  4. [cache] / [store] - Result caching and report persistence
//  5. [errors] / [buildinfo] - Structured errors and build metadata
//
// # Architecture
//
// The typical data flow:
//
//	edge-list text (n, then "x y" pairs)
//	         ↓
//	    [graph] package (load + traverse + detect)
//	         ↓
//	    [analyze] package (report assembly + caching)
//	         ↓
//	    text / JSON / DOT / SVG output
//
// # Quick Start
//
// Load a graph and run the full analysis:
//
//	import (
//	    "os"
//	    "strings"
//
//	    "github.com/you-dian-tian/graphwalk/pkg/analyze"
//	    "github.com/you-dian-tian/graphwalk/pkg/graph"
//	)
//
//	g, _ := graph.Load(strings.NewReader("3 1 2 2 3 3 1"), true)
//	rep := analyze.Run(g, 0)
//	analyze.WriteText(os.Stdout, rep)
//
// Or drive the algorithms directly:
//
//	g, _ := graph.New(3, false)
//	_ = g.AddEdge(1, 2, 0)
//	_ = g.AddEdge(2, 1, 0)
//	order := g.BFSOrder(1)
//	g.Reset()
//	cyclic := g.HasCycle()
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/graph/...  # Specific package
//
// [graph]: https://pkg.go.dev/github.com/you-dian-tian/graphwalk/pkg/graph
// [analyze]: https://pkg.go.dev/github.com/you-dian-tian/graphwalk/pkg/analyze
// [dot]: https://pkg.go.dev/github.com/you-dian-tian/graphwalk/pkg/dot
// [cache]: https://pkg.go.dev/github.com/you-dian-tian/graphwalk/pkg/cache
// [store]: https://pkg.go.dev/github.com/you-dian-tian/graphwalk/pkg/store
// [errors]: https://pkg.go.dev/github.com/you-dian-tian/graphwalk/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/you-dian-tian/graphwalk/pkg/buildinfo
package pkg
