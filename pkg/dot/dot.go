// Package dot renders a graph as a Graphviz node-link diagram. The DOT
// text is an output artifact only; the edge list remains the single
// load format.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/you-dian-tian/graphwalk/pkg/graph"
)

// ToDOT converts a graph to Graphviz DOT format. Directed graphs emit a
// digraph with arrows; undirected graphs emit a plain graph, collapsing
// each mirrored arc pair back into a single edge so the drawing matches
// the input edge list.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer

	keyword, op := "digraph", "->"
	if !g.Directed() {
		keyword, op = "graph", "--"
	}

	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for v := 1; v <= g.N(); v++ {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}

	buf.WriteString("\n")
	for v := 1; v <= g.N(); v++ {
		for _, w := range g.Neighbors(v) {
			// Undirected storage holds both arcs of each edge; emit
			// only the v <= w copy to avoid doubling every line.
			if !g.Directed() && w < v {
				continue
			}
			fmt.Fprintf(&buf, "  %d %s %d;\n", v, op, w)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
