package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Read parses whitespace-separated integer pairs "x y" from r and adds
// each as an edge via AddEdge until the stream is exhausted or a
// non-integer token is hit. The stop on a malformed token is silent and
// no partial pair is added; a trailing unpaired integer is discarded.
// For undirected graphs the reverse arc y→x is added as well, so each
// input line materializes both directions.
//
// Read returns an error only for out-of-range endpoints or an
// underlying reader failure, never for malformed tokens.
func (g *Graph) Read(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for {
		x, ok := nextInt(sc)
		if !ok {
			break
		}
		y, ok := nextInt(sc)
		if !ok {
			break
		}
		if err := g.AddEdge(x, y, 0); err != nil {
			return err
		}
		if !g.directed {
			if err := g.AddEdge(y, x, 0); err != nil {
				return err
			}
		}
	}
	return sc.Err()
}

// Load reads a full graph description from r: the first token is the
// vertex count n, followed by edge pairs as consumed by [Graph.Read].
// This is the plain text format used by the command line tools.
func Load(r io.Reader, directed bool) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, ok := nextInt(sc)
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read vertex count: %w", err)
		}
		return nil, fmt.Errorf("read vertex count: missing or malformed token")
	}
	g, err := New(n, directed)
	if err != nil {
		return nil, err
	}

	// Continue on the same scanner so no input is lost between the
	// count and the first pair.
	for {
		x, ok := nextInt(sc)
		if !ok {
			break
		}
		y, ok := nextInt(sc)
		if !ok {
			break
		}
		if err := g.AddEdge(x, y, 0); err != nil {
			return nil, err
		}
		if !directed {
			if err := g.AddEdge(y, x, 0); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read edges: %w", err)
	}
	return g, nil
}

// nextInt scans one token and parses it as an integer. A scan failure or
// non-integer token reports ok=false, which terminates the read loop.
func nextInt(sc *bufio.Scanner) (int, bool) {
	if !sc.Scan() {
		return 0, false
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, false
	}
	return v, true
}
