package analyze

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteText writes a report in the plain text form the CLI prints:
//
//	bfs: 3 4 1 2
//	dfs: 3 4 1 2
//	component 1: 1 2
//	component 2: 3 4
//	Cycle detected.
//
// The cycle line is omitted for acyclic graphs.
func WriteText(w io.Writer, rep Report) error {
	if _, err := fmt.Fprintf(w, "bfs: %s\n", joinInts(rep.BFS)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "dfs: %s\n", joinInts(rep.DFS)); err != nil {
		return err
	}
	for i, members := range rep.Components {
		if _, err := fmt.Fprintf(w, "component %d: %s\n", i+1, joinInts(members)); err != nil {
			return err
		}
	}
	if rep.HasCycle {
		if _, err := fmt.Fprintln(w, "Cycle detected."); err != nil {
			return err
		}
	}
	return nil
}

// WriteOrder writes a single space-separated visitation order line.
func WriteOrder(w io.Writer, order []int) error {
	_, err := fmt.Fprintln(w, joinInts(order))
	return err
}

// joinInts renders vertex ids space-separated.
func joinInts(vs []int) string {
	if len(vs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
