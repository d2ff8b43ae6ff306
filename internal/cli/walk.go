package cli

import (
	"bytes"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/you-dian-tian/graphwalk/pkg/analyze"
	apperrors "github.com/you-dian-tian/graphwalk/pkg/errors"
	"github.com/you-dian-tian/graphwalk/pkg/graph"
)

// walkCommand creates the walk command for a single traversal.
func (c *CLI) walkCommand() *cobra.Command {
	var (
		order      string
		start      int
		undirected bool
		step       bool
	)

	cmd := &cobra.Command{
		Use:   "walk [file]",
		Short: "Run a single BFS or DFS traversal",
		Long: `Run a single BFS or DFS traversal over an edge list.

The traversal is seeded at the start vertex (default n/2) and then
continues through any still-unvisited vertices in ascending order, so
every vertex appears exactly once even on disconnected graphs.

With --step the traversal is shown interactively, one vertex per
keypress.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if order == "" {
				order = c.Config.Order
			}
			if order != "bfs" && order != "dfs" {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "order: %q is not bfs or dfs", order)
			}

			input, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			directed := c.Config.Directed && !undirected

			g, err := graph.Load(bytes.NewReader(input), directed)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "load %s", name)
			}
			loggerFromContext(cmd.Context()).Debugf("loaded %s: %d vertices, %d edges", name, g.N(), g.EdgeCount())

			if !cmd.Flags().Changed("start") {
				start = c.Config.Start
			}
			if start == 0 {
				start = g.N() / 2
			}

			var visited []int
			if order == "dfs" {
				visited = g.DFSOrder(start)
			} else {
				visited = g.BFSOrder(start)
			}

			if step {
				model := newWalkModel(g, order, start, visited)
				if _, err := tea.NewProgram(model).Run(); err != nil {
					return fmt.Errorf("interactive walk: %w", err)
				}
				return nil
			}

			return analyze.WriteOrder(cmd.OutOrStdout(), visited)
		},
	}

	cmd.Flags().StringVar(&order, "order", "", "traversal order: bfs (default) or dfs")
	cmd.Flags().IntVar(&start, "start", 0, "start vertex (0 = n/2)")
	cmd.Flags().BoolVar(&undirected, "undirected", false, "treat edges as undirected")
	cmd.Flags().BoolVar(&step, "step", false, "step through the traversal interactively")

	return cmd
}
