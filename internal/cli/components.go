package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/you-dian-tian/graphwalk/pkg/errors"
	"github.com/you-dian-tian/graphwalk/pkg/graph"
)

// componentsCommand creates the components command.
func (c *CLI) componentsCommand() *cobra.Command {
	var undirected bool

	cmd := &cobra.Command{
		Use:   "components [file]",
		Short: "List connected components",
		Long: `List connected components of an edge list, one per line.

On directed graphs the grouping follows forward reachability from the
lowest unvisited vertex, which can split a weakly connected graph into
several groups. Use --undirected for true connected components.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			g, err := graph.Load(bytes.NewReader(input), c.Config.Directed && !undirected)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "load %s", name)
			}

			comps := g.Components()
			for i, comp := range comps {
				fmt.Fprintf(cmd.OutOrStdout(), "component %d:", i+1)
				for _, v := range comp {
					fmt.Fprintf(cmd.OutOrStdout(), " %d", v)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			printDetail("%d components over %d vertices", len(comps), g.N())
			return nil
		},
	}

	cmd.Flags().BoolVar(&undirected, "undirected", false, "treat edges as undirected")

	return cmd
}
