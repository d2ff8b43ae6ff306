package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	apperrors "github.com/you-dian-tian/graphwalk/pkg/errors"
	"github.com/you-dian-tian/graphwalk/pkg/graph"
)

// cycleCommand creates the cycle detection command. The command exits
// nonzero when a cycle is found so it composes in shell pipelines.
func (c *CLI) cycleCommand() *cobra.Command {
	var (
		undirected bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "cycle [file]",
		Short: "Check an edge list for a cycle",
		Long: `Check an edge list for a cycle.

Directed graphs are checked by topological processing: if not every
vertex can be processed, a cycle exists. Undirected graphs are checked
by depth-first search for an edge back to an already-visited vertex
other than the parent; a repeated "x y" pair counts as a cycle because
the second copy is such an edge.

The exit status is 1 when a cycle is found, 0 otherwise.`,
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

			if g.HasCycle() {
				if !quiet {
					printError("Cycle detected")
				}
				cmd.SilenceErrors = true
				return apperrors.New(apperrors.ErrCodeInvalidInput, "cycle detected")
			}
			if !quiet {
				printSuccess("No cycle")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undirected, "undirected", false, "treat edges as undirected")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, report via exit status only")

	return cmd
}
