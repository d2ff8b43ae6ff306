package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-dian-tian/graphwalk/pkg/analyze"
)

// reportCommand creates the report command, the full analysis pass.
func (c *CLI) reportCommand() *cobra.Command {
	var (
		undirected bool
		start      int
		output     string
		refresh    bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Run the full analysis pass over an edge list",
		Long: `Run the full analysis pass over an edge list.

The input is whitespace-separated integers: the vertex count n first,
then edge pairs "x y" with 1-based endpoints. Reading stops silently at
the first malformed token. Input comes from the named file or stdin.

The pass runs BFS from the start vertex, resets traversal state, runs
DFS from the same vertex, discovers connected components, and checks
for a cycle. The default start is n/2. Results are cached locally for
faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			opts := analyze.Options{
				Directed: c.Config.Directed,
				Start:    c.Config.Start,
				Refresh:  refresh,
				CacheTTL: c.Config.cacheTTL(),
			}
			if undirected {
				opts.Directed = false
			}
			if cmd.Flags().Changed("start") {
				opts.Start = start
			}

			prog := newProgress(c.Logger)
			rep, cached, err := c.newRunner(noCache).Analyze(cmd.Context(), input, opts)
			if err != nil {
				printError("Analysis failed")
				return err
			}
			prog.done(fmt.Sprintf("Analyzed %s", name))

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}
			if err := analyze.WriteText(out, rep); err != nil {
				return err
			}

			if output != "" {
				printFile(output)
			}
			printStats(rep.N, rep.Edges, cached)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undirected, "undirected", false, "treat edges as undirected")
	cmd.Flags().IntVar(&start, "start", 0, "start vertex for both traversals (0 = n/2)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
