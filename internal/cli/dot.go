package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-dian-tian/graphwalk/pkg/dot"
	apperrors "github.com/you-dian-tian/graphwalk/pkg/errors"
	"github.com/you-dian-tian/graphwalk/pkg/graph"
)

// dotCommand creates the Graphviz export command.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		undirected bool
		output     string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Export an edge list as Graphviz DOT, SVG, or PNG",
		Long: `Export an edge list as Graphviz DOT, SVG, or PNG.

Plain DOT goes to stdout unless --output names a file. SVG and PNG
always need --output. When --format is omitted it is inferred from the
output extension, defaulting to dot.`,
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
			loggerFromContext(cmd.Context()).Debugf("loaded %s: %d vertices, %d edges", name, g.N(), g.EdgeCount())

			if format == "" {
				format = inferFormat(output)
			}

			src := dot.ToDOT(g)

			var data []byte
			switch format {
			case "dot":
				data = []byte(src)
			case "svg":
				data, err = dot.RenderSVG(cmd.Context(), src)
			case "png":
				data, err = dot.RenderPNG(cmd.Context(), src)
			default:
				return apperrors.New(apperrors.ErrCodeUnsupported, "format: %q is not dot, svg, or png", format)
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}

			if output == "" {
				if format != "dot" {
					return apperrors.New(apperrors.ErrCodeInvalidInput, "%s output needs --output", format)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Exported %s", format)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undirected, "undirected", false, "treat edges as undirected")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot (default), svg, png")

	return cmd
}

// inferFormat maps an output extension to a render format.
func inferFormat(output string) string {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".svg":
		return "svg"
	case ".png":
		return "png"
	default:
		return "dot"
	}
}
