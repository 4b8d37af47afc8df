package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquechain/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; empty derives one from n and index
	format  string // output format: "dot" or "svg"
	noCache bool   // bypass the result cache
}

// renderCommand creates the render command. It exports one configuration's
// clique graph, where every clique is a complete subgraph and shared
// integers are highlighted.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render <n> <index>",
		Short: "Export a configuration's clique graph as DOT or SVG",
		Long: `Render exports the clique graph of a single configuration. The index is
1-based and refers to the canonical enumeration order printed by
"enumerate --full".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("n must be an integer, got %q", args[0])
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("index must be an integer, got %q", args[1])
			}
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", opts.format)
			}
			return c.runRender(cmd, n, index, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default clique_<n>_<index>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the result cache")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, n, index int, opts renderOpts) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	configs, _, err := runner.Enumerate(ctx, n)
	if err != nil {
		return err
	}
	if index < 1 || index > len(configs) {
		return fmt.Errorf("index %d out of range: n=%d has %d configurations", index, n, len(configs))
	}
	cfg := configs[index-1]
	c.Logger.Debugf("Rendering %s", cfg)

	dot := render.ToDOT(cfg)
	data := []byte(dot)
	if opts.format == formatSVG {
		data, err = render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
	}

	path := opts.output
	if path == "" {
		path = fmt.Sprintf("clique_%d_%d.%s", n, index, opts.format)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Rendered configuration %d of %d for n=%d", index, len(configs), n)
	printFile(path)
	return nil
}
