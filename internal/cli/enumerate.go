package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquechain/pkg/clique"
	"github.com/matzehuels/cliquechain/pkg/render"
)

// enumerateOpts holds the command-line flags for the enumerate command.
type enumerateOpts struct {
	full    bool // list every configuration, not just the summary
	noColor bool // disable colored bracket rendering
	noCache bool // bypass the result cache
	asJSON  bool // emit machine-readable JSON instead of text
}

// enumerateCommand creates the enumerate command. It lists all valid clique
// configurations for a single n together with the ending clique breakdown.
func (c *CLI) enumerateCommand() *cobra.Command {
	opts := enumerateOpts{full: c.Config.FullList}

	cmd := &cobra.Command{
		Use:   "enumerate <n>",
		Short: "Enumerate all valid clique configurations for n",
		Long: `Enumerate lists every collection of cliques over 1..n in which each integer
belongs to exactly one or two cliques and no clique is a proper subset of
another. Configurations are shown in bracket notation: square brackets for
cliques whose members are exclusive, parentheses for cliques sharing an
integer with a neighbour.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("n must be an integer, got %q", args[0])
			}
			return c.runEnumerate(cmd, n, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.full, "full", opts.full, "list every configuration")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the result cache")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit JSON output")

	return cmd
}

func (c *CLI) runEnumerate(cmd *cobra.Command, n int, opts enumerateOpts) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	track := newProgress(c.Logger)
	configs, cached, err := runner.Enumerate(ctx, n)
	if err != nil {
		return err
	}
	track.done(fmt.Sprintf("Enumerated %d configurations for n=%d", len(configs), n))

	if opts.asJSON {
		return writeEnumerationJSON(cmd, n, configs, cached)
	}

	fmt.Printf("%s %s\n", StyleTitle.Render(fmt.Sprintf("n = %d:", n)),
		StyleNumber.Render(fmt.Sprintf("%d configurations", len(configs))))
	printStats(len(configs), cached)

	if opts.full {
		printNewline()
		for _, cfg := range configs {
			brackets := render.Bracket(cfg, render.BracketOptions{Colored: !opts.noColor})
			size := clique.EndingCliqueSize(cfg, n)
			fmt.Printf("  %s  %s\n", brackets, StyleDim.Render(fmt.Sprintf("ends in %d-clique", size)))
		}
	}

	printNewline()
	printDetail("Ending clique breakdown: %s", formatBreakdown(clique.Breakdown(configs, n), 0, c.Config.Labels))
	return nil
}

// enumerationJSON is the machine-readable enumerate payload.
type enumerationJSON struct {
	N              int                    `json:"n"`
	Count          int                    `json:"count"`
	Cached         bool                   `json:"cached"`
	Configurations []clique.Configuration `json:"configurations"`
}

func writeEnumerationJSON(cmd *cobra.Command, n int, configs []clique.Configuration, cached bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(enumerationJSON{
		N:              n,
		Count:          len(configs),
		Cached:         cached,
		Configurations: configs,
	})
}

// formatBreakdown renders an ending-size breakdown as "1: 2, 2: 2, 3: 1".
// Counts are right-padded to width digits so columns line up across rows;
// width 0 disables padding. With labels false only the counts are shown.
func formatBreakdown(breakdown map[int]int, width int, labels bool) string {
	sizes := make([]int, 0, len(breakdown))
	for size := range breakdown {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	parts := make([]string, 0, len(sizes))
	for _, size := range sizes {
		count := strconv.Itoa(breakdown[size])
		if width > 0 {
			count = fmt.Sprintf("%-*d", width, breakdown[size])
		}
		if labels {
			parts = append(parts, StyleSize.Render(strconv.Itoa(size))+": "+count)
		} else {
			parts = append(parts, count)
		}
	}
	return strings.Join(parts, ", ")
}
