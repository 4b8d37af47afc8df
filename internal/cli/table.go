package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquechain/pkg/series"
	"github.com/matzehuels/cliquechain/pkg/store"
)

// tableOpts holds the command-line flags for the table command.
type tableOpts struct {
	max     int  // sweep upper bound
	plain   bool // counts only, no size labels
	noCache bool // bypass the result cache
	persist bool // save the report to the configured store
}

// tableCommand creates the table command. It sweeps n = 1..max, prints the
// count and ending clique breakdown per n and verifies the recurrence
// a(n+1) = 3·a(n) − 1.
func (c *CLI) tableCommand() *cobra.Command {
	opts := tableOpts{max: c.Config.Max}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the configuration count table with recurrence check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTable(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.max, "max", "m", opts.max, "sweep n from 1 to max")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print counts without size labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the result cache")
	cmd.Flags().BoolVar(&opts.persist, "store", false, "save the report to the configured store")

	return cmd
}

func (c *CLI) runTable(cmd *cobra.Command, opts tableOpts) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinner(ctx, fmt.Sprintf("Sweeping n = 1..%d", opts.max))
	spin.Start()
	report, err := runner.Sweep(ctx, opts.max)
	spin.Stop()
	if err != nil {
		return err
	}

	labels := c.Config.Labels && !opts.plain
	width := len(strconv.Itoa(report.WidestCount()))
	for _, row := range report.Rows {
		fmt.Println(formatRow(row, width, labels))
	}

	printNewline()
	printInfo("Recurrence a(n+1) = 3·a(n) − 1")
	for i, row := range report.Rows {
		if i == 0 {
			continue
		}
		fmt.Println(formatRecurrence(row, report.Rows[i-1].Count))
	}

	printNewline()
	if report.Verified() {
		printSuccess("Recurrence holds for all %d rows", len(report.Rows))
	} else {
		printError("Recurrence violated, see rows above")
	}

	if opts.persist {
		if err := c.saveReport(cmd, report); err != nil {
			return err
		}
	}
	return nil
}

// saveReport persists the report via the configured Mongo store.
func (c *CLI) saveReport(cmd *cobra.Command, report *series.Report) error {
	ctx := cmd.Context()

	st, err := store.NewMongoStore(ctx, store.MongoConfig{
		URI:      c.Config.Store.MongoURI,
		Database: c.Config.Store.Database,
	})
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	if err := st.Save(ctx, report); err != nil {
		return err
	}
	printSuccess("Saved report %s", report.ID)
	printDetail("Database: %s", c.Config.Store.Database)
	return nil
}

// formatRow renders one table line, e.g.
//
//	n =  4: 14 configurations   1: 5, 2: 5, 3: 3, 4: 1
//
// With labels false the breakdown collapses to "= 5, 5, 3, 1" as a bare
// count list. Counts are padded to width digits so columns line up.
func formatRow(row series.Row, width int, labels bool) string {
	head := fmt.Sprintf("n = %2d: %s", row.N,
		StyleNumber.Render(fmt.Sprintf("%d configurations", row.Count)))

	cells := make([]string, 0, len(row.Breakdown))
	for _, sc := range row.Breakdown {
		count := fmt.Sprintf("%-*d", width, sc.Count)
		if labels {
			cells = append(cells, StyleSize.Render(strconv.Itoa(sc.Size))+": "+count)
		} else {
			cells = append(cells, count)
		}
	}

	sep := "   "
	if !labels {
		sep = " = "
	}
	return head + sep + strings.TrimRight(strings.Join(cells, ", "), " ")
}

// formatRecurrence renders one verification line, e.g.
//
//	a(4) = 14, expected 3·5 − 1 = 14 ✓
func formatRecurrence(row series.Row, prev int) string {
	icon := styleIconSuccess.Render(iconSuccess)
	if !row.RecurrenceOK {
		icon = styleIconError.Render(iconError)
	}
	return fmt.Sprintf("  a(%d) = %d, expected 3·%d − 1 = %d %s",
		row.N, row.Count, prev, row.Expected, icon)
}
