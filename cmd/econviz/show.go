package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/econviz/internal/chart"
	"github.com/alexisbeaulieu97/econviz/internal/series"
)

type showOptions struct {
	region series.Region
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarise the mock series of a region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, opts)
		},
	}

	cmd.Flags().Var(&opts.region, "region", "Region to summarise (us, aus, eu)")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions) error {
	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	coll, err := app.Gallery.Collection(opts.region)
	if err != nil {
		return newCommandError("show series", fmt.Sprintf("generating region %s", opts.region), err, "Use --region us, aus or eu.")
	}

	var rows [][]string
	for _, entry := range coll.Entries {
		for _, col := range entry.Table.Columns {
			s := series.Summarize(col.Values)
			rows = append(rows, []string{
				entry.Name,
				col.Name,
				chart.FormatValue(s.Mean),
				chart.FormatValue(s.Std),
				chart.FormatValue(s.First),
				chart.FormatValue(s.Last),
			})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SERIES", "COLUMN", "MEAN", "STD", "FIRST", "LAST").
		Rows(rows...)

	out := cmd.OutOrStdout()
	dates := series.Dates()
	_, _ = fmt.Fprintf(out, "%s: %d series, %s to %s (seed %d)\n",
		opts.region.Label(), coll.Len(), chart.FormatMonth(dates[0]), chart.FormatMonth(dates[len(dates)-1]), app.Seed)
	_, _ = fmt.Fprintln(out, t.Render())
	return nil
}
