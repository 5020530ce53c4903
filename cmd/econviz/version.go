package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/econviz/internal/series"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and data defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			themesDir := defaultThemesDir
			if f := cmd.Flag("themes"); f != nil {
				themesDir = f.Value.String()
			}

			regions := make([]string, 0, len(series.Regions()))
			for _, r := range series.Regions() {
				regions = append(regions, r.String())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "econviz %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			fmt.Fprintf(out, "themes: %s\nregions: %s (%d months each)\n", themesDir, strings.Join(regions, ", "), series.Points)
			return nil
		},
	}

	return cmd
}
