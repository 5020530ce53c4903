package main

import (
	"github.com/spf13/cobra"
)

const defaultThemesDir = "themes"

type rootFlags struct {
	themesDir string
	logLevel  string
	logFile   string
	seed      uint64
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "econviz",
		Short:         "econviz renders themed economic indicator charts",
		Long:          "econviz renders a gallery of mock economic time series (employment, GDP, CPI, housing and more) for the US, AUS and EU regions, styled by YAML theme files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the dashboard
			return runDashboard(cmd, flags, &dashboardOptions{})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.themesDir, "themes", defaultThemesDir, "Directory containing theme definition files")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write JSON logs to this file")
	cmd.PersistentFlags().Uint64Var(&flags.seed, "seed", 0, "Seed for mock series (0 derives one from the clock)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newDashboardCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
