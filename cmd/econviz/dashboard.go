package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/econviz/internal/series"
	"github.com/alexisbeaulieu97/econviz/internal/tui/dashboard"
)

var errNotInteractive = errors.New("stdout is not a terminal")

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

type dashboardOptions struct {
	theme  string
	region series.Region
}

func newDashboardCmd(flags *rootFlags) *cobra.Command {
	opts := &dashboardOptions{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive chart gallery",
		Long:  `Launch the interactive TUI gallery: pick a theme, switch between the US, AUS and EU tabs and browse the twelve indicator charts.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Initial theme (defaults to the first by name)")
	cmd.Flags().Var(&opts.region, "region", "Initial region tab (us, aus, eu)")

	return cmd
}

func runDashboard(cmd *cobra.Command, flags *rootFlags, opts *dashboardOptions) error {
	if !stdoutIsTerminal() {
		return newCommandError("launch dashboard", "checking the terminal", errNotInteractive, "Run econviz from an interactive terminal, or use 'econviz show' and 'econviz export' in scripts.")
	}

	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	th, err := app.resolveTheme(opts.theme)
	if err != nil {
		return newCommandError("launch dashboard", fmt.Sprintf("selecting theme %q", opts.theme), err, "Run 'econviz themes' to list the available themes.")
	}

	app.Logger.Info("launching dashboard", "theme", th.Name, "region", opts.region.String())

	m := dashboard.NewModel(app.Gallery, app.Logger, dashboard.Options{Theme: th.Name, Region: opts.region})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "dashboard execution failed")
		return newCommandError("run dashboard", "rendering the terminal UI", err, "Re-run with --log-file to capture details.")
	}

	app.Logger.Info("dashboard closed")
	return nil
}
