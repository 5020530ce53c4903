package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/econviz/internal/chart"
	"github.com/alexisbeaulieu97/econviz/internal/theme"
)

func newThemesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the loaded themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			rows := make([][]string, 0, app.Themes.Len())
			for _, name := range app.Themes.Names() {
				th, _ := app.Themes.Get(name)
				rows = append(rows, []string{th.Name, th.Template, th.FontFamily, th.PaperColor, swatches(th)})
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "TEMPLATE", "FONT", "PAPER", "PALETTE").
				Rows(rows...)

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d theme(s) loaded from %s\n", app.Themes.Len(), flags.themesDir)
			return nil
		},
	}
}

// swatches renders one coloured block per palette entry.
func swatches(th theme.Theme) string {
	var b strings.Builder
	for _, c := range th.Palette {
		style := lipgloss.NewStyle()
		if hex, err := chart.HexColor(c, th.Background()); err == nil {
			style = style.Foreground(lipgloss.Color(hex))
		}
		b.WriteString(style.Render("■"))
	}
	return b.String()
}
