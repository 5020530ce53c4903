package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/econviz/internal/chart"
	"github.com/alexisbeaulieu97/econviz/internal/series"
)

type exportOptions struct {
	region series.Region
	theme  string
	format string
	outDir string
	width  int
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a region's charts as images or a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts)
		},
	}

	cmd.Flags().Var(&opts.region, "region", "Region to export (us, aus, eu)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme to apply (defaults to the first by name)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "png", "Output format: png, svg or xlsx")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Destination directory")
	cmd.Flags().IntVar(&opts.width, "width", chart.DefaultWidth, "Image width in pixels")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions) error {
	if err := validateExportOptions(*opts); err != nil {
		return newCommandError("export", "validating options", err, "Pass --out DIR and --format png, svg or xlsx.")
	}

	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	th, err := app.resolveTheme(opts.theme)
	if err != nil {
		return newCommandError("export", fmt.Sprintf("selecting theme %q", opts.theme), err, "Run 'econviz themes' to list the available themes.")
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if strings.EqualFold(opts.format, formatXLSX) {
		coll, err := app.Gallery.Collection(opts.region)
		if err != nil {
			return newCommandError("export", fmt.Sprintf("generating region %s", opts.region), err, "Use --region us, aus or eu.")
		}
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return newCommandError("export", fmt.Sprintf("creating %q", opts.outDir), err, "Check that the destination is writable.")
		}
		path := filepath.Join(opts.outDir, fmt.Sprintf("%s_%s.xlsx", opts.region, th.Name))
		if err := app.Exporter.WorkbookFile(ctx, path, coll, th); err != nil {
			return newCommandError("export", fmt.Sprintf("writing workbook %q", path), err, "Check that the destination is writable.")
		}
		_, _ = fmt.Fprintf(out, "✓ Wrote %s\n", path)
		return nil
	}

	format, err := chart.ParseFormat(opts.format)
	if err != nil {
		return newCommandError("export", "validating options", err, "Pass --format png, svg or xlsx.")
	}

	panels, err := app.Gallery.Panels(opts.region, th.Name)
	if err != nil {
		return newCommandError("export", fmt.Sprintf("building %s charts", opts.region.Label()), err, "Check the theme definition and try again.")
	}

	paths, err := app.Exporter.Images(ctx, opts.outDir, opts.region, panels, format, opts.width)
	if err != nil {
		return newCommandError("export", fmt.Sprintf("writing images to %q", opts.outDir), err, "Check that the destination is writable.")
	}

	for _, p := range paths {
		_, _ = fmt.Fprintf(out, "✓ Wrote %s\n", p)
	}
	_, _ = fmt.Fprintf(out, "\n%d chart(s) exported for %s with theme %s\n", len(paths), opts.region.Label(), th.Name)
	return nil
}
