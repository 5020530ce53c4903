package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/econviz/internal/chart"
)

const formatXLSX = "xlsx"

func validateExportOptions(opts exportOptions) error {
	if strings.TrimSpace(opts.outDir) == "" {
		return fmt.Errorf("output directory is required")
	}
	if opts.width < 0 {
		return fmt.Errorf("width must not be negative, got %d", opts.width)
	}
	if strings.EqualFold(opts.format, formatXLSX) {
		return nil
	}
	if _, err := chart.ParseFormat(opts.format); err != nil {
		return fmt.Errorf("%w (or %s)", err, formatXLSX)
	}
	return nil
}
