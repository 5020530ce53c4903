package export

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/alexisbeaulieu97/econviz/internal/chart"
	"github.com/alexisbeaulieu97/econviz/internal/series"
	"github.com/alexisbeaulieu97/econviz/internal/theme"
)

const (
	maxSheetName   = 31
	dateFormat     = "mmm yyyy"
	workbookWidth  = 640
	dateColumnWide = 12
)

// Workbook writes coll as an xlsx document: one sheet per series holding the
// date column and the numeric columns, plus a native line chart coloured from
// th's palette.
func (e *Exporter) Workbook(ctx context.Context, w io.Writer, coll series.Collection, th theme.Theme) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	numFmt := dateFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("create date style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Family: th.FontFamily}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, entry := range coll.Entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("workbook export cancelled: %w", err)
		}

		sheet := SheetName(entry.Name)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("add sheet %q: %w", sheet, err)
		}

		if err := writeTable(f, sheet, entry.Table, dateStyle, headerStyle); err != nil {
			return fmt.Errorf("write sheet %q: %w", sheet, err)
		}
		if err := addLineChart(f, sheet, entry, th); err != nil {
			return fmt.Errorf("chart for sheet %q: %w", sheet, err)
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	e.logger.Info("workbook exported", "region", coll.Region.String(), "sheets", coll.Len(), "theme", th.Name)
	return nil
}

// WorkbookFile is Workbook writing to path.
func (e *Exporter) WorkbookFile(ctx context.Context, path string, coll series.Collection, th theme.Theme) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return e.Workbook(ctx, out, coll, th)
}

func writeTable(f *excelize.File, sheet string, table series.Table, dateStyle, headerStyle int) error {
	header := make([]interface{}, 0, len(table.Columns)+1)
	header = append(header, "Date")
	for _, col := range table.Columns {
		header = append(header, col.Name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for r, date := range table.Dates {
		row := make([]interface{}, 0, len(header))
		row = append(row, date)
		for _, col := range table.Columns {
			row = append(row, col.Values[r])
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if len(table.Dates) > 0 {
		if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("A%d", len(table.Dates)+1), dateStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", dateColumnWide)
}

func addLineChart(f *excelize.File, sheet string, entry series.Entry, th theme.Theme) error {
	last := entry.Table.Len() + 1
	categories := fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last)

	chartSeries := make([]excelize.ChartSeries, len(entry.Table.Columns))
	for i := range entry.Table.Columns {
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return err
		}
		color, err := chart.HexColor(th.PaletteColor(i), th.PaperColor)
		if err != nil {
			return err
		}
		chartSeries[i] = excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, col),
			Categories: categories,
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, col, col, last),
			Fill:       excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			Line:       excelize.ChartLine{Width: chart.LineWidth},
			Marker:     excelize.ChartMarker{Symbol: "none"},
		}
	}

	anchor, err := excelize.CoordinatesToCellName(len(entry.Table.Columns)+3, 2)
	if err != nil {
		return err
	}
	return f.AddChart(sheet, anchor, &excelize.Chart{
		Type:      excelize.Line,
		Series:    chartSeries,
		Title:     []excelize.RichTextRun{{Text: entry.Name}},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{Width: workbookWidth, Height: chart.Height},
	})
}

// SheetName trims a series name to the spreadsheet sheet-name limit.
func SheetName(name string) string {
	runes := []rune(name)
	if len(runes) > maxSheetName {
		runes = runes[:maxSheetName]
	}
	return string(runes)
}
