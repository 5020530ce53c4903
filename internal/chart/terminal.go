package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	pointGlyph     = '•'
	connectorGlyph = '·'
	legendGlyph    = "■"
)

type cell struct {
	glyph rune
	trace int
}

// RenderTerminal draws fig as a width×height block of text: a y axis labelled
// with the value range, the traces as coloured points, first and last month
// under the axis, and a legend line for multi-trace figures.
func RenderTerminal(fig *Figure, width, height int) string {
	if fig == nil || width <= 0 || height <= 0 {
		return ""
	}

	lo, hi := fig.YRange()
	top, bottom := compactValue(hi), compactValue(lo)
	labelWidth := max(lipgloss.Width(top), lipgloss.Width(bottom))

	legend := ""
	if len(fig.Traces) > 1 {
		legend = lipgloss.NewStyle().MaxWidth(width).Render(terminalLegend(fig))
	}

	plotHeight := height - 1
	if legend != "" {
		plotHeight--
	}
	plotWidth := width - labelWidth - 1
	if plotHeight < 2 || plotWidth < 2 {
		return lipgloss.NewStyle().Width(width).Render(fig.Title)
	}

	grid := make([][]cell, plotHeight)
	for row := range grid {
		grid[row] = make([]cell, plotWidth)
		for col := range grid[row] {
			grid[row][col] = cell{glyph: ' ', trace: -1}
		}
	}

	for ti, tr := range fig.Traces {
		plotTrace(grid, tr.Values, ti, lo, hi)
	}

	axisStyle := lipgloss.NewStyle().Foreground(terminalColor(fig.XAxis.LineColor, fig.PaperBackground))
	labelStyle := lipgloss.NewStyle().Foreground(terminalColor(fig.FontColor, fig.PaperBackground))
	traceStyles := make([]lipgloss.Style, len(fig.Traces))
	for i, tr := range fig.Traces {
		traceStyles[i] = lipgloss.NewStyle().Foreground(terminalColor(tr.Color, fig.PaperBackground))
	}

	var b strings.Builder
	for row, cells := range grid {
		label := ""
		switch row {
		case 0:
			label = top
		case plotHeight - 1:
			label = bottom
		}
		b.WriteString(labelStyle.Render(padLeft(label, labelWidth)))
		b.WriteString(axisStyle.Render("│"))
		for _, c := range cells {
			if c.trace < 0 {
				b.WriteRune(c.glyph)
				continue
			}
			b.WriteString(traceStyles[c.trace].Render(string(c.glyph)))
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", labelWidth+1))
	b.WriteString(labelStyle.Render(monthSpan(fig, plotWidth)))
	if legend != "" {
		b.WriteByte('\n')
		b.WriteString(legend)
	}
	return b.String()
}

// plotTrace samples values across the grid width and marks one point per
// column, joining consecutive points vertically.
func plotTrace(grid [][]cell, values []float64, trace int, lo, hi float64) {
	if len(values) == 0 {
		return
	}
	rows, cols := len(grid), len(grid[0])
	span := hi - lo

	rowFor := func(v float64) int {
		if span == 0 {
			return rows / 2
		}
		return int(math.Round((hi - v) / span * float64(rows-1)))
	}

	prev := -1
	for col := 0; col < cols; col++ {
		idx := 0
		if cols > 1 {
			idx = int(math.Round(float64(col) * float64(len(values)-1) / float64(cols-1)))
		}
		row := rowFor(values[idx])

		if prev >= 0 && row != prev {
			step := 1
			if row < prev {
				step = -1
			}
			for r := prev + step; r != row; r += step {
				if grid[r][col].trace < 0 {
					grid[r][col] = cell{glyph: connectorGlyph, trace: trace}
				}
			}
		}
		grid[row][col] = cell{glyph: pointGlyph, trace: trace}
		prev = row
	}
}

func terminalLegend(fig *Figure) string {
	parts := make([]string, len(fig.Traces))
	for i, tr := range fig.Traces {
		swatch := lipgloss.NewStyle().Foreground(terminalColor(tr.Color, fig.PaperBackground)).Render(legendGlyph)
		parts[i] = swatch + " " + tr.Name
	}
	return strings.Join(parts, "  ")
}

func monthSpan(fig *Figure, width int) string {
	if len(fig.Traces) == 0 || len(fig.Traces[0].Dates) == 0 {
		return ""
	}
	dates := fig.Traces[0].Dates
	first, last := FormatMonth(dates[0]), FormatMonth(dates[len(dates)-1])
	gap := width - len(first) - len(last)
	if gap < 1 {
		return first
	}
	return first + strings.Repeat(" ", gap) + last
}

func terminalColor(s, paper string) lipgloss.TerminalColor {
	hex, err := HexColor(s, paper)
	if err != nil {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
