// Package chart turns series tables into themed chart figures and renders
// them as images or terminal plots.
package chart

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/alexisbeaulieu97/econviz/internal/series"
	"github.com/alexisbeaulieu97/econviz/internal/theme"
)

// Fixed visual policy applied to every figure.
const (
	Height         = 300
	LineWidth      = 2.0
	GridWidth      = 1
	AxisLineWidth  = 1
	HoverFontSize  = 12
	TimeTickFormat = "%b %Y"

	timeTickLayout  = "Jan 2006"
	hoverDateLayout = "January 2006"
)

// DefaultMargin keeps panels tight.
var DefaultMargin = Margin{Top: 30, Left: 10, Right: 10, Bottom: 10}

var valuePrinter = message.NewPrinter(language.English)

// Margin is the padding around the plot area in pixels.
type Margin struct {
	Top, Left, Right, Bottom int
}

// Axis describes gridline, axis line and tick styling for one axis.
type Axis struct {
	ShowGrid   bool
	GridWidth  int
	GridColor  string
	ShowLine   bool
	LineWidth  int
	LineColor  string
	TickFormat string
	TickColor  string
}

// HoverLabel styles the tooltip box.
type HoverLabel struct {
	Background string
	FontSize   int
	FontFamily string
}

// Trace is one drawn column.
type Trace struct {
	Name   string
	Dates  []time.Time
	Values []float64
	Color  string
	Width  float64
}

// HoverText formats point i the way the tooltip shows it, e.g.
// "150,234.5<br>January 2020".
func (t Trace) HoverText(i int) string {
	if i < 0 || i >= len(t.Values) || i >= len(t.Dates) {
		return ""
	}
	return FormatValue(t.Values[i]) + "<br>" + t.Dates[i].Format(hoverDateLayout)
}

// Figure is a backend-independent description of one styled chart.
type Figure struct {
	Title           string
	Kind            Kind
	Template        string
	Height          int
	Margin          Margin
	FontFamily      string
	FontColor       string
	PlotBackground  string
	PaperBackground string
	XAxis           Axis
	YAxis           Axis
	Hover           HoverLabel
	Traces          []Trace
}

// YRange returns the smallest and largest value across all traces.
func (f *Figure) YRange() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, tr := range f.Traces {
		for _, v := range tr.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo, hi
}

// Build styles table as a chart of the given kind using th. Every numeric
// column becomes one trace, coloured from the palette in column order.
func Build(title string, table series.Table, kind Kind, th theme.Theme) (*Figure, error) {
	var fig *Figure
	switch kind {
	case KindLine:
		if len(table.Columns) == 0 {
			return nil, errors.New("table has no numeric columns")
		}
		fig = &Figure{Kind: KindLine, Traces: make([]Trace, len(table.Columns))}
		for i, col := range table.Columns {
			if len(col.Values) != len(table.Dates) {
				return nil, fmt.Errorf("column %q has %d values for %d dates", col.Name, len(col.Values), len(table.Dates))
			}
			fig.Traces[i] = Trace{
				Name:   col.Name,
				Dates:  table.Dates,
				Values: col.Values,
				Color:  th.PaletteColor(i),
				Width:  LineWidth,
			}
		}
	default:
		return nil, fmt.Errorf("%w %s", ErrUnsupportedKind, kind)
	}

	applyLayout(fig, title, th)
	return fig, nil
}

func applyLayout(fig *Figure, title string, th theme.Theme) {
	fig.Title = title
	fig.Template = th.Template
	fig.Height = Height
	fig.Margin = DefaultMargin
	fig.FontFamily = th.FontFamily
	fig.FontColor = th.Text()
	fig.PlotBackground = th.Background()
	fig.PaperBackground = th.PaperColor

	axis := Axis{
		ShowGrid:  true,
		GridWidth: GridWidth,
		GridColor: th.Grid(),
		ShowLine:  true,
		LineWidth: AxisLineWidth,
		LineColor: th.Line(),
		TickColor: th.Text(),
	}
	fig.YAxis = axis
	axis.TickFormat = TimeTickFormat
	fig.XAxis = axis

	fig.Hover = HoverLabel{
		Background: th.PaperColor,
		FontSize:   HoverFontSize,
		FontFamily: th.FontFamily,
	}
}

// FormatValue renders v with thousands separators and one decimal.
func FormatValue(v float64) string {
	return valuePrinter.Sprintf("%.1f", v)
}

// FormatMonth renders t as an axis tick, e.g. "Jan 2020".
func FormatMonth(t time.Time) string {
	return t.Format(timeTickLayout)
}
