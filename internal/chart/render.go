package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format selects the image encoding produced by Render.
type Format int

const (
	FormatPNG Format = iota + 1
	FormatSVG
)

// DefaultWidth is the image width used when callers pass zero.
const DefaultWidth = 640

// ParseFormat maps "png" or "svg" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return 0, fmt.Errorf("unsupported image format %q", s)
	}
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	default:
		return ""
	}
}

// Render draws fig as an image of the given width; the height follows the
// figure. Multi-trace figures get a legend.
func Render(w io.Writer, fig *Figure, format Format, width int) error {
	if fig == nil {
		return errors.New("render: nil figure")
	}

	var provider gochart.RendererProvider
	switch format {
	case FormatPNG:
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("render: unsupported format %d", format)
	}

	graph := toGoChart(fig, width)
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("render %q: %w", fig.Title, err)
	}
	return nil
}

func toGoChart(fig *Figure, width int) gochart.Chart {
	if width <= 0 {
		width = DefaultWidth
	}
	text := mustColor(fig.FontColor, drawing.ColorBlack)

	graph := gochart.Chart{
		Width:  width,
		Height: fig.Height,
		Background: gochart.Style{
			FillColor: mustColor(fig.PaperBackground, drawing.ColorWhite),
			Padding: gochart.Box{
				Top:    fig.Margin.Top,
				Left:   fig.Margin.Left,
				Right:  fig.Margin.Right,
				Bottom: fig.Margin.Bottom,
			},
		},
		Canvas: gochart.Style{
			FillColor: mustColor(fig.PlotBackground, drawing.ColorWhite),
		},
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeValueFormatterWithFormat(timeTickLayout),
			Style:          axisStyle(fig.XAxis, text),
			GridMajorStyle: gridStyle(fig.XAxis),
			GridMinorStyle: gridStyle(fig.XAxis),
		},
		YAxis: gochart.YAxis{
			ValueFormatter: compactValue,
			Style:          axisStyle(fig.YAxis, text),
			GridMajorStyle: gridStyle(fig.YAxis),
			GridMinorStyle: gridStyle(fig.YAxis),
		},
	}

	for _, tr := range fig.Traces {
		graph.Series = append(graph.Series, gochart.TimeSeries{
			Name:    tr.Name,
			XValues: tr.Dates,
			YValues: tr.Values,
			Style: gochart.Style{
				StrokeColor: mustColor(tr.Color, drawing.ColorBlue),
				StrokeWidth: tr.Width,
			},
		})
	}

	if len(fig.Traces) > 1 {
		graph.Elements = []gochart.Renderable{gochart.Legend(&graph, gochart.Style{FontColor: text})}
	}
	return graph
}

func axisStyle(a Axis, text drawing.Color) gochart.Style {
	style := gochart.Style{
		FontColor:   mustColor(a.TickColor, text),
		StrokeColor: mustColor(a.LineColor, drawing.ColorBlack),
		StrokeWidth: float64(a.LineWidth),
	}
	if !a.ShowLine {
		style.StrokeWidth = 0
	}
	return style
}

func gridStyle(a Axis) gochart.Style {
	return gochart.Style{
		Hidden:      !a.ShowGrid,
		StrokeColor: mustColor(a.GridColor, drawing.ColorBlack),
		StrokeWidth: float64(a.GridWidth),
	}
}

// compactValue formats y ticks: thousands as "150k", small values with one decimal.
func compactValue(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprint(v)
	}
	abs := math.Abs(f)
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", f/1e6)
	case abs >= 1e4:
		return fmt.Sprintf("%.0fk", f/1e3)
	case abs >= 100:
		return fmt.Sprintf("%.0f", f)
	default:
		return fmt.Sprintf("%.1f", f)
	}
}
