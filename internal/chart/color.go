package chart

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/alexisbeaulieu97/econviz/internal/theme"
)

// ParseColor reads a theme colour into a go-chart colour. The accepted forms
// are those of theme.ParseColor.
func ParseColor(s string) (drawing.Color, error) {
	c, err := theme.ParseColor(s)
	if err != nil {
		return drawing.Color{}, err
	}
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// HexColor converts any accepted colour to opaque #rrggbb for back ends that
// have no alpha channel. Translucent colours are blended onto over, which must
// itself be opaque or empty (treated as white).
func HexColor(s, over string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	if c.A == 255 {
		return toColorful(c).Hex(), nil
	}

	base := colorful.Color{R: 1, G: 1, B: 1}
	if over != "" {
		bg, err := ParseColor(over)
		if err != nil {
			return "", err
		}
		base = toColorful(bg)
	}
	return base.BlendRgb(toColorful(c), float64(c.A)/255).Clamped().Hex(), nil
}

func toColorful(c drawing.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// mustColor parses s, falling back to fallback on error. Theme colours are
// validated at load time, so the fallback only covers hand-built figures.
func mustColor(s string, fallback drawing.Color) drawing.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
