package theme

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads the colour forms accepted in theme files: #rgb, #rrggbb,
// #rrggbbaa, rgb(r, g, b) and rgba(r, g, b, a) with a in [0, 1]. It is the
// single rule shared by load-time validation and every renderer.
func ParseColor(s string) (color.RGBA, error) {
	raw := strings.TrimSpace(s)
	lower := strings.ToLower(raw)

	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		return parseFunctional(s, raw[5:len(raw)-1], 4)
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		return parseFunctional(s, raw[4:len(raw)-1], 3)
	case strings.HasPrefix(raw, "#") && len(raw) == 9:
		c, err := colorful.Hex(raw[:7])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
		alpha, err := strconv.ParseUint(raw[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
	case strings.HasPrefix(raw, "#") && (len(raw) == 4 || len(raw) == 7):
		c, err := colorful.Hex(raw)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	default:
		return color.RGBA{}, fmt.Errorf("parse colour %q: unsupported format", s)
	}
}

func parseFunctional(s, body string, want int) (color.RGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return color.RGBA{}, fmt.Errorf("parse colour %q: expected %d components, got %d", s, want, len(parts))
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse colour component %q: %w", parts[i], err)
		}
		rgb[i] = uint8(n)
	}

	alpha := uint8(255)
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.RGBA{}, fmt.Errorf("parse colour %q: alpha %q outside [0, 1]", s, strings.TrimSpace(parts[3]))
		}
		alpha = uint8(math.Round(a * 255))
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}, nil
}
