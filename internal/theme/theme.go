// Package theme loads the named chart styles that drive every render pass.
//
// A theme is a flat YAML document whose keys follow the chart layout
// vocabulary (plotly_template, color_palette, font_family, ...). Documents are
// decoded strictly and validated when loaded, so a Theme held by the rest of
// the application is always complete. Optional colours keep their literal
// value when present; the accessor methods fill in the documented defaults.
package theme

import (
	"sort"
)

// Defaults for the optional theme colours.
const (
	DefaultGridColor = "rgba(128, 128, 128, 0.1)"
	DefaultLineColor = "rgba(128, 128, 128, 0.3)"
	DefaultTextColor = "#1f2937"
)

// Theme is one named set of chart style attributes. Values are immutable once
// loaded.
type Theme struct {
	Name            string   `yaml:"-"`
	Template        string   `yaml:"plotly_template" validate:"required,template_id"`
	Palette         []string `yaml:"color_palette" validate:"required,min=1,dive,theme_color"`
	FontFamily      string   `yaml:"font_family" validate:"required"`
	BackgroundColor string   `yaml:"background_color" validate:"omitempty,theme_color"`
	PaperColor      string   `yaml:"paper_color" validate:"required,theme_color"`
	GridColor       string   `yaml:"grid_color" validate:"omitempty,theme_color"`
	LineColor       string   `yaml:"line_color" validate:"omitempty,theme_color"`
	TextColor       string   `yaml:"text_color" validate:"omitempty,theme_color"`
}

// Background returns the plot area colour, falling back to the paper colour.
func (t Theme) Background() string {
	if t.BackgroundColor != "" {
		return t.BackgroundColor
	}
	return t.PaperColor
}

// Grid returns the gridline colour.
func (t Theme) Grid() string {
	return orDefault(t.GridColor, DefaultGridColor)
}

// Line returns the axis line colour.
func (t Theme) Line() string {
	return orDefault(t.LineColor, DefaultLineColor)
}

// Text returns the tick and label colour.
func (t Theme) Text() string {
	return orDefault(t.TextColor, DefaultTextColor)
}

// PaletteColor returns the i-th palette colour, cycling when i exceeds the
// palette length.
func (t Theme) PaletteColor(i int) string {
	if len(t.Palette) == 0 || i < 0 {
		return ""
	}
	return t.Palette[i%len(t.Palette)]
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Set is the immutable collection of themes loaded at startup, keyed by name.
type Set struct {
	themes map[string]Theme
	names  []string
}

// NewSet builds a Set from already validated themes. Later duplicates replace
// earlier ones.
func NewSet(themes ...Theme) *Set {
	s := &Set{themes: make(map[string]Theme, len(themes))}
	for _, t := range themes {
		if _, exists := s.themes[t.Name]; !exists {
			s.names = append(s.names, t.Name)
		}
		s.themes[t.Name] = t
	}
	sort.Strings(s.names)
	return s
}

// Names returns theme names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

// Get looks a theme up by name.
func (s *Set) Get(name string) (Theme, bool) {
	if s == nil {
		return Theme{}, false
	}
	t, ok := s.themes[name]
	return t, ok
}

// Default returns the first theme in name order.
func (s *Set) Default() (Theme, bool) {
	if s == nil || len(s.names) == 0 {
		return Theme{}, false
	}
	return s.themes[s.names[0]], true
}

// Len reports how many themes are loaded.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}
