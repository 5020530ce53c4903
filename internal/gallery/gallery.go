// Package gallery composes themes, cached mock series and chart figures into
// the panels shown by the dashboard and written by the exporter.
package gallery

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/econviz/internal/chart"
	"github.com/alexisbeaulieu97/econviz/internal/logger"
	"github.com/alexisbeaulieu97/econviz/internal/series"
	"github.com/alexisbeaulieu97/econviz/internal/theme"
	vizerrors "github.com/alexisbeaulieu97/econviz/pkg/errors"
)

// Columns is the number of panels per grid row.
const Columns = 3

// ErrUnknownTheme is returned when a theme name is not in the loaded set.
var ErrUnknownTheme = errors.New("unknown theme")

// Panel is one grid cell: a captioned chart and its inert Purchase action.
type Panel struct {
	Index     int
	Title     string
	Figure    *chart.Figure
	ActionKey string
}

// Option customises a Gallery.
type Option func(*Gallery)

// WithKind changes the chart kind used for every panel.
func WithKind(kind chart.Kind) Option {
	return func(g *Gallery) {
		g.kind = kind
	}
}

// Gallery owns the loaded themes and the per-region series cache.
type Gallery struct {
	themes *theme.Set
	cache  *series.Cache
	kind   chart.Kind
	logger *logger.Logger
}

// New builds a Gallery. log may be nil.
func New(themes *theme.Set, cache *series.Cache, log *logger.Logger, opts ...Option) *Gallery {
	g := &Gallery{
		themes: themes,
		cache:  cache,
		kind:   chart.KindLine,
		logger: log.Component("gallery"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ThemeNames lists the selectable themes in order.
func (g *Gallery) ThemeNames() []string {
	return g.themes.Names()
}

// Theme resolves a theme by name.
func (g *Gallery) Theme(name string) (theme.Theme, error) {
	th, ok := g.themes.Get(name)
	if !ok {
		return theme.Theme{}, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}
	return th, nil
}

// Collection returns the cached series for region.
func (g *Gallery) Collection(region series.Region) (series.Collection, error) {
	return g.cache.Get(region)
}

// ResetCache forces the next render pass to regenerate every region.
func (g *Gallery) ResetCache() {
	g.cache.Reset()
	g.logger.Debug("series cache cleared")
}

// Panels builds one panel per series of region, styled with the named theme,
// in collection order.
func (g *Gallery) Panels(region series.Region, themeName string) ([]Panel, error) {
	th, err := g.Theme(themeName)
	if err != nil {
		return nil, err
	}

	coll, err := g.cache.Get(region)
	if err != nil {
		return nil, err
	}

	panels := make([]Panel, 0, coll.Len())
	for i, entry := range coll.Entries {
		fig, err := chart.Build(entry.Name, entry.Table, g.kind, th)
		if err != nil {
			g.logger.Error(err, "chart build failed", "region", region.String(), "series", entry.Name)
			return nil, vizerrors.NewRenderError(entry.Name, err)
		}
		panels = append(panels, Panel{
			Index:     i,
			Title:     entry.Name,
			Figure:    fig,
			ActionKey: ActionKey(region, i),
		})
	}

	g.logger.Debug("panels built", "region", region.String(), "theme", themeName, "count", len(panels))
	return panels, nil
}

// ActionKey is the stable identifier of a panel's Purchase button.
func ActionKey(region series.Region, index int) string {
	return fmt.Sprintf("%s_btn_%d", region, index)
}

// Rows splits panels into rows of at most columns cells.
func Rows(panels []Panel, columns int) [][]Panel {
	if columns <= 0 {
		columns = Columns
	}
	var rows [][]Panel
	for start := 0; start < len(panels); start += columns {
		end := min(start+columns, len(panels))
		rows = append(rows, panels[start:end])
	}
	return rows
}

// TabLabel is the heading shown for a region tab, e.g. "US Data".
func TabLabel(region series.Region) string {
	return region.Label() + " Data"
}
