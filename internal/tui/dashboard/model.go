package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/econviz/internal/gallery"
	"github.com/alexisbeaulieu97/econviz/internal/logger"
	"github.com/alexisbeaulieu97/econviz/internal/series"
)

const (
	minWidth  = 80
	minHeight = 24

	chartHeight = 8
	// caption, button and the card border
	cardChrome = 4
	cardHeight = chartHeight + cardChrome
)

// Options selects the initial tab and theme.
type Options struct {
	Theme  string
	Region series.Region
}

// Model is the gallery dashboard model
type Model struct {
	// Core data
	gallery *gallery.Gallery
	logger  *logger.Logger

	regions    []series.Region
	themeNames []string
	panels     []gallery.Panel

	// Selection
	region      series.Region
	themeName   string
	cursor      int
	themeCursor int

	// UI state
	viewMode ViewMode
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	styles   styles

	// Render pass state
	pass      int
	loading   bool
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int
}

// NewModel creates a dashboard over g. An empty Options.Theme selects the
// first theme by name and an invalid region selects the first tab.
func NewModel(g *gallery.Gallery, log *logger.Logger, opts Options) Model {
	names := g.ThemeNames()
	themeName := opts.Theme
	if themeName == "" && len(names) > 0 {
		themeName = names[0]
	}
	region := opts.Region
	if !region.Valid() {
		region = series.US
	}

	m := Model{
		gallery:    g,
		logger:     log.Component("dashboard"),
		regions:    series.Regions(),
		themeNames: names,
		region:     region,
		themeName:  themeName,
		viewMode:   ViewGrid,
		keys:       defaultKeyMap(),
		help:       help.New(),
		viewport:   viewport.New(minWidth, minHeight),
		width:      minWidth,
		height:     minHeight,
	}
	m.themeCursor = m.themeIndex(themeName)
	m.styles = m.themeStyles()
	m.pass = 1
	m.loading = true
	m.layout()
	return m
}

// Init starts the first render pass
func (m Model) Init() tea.Cmd {
	return loadPanelsCmd(m.gallery, m.pass, m.region, m.themeName)
}

// startPass discards the current panels and schedules a new render pass.
// Results of earlier passes are dropped when they arrive.
func (m *Model) startPass() tea.Cmd {
	m.pass++
	m.loading = true
	m.styles = m.themeStyles()
	return loadPanelsCmd(m.gallery, m.pass, m.region, m.themeName)
}

// SetRegion switches tabs. It returns nil when region is already active.
func (m *Model) SetRegion(region series.Region) tea.Cmd {
	if !region.Valid() || region == m.region {
		return nil
	}
	m.region = region
	m.cursor = 0
	m.viewport.GotoTop()
	m.logger.Debug("region selected", "region", region.String())
	return m.startPass()
}

// SetTheme switches the active theme and re-renders every panel.
func (m *Model) SetTheme(name string) tea.Cmd {
	if name == m.themeName {
		return nil
	}
	m.themeName = name
	m.themeCursor = m.themeIndex(name)
	m.logger.Debug("theme selected", "theme", name)
	return m.startPass()
}

func (m *Model) cycleRegion(step int) tea.Cmd {
	idx := 0
	for i, r := range m.regions {
		if r == m.region {
			idx = i
		}
	}
	n := len(m.regions)
	return m.SetRegion(m.regions[((idx+step)%n+n)%n])
}

func (m *Model) themeIndex(name string) int {
	for i, n := range m.themeNames {
		if n == name {
			return i
		}
	}
	return 0
}

// MoveCursor moves the panel cursor by dx columns and dy rows, clamped to
// the grid.
func (m *Model) MoveCursor(dx, dy int) {
	if len(m.panels) == 0 {
		return
	}
	next := m.cursor + dx + dy*gallery.Columns
	if dx != 0 {
		row := m.cursor / gallery.Columns
		lo := row * gallery.Columns
		hi := min(lo+gallery.Columns, len(m.panels)) - 1
		next = max(lo, min(hi, next))
	}
	if next < 0 || next >= len(m.panels) {
		return
	}
	m.cursor = next
	m.ensureVisible()
}

// ensureVisible scrolls the viewport so the cursor's row is on screen.
func (m *Model) ensureVisible() {
	top := (m.cursor / gallery.Columns) * cardHeight
	bottom := top + cardHeight
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// SelectedPanel returns the panel under the cursor
func (m Model) SelectedPanel() (gallery.Panel, bool) {
	if m.cursor < 0 || m.cursor >= len(m.panels) {
		return gallery.Panel{}, false
	}
	return m.panels[m.cursor], true
}

// Region returns the active tab
func (m Model) Region() series.Region {
	return m.region
}

// ThemeName returns the active theme
func (m Model) ThemeName() string {
	return m.themeName
}

// Panels returns the panels of the last completed render pass
func (m Model) Panels() []gallery.Panel {
	return m.panels
}

// Cursor returns the selected panel index
func (m Model) Cursor() int {
	return m.cursor
}

// ViewMode returns the current view mode
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// Loading reports whether a render pass is in flight
func (m Model) Loading() bool {
	return m.loading
}
