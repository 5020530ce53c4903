package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/econviz/internal/series"
)

const sizeErrorPrefix = "Terminal too small"

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.layout()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("%s (%dx%d). Minimum size: %dx%d",
				sizeErrorPrefix, m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, sizeErrorPrefix) {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case PanelsLoadedMsg:
		if msg.Pass != m.pass {
			return m, nil
		}
		m.loading = false
		m.panels = msg.Panels
		if m.cursor >= len(m.panels) {
			m.cursor = 0
		}
		if m.showError && !strings.HasPrefix(m.errorMsg, sizeErrorPrefix) {
			m.showError = false
			m.errorMsg = ""
		}
		m.logger.Debug("render pass complete", "pass", msg.Pass, "region", msg.Region.String(), "theme", msg.Theme, "panels", len(msg.Panels))
		return m, nil

	case PanelsErrorMsg:
		if msg.Pass != m.pass {
			return m, nil
		}
		m.loading = false
		m.panels = nil
		m.cursor = 0
		m.showError = true
		m.errorMsg = fmt.Sprintf("Render failed: %v", msg.Error)
		m.logger.Error(msg.Error, "render pass failed", "pass", msg.Pass)
		return m, nil

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewThemePicker:
		return m.handlePickerKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleGridKeys(msg)
	}
}

// handleGridKeys handles keys in the panel grid
func (m Model) handleGridKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.showError = false
		m.errorMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.MoveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.MoveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.MoveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.MoveCursor(1, 0)

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height/2)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height/2)

	case key.Matches(msg, m.keys.NextTab):
		return m, m.cycleRegion(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m, m.cycleRegion(-1)
	case key.Matches(msg, m.keys.Tab1):
		return m, m.SetRegion(series.US)
	case key.Matches(msg, m.keys.Tab2):
		return m, m.SetRegion(series.AUS)
	case key.Matches(msg, m.keys.Tab3):
		return m, m.SetRegion(series.EU)

	case key.Matches(msg, m.keys.Theme):
		m.themeCursor = m.themeIndex(m.themeName)
		m.viewMode = ViewThemePicker

	case key.Matches(msg, m.keys.Purchase):
		// Purchase buttons are inert.
		if p, ok := m.SelectedPanel(); ok {
			m.logger.Debug("purchase pressed", "action", p.ActionKey, "panel", p.Title)
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
		m.viewMode = ViewHelp
	}

	return m, nil
}

// handlePickerKeys handles keys in the theme selector
func (m Model) handlePickerKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themeNames)-1 {
			m.themeCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.viewMode = ViewGrid
		if m.themeCursor < len(m.themeNames) {
			return m, m.SetTheme(m.themeNames[m.themeCursor])
		}
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Theme):
		m.viewMode = ViewGrid
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// handleHelpKeys handles keys in help view
func (m Model) handleHelpKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
		m.help.ShowAll = false
		m.viewMode = ViewGrid
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}
