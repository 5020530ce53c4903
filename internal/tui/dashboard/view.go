package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/econviz/internal/chart"
	"github.com/alexisbeaulieu97/econviz/internal/gallery"
)

const (
	appTitle    = "Economic Data Visualization Gallery"
	buttonLabel = "Purchase"
)

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewThemePicker:
		return m.renderThemePicker()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderGridView()
	}
}

// layout sizes the viewport to the space left by the chrome and refreshes
// the grid it scrolls.
func (m *Model) layout() {
	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())
	if m.showError {
		chrome += lipgloss.Height(m.renderErrorBanner())
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(cardHeight, m.height-chrome)
	m.viewport.SetContent(m.renderGrid())
}

// renderGridView renders the tabbed panel grid
func (m Model) renderGridView() string {
	sections := []string{m.renderHeader()}
	if m.showError {
		sections = append(sections, m.renderErrorBanner())
	}
	sections = append(sections, m.viewport.View(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title, tab bar and region heading
func (m Model) renderHeader() string {
	title := titleStyle.Render(appTitle)
	theme := lipgloss.NewStyle().Foreground(mutedColor).Render("theme: " + m.themeName)

	tabs := make([]string, 0, len(m.regions))
	for _, r := range m.regions {
		label := gallery.TabLabel(r)
		if r == m.region {
			tabs = append(tabs, m.styles.activeTab.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	heading := regionHeadingStyle.Render(gallery.TabLabel(m.region))

	return headerStyle.Width(max(m.width-2, 0)).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, title, theme),
		tabBar,
		heading,
	))
}

// renderGrid lays out the panels of the active region three to a row
func (m Model) renderGrid() string {
	if len(m.panels) == 0 {
		if m.loading {
			return emptyStateStyle.Render("Rendering charts...")
		}
		return emptyStateStyle.Render("No charts to display.")
	}

	cardWidth := max(m.width/gallery.Columns, 16)
	rows := gallery.Rows(m.panels, gallery.Columns)
	rendered := make([]string, 0, len(rows))
	for _, row := range rows {
		cards := make([]string, 0, len(row))
		for _, p := range row {
			cards = append(cards, m.renderCard(p, cardWidth, p.Index == m.cursor))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// renderCard renders one panel: caption, chart and Purchase button
func (m Model) renderCard(p gallery.Panel, width int, selected bool) string {
	// border and horizontal padding
	inner := width - 4

	style, button := m.styles.card, m.styles.button
	if selected {
		style, button = m.styles.selectedCard, m.styles.selectedButton
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		captionStyle.MaxWidth(inner).Render(p.Title),
		chart.RenderTerminal(p.Figure, inner, chartHeight),
		button.Render(buttonLabel),
	)
	return style.
		Width(width - 2).
		Height(cardHeight - 2).
		Render(content)
}

// renderErrorBanner renders the error banner
func (m Model) renderErrorBanner() string {
	return errorBannerStyle.Width(max(m.width-4, 0)).Render("⚠ " + m.errorMsg + "  (x to dismiss)")
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter() string {
	hints := []string{
		"←↑↓→: navigate",
		"tab: region",
		"t: theme",
		"enter: purchase",
		"?: help",
	}
	if m.loading {
		hints = append([]string{"rendering..."}, hints...)
	}
	hints = append(hints, "q: quit")

	return footerStyle.Width(max(m.width-2, 0)).Render(strings.Join(hints, "  •  "))
}

// renderThemePicker renders the theme selector overlay
func (m Model) renderThemePicker() string {
	items := make([]string, 0, len(m.themeNames)+1)
	items = append(items, overlayTitleStyle.Render("Select Theme"))
	for i, name := range m.themeNames {
		label := name
		if name == m.themeName {
			label += " (active)"
		}
		if i == m.themeCursor {
			items = append(items, pickerSelectedStyle.Render(label))
			continue
		}
		items = append(items, pickerItemStyle.Render(label))
	}
	items = append(items, "", lipgloss.NewStyle().Foreground(mutedColor).Render("↑/↓: choose  •  enter: apply  •  esc: back"))

	box := overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderHelpView renders the key bindings overlay
func (m Model) renderHelpView() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		overlayTitleStyle.Render("Keyboard Shortcuts"),
		m.help.View(m.keys),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlayBoxStyle.Render(content))
}
