package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/econviz/internal/chart"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2)

	// Header style
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginBottom(1)

	// Tab styles
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(mutedColor).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor)

	regionHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				PaddingLeft(2).
				MarginBottom(1)

	captionStyle = lipgloss.NewStyle().
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#2e86ab"))

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor)

	// Error banner style
	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Background(lipgloss.Color("52")). // Dark red background
				Bold(true).
				Padding(0, 2).
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(errorColor)

	// Picker and help overlays
	overlayBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 4)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				MarginBottom(1)

	pickerItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor).
				PaddingLeft(1)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(2).
			PaddingLeft(2)
)

// styles holds the theme-dependent part of the look: the active tab, card
// borders and the Purchase button follow the selected theme's colours.
type styles struct {
	activeTab      lipgloss.Style
	card           lipgloss.Style
	selectedCard   lipgloss.Style
	button         lipgloss.Style
	selectedButton lipgloss.Style
}

func (m Model) themeStyles() styles {
	accent, line := accentColor, mutedColor
	if th, err := m.gallery.Theme(m.themeName); err == nil {
		if hex, err := chart.HexColor(th.PaletteColor(0), th.Background()); err == nil {
			accent = lipgloss.Color(hex)
		}
		if hex, err := chart.HexColor(th.Line(), th.Background()); err == nil {
			line = lipgloss.Color(hex)
		}
	}

	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(line).
		Padding(0, 1)

	return styles{
		activeTab: tabStyle.
			Foreground(accent).
			BorderForeground(accent).
			Bold(true),
		card:         card,
		selectedCard: card.BorderForeground(accent).BorderStyle(lipgloss.ThickBorder()),
		button:       buttonStyle,
		selectedButton: buttonStyle.
			Background(accent).
			Foreground(lipgloss.Color("230")).
			Bold(true),
	}
}
