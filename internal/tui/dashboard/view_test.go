package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/econviz/internal/chart"
	"github.com/alexisbeaulieu97/econviz/internal/gallery"
)

func TestGridViewContent(t *testing.T) {
	m := loadedModel(t, Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "Economic Data Visualization Gallery")
	for _, label := range []string{"US Data", "AUS Data", "EU Data"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "Employment Trends")
	assert.Contains(t, view, "Purchase")
	assert.Contains(t, view, "q: quit")
}

func TestGridViewWhileLoading(t *testing.T) {
	m := NewModel(newTestGallery(), nil, Options{})
	assert.Contains(t, m.View(), "Rendering charts...")
}

func TestUnsupportedKindShowsBanner(t *testing.T) {
	m := NewModel(newTestGallery(gallery.WithKind(chart.Kind(0))), nil, Options{})
	m = runCmd(t, m, m.Init())

	assert.True(t, m.showError)
	assert.Empty(t, m.Panels())
	view := m.View()
	assert.Contains(t, view, "Render failed")
	assert.Contains(t, view, "No charts to display.")
}

func TestCardHeightIsStable(t *testing.T) {
	m := loadedModel(t, Options{})
	card := m.renderCard(m.Panels()[0], 30, false)
	selected := m.renderCard(m.Panels()[0], 30, true)

	assert.Equal(t, cardHeight, lipgloss.Height(card))
	assert.Equal(t, cardHeight, lipgloss.Height(selected))
}
