package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/econviz/internal/gallery"
	"github.com/alexisbeaulieu97/econviz/internal/series"
)

// loadPanelsCmd runs a render pass off the update loop.
func loadPanelsCmd(g *gallery.Gallery, pass int, region series.Region, themeName string) tea.Cmd {
	return func() tea.Msg {
		panels, err := g.Panels(region, themeName)
		if err != nil {
			return PanelsErrorMsg{Pass: pass, Error: err}
		}
		return PanelsLoadedMsg{
			Pass:   pass,
			Region: region,
			Theme:  themeName,
			Panels: panels,
		}
	}
}
