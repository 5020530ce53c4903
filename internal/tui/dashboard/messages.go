package dashboard

import (
	"github.com/alexisbeaulieu97/econviz/internal/gallery"
	"github.com/alexisbeaulieu97/econviz/internal/series"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewThemePicker
	ViewHelp
)

// PanelsLoadedMsg carries the result of a render pass.
type PanelsLoadedMsg struct {
	Pass   int
	Region series.Region
	Theme  string
	Panels []gallery.Panel
}

// PanelsErrorMsg reports a render pass that produced no panels.
type PanelsErrorMsg struct {
	Pass  int
	Error error
}

// ErrorMsg indicates a general error occurred
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
