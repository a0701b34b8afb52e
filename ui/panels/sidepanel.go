// Package panels provides UI panels for the application.
package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"quantum-sketch/internal/app"
	"quantum-sketch/internal/glyph"
	"quantum-sketch/ui/canvas"
)

// SidePanel provides the side panel with the palette and circuit tabs.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	palettePanel *PalettePanel
	circuitPanel *CircuitPanel
}

// NewSidePanel creates the side panel.
func NewSidePanel(state *app.State, cvs *canvas.CircuitCanvas, glyphs *glyph.Library, cfg app.Config) *SidePanel {
	sp := &SidePanel{
		state: state,
	}

	sp.palettePanel = NewPalettePanel(cvs, glyphs, cfg.Templates())
	sp.circuitPanel = NewCircuitPanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Palette", sp.palettePanel.Container()),
		container.NewTabItem("Circuit", sp.circuitPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// SelectTab switches to the tab at index, ignoring out-of-range values.
func (sp *SidePanel) SelectTab(index int) {
	if index >= 0 && index < len(sp.container.Items) {
		sp.container.SelectIndex(index)
	}
}

// CurrentTab returns the selected tab index.
func (sp *SidePanel) CurrentTab() int {
	return sp.container.SelectedIndex()
}

// OnTabChanged sets a callback for tab selection changes.
func (sp *SidePanel) OnTabChanged(callback func(index int)) {
	sp.container.OnSelected = func(*container.TabItem) {
		callback(sp.container.SelectedIndex())
	}
}
