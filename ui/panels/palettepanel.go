package panels

import (
	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"quantum-sketch/internal/circuit"
	"quantum-sketch/internal/glyph"
	"quantum-sketch/ui/canvas"
)

const paletteThumb = 40

// PalettePanel lists the component templates, grouped by kind. Tapping
// an entry arms the canvas to place it on the next tap; dragging an
// entry over the canvas places it at the drop point.
type PalettePanel struct {
	canvas    *canvas.CircuitCanvas
	glyphs    *glyph.Library
	container fyne.CanvasObject
}

// NewPalettePanel creates the palette panel.
func NewPalettePanel(cvs *canvas.CircuitCanvas, glyphs *glyph.Library, templates []circuit.Template) *PalettePanel {
	pp := &PalettePanel{
		canvas: cvs,
		glyphs: glyphs,
	}

	qubits, gates := circuit.SplitPalette(templates)
	pp.container = container.NewVScroll(container.NewVBox(
		widget.NewCard("Qubits", "", pp.group(qubits)),
		widget.NewCard("Quantum Gates", "", pp.group(gates)),
	))
	return pp
}

// Container returns the panel container.
func (pp *PalettePanel) Container() fyne.CanvasObject {
	return pp.container
}

func (pp *PalettePanel) group(templates []circuit.Template) fyne.CanvasObject {
	box := container.NewVBox()
	for _, t := range templates {
		box.Add(newPaletteItem(pp, t))
	}
	return box
}

// paletteItem is one tappable, draggable palette entry. The drag payload
// travels in the template's wire form and is decoded at the canvas
// boundary.
type paletteItem struct {
	widget.BaseWidget
	panel    *PalettePanel
	template circuit.Template
	payload  string

	lastAbs  fyne.Position
	dragging bool
}

func newPaletteItem(panel *PalettePanel, t circuit.Template) *paletteItem {
	pi := &paletteItem{
		panel:    panel,
		template: t,
		payload:  t.Encode(),
	}
	pi.ExtendBaseWidget(pi)
	return pi
}

func (pi *paletteItem) CreateRenderer() fyne.WidgetRenderer {
	thumb := fynecanvas.NewImageFromImage(pi.panel.glyphs.Glyph(pi.template))
	thumb.FillMode = fynecanvas.ImageFillContain
	thumb.SetMinSize(fyne.NewSize(paletteThumb, paletteThumb))

	row := container.NewHBox(thumb, widget.NewLabel(pi.template.Label))
	return widget.NewSimpleRenderer(row)
}

// Tapped arms the canvas: the next canvas tap places this template.
func (pi *paletteItem) Tapped(*fyne.PointEvent) {
	pi.panel.canvas.ArmTemplate(pi.template)
}

// Dragged tracks the pointer so DragEnd knows where the drop landed.
func (pi *paletteItem) Dragged(ev *fyne.DragEvent) {
	pi.dragging = true
	pi.lastAbs = ev.AbsolutePosition
}

// DragEnd drops the template onto the canvas if the pointer ended over
// it; a drop elsewhere is discarded.
func (pi *paletteItem) DragEnd() {
	if !pi.dragging {
		return
	}
	pi.dragging = false

	target := pi.panel.canvas.Container()
	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(target)
	size := target.Size()

	rel := pi.lastAbs.Subtract(origin)
	if rel.X < 0 || rel.Y < 0 || rel.X > size.Width || rel.Y > size.Height {
		return
	}

	offset := pi.panel.canvas.ScrollOffset()
	pi.panel.canvas.DropPayload(pi.payload, offset.Add(
		pointFromPos(rel),
	))
}
