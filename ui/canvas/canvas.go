// Package canvas provides the interactive circuit canvas with pan, zoom,
// and drag-based component placement.
package canvas

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/fogleman/gg"

	"quantum-sketch/internal/app"
	"quantum-sketch/internal/circuit"
	"quantum-sketch/internal/glyph"
	"quantum-sketch/pkg/colorutil"
	"quantum-sketch/pkg/geometry"
)

const (
	minZoom  = 0.25
	maxZoom  = 4.0
	zoomStep = 1.25
)

// CircuitCanvas renders the diagram scene and translates pointer input
// into the three core scene calls: place, move, and settle.
type CircuitCanvas struct {
	widget.BaseWidget

	state  *app.State
	glyphs *glyph.Library

	// Scene extent in scene pixels; the raster is this times zoom.
	sceneSize geometry.Size

	background color.RGBA
	foreground color.RGBA
	showGrid   bool

	raster *fynecanvas.Raster
	zoom   float64

	// A tapped palette entry arms the next canvas tap to place it.
	armed *circuit.Template

	// Drag state
	draggingID string
	grabOffset geometry.Point2D

	scroll  *zoomScroll
	content *pointerSurface

	onZoomChange   func(zoom float64)
	onComponentMenu func(id string)
}

// zoomScroll wraps a scroll container but intercepts the wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *CircuitCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *CircuitCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Offset returns the scroll container's current offset.
func (zs *zoomScroll) Offset() fyne.Position {
	return zs.scroll.Offset
}

func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// pointerSurface wraps the raster to handle mouse events.
type pointerSurface struct {
	widget.BaseWidget
	canvas *CircuitCanvas
	raster *fynecanvas.Raster
}

func newPointerSurface(cc *CircuitCanvas, raster *fynecanvas.Raster) *pointerSurface {
	ps := &pointerSurface{canvas: cc, raster: raster}
	ps.ExtendBaseWidget(ps)
	return ps
}

func (ps *pointerSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ps.raster)
}

func (ps *pointerSurface) MinSize() fyne.Size {
	return ps.raster.MinSize()
}

// scenePos converts a pointer event position to scene coordinates.
func (ps *pointerSurface) scenePos(pos fyne.Position) geometry.Point2D {
	return ps.canvas.CanvasToScene(geometry.Point2D{X: float64(pos.X), Y: float64(pos.Y)})
}

// Tapped places the armed template, or moves the selection.
func (ps *pointerSurface) Tapped(ev *fyne.PointEvent) {
	cc := ps.canvas
	p := ps.scenePos(ev.Position)

	if cc.armed != nil {
		t := *cc.armed
		cc.armed = nil
		cc.state.PlaceComponent(t, p)
		cc.Refresh()
		return
	}

	if c := cc.state.Scene.ComponentAt(p); c != nil {
		cc.state.Select(c.ID)
	} else {
		cc.state.Select("")
	}
	cc.Refresh()
}

// TappedSecondary opens the component context actions.
func (ps *pointerSurface) TappedSecondary(ev *fyne.PointEvent) {
	cc := ps.canvas
	c := cc.state.Scene.ComponentAt(ps.scenePos(ev.Position))
	if c == nil || cc.onComponentMenu == nil {
		return
	}
	cc.state.Select(c.ID)
	cc.onComponentMenu(c.ID)
}

// Dragged moves the component under the pointer with raw positions;
// snapping waits for DragEnd.
func (ps *pointerSurface) Dragged(ev *fyne.DragEvent) {
	cc := ps.canvas
	p := ps.scenePos(ev.Position)

	if cc.draggingID == "" {
		// Hit-test where the drag started, one event's delta back.
		start := ps.scenePos(fyne.Position{
			X: ev.Position.X - ev.Dragged.DX,
			Y: ev.Position.Y - ev.Dragged.DY,
		})
		c := cc.state.Scene.ComponentAt(start)
		if c == nil {
			return
		}
		cc.draggingID = c.ID
		cc.grabOffset = start.Sub(c.Position)
		cc.state.Select(c.ID)
	}

	cc.state.MoveComponent(cc.draggingID, p.Sub(cc.grabOffset))
	cc.Refresh()
}

// DragEnd settles the dragged component: nearest-snap, then connection
// resolution.
func (ps *pointerSurface) DragEnd() {
	cc := ps.canvas
	if cc.draggingID == "" {
		return
	}
	cc.state.SettleComponent(cc.draggingID)
	cc.draggingID = ""
	cc.Refresh()
}

func (ps *pointerSurface) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		ps.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		ps.canvas.ZoomOut()
	}
}

// New creates a circuit canvas over the given state and glyph library.
func New(state *app.State, glyphs *glyph.Library, cfg app.Config) *CircuitCanvas {
	background, foreground := cfg.GridColors()
	cc := &CircuitCanvas{
		state:      state,
		glyphs:     glyphs,
		sceneSize:  geometry.NewSize(float64(cfg.Window.Width), float64(cfg.Window.Height)),
		background: background,
		foreground: foreground,
		showGrid:   true,
		zoom:       1.0,
	}

	cc.raster = fynecanvas.NewRaster(cc.draw)
	cc.raster.ScaleMode = fynecanvas.ImageScalePixels

	cc.content = newPointerSurface(cc, cc.raster)
	cc.scroll = newZoomScroll(cc.content, cc)

	cc.ExtendBaseWidget(cc)
	cc.updateContentSize()
	return cc
}

// Container returns the canvas container for embedding in layouts.
func (cc *CircuitCanvas) Container() fyne.CanvasObject {
	return cc.scroll
}

// ArmTemplate arms the next canvas tap to place the template.
func (cc *CircuitCanvas) ArmTemplate(t circuit.Template) {
	cc.armed = &t
}

// Armed returns the armed template, or nil.
func (cc *CircuitCanvas) Armed() *circuit.Template {
	return cc.armed
}

// Disarm cancels a pending placement.
func (cc *CircuitCanvas) Disarm() {
	cc.armed = nil
}

// DropTemplate places a template at a canvas position. Palette drags
// ending over the canvas enter through here.
func (cc *CircuitCanvas) DropTemplate(t circuit.Template, canvasPos geometry.Point2D) {
	cc.state.PlaceComponent(t, cc.CanvasToScene(canvasPos))
	cc.Refresh()
}

// DropPayload decodes a wire-form drop payload ("<kind>,<label>") and
// places it. An unparseable kind tag falls back to a qubit.
func (cc *CircuitCanvas) DropPayload(payload string, canvasPos geometry.Point2D) {
	cc.DropTemplate(circuit.DecodeTemplate(payload), canvasPos)
}

// ScrollOffset returns the current scroll offset in canvas coordinates.
func (cc *CircuitCanvas) ScrollOffset() geometry.Point2D {
	off := cc.scroll.Offset()
	return geometry.Point2D{X: float64(off.X), Y: float64(off.Y)}
}

// SetShowGrid toggles the background grid texture.
func (cc *CircuitCanvas) SetShowGrid(show bool) {
	cc.showGrid = show
	cc.Refresh()
}

// ShowGrid reports whether the background grid is drawn.
func (cc *CircuitCanvas) ShowGrid() bool {
	return cc.showGrid
}

// SetZoom sets the zoom level, clamped to the allowed range.
func (cc *CircuitCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	cc.zoom = zoom
	cc.updateContentSize()

	if cc.onZoomChange != nil {
		cc.onZoomChange(zoom)
	}
}

// Zoom returns the current zoom level.
func (cc *CircuitCanvas) Zoom() float64 {
	return cc.zoom
}

// ZoomIn increases the zoom level by one step.
func (cc *CircuitCanvas) ZoomIn() {
	cc.SetZoom(cc.zoom * zoomStep)
}

// ZoomOut decreases the zoom level by one step.
func (cc *CircuitCanvas) ZoomOut() {
	cc.SetZoom(cc.zoom / zoomStep)
}

// OnZoomChange sets a callback for zoom changes.
func (cc *CircuitCanvas) OnZoomChange(callback func(zoom float64)) {
	cc.onZoomChange = callback
}

// OnComponentMenu sets the callback for a secondary tap on a component.
func (cc *CircuitCanvas) OnComponentMenu(callback func(id string)) {
	cc.onComponentMenu = callback
}

// CanvasToScene converts canvas (zoomed) to scene coordinates.
func (cc *CircuitCanvas) CanvasToScene(p geometry.Point2D) geometry.Point2D {
	return p.Scale(1 / cc.zoom)
}

// SceneToCanvas converts scene to canvas (zoomed) coordinates.
func (cc *CircuitCanvas) SceneToCanvas(p geometry.Point2D) geometry.Point2D {
	return p.Scale(cc.zoom)
}

// Refresh redraws the raster.
func (cc *CircuitCanvas) Refresh() {
	cc.raster.Refresh()
}

func (cc *CircuitCanvas) updateContentSize() {
	size := fyne.NewSize(
		float32(cc.sceneSize.Width*cc.zoom),
		float32(cc.sceneSize.Height*cc.zoom),
	)
	cc.raster.SetMinSize(size)
	cc.raster.Resize(size)
	if cc.content != nil {
		cc.content.Resize(size)
		cc.content.Refresh()
	}
	cc.raster.Refresh()
	if cc.scroll != nil {
		cc.scroll.Refresh()
	}
}

// draw rasterizes the scene: grid tiles, connection lines, component
// glyphs, and the selection ring, in that order.
func (cc *CircuitCanvas) draw(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(cc.background)
	dc.Clear()

	// Everything below draws in scene coordinates.
	dc.Scale(cc.zoom, cc.zoom)

	if cc.showGrid {
		cc.drawGrid(dc, float64(w)/cc.zoom, float64(h)/cc.zoom)
	}

	for _, l := range cc.state.Scene.Lines() {
		from, to, ok := cc.state.Scene.LineEndpoints(l)
		if !ok {
			continue
		}
		dc.SetColor(colorutil.Black)
		dc.SetLineWidth(2)
		dc.DrawLine(from.X, from.Y, to.X, to.Y)
		dc.Stroke()
	}

	for _, c := range cc.state.Scene.Components() {
		img := cc.glyphs.Glyph(circuit.Template{Kind: c.Kind, Label: c.Label})
		dc.DrawImage(img, int(c.Position.X), int(c.Position.Y))
	}

	if id := cc.state.Selection(); id != "" {
		if c := cc.state.Scene.Get(id); c != nil {
			b := c.Bounds()
			dc.SetColor(colorutil.Selection)
			dc.SetLineWidth(3)
			dc.DrawRectangle(b.X-2, b.Y-2, b.Width+4, b.Height+4)
			dc.Stroke()
		}
	}

	return dc.Image()
}

// drawGrid draws the tiled background: a line on the top and left edge
// of every cell.
func (cc *CircuitCanvas) drawGrid(dc *gg.Context, w, h float64) {
	cell := cc.state.Scene.Cell()
	dc.SetColor(cc.foreground)
	dc.SetLineWidth(1)
	for x := 0.0; x <= w; x += cell {
		dc.DrawLine(x, 0, x, h)
	}
	for y := 0.0; y <= h; y += cell {
		dc.DrawLine(0, y, w, y)
	}
	dc.Stroke()
}

// CreateRenderer implements fyne.Widget.
func (cc *CircuitCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cc.scroll)
}
