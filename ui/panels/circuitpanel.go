package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"quantum-sketch/internal/app"
)

// CircuitPanel lists the placed components and offers per-component
// actions. Its selection is kept in sync with the canvas both ways.
type CircuitPanel struct {
	state     *app.State
	container fyne.CanvasObject

	list        *widget.List
	detailLabel *widget.Label
	detachBtn   *widget.Button
	removeBtn   *widget.Button

	// Guards against selection event loops between list and state.
	syncing bool
}

// NewCircuitPanel creates the circuit panel.
func NewCircuitPanel(state *app.State) *CircuitPanel {
	cp := &CircuitPanel{state: state}

	cp.list = widget.NewList(
		func() int { return state.Scene.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			components := state.Scene.Components()
			if int(id) >= len(components) {
				return
			}
			obj.(*widget.Label).SetText(describeComponent(state.Scene, components[id]))
		},
	)
	cp.list.OnSelected = func(id widget.ListItemID) {
		if cp.syncing {
			return
		}
		components := state.Scene.Components()
		if int(id) < len(components) {
			state.Select(components[id].ID)
		}
	}
	cp.list.OnUnselected = func(widget.ListItemID) {
		if !cp.syncing {
			state.Select("")
		}
	}

	cp.detailLabel = widget.NewLabel("Nothing selected")
	cp.detailLabel.Wrapping = fyne.TextWrapWord
	cp.detachBtn = widget.NewButton("Detach", func() {
		if id := state.Selection(); id != "" {
			state.DetachComponent(id)
		}
	})
	cp.removeBtn = widget.NewButton("Remove", func() {
		if id := state.Selection(); id != "" {
			state.RemoveComponent(id)
		}
	})
	cp.detachBtn.Disable()
	cp.removeBtn.Disable()

	detail := widget.NewCard("Selection", "", container.NewVBox(
		cp.detailLabel,
		container.NewHBox(cp.detachBtn, cp.removeBtn),
	))

	cp.container = container.NewBorder(nil, detail, nil, nil, cp.list)
	cp.wireEvents()
	return cp
}

// Container returns the panel container.
func (cp *CircuitPanel) Container() fyne.CanvasObject {
	return cp.container
}

func (cp *CircuitPanel) wireEvents() {
	refresh := func(interface{}) {
		cp.list.Refresh()
		cp.updateDetail()
	}
	cp.state.On(app.EventComponentPlaced, refresh)
	cp.state.On(app.EventComponentMoved, refresh)
	cp.state.On(app.EventComponentRemoved, refresh)
	cp.state.On(app.EventConnectionsChanged, refresh)
	cp.state.On(app.EventSceneCleared, refresh)

	cp.state.On(app.EventSelectionChanged, func(data interface{}) {
		cp.syncSelection(data.(string))
		cp.updateDetail()
	})
}

// syncSelection mirrors a canvas-side selection into the list.
func (cp *CircuitPanel) syncSelection(id string) {
	cp.syncing = true
	defer func() { cp.syncing = false }()

	if id == "" {
		cp.list.UnselectAll()
		return
	}
	for i, c := range cp.state.Scene.Components() {
		if c.ID == id {
			cp.list.Select(widget.ListItemID(i))
			return
		}
	}
}

func (cp *CircuitPanel) updateDetail() {
	c := cp.state.Scene.Get(cp.state.Selection())
	if c == nil {
		cp.detailLabel.SetText("Nothing selected")
		cp.detachBtn.Disable()
		cp.removeBtn.Disable()
		return
	}

	cp.detailLabel.SetText(describeComponent(cp.state.Scene, c))
	cp.removeBtn.Enable()
	if c.Attached() {
		cp.detachBtn.Enable()
	} else {
		cp.detachBtn.Disable()
	}
}
