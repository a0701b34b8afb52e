// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"quantum-sketch/internal/app"
	"quantum-sketch/internal/circuit"
)

// ComponentDialog shows a placed component's properties with its
// context actions: detach its binding or remove it from the scene.
type ComponentDialog struct {
	state  *app.State
	comp   *circuit.Component
	window fyne.Window
}

// NewComponentDialog creates a dialog for the component with the given
// ID; it returns nil when the ID no longer resolves.
func NewComponentDialog(state *app.State, id string, window fyne.Window) *ComponentDialog {
	comp := state.Scene.Get(id)
	if comp == nil {
		return nil
	}
	return &ComponentDialog{state: state, comp: comp, window: window}
}

// Show displays the dialog.
func (d *ComponentDialog) Show() {
	binding := "none"
	switch {
	case d.comp.Kind == circuit.KindQubit && d.comp.ConnectedNext != "":
		binding = "gate " + d.comp.ConnectedNext
	case d.comp.Kind == circuit.KindGate && d.comp.ConnectedPrev != "":
		binding = "qubit " + d.comp.ConnectedPrev
	}

	form := widget.NewForm(
		widget.NewFormItem("ID", widget.NewLabel(d.comp.ID)),
		widget.NewFormItem("Kind", widget.NewLabel(d.comp.Kind.String())),
		widget.NewFormItem("Label", widget.NewLabel(d.comp.Label)),
		widget.NewFormItem("Position", widget.NewLabel(
			fmt.Sprintf("(%.0f, %.0f)", d.comp.Position.X, d.comp.Position.Y))),
		widget.NewFormItem("Binding", widget.NewLabel(binding)),
	)

	var dlg dialog.Dialog

	detachBtn := widget.NewButton("Detach", func() {
		d.state.DetachComponent(d.comp.ID)
		dlg.Hide()
	})
	if !d.comp.Attached() {
		detachBtn.Disable()
	}

	removeBtn := widget.NewButton("Remove", func() {
		dialog.ShowConfirm("Remove Component",
			fmt.Sprintf("Remove component %s?", d.comp.ID),
			func(confirmed bool) {
				if confirmed {
					d.state.RemoveComponent(d.comp.ID)
					dlg.Hide()
				}
			}, d.window)
	})
	removeBtn.Importance = widget.DangerImportance

	closeBtn := widget.NewButton("Close", func() {
		dlg.Hide()
	})

	buttons := container.NewHBox(removeBtn, detachBtn, closeBtn)
	content := container.NewBorder(nil, buttons, nil, nil, form)

	dlg = dialog.NewCustomWithoutButtons("Component "+d.comp.ID, content, d.window)
	dlg.Show()
}
