package panels

import (
	"fmt"

	"fyne.io/fyne/v2"

	"quantum-sketch/internal/circuit"
	"quantum-sketch/pkg/geometry"
)

func pointFromPos(pos fyne.Position) geometry.Point2D {
	return geometry.Point2D{X: float64(pos.X), Y: float64(pos.Y)}
}

// describeComponent renders a component for the circuit list:
// "Q1 qubit-0 (0,0)" with a binding annotation when attached.
func describeComponent(s *circuit.Scene, c *circuit.Component) string {
	text := fmt.Sprintf("%s  %s  (%.0f,%.0f)", c.ID, c.Label, c.Position.X, c.Position.Y)
	switch {
	case c.Kind == circuit.KindQubit && c.ConnectedNext != "":
		text += "  -> " + c.ConnectedNext
	case c.Kind == circuit.KindGate && c.ConnectedPrev != "":
		text += "  <- " + c.ConnectedPrev
	}
	return text
}
