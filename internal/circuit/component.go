// Package circuit provides the in-memory model of a circuit diagram:
// placed components, their grid geometry, and qubit-gate bindings.
package circuit

import (
	"fmt"
	"strconv"
	"strings"

	"quantum-sketch/pkg/geometry"
)

// Kind classifies a placed component.
type Kind int

const (
	// KindQubit is a quantum bit register line; it hosts at most one gate.
	KindQubit Kind = iota
	// KindGate is an operation; it attaches to at most one qubit.
	KindGate
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindQubit:
		return "qubit"
	case KindGate:
		return "gate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// idPrefix returns the component ID prefix for the kind.
func (k Kind) idPrefix() string {
	switch k {
	case KindGate:
		return "G"
	default:
		return "Q"
	}
}

// ParseKindName maps a configuration kind name to a Kind. Unknown names
// default to a qubit, matching the drop payload rule.
func ParseKindName(name string) Kind {
	if strings.EqualFold(name, "gate") {
		return KindGate
	}
	return KindQubit
}

// Component is a placed circuit element. Components reference each other
// only by scene-assigned IDs, never by pointer, so removing one cannot
// leave the other dangling.
type Component struct {
	ID       string
	Kind     Kind
	Label    string
	Position geometry.Point2D
	Size     geometry.Size

	// ConnectedPrev names the qubit a gate is bound to; empty for qubits
	// and for unattached gates.
	ConnectedPrev string
	// ConnectedNext names the gate attached to a qubit; empty for gates
	// and for qubits with nothing attached.
	ConnectedNext string
}

// Bounds returns the component's glyph rectangle in scene coordinates.
func (c *Component) Bounds() geometry.Rect {
	return geometry.Rect{X: c.Position.X, Y: c.Position.Y, Width: c.Size.Width, Height: c.Size.Height}
}

// Attached reports whether the component participates in a binding.
func (c *Component) Attached() bool {
	return c.ConnectedPrev != "" || c.ConnectedNext != ""
}

// Template identifies a component to create. Palette entries and canvas
// drop payloads share this shape.
type Template struct {
	Kind  Kind
	Label string
}

// Encode renders the template in its wire form, "<kind>,<label>".
func (t Template) Encode() string {
	return fmt.Sprintf("%d,%s", int(t.Kind), t.Label)
}

// DecodeTemplate parses a drop payload. Only the gate kind tag produces
// a gate; an unparseable or unknown tag falls back to a qubit, and a
// payload without a separator yields an empty label.
func DecodeTemplate(payload string) Template {
	head, label, _ := strings.Cut(payload, ",")
	t := Template{Kind: KindQubit, Label: label}
	if n, err := strconv.Atoi(head); err == nil && Kind(n) == KindGate {
		t.Kind = KindGate
	}
	return t
}
