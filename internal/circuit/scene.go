package circuit

import (
	"fmt"

	"quantum-sketch/pkg/geometry"
)

// Attachment geometry, in grid cells: a gate settling within
// ConnectThresholdCells (Manhattan) of a qubit binds to it and is
// re-seated AttachOffsetCells to its right on the same row.
const (
	ConnectThresholdCells = 8
	AttachOffsetCells     = 6

	// GlyphCells is the component glyph edge length.
	GlyphCells = 2
)

// Line records one visual connection between a qubit and a gate. Lines
// carry only IDs; endpoints are derived from the live components so they
// are always current.
type Line struct {
	QubitID string
	GateID  string
}

// Scene owns every placed component and connection line. It is not safe
// for concurrent use; the UI drives it from the event loop only.
type Scene struct {
	cell       float64
	components []*Component
	lines      []Line
	nextID     map[string]int
}

// NewScene creates an empty scene with the given grid cell size in pixels.
func NewScene(cell float64) *Scene {
	return &Scene{
		cell:   cell,
		nextID: make(map[string]int),
	}
}

// Cell returns the grid cell size in pixels.
func (s *Scene) Cell() float64 { return s.cell }

func (s *Scene) generateID(k Kind) string {
	prefix := k.idPrefix()
	s.nextID[prefix]++
	return fmt.Sprintf("%s%d", prefix, s.nextID[prefix])
}

// Place instantiates a template at the cell containing raw and appends
// it to the scene. Drop placement floor-snaps so the component lands in
// the cell under the cursor, not the closest corner.
func (s *Scene) Place(t Template, raw geometry.Point2D) *Component {
	edge := GlyphCells * s.cell
	c := &Component{
		ID:       s.generateID(t.Kind),
		Kind:     t.Kind,
		Label:    t.Label,
		Position: geometry.SnapFloor(raw, s.cell),
		Size:     geometry.NewSize(edge, edge),
	}
	s.components = append(s.components, c)
	return c
}

// Get returns the component with the given ID, or nil.
func (s *Scene) Get(id string) *Component {
	for _, c := range s.components {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Components returns the placed components in creation order. The slice
// is shared; callers must not modify it.
func (s *Scene) Components() []*Component { return s.components }

// Len returns the number of placed components.
func (s *Scene) Len() int { return len(s.components) }

// ComponentAt returns the topmost component whose glyph contains p, or
// nil. Later placements render above earlier ones, so the scan runs
// newest first.
func (s *Scene) ComponentAt(p geometry.Point2D) *Component {
	for i := len(s.components) - 1; i >= 0; i-- {
		if s.components[i].Bounds().Contains(p) {
			return s.components[i]
		}
	}
	return nil
}

// MoveTo repositions a component mid-drag. No snapping, no resolution;
// positions are only grid-aligned once the drag settles.
func (s *Scene) MoveTo(id string, pos geometry.Point2D) {
	if c := s.Get(id); c != nil {
		c.Position = pos
	}
}

// Settle completes a drag: the component's position snaps to the nearest
// cell, and a gate then re-evaluates which qubit it is bound to. Returns
// the settled component, or nil for an unknown ID.
func (s *Scene) Settle(id string) *Component {
	c := s.Get(id)
	if c == nil {
		return nil
	}
	c.Position = geometry.SnapNearest(c.Position, s.cell)
	if c.Kind == KindGate {
		s.resolve(c)
	}
	return c
}

// Remove deletes a component along with its lines and the peer side of
// any binding it was part of.
func (s *Scene) Remove(id string) bool {
	for i, c := range s.components {
		if c.ID != id {
			continue
		}
		s.Detach(id)
		s.removeLinesTouching(id)
		s.components = append(s.components[:i], s.components[i+1:]...)
		return true
	}
	return false
}

// Detach clears the binding the component participates in, if any, and
// removes its line. Safe to call on unbound components.
func (s *Scene) Detach(id string) {
	c := s.Get(id)
	if c == nil {
		return
	}
	if c.Kind == KindGate {
		if q := s.Get(c.ConnectedPrev); q != nil && q.ConnectedNext == c.ID {
			s.evict(q)
			return
		}
		c.ConnectedPrev = ""
		return
	}
	s.evict(c)
}

// Clear empties the scene. ID counters keep running so IDs issued before
// the clear are never reused.
func (s *Scene) Clear() {
	s.components = nil
	s.lines = nil
}

// resolve scans the qubits in creation order and binds the gate to the
// first one within the Manhattan-distance threshold; the scan stops
// there, so among several candidates the earliest-created qubit wins.
// Out of range of every qubit, an existing binding is left untouched;
// Detach is the explicit path for clearing one.
func (s *Scene) resolve(gate *Component) {
	threshold := ConnectThresholdCells * s.cell
	for _, q := range s.components {
		if q.ID == gate.ID || q.Kind != KindQubit {
			continue
		}
		if q.Position.ManhattanDistance(gate.Position) > threshold {
			continue
		}
		s.attach(q, gate)
		return
	}
}

// attach binds gate to qubit, evicting whatever gate the qubit held and
// releasing whichever qubit the gate arrived from, so the symmetry
// invariant holds on both ends afterwards.
func (s *Scene) attach(qubit, gate *Component) {
	if qubit.ConnectedNext != "" && qubit.ConnectedNext != gate.ID {
		s.evict(qubit)
	}
	if gate.ConnectedPrev != "" && gate.ConnectedPrev != qubit.ID {
		if old := s.Get(gate.ConnectedPrev); old != nil && old.ConnectedNext == gate.ID {
			s.evict(old)
		} else {
			gate.ConnectedPrev = ""
		}
	}

	// The connection overrides the snapped drag position: the gate sits a
	// fixed offset to the right of its qubit, on the same row.
	gate.Position = geometry.Point2D{
		X: qubit.Position.X + AttachOffsetCells*s.cell,
		Y: qubit.Position.Y,
	}

	qubit.ConnectedNext = gate.ID
	gate.ConnectedPrev = qubit.ID
	s.setLine(Line{QubitID: qubit.ID, GateID: gate.ID})
}

// evict removes the binding between a qubit and its current gate,
// deleting the line and unsetting the gate's back-reference.
func (s *Scene) evict(qubit *Component) {
	gateID := qubit.ConnectedNext
	if gateID == "" {
		return
	}
	if gate := s.Get(gateID); gate != nil {
		gate.ConnectedPrev = ""
	}
	s.removeLine(Line{QubitID: qubit.ID, GateID: gateID})
	qubit.ConnectedNext = ""
}

// Lines returns the active connection lines. The slice is shared;
// callers must not modify it.
func (s *Scene) Lines() []Line { return s.lines }

// LineEndpoints computes where l should be drawn right now: from the
// qubit's right edge at its vertical midpoint to the gate's left edge at
// its vertical midpoint. ok is false when either component is gone.
func (s *Scene) LineEndpoints(l Line) (from, to geometry.Point2D, ok bool) {
	q := s.Get(l.QubitID)
	g := s.Get(l.GateID)
	if q == nil || g == nil {
		return geometry.Point2D{}, geometry.Point2D{}, false
	}
	from = geometry.Point2D{X: q.Position.X + q.Size.Width, Y: q.Position.Y + q.Size.Height/2}
	to = geometry.Point2D{X: g.Position.X, Y: g.Position.Y + g.Size.Height/2}
	return from, to, true
}

// setLine replaces any existing line for the pair and appends a fresh
// one, keeping exactly one line per active binding.
func (s *Scene) setLine(l Line) {
	s.removeLine(l)
	s.lines = append(s.lines, l)
}

func (s *Scene) removeLine(l Line) {
	for i := range s.lines {
		if s.lines[i] == l {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

func (s *Scene) removeLinesTouching(id string) {
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.QubitID != id && l.GateID != id {
			kept = append(kept, l)
		}
	}
	s.lines = kept
}
