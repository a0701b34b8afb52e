package app

import (
	"testing"

	"quantum-sketch/internal/circuit"
	"quantum-sketch/pkg/geometry"
)

func TestStateEmitsPlacementEvents(t *testing.T) {
	s := NewState(24)
	var placed, connections int
	s.On(EventComponentPlaced, func(data interface{}) { placed++ })
	s.On(EventConnectionsChanged, func(data interface{}) { connections++ })

	q := s.PlaceComponent(circuit.Template{Kind: circuit.KindQubit, Label: "qubit-0"}, geometry.Point2D{X: 13, Y: 5})
	g := s.PlaceComponent(circuit.Template{Kind: circuit.KindGate, Label: "Pauli-X"}, geometry.Point2D{X: 480, Y: 0})

	if placed != 2 {
		t.Errorf("placed events = %d, want 2", placed)
	}
	if q.Position != (geometry.Point2D{X: 0, Y: 0}) {
		t.Errorf("qubit at %v, want floor-snapped origin", q.Position)
	}

	s.MoveComponent(g.ID, geometry.Point2D{X: 60, Y: 40})
	s.SettleComponent(g.ID)
	if connections != 1 {
		t.Errorf("connection events = %d, want 1", connections)
	}
	if g.ConnectedPrev != q.ID {
		t.Errorf("gate bound to %q, want %q", g.ConnectedPrev, q.ID)
	}
}

func TestStateSelection(t *testing.T) {
	s := NewState(24)
	var events []string
	s.On(EventSelectionChanged, func(data interface{}) {
		events = append(events, data.(string))
	})

	s.Select("Q1")
	s.Select("Q1") // no change, no event
	s.Select("")

	if len(events) != 2 || events[0] != "Q1" || events[1] != "" {
		t.Errorf("selection events = %v, want [Q1 \"\"]", events)
	}
}

func TestRemoveClearsSelection(t *testing.T) {
	s := NewState(24)
	q := s.PlaceComponent(circuit.Template{Kind: circuit.KindQubit, Label: "qubit-0"}, geometry.Point2D{})
	s.Select(q.ID)

	s.RemoveComponent(q.ID)

	if s.Selection() != "" {
		t.Errorf("selection = %q after removing its component", s.Selection())
	}
	if s.Scene.Len() != 0 {
		t.Error("component not removed")
	}
}

func TestDetachAndClear(t *testing.T) {
	s := NewState(24)
	q := s.PlaceComponent(circuit.Template{Kind: circuit.KindQubit, Label: "qubit-0"}, geometry.Point2D{})
	g := s.PlaceComponent(circuit.Template{Kind: circuit.KindGate, Label: "Pauli-Z"}, geometry.Point2D{X: 480, Y: 480})
	s.MoveComponent(g.ID, geometry.Point2D{X: 60, Y: 40})
	s.SettleComponent(g.ID)

	s.DetachComponent(g.ID)
	if q.ConnectedNext != "" || len(s.Scene.Lines()) != 0 {
		t.Error("detach did not clear the binding")
	}

	var cleared bool
	s.On(EventSceneCleared, func(interface{}) { cleared = true })
	s.ClearScene()
	if !cleared || s.Scene.Len() != 0 {
		t.Error("clear did not empty the scene")
	}
}
