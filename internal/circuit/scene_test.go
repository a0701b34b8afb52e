package circuit

import (
	"testing"

	"quantum-sketch/pkg/geometry"
)

const cell = 24.0

func newTestScene() *Scene { return NewScene(cell) }

func placeQubit(s *Scene, x, y float64) *Component {
	return s.Place(Template{Kind: KindQubit, Label: "qubit-0"}, geometry.Point2D{X: x, Y: y})
}

func placeGate(s *Scene, x, y float64) *Component {
	return s.Place(Template{Kind: KindGate, Label: "Pauli-X"}, geometry.Point2D{X: x, Y: y})
}

// settleGateAt drags a gate to a raw position and releases it.
func settleGateAt(s *Scene, g *Component, x, y float64) {
	s.MoveTo(g.ID, geometry.Point2D{X: x, Y: y})
	s.Settle(g.ID)
}

func TestPlaceFloorSnaps(t *testing.T) {
	s := newTestScene()
	q := s.Place(Template{Kind: KindQubit, Label: "qubit-0"}, geometry.Point2D{X: 13, Y: 5})
	if q.Position != (geometry.Point2D{X: 0, Y: 0}) {
		t.Errorf("drop at (13,5) placed at %v, want (0,0)", q.Position)
	}
	if q.Size.Width != GlyphCells*cell || q.Size.Height != GlyphCells*cell {
		t.Errorf("glyph size = %v, want %v square", q.Size, GlyphCells*cell)
	}
}

func TestPlaceAssignsKindPrefixedIDs(t *testing.T) {
	s := newTestScene()
	q := placeQubit(s, 0, 0)
	g := placeGate(s, 240, 240)
	q2 := placeQubit(s, 0, 96)
	if q.ID != "Q1" || g.ID != "G1" || q2.ID != "Q2" {
		t.Errorf("IDs = %q %q %q, want Q1 G1 Q2", q.ID, g.ID, q2.ID)
	}
	if s.Get("Q1") != q || s.Get("nope") != nil {
		t.Error("Get lookup broken")
	}
}

func TestSettleWithinThresholdAttaches(t *testing.T) {
	s := newTestScene()
	q := placeQubit(s, 0, 0)
	g := placeGate(s, 480, 480)

	// Manhattan distance 100 from the qubit, about 4.2 cells.
	settleGateAt(s, g, 60, 40)

	if g.Position != (geometry.Point2D{X: 6 * cell, Y: 0}) {
		t.Errorf("attached gate at %v, want (144,0)", g.Position)
	}
	if q.ConnectedNext != g.ID || g.ConnectedPrev != q.ID {
		t.Errorf("links = %q/%q, want %q/%q", q.ConnectedNext, g.ConnectedPrev, g.ID, q.ID)
	}
	if len(s.Lines()) != 1 {
		t.Fatalf("got %d lines, want 1", len(s.Lines()))
	}
	from, to, ok := s.LineEndpoints(s.Lines()[0])
	if !ok {
		t.Fatal("line endpoints did not resolve")
	}
	wantFrom := geometry.Point2D{X: q.Size.Width, Y: q.Size.Height / 2}
	wantTo := geometry.Point2D{X: 144, Y: g.Size.Height / 2}
	if from != wantFrom || to != wantTo {
		t.Errorf("line %v -> %v, want %v -> %v", from, to, wantFrom, wantTo)
	}
}

func TestSettleBeyondThresholdLeavesGateAlone(t *testing.T) {
	s := newTestScene()
	placeQubit(s, 0, 0)
	g := placeGate(s, 0, 0)

	// 9 cells straight down: outside the 8-cell threshold.
	settleGateAt(s, g, 0, 9*cell)

	if g.ConnectedPrev != "" {
		t.Errorf("gate connected to %q, want unconnected", g.ConnectedPrev)
	}
	if g.Position != (geometry.Point2D{X: 0, Y: 9 * cell}) {
		t.Errorf("gate at %v, want the snapped drag position", g.Position)
	}
	if len(s.Lines()) != 0 {
		t.Errorf("got %d lines, want none", len(s.Lines()))
	}
}

func TestSettleOutOfRangeKeepsExistingBinding(t *testing.T) {
	s := newTestScene()
	q := placeQubit(s, 0, 0)
	g := placeGate(s, 480, 480)
	settleGateAt(s, g, 60, 40)

	// Drag the attached gate far away; the binding survives until an
	// eviction or an explicit Detach.
	settleGateAt(s, g, 500, 500)

	if q.ConnectedNext != g.ID || g.ConnectedPrev != q.ID {
		t.Error("out-of-range settle must not clear the binding")
	}
	if len(s.Lines()) != 1 {
		t.Errorf("got %d lines, want the existing one", len(s.Lines()))
	}
}

func TestSettleQubitNeverConnects(t *testing.T) {
	s := newTestScene()
	q1 := placeQubit(s, 0, 0)
	q2 := placeQubit(s, 0, 96)

	s.MoveTo(q2.ID, geometry.Point2D{X: 10, Y: 30})
	s.Settle(q2.ID)

	if q1.ConnectedNext != "" || q2.ConnectedNext != "" || q2.ConnectedPrev != "" {
		t.Error("qubits must never bind to qubits")
	}
	if q2.Position != (geometry.Point2D{X: 0, Y: 24}) {
		t.Errorf("qubit still snaps on settle: got %v", q2.Position)
	}
	if len(s.Lines()) != 0 {
		t.Error("no lines expected")
	}
}

func TestEvictionOnSecondGate(t *testing.T) {
	s := newTestScene()
	q := placeQubit(s, 0, 0)
	a := placeGate(s, 480, 0)
	b := placeGate(s, 480, 96)

	settleGateAt(s, a, 60, 40)
	settleGateAt(s, b, 40, 60)

	if q.ConnectedNext != b.ID || b.ConnectedPrev != q.ID {
		t.Errorf("qubit holds %q, want %q", q.ConnectedNext, b.ID)
	}
	if a.ConnectedPrev != "" {
		t.Errorf("evicted gate still points at %q", a.ConnectedPrev)
	}
	if len(s.Lines()) != 1 {
		t.Fatalf("got %d lines, want 1", len(s.Lines()))
	}
	if l := s.Lines()[0]; l.GateID != b.ID || l.QubitID != q.ID {
		t.Errorf("surviving line %+v, want %s-%s", l, q.ID, b.ID)
	}
}

func TestRepeatedResettleKeepsOneLine(t *testing.T) {
	s := newTestScene()
	q := placeQubit(s, 0, 0)
	g := placeGate(s, 480, 0)

	for i := 0; i < 3; i++ {
		settleGateAt(s, g, 60, 40)
	}

	if len(s.Lines()) != 1 {
		t.Fatalf("got %d lines after re-settles, want 1", len(s.Lines()))
	}
	if q.ConnectedNext != g.ID || g.ConnectedPrev != q.ID {
		t.Error("binding lost on re-settle")
	}
}

func TestTieBreakFirstCreatedQubitWins(t *testing.T) {
	s := newTestScene()
	q1 := placeQubit(s, 0, 0)
	q2 := placeQubit(s, 0, 48)
	g := placeGate(s, 480, 0)

	// Both qubits are within threshold; the scan stops at the
	// earliest-created one.
	settleGateAt(s, g, 24, 24)

	if g.ConnectedPrev != q1.ID {
		t.Errorf("gate bound to %q, want first-created %q", g.ConnectedPrev, q1.ID)
	}
	if q2.ConnectedNext != "" {
		t.Error("second qubit must stay free")
	}
}

func TestGateSwitchesQubitsReleasesOldOne(t *testing.T) {
	s := newTestScene()
	q1 := placeQubit(s, 0, 0)
	q2 := placeQubit(s, 0, 480)
	g := placeGate(s, 480, 0)

	settleGateAt(s, g, 60, 40)
	settleGateAt(s, g, 40, 460)

	if q1.ConnectedNext != "" {
		t.Errorf("old qubit still holds %q", q1.ConnectedNext)
	}
	if q2.ConnectedNext != g.ID || g.ConnectedPrev != q2.ID {
		t.Error("gate did not rebind to the nearer qubit")
	}
	if len(s.Lines()) != 1 {
		t.Fatalf("got %d lines, want 1", len(s.Lines()))
	}
	if g.Position != (geometry.Point2D{X: 6 * cell, Y: q2.Position.Y}) {
		t.Errorf("gate at %v, want offset from %v", g.Position, q2.Position)
	}
}

func TestLineEndpointsTrackMovedComponents(t *testing.T) {
	s := newTestScene()
	q := placeQubit(s, 0, 0)
	g := placeGate(s, 480, 0)
	settleGateAt(s, g, 60, 40)

	line := s.Lines()[0]
	_, to1, _ := s.LineEndpoints(line)

	// Drag the pair's qubit one row down and re-settle the gate onto it.
	s.MoveTo(q.ID, geometry.Point2D{X: 0, Y: 96})
	s.Settle(q.ID)
	settleGateAt(s, g, 60, 130)

	from2, to2, ok := s.LineEndpoints(s.Lines()[0])
	if !ok {
		t.Fatal("endpoints did not resolve")
	}
	if from2.Y == 0 || to2 == to1 {
		t.Errorf("endpoints not recomputed: from %v to %v", from2, to2)
	}
	if from2 != (geometry.Point2D{X: q.Size.Width, Y: 96 + q.Size.Height/2}) {
		t.Errorf("from = %v", from2)
	}
}

func TestDetachClearsBothEnds(t *testing.T) {
	s := newTestScene()
	q := placeQubit(s, 0, 0)
	g := placeGate(s, 480, 0)
	settleGateAt(s, g, 60, 40)

	s.Detach(g.ID)

	if q.ConnectedNext != "" || g.ConnectedPrev != "" {
		t.Error("Detach left a link behind")
	}
	if len(s.Lines()) != 0 {
		t.Error("Detach left the line behind")
	}

	// From the qubit end too, and safe on an unbound component.
	settleGateAt(s, g, 60, 40)
	s.Detach(q.ID)
	if q.ConnectedNext != "" || g.ConnectedPrev != "" || len(s.Lines()) != 0 {
		t.Error("Detach from the qubit end failed")
	}
	s.Detach(q.ID)
	s.Detach("missing")
}

func TestRemoveCleansLinesAndPeerLinks(t *testing.T) {
	s := newTestScene()
	q := placeQubit(s, 0, 0)
	g := placeGate(s, 480, 0)
	settleGateAt(s, g, 60, 40)

	if !s.Remove(q.ID) {
		t.Fatal("Remove reported failure")
	}
	if s.Get(q.ID) != nil || s.Len() != 1 {
		t.Error("qubit still present")
	}
	if g.ConnectedPrev != "" {
		t.Errorf("gate still points at removed qubit %q", g.ConnectedPrev)
	}
	if len(s.Lines()) != 0 {
		t.Error("line survived the removal")
	}
	if s.Remove(q.ID) {
		t.Error("second Remove should report false")
	}
}

func TestInvariantGateNeverBindsToGate(t *testing.T) {
	s := newTestScene()
	g1 := placeGate(s, 0, 0)
	g2 := placeGate(s, 480, 480)

	settleGateAt(s, g2, 24, 24)

	if g2.ConnectedPrev != "" || g1.ConnectedNext != "" {
		t.Error("gate bound to another gate")
	}

	// With a qubit in range too, the gate skips the nearer gate.
	q := placeQubit(s, 0, 48)
	settleGateAt(s, g2, 24, 24)
	if g2.ConnectedPrev != q.ID {
		t.Errorf("gate bound to %q, want the qubit %q", g2.ConnectedPrev, q.ID)
	}
}

func TestComponentAtPicksTopmost(t *testing.T) {
	s := newTestScene()
	bottom := placeQubit(s, 0, 0)
	top := placeGate(s, 24, 24)

	if got := s.ComponentAt(geometry.Point2D{X: 30, Y: 30}); got != top {
		t.Errorf("got %v, want later-placed component", got)
	}
	if got := s.ComponentAt(geometry.Point2D{X: 2, Y: 2}); got != bottom {
		t.Errorf("got %v, want the qubit", got)
	}
	if got := s.ComponentAt(geometry.Point2D{X: 500, Y: 500}); got != nil {
		t.Errorf("got %v on empty space, want nil", got)
	}
}

func TestClearKeepsIDCountersRunning(t *testing.T) {
	s := newTestScene()
	placeQubit(s, 0, 0)
	placeGate(s, 48, 48)
	s.Clear()

	if s.Len() != 0 || len(s.Lines()) != 0 {
		t.Fatal("Clear left contents behind")
	}
	if q := placeQubit(s, 0, 0); q.ID != "Q2" {
		t.Errorf("post-clear ID = %q, want Q2", q.ID)
	}
}
