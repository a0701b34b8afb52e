// Package app provides application state, configuration, and events.
package app

import (
	"sync"

	"github.com/charmbracelet/log"

	"quantum-sketch/internal/circuit"
	"quantum-sketch/pkg/geometry"
)

// EventType identifies different application events.
type EventType int

const (
	EventComponentPlaced EventType = iota
	EventComponentMoved
	EventComponentRemoved
	EventConnectionsChanged
	EventSelectionChanged
	EventSceneCleared
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the diagram scene, the current
// selection, and registered event listeners. The scene itself is driven
// only from the Fyne event loop; the mutex guards the listener table and
// the selection, which callbacks may read from other goroutines.
type State struct {
	mu sync.RWMutex

	Scene *circuit.Scene

	selection string
	listeners map[EventType][]EventListener
}

// NewState creates the application state around an empty scene.
func NewState(cell float64) *State {
	return &State{
		Scene:     circuit.NewScene(cell),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// PlaceComponent drops a palette template onto the scene at a raw
// position and returns the placed component.
func (s *State) PlaceComponent(t circuit.Template, raw geometry.Point2D) *circuit.Component {
	c := s.Scene.Place(t, raw)
	log.Debug("placed component", "id", c.ID, "kind", c.Kind, "label", c.Label, "pos", c.Position)
	s.Emit(EventComponentPlaced, c.ID)
	return c
}

// MoveComponent repositions a component mid-drag.
func (s *State) MoveComponent(id string, pos geometry.Point2D) {
	s.Scene.MoveTo(id, pos)
	s.Emit(EventComponentMoved, id)
}

// SettleComponent completes a drag: snap to the nearest cell, then
// connection resolution for gates.
func (s *State) SettleComponent(id string) {
	c := s.Scene.Settle(id)
	if c == nil {
		return
	}
	log.Debug("settled component", "id", c.ID, "pos", c.Position, "bound", c.ConnectedPrev)
	s.Emit(EventComponentMoved, id)
	s.Emit(EventConnectionsChanged, id)
}

// RemoveComponent deletes a component and everything referencing it.
func (s *State) RemoveComponent(id string) {
	if !s.Scene.Remove(id) {
		return
	}
	if s.Selection() == id {
		s.Select("")
	}
	log.Debug("removed component", "id", id)
	s.Emit(EventComponentRemoved, id)
	s.Emit(EventConnectionsChanged, id)
}

// DetachComponent clears the binding the component participates in.
func (s *State) DetachComponent(id string) {
	s.Scene.Detach(id)
	s.Emit(EventConnectionsChanged, id)
}

// ClearScene empties the scene.
func (s *State) ClearScene() {
	s.Scene.Clear()
	s.Select("")
	s.Emit(EventSceneCleared, nil)
}

// Select updates the current selection; the empty string clears it.
func (s *State) Select(id string) {
	s.mu.Lock()
	changed := s.selection != id
	s.selection = id
	s.mu.Unlock()
	if changed {
		s.Emit(EventSelectionChanged, id)
	}
}

// Selection returns the selected component ID, or "".
func (s *State) Selection() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}
