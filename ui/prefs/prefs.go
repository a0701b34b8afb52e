// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const prefsFile = "preferences.json"

// Preference keys.
const (
	keyZoom     = "zoom"
	keyShowGrid = "showGrid"
	keyLastTab  = "lastTab"
)

// Prefs stores small mutable user preferences as a key-value map,
// persisted to <UserConfigDir>/quantum-sketch/preferences.json.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// Load reads preferences from disk. A missing or unreadable file yields
// an empty Prefs; typed getters fall back to their defaults.
func Load() *Prefs {
	p := &Prefs{
		values: make(map[string]interface{}),
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	p.path = filepath.Join(configDir, "quantum-sketch", prefsFile)

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(data, &p.values)
	return p
}

// Save writes preferences to disk, creating the directory if needed.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// Zoom returns the stored canvas zoom, or 1.0.
func (p *Prefs) Zoom() float64 {
	return p.float(keyZoom, 1.0)
}

// SetZoom stores the canvas zoom.
func (p *Prefs) SetZoom(zoom float64) {
	p.set(keyZoom, zoom)
}

// ShowGrid reports whether the background grid is visible; defaults on.
func (p *Prefs) ShowGrid() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[keyShowGrid].(bool); ok {
		return v
	}
	return true
}

// SetShowGrid stores the grid visibility.
func (p *Prefs) SetShowGrid(show bool) {
	p.set(keyShowGrid, show)
}

// LastTab returns the last selected side-panel tab index.
func (p *Prefs) LastTab() int {
	return int(p.float(keyLastTab, 0))
}

// SetLastTab stores the selected side-panel tab index.
func (p *Prefs) SetLastTab(index int) {
	p.set(keyLastTab, float64(index))
}

func (p *Prefs) float(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	switch n := p.values[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return fallback
}

func (p *Prefs) set(key string, val interface{}) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}
