package app

import (
	"os"
	"path/filepath"
	"testing"

	"quantum-sketch/internal/circuit"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	want := DefaultConfig()
	if cfg.Window != want.Window || cfg.Grid != want.Grid {
		t.Errorf("got %+v, want defaults %+v", cfg, want)
	}
	if len(cfg.Templates()) != 5 {
		t.Errorf("default palette has %d entries, want 5", len(cfg.Templates()))
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[window]
title = "Lab Bench"
width = 1600
height = 900

[grid]
cell = 32.0
background = "#FFFFFF"
foreground = "#CCCCCC"

[[palette]]
kind = "qubit"
label = "qubit-0"

[[palette]]
kind = "gate"
label = "Hadamard"

[[palette]]
kind = "mystery"
label = "thing"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "Lab Bench" || cfg.Window.Width != 1600 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Grid.Cell != 32 {
		t.Errorf("cell = %v, want 32", cfg.Grid.Cell)
	}

	templates := cfg.Templates()
	if len(templates) != 3 {
		t.Fatalf("got %d templates, want 3", len(templates))
	}
	if templates[1] != (circuit.Template{Kind: circuit.KindGate, Label: "Hadamard"}) {
		t.Errorf("templates[1] = %+v", templates[1])
	}
	// Unknown kind names default to qubit.
	if templates[2].Kind != circuit.KindQubit {
		t.Errorf("unknown kind parsed as %v, want qubit", templates[2].Kind)
	}

	bg, fg := cfg.GridColors()
	if bg.R != 0xFF || fg.R != 0xCC {
		t.Errorf("colors = %v / %v", bg, fg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "[window\ntitle=")); err == nil {
		t.Error("malformed TOML should error")
	}
	if _, err := LoadConfig(writeConfig(t, "[grid]\ncell = -4.0")); err == nil {
		t.Error("non-positive cell should error")
	}
}

func TestGridColorsFallBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Background = "not-a-color"
	bg, fg := cfg.GridColors()
	if bg.R != 0xF5 || fg.R != 0xD7 {
		t.Errorf("fallback colors = %v / %v", bg, fg)
	}
}
