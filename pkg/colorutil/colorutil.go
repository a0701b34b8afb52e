// Package colorutil provides shared color utilities for the editor UI.
package colorutil

import (
	"fmt"
	"image/color"
	"strings"
)

// Common colors used throughout the application.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Fill colors for generated component glyphs.
	QubitFill = color.RGBA{R: 0x39, G: 0x49, B: 0xAB, A: 255}
	GateFill  = color.RGBA{R: 0x8E, G: 0x24, B: 0xAA, A: 255}

	// Selection highlights the currently selected component.
	Selection = color.RGBA{R: 0xFF, G: 0xD5, B: 0x00, A: 255}
)

// ParseHex parses a "#RRGGBB" or "RRGGBB" string into an opaque RGBA color.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("parse color %q: want 6 hex digits", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
