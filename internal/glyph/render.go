// Package glyph resolves component labels to the images drawn on the
// canvas and in the palette. Glyphs come from per-label PNG assets when
// present, otherwise they are rendered programmatically.
package glyph

import (
	"fmt"
	"image"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"quantum-sketch/internal/circuit"
	"quantum-sketch/pkg/colorutil"
)

// Renderer draws fallback glyphs: a rounded square tinted by kind with
// the shortened label centered on it.
type Renderer struct {
	ttf *truetype.Font
}

// NewRenderer parses the bundled label font.
func NewRenderer() (*Renderer, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse glyph font: %w", err)
	}
	return &Renderer{ttf: ttf}, nil
}

// Render draws a glyph for the template at the given pixel edge length.
func (r *Renderer) Render(t circuit.Template, edge int) image.Image {
	dc := gg.NewContext(edge, edge)

	fill := colorutil.QubitFill
	if t.Kind == circuit.KindGate {
		fill = colorutil.GateFill
	}

	e := float64(edge)
	margin := e * 0.06
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(margin, margin, e-2*margin, e-2*margin, e*0.18)
	dc.Fill()

	face := truetype.NewFace(r.ttf, &truetype.Options{
		Size:    e * 0.36,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(colorutil.White)
	dc.DrawStringAnchored(ShortLabel(t.Label), e/2, e/2, 0.5, 0.5)

	return dc.Image()
}

// ShortLabel reduces a component label to the text drawn on its glyph:
// "Pauli-X" becomes "X", "qubit-0" becomes "q0", anything else keeps
// its text up to the first separator.
func ShortLabel(label string) string {
	if suffix, ok := strings.CutPrefix(label, "Pauli-"); ok {
		return suffix
	}
	if suffix, ok := strings.CutPrefix(label, "qubit-"); ok {
		return "q" + suffix
	}
	head, _, _ := strings.Cut(label, "-")
	return head
}
