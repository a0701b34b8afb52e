// Command glyphgen renders the stock palette glyphs to PNG files,
// seeding an asset directory for customization.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"quantum-sketch/internal/circuit"
	"quantum-sketch/internal/glyph"
)

func main() {
	out := flag.String("out", "assets", "Output directory for glyph PNGs")
	cell := flag.Float64("cell", 24, "Grid cell size in pixels")
	flag.Parse()

	if *cell <= 0 {
		fmt.Fprintln(os.Stderr, "cell size must be positive")
		os.Exit(1)
	}

	renderer, err := glyph.NewRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up renderer: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", *out, err)
		os.Exit(1)
	}

	edge := int(circuit.GlyphCells * *cell)
	for _, tmpl := range circuit.DefaultPalette() {
		path := filepath.Join(*out, tmpl.Label+".png")
		if err := writeGlyph(renderer, tmpl, edge, path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%dx%d)\n", path, edge, edge)
	}
}

func writeGlyph(r *glyph.Renderer, t circuit.Template, edge int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, r.Render(t, edge))
}
