package glyph

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	xdraw "golang.org/x/image/draw"

	"quantum-sketch/internal/circuit"
)

// Library resolves label -> glyph image at a fixed edge length. Assets
// win over rendered fallbacks; results are cached per label. Driven only
// from the event loop, so the cache needs no locking.
type Library struct {
	assetDir string
	edge     int
	renderer *Renderer
	cache    map[string]image.Image
}

// NewLibrary creates a glyph library. assetDir may be empty to always
// use rendered glyphs; edge is the glyph edge length in pixels.
func NewLibrary(assetDir string, edge int, renderer *Renderer) *Library {
	return &Library{
		assetDir: assetDir,
		edge:     edge,
		renderer: renderer,
		cache:    make(map[string]image.Image),
	}
}

// Edge returns the glyph edge length in pixels.
func (l *Library) Edge() int { return l.edge }

// Glyph returns the image for a template, loading or rendering it on
// first use.
func (l *Library) Glyph(t circuit.Template) image.Image {
	if img, ok := l.cache[t.Label]; ok {
		return img
	}
	img := l.load(t)
	l.cache[t.Label] = img
	return img
}

func (l *Library) load(t circuit.Template) image.Image {
	if l.assetDir != "" {
		path := filepath.Join(l.assetDir, t.Label+".png")
		if img, err := loadPNG(path); err == nil {
			return l.fit(img)
		} else if !os.IsNotExist(err) {
			log.Warn("unreadable glyph asset, rendering instead", "path", path, "err", err)
		}
	}
	return l.renderer.Render(t, l.edge)
}

// fit scales a decoded asset to the glyph edge length when needed.
func (l *Library) fit(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() == l.edge && b.Dy() == l.edge {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, l.edge, l.edge))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
