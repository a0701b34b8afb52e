package app

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"quantum-sketch/internal/circuit"
	"quantum-sketch/pkg/colorutil"
)

const configFile = "config.toml"

// Config is the startup configuration, read once from
// <UserConfigDir>/quantum-sketch/config.toml.
type Config struct {
	Window  WindowConfig   `toml:"window"`
	Grid    GridConfig     `toml:"grid"`
	Palette []PaletteEntry `toml:"palette"`

	// AssetDir optionally points at per-label glyph PNGs.
	AssetDir string `toml:"asset_dir"`
}

// WindowConfig controls the main window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// GridConfig controls the canvas grid. Cell is the snapping unit in
// pixels; the connection threshold and attach offset are derived from it.
type GridConfig struct {
	Cell       float64 `toml:"cell"`
	Background string  `toml:"background"`
	Foreground string  `toml:"foreground"`
}

// PaletteEntry overrides or extends the stock palette from the config
// file. Kind is "qubit" or "gate"; unknown names default to qubit.
type PaletteEntry struct {
	Kind  string `toml:"kind"`
	Label string `toml:"label"`
}

// DefaultConfig returns the built-in configuration: a 1280x720 window,
// 24 px grid cells, and the light grid colors.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Title: "Quantum Sketch", Width: 1280, Height: 720},
		Grid:   GridConfig{Cell: 24, Background: "#F5F5F5", Foreground: "#D7D7D7"},
	}
}

// ConfigPath returns the expected location of the config file.
func ConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "quantum-sketch", configFile)
}

// LoadConfig reads the config file at path. A missing file yields the
// defaults; a malformed file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Grid.Cell <= 0 {
		return cfg, fmt.Errorf("parse config %s: grid cell must be positive, got %v", path, cfg.Grid.Cell)
	}
	log.Info("loaded config", "path", path, "cell", cfg.Grid.Cell)
	return cfg, nil
}

// Templates returns the palette the config describes: the stock set when
// no [[palette]] tables are present, otherwise the configured entries.
func (c Config) Templates() []circuit.Template {
	if len(c.Palette) == 0 {
		return circuit.DefaultPalette()
	}
	templates := make([]circuit.Template, 0, len(c.Palette))
	for _, e := range c.Palette {
		templates = append(templates, circuit.Template{
			Kind:  circuit.ParseKindName(e.Kind),
			Label: e.Label,
		})
	}
	return templates
}

// GridColors resolves the configured grid colors, falling back to the
// defaults for unparseable values.
func (c Config) GridColors() (background, foreground color.RGBA) {
	defaults := DefaultConfig().Grid
	background = parseColorOr(c.Grid.Background, defaults.Background)
	foreground = parseColorOr(c.Grid.Foreground, defaults.Foreground)
	return background, foreground
}

func parseColorOr(s, fallback string) color.RGBA {
	col, err := colorutil.ParseHex(s)
	if err != nil {
		log.Warn("bad grid color, using default", "value", s, "default", fallback)
		col, _ = colorutil.ParseHex(fallback)
	}
	return col
}
