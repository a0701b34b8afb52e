// Package main provides the entry point for the Quantum Sketch editor.
package main

import (
	"os"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/charmbracelet/log"

	"quantum-sketch/internal/app"
	"quantum-sketch/internal/circuit"
	"quantum-sketch/internal/glyph"
	"quantum-sketch/internal/version"
	"quantum-sketch/ui/mainwindow"
	"quantum-sketch/ui/prefs"
)

func main() {
	setupLogging()
	log.Info("starting quantum-sketch", "version", version.Version)

	cfg, err := app.LoadConfig(app.ConfigPath())
	if err != nil {
		log.Fatal("config", "err", err)
	}

	renderer, err := glyph.NewRenderer()
	if err != nil {
		log.Fatal("glyph renderer", "err", err)
	}
	glyphs := glyph.NewLibrary(cfg.AssetDir, int(circuit.GlyphCells*cfg.Grid.Cell), renderer)

	state := app.NewState(cfg.Grid.Cell)
	userPrefs := prefs.Load()

	fyneApp := fyneapp.NewWithID("quantum-sketch")
	fyneApp.Settings().SetTheme(&app.SketchTheme{})

	win := mainwindow.New(fyneApp, state, glyphs, cfg, userPrefs)

	if os.Getenv("QUANTUM_SKETCH_NO_RELOAD") == "" {
		setupHotReload(win)
	}

	defer win.SavePreferences()
	win.ShowAndRun()
}

// setupLogging installs the default logger. QUANTUM_SKETCH_DEBUG enables
// debug-level output.
func setupLogging() {
	level := log.InfoLevel
	if os.Getenv("QUANTUM_SKETCH_DEBUG") != "" {
		level = log.DebugLevel
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	}))
}

// setupHotReload prompts for a restart when the binary is recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Warn("hot reload: unable to determine executable path")
		return
	}

	log.Debug("hot reload: watching binary",
		"path", reloader.ExecPath(),
		"modified", reloader.StartupTime().Format("15:04:05"))

	reloader.OnNewBinary(func() {
		log.Info("hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(confirmed bool) {
				if !confirmed {
					reloader.ResetBaseline()
					reloader.Start()
					return
				}
				win.SavePreferences()
				if err := reloader.Restart(); err != nil {
					log.Error("hot reload: restart failed", "err", err)
				}
			}, win.Window)
	})

	reloader.Start()
}
