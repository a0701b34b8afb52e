// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"quantum-sketch/internal/app"
	"quantum-sketch/internal/glyph"
	"quantum-sketch/internal/version"
	"quantum-sketch/ui/canvas"
	"quantum-sketch/ui/dialogs"
	"quantum-sketch/ui/panels"
	"quantum-sketch/ui/prefs"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.CircuitCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	showGridItem *fyne.MenuItem
}

// New creates the main window.
func New(fyneApp fyne.App, state *app.State, glyphs *glyph.Library, cfg app.Config, userPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(cfg.Window.Title)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  userPrefs,
	}

	mw.setupUI(glyphs, cfg)
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.restorePreferences()

	win.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	win.SetFixedSize(true)
	return mw
}

// setupUI creates the main layout.
func (mw *MainWindow) setupUI(glyphs *glyph.Library, cfg app.Config) {
	mw.canvas = canvas.New(mw.state, glyphs, cfg)
	mw.canvas.OnComponentMenu(func(id string) {
		if d := dialogs.NewComponentDialog(mw.state, id, mw.Window); d != nil {
			d.Show()
		}
	})
	mw.canvas.OnZoomChange(func(zoom float64) {
		mw.prefs.SetZoom(zoom)
		mw.updateStatus(fmt.Sprintf("Zoom %.0f%%", zoom*100))
	})

	mw.sidePanel = panels.NewSidePanel(mw.state, mw.canvas, glyphs, cfg)
	mw.sidePanel.OnTabChanged(func(index int) {
		mw.prefs.SetLastTab(index)
	})

	mw.statusBar = widget.NewLabel("Ready")

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		mw.canvas.Container(),
	)
	split.SetOffset(0.22)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil,
		nil,
		split,
	)
	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Circuit", mw.onNewCircuit),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Detach Selection", mw.onDetachSelection),
		fyne.NewMenuItem("Remove Selection", mw.onRemoveSelection),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Circuit", mw.onClearCircuit),
	)

	mw.showGridItem = fyne.NewMenuItem("Hide Grid", mw.onToggleGrid)
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.canvas.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.canvas.ZoomOut),
		fyne.NewMenuItem("Actual Size", func() { mw.canvas.SetZoom(1.0) }),
		fyne.NewMenuItemSeparator(),
		mw.showGridItem,
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

// setupShortcuts registers keyboard shortcuts.
func (mw *MainWindow) setupShortcuts() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			mw.onRemoveSelection()
		case fyne.KeyEscape:
			mw.canvas.Disarm()
			mw.state.Select("")
		}
	})

	mw.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyD,
		Modifier: fyne.KeyModifierControl,
	}, func(fyne.Shortcut) {
		mw.onDetachSelection()
	})
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	refresh := func(interface{}) {
		mw.canvas.Refresh()
	}
	mw.state.On(app.EventComponentPlaced, refresh)
	mw.state.On(app.EventComponentRemoved, refresh)
	mw.state.On(app.EventConnectionsChanged, refresh)
	mw.state.On(app.EventSelectionChanged, refresh)
	mw.state.On(app.EventSceneCleared, refresh)

	mw.state.On(app.EventComponentPlaced, func(data interface{}) {
		if c := mw.state.Scene.Get(data.(string)); c != nil {
			mw.updateStatus(fmt.Sprintf("Placed %s at (%.0f, %.0f)", c.ID, c.Position.X, c.Position.Y))
		}
	})
	mw.state.On(app.EventConnectionsChanged, func(interface{}) {
		mw.updateStatus(fmt.Sprintf("%d component(s), %d connection(s)",
			mw.state.Scene.Len(), len(mw.state.Scene.Lines())))
	})
}

// restorePreferences applies the persisted zoom, grid, and tab state.
func (mw *MainWindow) restorePreferences() {
	mw.canvas.SetZoom(mw.prefs.Zoom())
	mw.canvas.SetShowGrid(mw.prefs.ShowGrid())
	if !mw.prefs.ShowGrid() {
		mw.showGridItem.Label = "Show Grid"
	}
	mw.sidePanel.SelectTab(mw.prefs.LastTab())
}

// SavePreferences writes the user preferences to disk.
func (mw *MainWindow) SavePreferences() {
	mw.prefs.SetZoom(mw.canvas.Zoom())
	mw.prefs.SetShowGrid(mw.canvas.ShowGrid())
	mw.prefs.SetLastTab(mw.sidePanel.CurrentTab())
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus("Could not save preferences: " + err.Error())
	}
}

func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// Menu action handlers

func (mw *MainWindow) onNewCircuit() {
	mw.state.ClearScene()
	mw.updateStatus("New circuit")
}

func (mw *MainWindow) onClearCircuit() {
	if mw.state.Scene.Len() == 0 {
		return
	}
	dialog.ShowConfirm("Clear Circuit",
		fmt.Sprintf("Remove all %d components?", mw.state.Scene.Len()),
		func(confirmed bool) {
			if confirmed {
				mw.state.ClearScene()
				mw.updateStatus("Circuit cleared")
			}
		}, mw.Window)
}

func (mw *MainWindow) onDetachSelection() {
	if id := mw.state.Selection(); id != "" {
		mw.state.DetachComponent(id)
	}
}

func (mw *MainWindow) onRemoveSelection() {
	if id := mw.state.Selection(); id != "" {
		mw.state.RemoveComponent(id)
	}
}

func (mw *MainWindow) onToggleGrid() {
	show := !mw.canvas.ShowGrid()
	mw.canvas.SetShowGrid(show)
	mw.prefs.SetShowGrid(show)
	if show {
		mw.showGridItem.Label = "Hide Grid"
	} else {
		mw.showGridItem.Label = "Show Grid"
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Quantum Sketch",
		fmt.Sprintf("Quantum Sketch v%s\n\n"+
			"A grid-snapping quantum circuit diagram editor.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
