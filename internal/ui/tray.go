package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var errNoTray = errors.New("system tray not supported on this platform")

// TrayManager handles the system tray icon and menu
type TrayManager struct {
	app        fyne.App
	icon       fyne.Resource
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	onSettings func()
	onGenerate func()
	onQuit     func()
}

// NewTrayManager creates a new tray manager showing icon
func NewTrayManager(app fyne.App, icon fyne.Resource) *TrayManager {
	return &TrayManager{
		app:  app,
		icon: icon,
	}
}

// SetCallbacks sets the callback functions for tray actions
func (t *TrayManager) SetCallbacks(onSettings, onGenerate, onQuit func()) {
	t.onSettings = onSettings
	t.onGenerate = onGenerate
	t.onQuit = onQuit
}

// buildMenu creates the tray menu
func (t *TrayManager) buildMenu() *fyne.Menu {
	t.statusItem = fyne.NewMenuItem("Icons: not generated", nil)
	t.statusItem.Disabled = true

	settingsItem := fyne.NewMenuItem("Output Settings...", func() {
		if t.onSettings != nil {
			t.onSettings()
		}
	})
	generateItem := fyne.NewMenuItem("Generate Icons", func() {
		if t.onGenerate != nil {
			t.onGenerate()
		}
	})
	quitItem := fyne.NewMenuItem("Quit", func() {
		if t.onQuit != nil {
			t.onQuit()
		}
	})
	quitItem.IsQuit = true

	t.menu = fyne.NewMenu("Neon Pulse Icons",
		t.statusItem,
		fyne.NewMenuItemSeparator(),
		generateItem,
		settingsItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
	return t.menu
}

// Setup initializes the system tray
func (t *TrayManager) Setup() error {
	desk, ok := t.app.(desktop.App)
	if !ok {
		return errNoTray
	}
	desk.SetSystemTrayMenu(t.buildMenu())
	if t.icon != nil {
		desk.SetSystemTrayIcon(t.icon)
	}
	return nil
}

// SetStatus updates the status line of the tray menu
func (t *TrayManager) SetStatus(text string) {
	if t.statusItem == nil {
		return
	}
	t.statusItem.Label = text
	if t.menu != nil {
		t.menu.Refresh()
	}
}
