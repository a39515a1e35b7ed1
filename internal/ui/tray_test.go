package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrayMenu(t *testing.T) {
	var generated, settings int
	tray := NewTrayManager(nil, nil)
	tray.SetCallbacks(func() { settings++ }, func() { generated++ }, nil)

	menu := tray.buildMenu()
	require.Len(t, menu.Items, 6)
	assert.True(t, menu.Items[0].Disabled)

	menu.Items[2].Action()
	menu.Items[3].Action()
	menu.Items[5].Action()
	assert.Equal(t, 1, generated)
	assert.Equal(t, 1, settings)
	assert.True(t, menu.Items[5].IsQuit)
}

func TestTraySetStatus(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	tray := NewTrayManager(a, nil)
	tray.SetStatus("ignored before setup")

	tray.buildMenu()
	tray.SetStatus("Icons: generated")
	assert.Equal(t, "Icons: generated", tray.menu.Items[0].Label)
}
