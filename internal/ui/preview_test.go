package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neonicons/internal/config"
	"neonicons/internal/palette"
	"neonicons/internal/render"
)

func TestPreviewTiles(t *testing.T) {
	tiles, err := PreviewTiles(render.New(palette.Neon))
	require.NoError(t, err)
	require.Len(t, tiles, 20)

	assert.Equal(t, "mipmap-mdpi", tiles[0].Label)
	assert.Equal(t, 48, tiles[0].Size)
	assert.Equal(t, "Icon-App-1024x1024@1x.png", tiles[19].Label)

	for _, tile := range tiles {
		assert.Equal(t, tile.Size, tile.Image.Bounds().Dx(), tile.Label)
	}
}

func TestDisplayEdgeIsCapped(t *testing.T) {
	assert.Equal(t, float32(48), IconTile{Size: 48}.displayEdge())
	assert.Equal(t, float32(maxTileEdge), IconTile{Size: 1024}.displayEdge())
}

func TestPreviewWindowSetup(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := NewPreviewWindow(a, render.New(palette.Neon))
	require.NoError(t, p.Setup())

	assert.Len(t, p.Tiles(), 20)
	assert.Equal(t, previewTitle, p.window.Title())
	assert.NotNil(t, p.window.Content())
}

func TestPreviewWindowWithSettings(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := NewPreviewWindow(a, render.New(palette.Neon))
	p.SetSettings(NewSettingsDialog(a, config.Default(), ""))
	require.NoError(t, p.Setup())
	assert.NotNil(t, p.window.Content())
}
