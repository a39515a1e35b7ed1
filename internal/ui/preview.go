package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"neonicons/internal/iconset"
	"neonicons/internal/render"
)

const (
	previewTitle  = "Neon Pulse Icons"
	previewWidth  = 900
	previewHeight = 640
)

// PreviewTiles renders every Android density and iOS slot in generation
// order. Nothing is written to disk.
func PreviewTiles(r *render.Renderer) ([]IconTile, error) {
	var tiles []IconTile
	for _, d := range iconset.AndroidDensities() {
		img, err := r.RenderIcon(d.Size)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", d.MipmapDir(), err)
		}
		tiles = append(tiles, IconTile{Label: d.MipmapDir(), Size: d.Size, Image: img})
	}
	for _, s := range iconset.IOSSlots() {
		img, err := r.RenderIcon(s.Size)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", s.Filename, err)
		}
		tiles = append(tiles, IconTile{Label: s.Filename, Size: s.Size, Image: img})
	}
	return tiles, nil
}

// PreviewWindow shows all generated icons side by side
type PreviewWindow struct {
	app      fyne.App
	window   fyne.Window
	renderer *render.Renderer
	settings *SettingsDialog
	tiles    []IconTile
}

// NewPreviewWindow creates a preview window using renderer r
func NewPreviewWindow(app fyne.App, r *render.Renderer) *PreviewWindow {
	return &PreviewWindow{
		app:      app,
		renderer: r,
	}
}

// SetSettings adds a toolbar action opening the output settings
func (p *PreviewWindow) SetSettings(s *SettingsDialog) {
	p.settings = s
}

// Setup renders the icons and builds the window content
func (p *PreviewWindow) Setup() error {
	tiles, err := PreviewTiles(p.renderer)
	if err != nil {
		return err
	}
	p.tiles = tiles

	p.window = p.app.NewWindow(previewTitle)
	var content fyne.CanvasObject = NewGallery(tiles)
	if p.settings != nil {
		toolbar := widget.NewToolbar(
			widget.NewToolbarAction(theme.DocumentSaveIcon(), p.settings.Show),
		)
		content = container.NewBorder(toolbar, nil, nil, nil, content)
	}
	p.window.SetContent(content)
	p.window.Resize(fyne.NewSize(previewWidth, previewHeight))
	p.window.SetMaster()
	return nil
}

// Tiles returns the tiles built by Setup
func (p *PreviewWindow) Tiles() []IconTile {
	return p.tiles
}

// ShowAndRun shows the window and blocks until it is closed
func (p *PreviewWindow) ShowAndRun() {
	p.window.ShowAndRun()
}
