package ui

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"neonicons/internal/palette"
)

var (
	colorBg      = palette.Neon.Background.NRGBA()
	colorTileBg  = palette.Neon.Gradient.NRGBA()
	colorLabel   = palette.Neon.PrimaryNeon.NRGBA()
	colorSubtext = color.NRGBA{156, 163, 175, 255} // pixel size text
)

// maxTileEdge bounds how large a tile draws its icon
const maxTileEdge = 256

// IconTile is one rendered icon with its slot label
type IconTile struct {
	Label string
	Size  int
	Image image.Image
}

// displayEdge is the on-screen edge length for the tile's icon
func (t IconTile) displayEdge() float32 {
	if t.Size > maxTileEdge {
		return maxTileEdge
	}
	return float32(t.Size)
}

// newTileObject shows the icon at native size (capped) above its labels
func newTileObject(t IconTile) fyne.CanvasObject {
	img := canvas.NewImageFromImage(t.Image)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	edge := t.displayEdge()
	img.SetMinSize(fyne.NewSize(edge, edge))

	label := canvas.NewText(t.Label, colorLabel)
	label.TextSize = 11
	label.Alignment = fyne.TextAlignCenter

	sizeText := canvas.NewText(fmt.Sprintf("%dx%d", t.Size, t.Size), colorSubtext)
	sizeText.TextSize = 10
	sizeText.Alignment = fyne.TextAlignCenter

	bg := canvas.NewRectangle(colorTileBg)
	bg.CornerRadius = 6

	body := container.NewVBox(
		container.NewCenter(img),
		label,
		sizeText,
	)
	return container.NewStack(bg, container.NewPadded(body))
}

// NewGallery lays tiles out in a wrapping grid inside a scroller
func NewGallery(tiles []IconTile) fyne.CanvasObject {
	cell := fyne.NewSize(0, 0)
	objects := make([]fyne.CanvasObject, 0, len(tiles))
	for _, t := range tiles {
		obj := newTileObject(t)
		ms := obj.MinSize()
		if ms.Width > cell.Width {
			cell.Width = ms.Width
		}
		if ms.Height > cell.Height {
			cell.Height = ms.Height
		}
		objects = append(objects, obj)
	}

	grid := container.New(layout.NewGridWrapLayout(cell), objects...)
	bg := canvas.NewRectangle(colorBg)
	return container.NewStack(bg, container.NewVScroll(grid))
}
