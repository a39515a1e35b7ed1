package render

import (
	"image"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// GlowRadius is the Gaussian sigma used for the halo
const GlowRadius = 3.0

// ApplyGlow composites a blurred copy of img beneath the sharp original.
// Both layers go over a transparent canvas with premultiplied alpha-over.
func ApplyGlow(img image.Image) *image.NRGBA {
	b := img.Bounds()
	glow := imaging.Blur(imaging.Clone(img), GlowRadius)

	result := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(result, result.Bounds(), glow, glow.Bounds().Min, xdraw.Over)
	xdraw.Draw(result, result.Bounds(), img, b.Min, xdraw.Over)

	return imaging.Clone(result)
}
