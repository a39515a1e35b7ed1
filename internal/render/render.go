// Package render draws the neon bird icon.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"

	"neonicons/internal/palette"
)

// Renderer draws icons with a fixed palette
type Renderer struct {
	palette palette.Palette
}

// New creates a renderer for the given palette
func New(p palette.Palette) *Renderer {
	return &Renderer{palette: p}
}

var neon = New(palette.Neon)

// RenderIcon draws a size×size icon with the neon palette
func RenderIcon(size int) (*image.NRGBA, error) {
	return neon.RenderIcon(size)
}

// Background returns the flat adaptive-icon background layer for the neon palette
func Background(size int) *image.NRGBA {
	return neon.Background(size)
}

// Background returns a size×size opaque fill of the background color
func (r *Renderer) Background(size int) *image.NRGBA {
	return imaging.New(size, size, r.palette.Background.NRGBA())
}

// RenderIcon draws the gradient, the bird and its particle trail, then
// applies the glow. Derived coordinates are not bounds checked; at small
// sizes shapes may overlap or shrink to a few pixels.
//
// gg anti-aliases shape edges, so edge pixels differ from an aliased
// rasterizer's output; shape interiors and gradient rows are unaffected.
func (r *Renderer) RenderIcon(size int) (*image.NRGBA, error) {
	dc := gg.NewContext(size, size)
	defer dc.Close()

	if err := r.drawGradient(dc, size); err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}

	center := float64(size / 2)
	birdSize := float64(size) * 0.6
	s := float64(size)

	// Body
	left := center - birdSize*0.3
	top := center - birdSize*0.2
	right := center + birdSize*0.2
	bottom := center + birdSize*0.2
	dc.SetColor(r.palette.PrimaryNeon.NRGBA())
	dc.DrawEllipse((left+right)/2, (top+bottom)/2, (right-left)/2, (bottom-top)/2)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}

	// Beak
	if err := fillPolygon(dc, r.palette.SecondaryNeon, []gg.Point{
		gg.Pt(right, center-birdSize*0.05),
		gg.Pt(right+birdSize*0.15, center),
		gg.Pt(right, center+birdSize*0.05),
	}); err != nil {
		return nil, fmt.Errorf("beak: %w", err)
	}

	// Tail
	if err := fillPolygon(dc, r.palette.AccentNeon, []gg.Point{
		gg.Pt(left, center-birdSize*0.1),
		gg.Pt(left-birdSize*0.2, center-birdSize*0.15),
		gg.Pt(left-birdSize*0.15, center+birdSize*0.05),
		gg.Pt(left, center+birdSize*0.1),
	}); err != nil {
		return nil, fmt.Errorf("tail: %w", err)
	}

	// Particle trail
	dc.SetColor(r.palette.PrimaryNeon.NRGBA())
	for i := 0; i < 5; i++ {
		x := left - birdSize*0.3 - float64(i)*s*0.05
		y := center + (float64(i%2)-0.5)*s*0.1
		radius := math.Max(2, s*0.02-float64(i))
		if x <= 0 {
			continue
		}
		dc.DrawCircle(x, y, radius)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
	}

	return ApplyGlow(dc.Image()), nil
}

// drawGradient fills each row with the background→gradient blend for y/size
func (r *Renderer) drawGradient(dc *gg.Context, size int) error {
	for y := 0; y < size; y++ {
		ratio := float64(y) / float64(size)
		dc.SetColor(palette.Blend(r.palette.Background, r.palette.Gradient, ratio).NRGBA())
		dc.DrawRectangle(0, float64(y), float64(size), 1)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func fillPolygon(dc *gg.Context, c palette.RGB, pts []gg.Point) error {
	dc.SetColor(c.NRGBA())
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	return dc.Fill()
}
