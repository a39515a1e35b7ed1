package palette

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// RGB is a 24-bit color. Channels are ints so that blends with a ratio
// outside [0,1] stay representable instead of wrapping.
type RGB struct {
	R, G, B int
}

// Palette maps the semantic icon colors to their values
type Palette struct {
	Background    RGB
	Gradient      RGB
	PrimaryNeon   RGB
	SecondaryNeon RGB
	AccentNeon    RGB
}

// Neon is the cyberpunk palette every icon is drawn with
var Neon = Palette{
	Background:    ParseHex("#0B0B1F"),
	Gradient:      ParseHex("#1A0B2E"),
	PrimaryNeon:   ParseHex("#00FFFF"),
	SecondaryNeon: ParseHex("#FF1493"),
	AccentNeon:    ParseHex("#39FF14"),
}

// ParseHex converts "#RRGGBB" (or any form gg.Hex accepts) to RGB
func ParseHex(hex string) RGB {
	c := gg.Hex(hex)
	return RGB{
		R: int(math.Round(c.R * 255)),
		G: int(math.Round(c.G * 255)),
		B: int(math.Round(c.B * 255)),
	}
}

// Blend linearly interpolates each channel of a toward b.
// The result is truncated, and ratio is not clamped.
func Blend(a, b RGB, ratio float64) RGB {
	mix := func(x, y int) int {
		return int(float64(x)*(1-ratio) + float64(y)*ratio)
	}
	return RGB{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
	}
}

// NRGBA returns the opaque color, clamping out-of-gamut channels
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: 255}
}

// RGBA implements color.Color
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
