package mandelbrot

import (
	"image/color"
	"math"
)

// RGBA is a color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{}
)

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// AddWrapped returns the component-wise sum of the color channels. Sums
// above 1 wrap around to their fractional part. Alpha is kept from c.
func (c RGBA) AddWrapped(offset RGBA) RGBA {
	return RGBA{
		R: wrapChannel(c.R + offset.R),
		G: wrapChannel(c.G + offset.G),
		B: wrapChannel(c.B + offset.B),
		A: c.A,
	}
}

// Vec4 returns the channels as a float32 array, red first.
func (c RGBA) Vec4() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// RGB8 is a palette entry with integer channels in 0..255.
type RGB8 struct {
	R, G, B uint8
}

// Float returns the entry as an opaque RGBA scaled to [0, 1].
func (c RGB8) Float() RGBA {
	return RGBA{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: 1}
}

// wrapUnit maps v into [0, 1). Exactly 1 wraps to 0.
func wrapUnit(v float64) float64 {
	v -= math.Floor(v)
	if v >= 1 {
		return 0
	}
	return v
}

// wrapChannel leaves values in [0, 1] untouched and wraps anything above.
func wrapChannel(v float64) float64 {
	if v <= 1 {
		return v
	}
	return v - math.Floor(v)
}

// clamp255 clamps a value to [0, 255].
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
