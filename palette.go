package mandelbrot

import (
	"errors"
	"fmt"
	"math"
)

// ErrPaletteTooShort is returned when a palette has fewer than two entries.
var ErrPaletteTooShort = errors.New("mandelbrot: palette needs at least 2 entries")

// Palette is an immutable cyclic color table indexed by a continuous
// iteration count. Entry n and entry n+Len map to the same color.
type Palette struct {
	entries []RGB8
}

// NewPalette copies entries into a new palette.
func NewPalette(entries []RGB8) (*Palette, error) {
	if len(entries) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteTooShort, len(entries))
	}
	p := &Palette{entries: make([]RGB8, len(entries))}
	copy(p.entries, entries)
	return p, nil
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entry returns entry i modulo Len.
func (p *Palette) Entry(i int) RGB8 {
	return p.entries[wrapIndex(i, len(p.entries))]
}

// Entries returns a copy of the table.
func (p *Palette) Entries() []RGB8 {
	out := make([]RGB8, len(p.entries))
	copy(out, p.entries)
	return out
}

// ColorFor interpolates between entry floor(t) and its successor by the
// fractional part of t and normalizes the result into [0, 1]. Both indices
// wrap modulo Len, including for negative t.
func (p *Palette) ColorFor(t float64) RGBA {
	k := len(p.entries)
	fl := math.Floor(t)
	frac := t - fl

	n := int(math.Mod(fl, float64(k)))
	n = wrapIndex(n, k)
	a := p.entries[n]
	b := p.entries[(n+1)%k]

	return RGBA{
		R: lerp(float64(a.R), float64(b.R), frac) / 255,
		G: lerp(float64(a.G), float64(b.G), frac) / 255,
		B: lerp(float64(a.B), float64(b.B), frac) / 255,
		A: 1,
	}
}

func wrapIndex(i, k int) int {
	i %= k
	if i < 0 {
		i += k
	}
	return i
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
