package kernel

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/mandelbrot"
)

// Uniforms holds the values of every slot for one frame.
type Uniforms struct {
	TransformMat mgl32.Mat4
	ZoomMat      mgl32.Mat4
	BaseColor    [4]float32
	Colors       [mandelbrot.PaletteSize][4]float32
}

// NewUniforms packs a frame and palette into slot values. The plane matrix
// is narrowed to float32 here; the CPU renderer keeps it in float64.
// Palette entries are uploaded unnormalized, in 0..255.
func NewUniforms(f mandelbrot.Frame, p *mandelbrot.Palette) (Uniforms, error) {
	if p.Len() != mandelbrot.PaletteSize {
		return Uniforms{}, fmt.Errorf("%w: %s needs %d entries, palette has %d",
			ErrUniformMismatch, SlotColors, mandelbrot.PaletteSize, p.Len())
	}
	u := Uniforms{
		TransformMat: f.Resize.Mat4(),
		ZoomMat:      mandelbrot.ViewFromMat4(f.PlaneMatrix()).Float32(),
		BaseColor:    f.Color.Vec4(),
	}
	for i := range u.Colors {
		e := p.Entry(i)
		u.Colors[i] = [4]float32{float32(e.R), float32(e.G), float32(e.B), 255}
	}
	return u, nil
}

// Bytes returns the little-endian contents of the named slot.
func (u *Uniforms) Bytes(slot string) ([]byte, error) {
	var vals []float32
	switch slot {
	case SlotTransform:
		vals = u.TransformMat[:]
	case SlotZoom:
		vals = u.ZoomMat[:]
	case SlotBaseColor:
		vals = u.BaseColor[:]
	case SlotColors:
		vals = make([]float32, 0, 4*len(u.Colors))
		for _, c := range u.Colors {
			vals = append(vals, c[:]...)
		}
	default:
		return nil, fmt.Errorf("%w: unknown slot %q", ErrUniformMismatch, slot)
	}
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf, nil
}
