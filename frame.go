package mandelbrot

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Home places the identity view on the complex plane: the unit square of
// the screen plane is mapped onto the disc of Radius around Center.
type Home struct {
	Center complex128
	Radius float64
}

// DefaultHome frames the whole set.
var DefaultHome = Home{Center: complex(-0.5, 0), Radius: 1.5}

// Matrix returns translate(center) · scale(radius).
func (h Home) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(real(h.Center), imag(h.Center), 0).
		Mul4(mgl64.Scale3D(h.Radius, h.Radius, 1))
}

// Frame is an immutable snapshot of everything needed to render one image.
// A Frame can be shared freely between goroutines.
type Frame struct {
	Width, Height int

	Resize  ResizeTransform
	View    ViewTransform
	Home    Home
	Color   RGBA
	Version uint64

	// plane maps the visible plane to the complex plane:
	// home · view⁻¹.
	plane mgl64.Mat4
}

// NewFrame builds a frame and caches its plane matrix.
func NewFrame(width, height int, view ViewTransform, home Home, base RGBA) (Frame, error) {
	resize, err := ComputeResizeTransform(width, height)
	if err != nil {
		return Frame{}, err
	}
	f := Frame{
		Width:  width,
		Height: height,
		Resize: resize,
		View:   view,
		Home:   home,
		Color:  base,
	}
	f.plane = home.Matrix().Mul4(view.Inverse().Mat4())
	return f, nil
}

// PlaneMatrix returns the matrix taking a visible plane point (after the
// inverse resize) to its complex-plane coordinate.
func (f Frame) PlaneMatrix() mgl64.Mat4 {
	return f.plane
}

// PointAt returns the complex number under the given pixel coordinate.
// Pixel centers are at half-integer coordinates.
func (f Frame) PointAt(px, py float64) complex128 {
	s := MapCursorToPlane(px, py, f.Width, f.Height)
	p := f.Resize.Unapply(s)
	r := f.plane.Mul4x1(mgl64.Vec4{p.X, p.Y, 0, 1})
	return complex(r[0], r[1])
}

// Shade evaluates the pixel at (px, py) and resolves its color. Interior
// points get the background color.
func (f Frame) Shade(px, py float64, limit int, palette *Palette, background RGBA) RGBA {
	escaped, t := Evaluate(f.PointAt(px, py), limit)
	if !escaped {
		return background
	}
	return palette.ColorFor(t).AddWrapped(f.Color)
}

// Magnification returns the accumulated zoom relative to the home view.
func (f Frame) Magnification() float64 {
	return f.View.Scale()
}

// Center returns the complex number at the middle of the frame.
func (f Frame) Center() complex128 {
	return f.PointAt(float64(f.Width)/2, float64(f.Height)/2)
}
