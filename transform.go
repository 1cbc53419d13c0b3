package mandelbrot

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidDimensions is returned when a window or pixmap size is not
// strictly positive.
var ErrInvalidDimensions = errors.New("mandelbrot: dimensions must be positive")

// ViewTransform is the composition of every zoom and pan applied to the
// screen plane since the last reset. It is a 4x4 homogeneous matrix in
// float64 so that hundreds of compositions keep the zoom anchor in place.
//
// The zero value is not a valid transform; use IdentityView.
type ViewTransform struct {
	m mgl64.Mat4
}

// IdentityView returns the transform of a freshly reset view.
func IdentityView() ViewTransform {
	return ViewTransform{m: mgl64.Ident4()}
}

// ViewFromMat4 wraps an existing matrix.
func ViewFromMat4(m mgl64.Mat4) ViewTransform {
	return ViewTransform{m: m}
}

// Mat4 returns the underlying column-major matrix.
func (v ViewTransform) Mat4() mgl64.Mat4 {
	return v.m
}

// Compose applies increment on top of v and returns increment · v.
//
// Increments are always left-multiplied. Multiplying on the right would
// apply the new operation in the coordinate system that existed before all
// previous ones, which moves the zoom anchor as soon as a pan has happened.
func (v ViewTransform) Compose(increment mgl64.Mat4) ViewTransform {
	return ViewTransform{m: increment.Mul4(v.m)}
}

// Inverse returns the inverse transform. View transforms are products of
// translations and non-zero uniform scales, so the inverse always exists.
func (v ViewTransform) Inverse() ViewTransform {
	return ViewTransform{m: v.m.Inv()}
}

// Apply maps a plane point through the transform.
func (v ViewTransform) Apply(p Point) Point {
	r := v.m.Mul4x1(mgl64.Vec4{p.X, p.Y, 0, 1})
	return Point{X: r[0], Y: r[1]}
}

// Scale returns the accumulated uniform scale factor. Values above 1 mean
// the view is zoomed in.
func (v ViewTransform) Scale() float64 {
	return v.m.At(0, 0)
}

// IsIdentity reports whether the transform is exactly the identity.
func (v ViewTransform) IsIdentity() bool {
	return v.m == mgl64.Ident4()
}

// ApproxEqual compares two transforms element-wise within eps.
func (v ViewTransform) ApproxEqual(other ViewTransform, eps float64) bool {
	return v.m.ApproxEqualThreshold(other.m, eps)
}

// Float32 narrows the matrix for upload into a single-precision uniform.
func (v ViewTransform) Float32() mgl32.Mat4 {
	var out mgl32.Mat4
	for i, x := range v.m {
		out[i] = float32(x)
	}
	return out
}

// ZoomIncrement builds translate(anchor) · scale(f, f, 1) · translate(-anchor).
func ZoomIncrement(anchor Point, factor float64) mgl64.Mat4 {
	return mgl64.Translate3D(anchor.X, anchor.Y, 0).
		Mul4(mgl64.Scale3D(factor, factor, 1)).
		Mul4(mgl64.Translate3D(-anchor.X, -anchor.Y, 0))
}

// PanIncrement builds a pure translation by delta.
func PanIncrement(delta Point) mgl64.Mat4 {
	return mgl64.Translate3D(delta.X, delta.Y, 0)
}

// ResizeTransform stretches the plane along the shorter window axis so that
// the rendered region stays square whatever the window aspect ratio is.
// It is recreated on every resize and never touched by zoom or pan.
type ResizeTransform struct {
	m mgl32.Mat4
}

// ComputeResizeTransform returns the aspect transform for a window of the
// given pixel size. If width < height the X axis is scaled by height/width,
// otherwise the Y axis is scaled by width/height. Square windows yield the
// identity.
func ComputeResizeTransform(width, height int) (ResizeTransform, error) {
	if width <= 0 || height <= 0 {
		return ResizeTransform{}, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width < height {
		return ResizeTransform{m: mgl32.Scale3D(float32(height)/float32(width), 1, 1)}, nil
	}
	return ResizeTransform{m: mgl32.Scale3D(1, float32(width)/float32(height), 1)}, nil
}

// IdentityResize returns the aspect transform of a square window.
func IdentityResize() ResizeTransform {
	return ResizeTransform{m: mgl32.Ident4()}
}

// Mat4 returns the underlying matrix.
func (r ResizeTransform) Mat4() mgl32.Mat4 {
	return r.m
}

// ScaleX returns the X axis factor.
func (r ResizeTransform) ScaleX() float64 {
	return float64(r.m.At(0, 0))
}

// ScaleY returns the Y axis factor.
func (r ResizeTransform) ScaleY() float64 {
	return float64(r.m.At(1, 1))
}

// Unapply maps a normalized device point back onto the square plane, i.e.
// applies the inverse of the resize transform. Only a diagonal scale is
// ever stored, so the inverse is taken per axis.
func (r ResizeTransform) Unapply(p Point) Point {
	sx, sy := r.ScaleX(), r.ScaleY()
	if sx == 0 || sy == 0 {
		return p
	}
	return Point{X: p.X / sx, Y: p.Y / sy}
}

// MapCursorToPlane converts pointer pixel coordinates into normalized
// device coordinates: pixel (0, 0) at the top-left maps to (-1, 1) and
// (width, height) maps to (1, -1). It must be evaluated with the current
// window size on every call.
func MapCursorToPlane(pixelX, pixelY float64, width, height int) Point {
	return Point{
		X: 2*pixelX/float64(width) - 1,
		Y: 1 - 2*pixelY/float64(height),
	}
}
