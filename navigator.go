package mandelbrot

import "github.com/go-gl/mathgl/mgl64"

// ZoomFactor is the scale applied by one scroll step.
const ZoomFactor = 1.05

// Navigator accumulates zoom and pan operations into a single view
// transform. It is a plain value owned by its caller and is not safe for
// concurrent use; ViewState wraps it behind a mutex.
type Navigator struct {
	view ViewTransform
}

// NewNavigator returns a navigator at the identity view.
func NewNavigator() *Navigator {
	return &Navigator{view: IdentityView()}
}

// Zoom scales the view about anchor, in screen plane coordinates, by
// ZoomFactor (zoomIn) or its reciprocal. The anchor is a fixed point of the
// increment, so the plane point under it does not move.
func (n *Navigator) Zoom(anchor Point, zoomIn bool) bool {
	f := ZoomFactor
	if !zoomIn {
		f = 1 / ZoomFactor
	}
	n.view = n.view.Compose(ZoomIncrement(anchor, f))
	return true
}

// ZoomBy scales the view about anchor by an arbitrary positive factor.
// Non-positive factors and a factor of exactly 1 change nothing.
func (n *Navigator) ZoomBy(anchor Point, factor float64) bool {
	if factor <= 0 || factor == 1 {
		return false
	}
	n.view = n.view.Compose(ZoomIncrement(anchor, factor))
	return true
}

// Pan translates the view by delta. A zero delta reports false.
func (n *Navigator) Pan(delta Point) bool {
	if delta.IsZero() {
		return false
	}
	n.view = n.view.Compose(PanIncrement(delta))
	return true
}

// Reset returns the view to identity.
func (n *Navigator) Reset() {
	n.view = IdentityView()
}

// View returns the accumulated transform.
func (n *Navigator) View() ViewTransform {
	return n.view
}

// Inverse returns the inverse of the accumulated transform. This is what
// the evaluator consumes: it maps screen plane points back into the
// untransformed plane.
func (n *Navigator) Inverse() ViewTransform {
	return n.view.Inverse()
}

// Scale returns the accumulated magnification.
func (n *Navigator) Scale() float64 {
	return n.view.Scale()
}

// ViewAt returns the transform that puts center in the middle of the
// screen at the given magnification relative to home.
func ViewAt(home Home, center complex128, magnification float64) ViewTransform {
	if magnification <= 0 {
		magnification = 1
	}
	ox := (real(center) - real(home.Center)) / home.Radius
	oy := (imag(center) - imag(home.Center)) / home.Radius
	return ViewFromMat4(mgl64.Scale3D(magnification, magnification, 1).
		Mul4(mgl64.Translate3D(-ox, -oy, 0)))
}
