package mandelbrot

import "math"

// Point is a position on the view plane. Screen-space plane coordinates span
// [-1, 1] on both axes; fractal-space points are complex numbers.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// IsZero reports whether both components are exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Complex returns the point as a complex number x + yi.
func (p Point) Complex() complex128 {
	return complex(p.X, p.Y)
}
