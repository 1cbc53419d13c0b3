package mandelbrot

import "math"

// DefaultIterationLimit is the iteration bound used when none is configured.
const DefaultIterationLimit = 500

// escapeRadiusSq is the squared escape radius. Escape is tested on the
// Euclidean modulus, never per axis.
const escapeRadiusSq = 4.0

var ln2 = math.Log(2)

// Evaluate iterates z = z² + c from z = 0 for at most limit+1 steps.
//
// If the orbit leaves the disc of radius 2, Evaluate returns escaped=true
// and a continuous iteration count iter + 1 - log(log|z|²)/log 2 suitable
// as a palette coordinate. Points that stay bounded return (false, 0) and
// are drawn with the background color.
func Evaluate(c complex128, limit int) (escaped bool, smoothed float64) {
	var z complex128
	for iter := 0; iter <= limit; iter++ {
		z = z*z + c
		m := real(z)*real(z) + imag(z)*imag(z)
		if m > escapeRadiusSq {
			return true, float64(iter) + 1 - math.Log(math.Log(m))/ln2
		}
	}
	return false, 0
}
