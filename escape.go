package mandel

// EscapeRadiusSquared is |z|² beyond which an orbit has escaped.
const EscapeRadiusSquared = 4.0

// Evaluate returns the number of iterations of z ← z²+c, starting at z = 0,
// before |z| exceeds 2, capped at maxIter. The result is in [0, maxIter].
func Evaluate(cReal, cImag float64, maxIter int) int {
	var x, y, x2, y2 float64
	iter := 0
	for x2+y2 <= EscapeRadiusSquared && iter < maxIter {
		// y must be computed from the previous x.
		y = 2*x*y + cImag
		x = x2 - y2 + cReal
		x2 = x * x
		y2 = y * y
		iter++
	}
	return iter
}

// Inside reports whether the evaluated count means the point never escaped.
func Inside(iter, maxIter int) bool {
	return iter >= maxIter
}
