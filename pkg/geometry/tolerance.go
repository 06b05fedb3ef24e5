package geometry

import "math"

// Epsilon is the absolute tolerance used by every near-zero comparison:
// parallelism, perpendicularity, incidence, tangency, collinearity and
// degeneracy checks.
const Epsilon = 1e-10

// NearZero reports whether |v| < Epsilon.
func NearZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// NearEqual reports whether a and b differ by less than Epsilon.
func NearEqual(a, b float64) bool {
	return NearZero(a - b)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
