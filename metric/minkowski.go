package metric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dist returns the Minkowski distance between a and b under exponent p.
//
// a and b must have equal length; the caller owns that contract (a
// dimensionality mismatch here is a programming error, not a data error —
// see spatial.Index, which is the only caller that can encounter it from
// external input).
//
// Specialized paths:
//   - p == 2: Euclidean, computed as sqrt of the sum of squared differences.
//   - p == 1: Manhattan, sum of absolute differences.
//   - math.IsInf(p, 1): Chebyshev, max absolute difference.
//   - otherwise: general Minkowski, (sum |a_i - b_i|^p)^(1/p).
//
// The p==1, p==+Inf, and general cases are delegated to
// gonum.org/v1/gonum/floats.Distance, which implements exactly this
// family without an intermediate difference slice.
func Dist(a, b []float64, p float64) float64 {
	switch {
	case p == 2:
		return math.Sqrt(SquaredEuclidean(a, b))
	default:
		return floats.Distance(a, b, p)
	}
}

// SquaredEuclidean returns the squared Euclidean distance between a and b,
// avoiding the square root. Used by radius tests against eps^2 when p==2.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
