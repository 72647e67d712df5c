// Package metric computes distance between equal-length coordinate vectors
// under a family of Minkowski p-norms.
//
// The exponent p selects the metric at call time — p=1 (Manhattan), p=2
// (Euclidean), p=+Inf (Chebyshev), or any other p>=1 (general Minkowski) —
// rather than through an interface or subtype hierarchy. Callers that only
// ever use one p should still go through Dist; the specialized paths are
// chosen internally and cost nothing extra.
package metric
