package incdbscan

import "errors"

var (
	// ErrInvalidEps indicates a non-positive clustering radius.
	ErrInvalidEps = errors.New("incdbscan: eps must be > 0")
	// ErrInvalidMinPts indicates a core threshold below 1.
	ErrInvalidMinPts = errors.New("incdbscan: min_pts must be >= 1")
	// ErrInvalidP indicates a Minkowski exponent below 1.
	ErrInvalidP = errors.New("incdbscan: p must be >= 1")
)
