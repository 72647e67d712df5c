package incdbscan

import (
	"math"

	"github.com/dendritic-labs/incdbscan/label"
	"github.com/dendritic-labs/incdbscan/objectstore"
	"github.com/dendritic-labs/incdbscan/pointid"
)

// Engine is the single owned root of an incremental clustering instance:
// one ObjectStore (records, neighbor graph, spatial index, label
// registry) plus the Insert/Delete update procedures layered on top. Not
// safe for concurrent use; callers needing that must wrap an Engine in
// their own mutual-exclusion layer.
type Engine struct {
	store  *objectstore.Store
	minPts uint32
}

// New constructs an Engine for the given clustering radius, core
// threshold, and Minkowski exponent. Rejects out-of-range parameters at
// construction time rather than surfacing them as update-time failures.
func New(eps float64, minPts int, p float64, opts ...Option) (*Engine, error) {
	if !(eps > 0) {
		return nil, ErrInvalidEps
	}
	if minPts < 1 {
		return nil, ErrInvalidMinPts
	}
	if !(p >= 1) && !math.IsInf(p, 1) {
		return nil, ErrInvalidP
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		store:  objectstore.NewWithCapacity(eps, uint32(minPts), p, cfg.capacityHint),
		minPts: uint32(minPts),
	}, nil
}

// GetLabel returns the cluster label currently assigned to coords, or
// false if that coordinate was never inserted or has since been fully
// removed.
func (e *Engine) GetLabel(coords []float64) (label.Label, bool) {
	id := pointid.Hash(coords)
	if !e.store.Contains(id) {
		return 0, false
	}
	return e.store.GetLabel(id)
}

// AssertInvariants re-checks the cross-structure invariants listed in
// objectstore/invariants.go: record/graph agreement, proper labels on
// core points, and count-weighted neighbor counts. Cluster connectivity,
// border labels, and spatial-index membership are not checked. A no-op
// unless built with `-tags debug`; see objectstore/invariants_debug.go.
func (e *Engine) AssertInvariants() {
	e.store.AssertInvariants()
}
