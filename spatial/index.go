package spatial

import (
	"fmt"

	"github.com/dendritic-labs/incdbscan/metric"
	"github.com/dendritic-labs/incdbscan/pointid"
)

// Index is a brute-force spatial index: coordinates are stored in a flat
// buffer, coords[i*dims:(i+1)*dims] holding the point for ids[i]. Deletes
// swap the removed entry with the last one before truncating, so neither
// insert nor delete ever shifts the rest of the buffer.
type Index struct {
	coords []float64
	ids    []pointid.ID
	pos    map[pointid.ID]int

	dims int
	eps  float64
	p    float64
}

// New returns an empty Index for the given clustering radius and
// Minkowski exponent. The index's dimensionality is fixed by whatever
// coordinates are first inserted.
func New(eps, p float64) *Index {
	return NewWithCapacity(eps, p, 0)
}

// NewWithCapacity is New, pre-sizing the coordinate and id buffers for an
// expected point count.
func NewWithCapacity(eps, p float64, capacityHint int) *Index {
	return &Index{
		ids: make([]pointid.ID, 0, capacityHint),
		pos: make(map[pointid.ID]int, capacityHint),
		eps: eps,
		p:   p,
	}
}

// Insert appends id's coordinates to the index. The first insert ever
// made fixes dims for the index's lifetime; every later insert must match
// it, since a varying dimensionality can only be a programming error, not
// a runtime condition callers should recover from.
func (idx *Index) Insert(id pointid.ID, coords []float64) {
	if idx.coords == nil {
		idx.dims = len(coords)
		idx.coords = make([]float64, 0, len(coords)*cap(idx.ids))
	}
	if len(coords) != idx.dims {
		panic(fmt.Sprintf("spatial: insert dimensionality mismatch: got %d, index is %d-dimensional", len(coords), idx.dims))
	}

	idx.pos[id] = len(idx.ids)
	idx.ids = append(idx.ids, id)
	idx.coords = append(idx.coords, coords...)
}

// Delete removes id from the index. A no-op if id is absent.
func (idx *Index) Delete(id pointid.ID) {
	p, ok := idx.pos[id]
	if !ok {
		return
	}

	last := len(idx.ids) - 1
	delete(idx.pos, id)

	if p != last {
		lastID := idx.ids[last]
		idx.ids[p] = lastID
		idx.pos[lastID] = p

		startP, startLast := p*idx.dims, last*idx.dims
		copy(idx.coords[startP:startP+idx.dims], idx.coords[startLast:startLast+idx.dims])
	}

	idx.ids = idx.ids[:last]
	idx.coords = idx.coords[:last*idx.dims]
}

// QueryRadius returns every indexed id whose point lies within eps of
// query, in the index's current internal order. p==2 takes a
// squared-distance fast path that avoids a sqrt per comparison.
func (idx *Index) QueryRadius(query []float64) []pointid.ID {
	var result []pointid.ID
	n := len(idx.ids)

	if idx.p == 2 {
		epsSq := idx.eps * idx.eps
		for i := 0; i < n; i++ {
			start := i * idx.dims
			point := idx.coords[start : start+idx.dims]
			if metric.SquaredEuclidean(query, point) <= epsSq {
				result = append(result, idx.ids[i])
			}
		}
		return result
	}

	for i := 0; i < n; i++ {
		start := i * idx.dims
		point := idx.coords[start : start+idx.dims]
		if metric.Dist(query, point, idx.p) <= idx.eps {
			result = append(result, idx.ids[i])
		}
	}
	return result
}

// Len returns the number of indexed points.
func (idx *Index) Len() int { return len(idx.ids) }
