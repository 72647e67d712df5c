package incdbscan

import (
	"github.com/dendritic-labs/incdbscan/label"
	"github.com/dendritic-labs/incdbscan/pointid"
)

// Insert adds coords to the clustering and repairs cluster labels in the
// locally affected neighborhood. Inserting a coordinate whose length
// differs from the dimensionality established by the first insert is a
// programming error (surfaced by the spatial index as a panic).
func (e *Engine) Insert(coords []float64) {
	insertedID := e.store.InsertObject(coords)

	newCores, oldCores := e.partitionByNovelty(insertedID)

	if len(newCores) == 0 {
		e.insertCaseA(insertedID, oldCores)
		return
	}
	e.insertCaseB(newCores)
}

// partitionByNovelty classifies every member of insertedID's closed
// neighborhood as newly core (new_cores) or already core before this
// insertion (old_cores), per spec §4.5. insertedID itself is always
// classified as new when core, even if a repeat insertion pushed its
// neighbor_count past min_pts in one step.
func (e *Engine) partitionByNovelty(insertedID pointid.ID) (newCores, oldCores map[pointid.ID]struct{}) {
	newCores = make(map[pointid.ID]struct{})
	oldCores = make(map[pointid.ID]struct{})

	for _, n := range e.store.ClosedNeighbors(insertedID) {
		nc := e.store.NeighborCount(n)
		if nc < e.minPts {
			continue
		}
		switch {
		case n == insertedID:
			newCores[n] = struct{}{}
		case nc == e.minPts:
			newCores[n] = struct{}{}
		default:
			oldCores[n] = struct{}{}
		}
	}
	return newCores, oldCores
}

// insertCaseA handles an insertion that created no new core: absorb
// insertedID into the most recently created cluster touching it, or mark
// it NOISE if it touches no core at all.
func (e *Engine) insertCaseA(insertedID pointid.ID, oldCores map[pointid.ID]struct{}) {
	if len(oldCores) == 0 {
		e.store.SetLabel(insertedID, label.Noise)
		return
	}
	e.store.SetLabel(insertedID, e.maxLabelOf(oldCores))
}

// insertCaseB handles an insertion that produced one or more new cores:
// compute update seeds, partition them into core-connected components,
// create or merge a cluster per component, then propagate each new
// core's final label out to its closed neighborhood (the border points
// attached to it).
func (e *Engine) insertCaseB(newCores map[pointid.ID]struct{}) {
	updateSeeds := make(map[pointid.ID]struct{})
	for c := range newCores {
		for _, n := range e.store.ClosedNeighbors(c) {
			if e.store.NeighborCount(n) >= e.minPts {
				updateSeeds[n] = struct{}{}
			}
		}
	}

	for _, component := range e.store.ConnectedComponentsWithin(updateSeeds) {
		e.resolveComponentLabel(component)
	}

	for c := range newCores {
		lbl, _ := e.store.GetLabel(c)
		e.store.SetLabels(e.store.ClosedNeighbors(c), lbl)
	}
}

// resolveComponentLabel assigns a single cluster label to every member
// of component: a fresh id if none of its members already carry a
// proper cluster label, otherwise the maximum proper label present,
// merging every other proper label present into it.
func (e *Engine) resolveComponentLabel(component map[pointid.ID]struct{}) {
	effective := make(map[label.Label]struct{})
	for p := range component {
		if lbl, ok := e.store.GetLabel(p); ok && lbl >= label.FirstCluster {
			effective[lbl] = struct{}{}
		}
	}

	members := make([]pointid.ID, 0, len(component))
	for p := range component {
		members = append(members, p)
	}

	if len(effective) == 0 {
		e.store.SetLabels(members, e.store.NextClusterLabel())
		return
	}

	m := label.Unclassified
	for l := range effective {
		if l > m {
			m = l
		}
	}

	e.store.SetLabels(members, m)
	for l := range effective {
		if l != m {
			e.store.ChangeLabels(l, m)
		}
	}
}

// maxLabelOf returns the maximum label currently carried by any member
// of ids.
func (e *Engine) maxLabelOf(ids map[pointid.ID]struct{}) label.Label {
	m := label.Unclassified
	for id := range ids {
		if lbl, ok := e.store.GetLabel(id); ok && lbl > m {
			m = lbl
		}
	}
	return m
}
