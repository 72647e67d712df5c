package incdbscan

import (
	"github.com/dendritic-labs/incdbscan/label"
	"github.com/dendritic-labs/incdbscan/objectstore"
	"github.com/dendritic-labs/incdbscan/pointid"
)

// Delete removes one copy of coords from the clustering and repairs
// cluster labels in the locally affected neighborhood. Returns false
// without effect if no live point with that content hash exists.
func (e *Engine) Delete(coords []float64) bool {
	id := pointid.Hash(coords)
	if !e.store.Contains(id) {
		return false
	}

	info := e.store.DeleteObject(id)

	exCores := e.findExCores(info)
	updateSeeds, borderCandidates := e.partitionExCoreNeighbors(exCores, info)

	e.runSplitDetection(updateSeeds)
	e.reassignBorders(borderCandidates)

	return true
}

// findExCores returns the points that just lost core status: a neighbor
// n of the deleted point (n != id) whose neighbor_count dropped to exactly
// min_pts-1, plus the deleted point itself if it was core before the
// delete, regardless of whether it was fully removed.
func (e *Engine) findExCores(info objectstore.DeletedInfo) map[pointid.ID]struct{} {
	exCores := make(map[pointid.ID]struct{})
	for _, n := range info.SnapshotNeighbors {
		if n == info.ID {
			continue
		}
		if e.store.Contains(n) && e.store.NeighborCount(n) == e.minPts-1 {
			exCores[n] = struct{}{}
		}
	}
	if info.WasCore {
		exCores[info.ID] = struct{}{}
	}
	return exCores
}

// partitionExCoreNeighbors obtains each ex-core's closed neighborhood —
// live for present points, the delete's snapshot for id itself when it
// was fully removed — and splits their neighbors into those still core
// (update_seeds, candidates for split detection) and those that are not
// (border_candidates, candidates for relabeling). The deleted point's id
// is dropped from both sets when it was fully removed, since it no
// longer carries a label to repair.
func (e *Engine) partitionExCoreNeighbors(exCores map[pointid.ID]struct{}, info objectstore.DeletedInfo) (updateSeeds, borderCandidates map[pointid.ID]struct{}) {
	updateSeeds = make(map[pointid.ID]struct{})
	borderCandidates = make(map[pointid.ID]struct{})

	for ex := range exCores {
		var neighborhood []pointid.ID
		if ex == info.ID && info.FullyRemoved {
			neighborhood = info.SnapshotNeighbors
		} else {
			neighborhood = e.store.ClosedNeighbors(ex)
		}

		for _, n := range neighborhood {
			if e.store.IsCore(n) {
				updateSeeds[n] = struct{}{}
			} else {
				borderCandidates[n] = struct{}{}
			}
		}
	}

	if info.FullyRemoved {
		delete(updateSeeds, info.ID)
		delete(borderCandidates, info.ID)
	}

	return updateSeeds, borderCandidates
}

// runSplitDetection groups update_seeds by current cluster label and,
// for each group that isn't trivially connected, runs the split BFS and
// allocates a fresh cluster id for every non-largest component found.
func (e *Engine) runSplitDetection(updateSeeds map[pointid.ID]struct{}) {
	byLabel := make(map[label.Label][]pointid.ID)
	for seed := range updateSeeds {
		lbl, ok := e.store.GetLabel(seed)
		if !ok {
			continue
		}
		byLabel[lbl] = append(byLabel[lbl], seed)
	}

	for _, group := range byLabel {
		if len(group) <= 1 || e.allPairsAdjacent(group) {
			continue
		}

		for _, component := range e.store.SplitComponents(group) {
			fresh := e.store.NextClusterLabel()
			members := make([]pointid.ID, 0, len(component))
			for id := range component {
				members = append(members, id)
			}
			e.store.SetLabels(members, fresh)
		}
	}
}

// allPairsAdjacent is the fast path that skips the split BFS entirely
// when every pair of a label group is already graph-adjacent, which
// rules out a split by construction.
func (e *Engine) allPairsAdjacent(group []pointid.ID) bool {
	for i := range group {
		for j := i + 1; j < len(group); j++ {
			if !e.store.AreNeighbors(group[i], group[j]) {
				return false
			}
		}
	}
	return true
}

// reassignBorders relabels each border candidate from the maximum label
// among its current core neighbors, or NOISE if it has none.
func (e *Engine) reassignBorders(borderCandidates map[pointid.ID]struct{}) {
	for b := range borderCandidates {
		if !e.store.Contains(b) {
			continue
		}
		lbl := label.Noise
		found := false
		for _, n := range e.store.Neighbors(b) {
			if !e.store.IsCore(n) {
				continue
			}
			if nl, ok := e.store.GetLabel(n); ok {
				found = true
				if nl > lbl {
					lbl = nl
				}
			}
		}
		if !found {
			lbl = label.Noise
		}
		e.store.SetLabel(b, lbl)
	}
}
