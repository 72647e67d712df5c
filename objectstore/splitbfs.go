package objectstore

import "github.com/dendritic-labs/incdbscan/pointid"

// SplitComponents runs the multi-source split BFS of spec §4.7 from
// seeds (all currently core, all carrying the same cluster label before
// the caller's deletion triggered this check) and returns every
// resulting component except the one with the most discovered points
// (which keeps the original label). Returns nil if len(seeds) <= 1.
//
// The traversal assigns every discovered vertex a seed_of handle; a
// non-tree edge between differently-seeded core vertices merges the two
// seed ids by overwriting the smaller with the larger, but only on the
// two edge endpoints, not across the rest of either component. The
// final partition is therefore read off seed_of only after the full
// traversal completes, once the merges have converged.
func (s *Store) SplitComponents(seeds []pointid.ID) []map[pointid.ID]struct{} {
	if len(seeds) <= 1 {
		return nil
	}

	seedOf := make(map[handle]handle)
	var discoveryOrder []handle
	var queue []handle

	for _, sid := range seeds {
		h, ok := s.handles[sid]
		if !ok {
			continue
		}
		if _, set := seedOf[h]; !set {
			seedOf[h] = h
			discoveryOrder = append(discoveryOrder, h)
		}
		queue = append(queue, h)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if !s.isCoreHandle(v) {
			continue
		}

		for _, w := range s.graph.neighbors(v) {
			sw, known := seedOf[w]
			if !known {
				seedOf[w] = seedOf[v]
				discoveryOrder = append(discoveryOrder, w)
				queue = append(queue, w)
				continue
			}
			if sv := seedOf[v]; sv != sw && s.isCoreHandle(w) {
				if sv > sw {
					seedOf[w] = sv
				} else {
					seedOf[v] = sw
				}
			}
		}
	}

	// Final partition: group every discovered vertex by its seed_of value
	// only after the traversal has fully converged, per §4.7's closing
	// note. discoveryOrder makes the largest-component tie-break (first
	// encountered wins) deterministic instead of depending on map order.
	groups := make(map[handle][]pointid.ID)
	var seedOrder []handle
	for _, v := range discoveryOrder {
		seed := seedOf[v]
		if _, seen := groups[seed]; !seen {
			seedOrder = append(seedOrder, seed)
		}
		groups[seed] = append(groups[seed], s.graph.pointID(v))
	}

	largestSeed, largestSize := seedOrder[0], 0
	for _, seed := range seedOrder {
		if n := len(groups[seed]); n > largestSize {
			largestSize = n
			largestSeed = seed
		}
	}

	var result []map[pointid.ID]struct{}
	for _, seed := range seedOrder {
		if seed == largestSeed {
			continue
		}
		members := groups[seed]
		comp := make(map[pointid.ID]struct{}, len(members))
		for _, id := range members {
			comp[id] = struct{}{}
		}
		result = append(result, comp)
	}
	return result
}

// isCoreHandle reports whether the vertex at handle h currently holds
// core status.
func (s *Store) isCoreHandle(h handle) bool {
	data, ok := s.records[s.graph.pointID(h)]
	return ok && data.IsCore(s.minPts)
}
