package objectstore

import "fmt"

// checkInvariants evaluates three cross-structure invariants (records and
// graph handles agree in size, every core point carries a label >= 0, and
// every neighbor_count equals its count-weighted closed neighborhood) and
// returns a human-readable description of every violation found. Cluster
// connectivity, border labels, and spatial-index membership are not
// checked. It
// is always compiled (so it can be unit-tested on its own); whether
// AssertInvariants actually calls it is controlled by the debug/release
// build-tag pair in invariants_debug.go / invariants_release.go.
func (s *Store) checkInvariants() []string {
	var violations []string

	if len(s.records) != len(s.handles) {
		violations = append(violations, fmt.Sprintf(
			"records/handles size mismatch: %d vs %d", len(s.records), len(s.handles)))
	}

	for id, data := range s.records {
		isCore := data.IsCore(s.minPts)

		lbl, hasLabel := s.labels.GetLabel(id)
		if isCore && (!hasLabel || lbl < 0) {
			violations = append(violations, fmt.Sprintf(
				"core point %d does not carry a proper cluster label (got %v, present=%v)",
				id, lbl, hasLabel))
		}

		want := data.Count
		for _, n := range s.Neighbors(id) {
			nd, ok := s.records[n]
			if !ok {
				violations = append(violations, fmt.Sprintf(
					"point %d has graph-neighbor %d with no record", id, n))
				continue
			}
			want += nd.Count
		}
		if want != data.NeighborCount {
			violations = append(violations, fmt.Sprintf(
				"point %d neighbor_count mismatch: got %d, want %d", id, data.NeighborCount, want))
		}
	}

	return violations
}
