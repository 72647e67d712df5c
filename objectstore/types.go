package objectstore

import "github.com/dendritic-labs/incdbscan/pointid"

// ObjectData is the per-point record tracked for every live identifier.
//
// NeighborCount is the count-weighted cardinality of the point's closed
// ε-neighborhood: itself plus every graph-neighbor, each counted as many
// times as its own multiplicity (Count).
type ObjectData struct {
	ID            pointid.ID
	Count         uint32
	NeighborCount uint32

	handle handle
}

// IsCore reports whether NeighborCount has reached minPts.
func (d *ObjectData) IsCore(minPts uint32) bool {
	return d.NeighborCount >= minPts
}

// DeletedInfo snapshots everything DeleteObject's caller needs to know
// about a deletion, taken before any mutation. A fully-removed point can
// no longer answer these questions from its own (now-gone) record, so the
// snapshot is the only way to learn them afterward.
type DeletedInfo struct {
	// ID is the deleted point's identifier.
	ID pointid.ID

	// SnapshotNeighbors is the closed neighborhood of ID as it was
	// immediately before the deletion: ID itself followed by its
	// graph-neighbors at that moment.
	SnapshotNeighbors []pointid.ID

	// WasCore is ID's core status immediately before the deletion.
	WasCore bool

	// FullyRemoved is true when ID's count reached zero, so its record,
	// graph vertex, spatial entry, and label were all removed.
	FullyRemoved bool
}
