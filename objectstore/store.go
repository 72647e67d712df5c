package objectstore

import (
	"github.com/dendritic-labs/incdbscan/label"
	"github.com/dendritic-labs/incdbscan/pointid"
	"github.com/dendritic-labs/incdbscan/spatial"
)

// Store mediates all mutation of a clustered point set: per-point
// records, the undirected neighbor graph, the spatial index, and cluster
// labels. See doc.go for why every mutation passes through it.
type Store struct {
	minPts uint32

	graph   *neighborGraph
	spatial *spatial.Index
	labels  *label.Registry

	records map[pointid.ID]*ObjectData
	handles map[pointid.ID]handle
}

// New returns an empty Store for the given clustering radius, core
// threshold, and Minkowski exponent.
func New(eps float64, minPts uint32, p float64) *Store {
	return NewWithCapacity(eps, minPts, p, 0)
}

// NewWithCapacity is New, pre-sizing internal maps and the spatial
// index's buffers for an expected point count. A pure performance hint;
// it never changes clustering behavior.
func NewWithCapacity(eps float64, minPts uint32, p float64, capacityHint int) *Store {
	return &Store{
		minPts:  minPts,
		graph:   newNeighborGraph(capacityHint),
		spatial: spatial.NewWithCapacity(eps, p, capacityHint),
		labels:  label.NewRegistry(),
		records: make(map[pointid.ID]*ObjectData, capacityHint),
		handles: make(map[pointid.ID]handle, capacityHint),
	}
}

// MinPts returns the configured core threshold.
func (s *Store) MinPts() uint32 { return s.minPts }

// Contains reports whether id currently has a live record.
func (s *Store) Contains(id pointid.ID) bool {
	_, ok := s.records[id]
	return ok
}

// InsertObject inserts coords, idempotently over point identity: a repeat
// of a coordinate already present increments its count (and every closed
// neighbor's NeighborCount) rather than creating a second record. Returns
// the point's identifier either way.
func (s *Store) InsertObject(coords []float64) pointid.ID {
	id := pointid.Hash(coords)

	if data, ok := s.records[id]; ok {
		data.Count++
		for _, n := range s.ClosedNeighbors(id) {
			s.records[n].NeighborCount++
		}
		return id
	}

	h := s.graph.addVertex(id)
	s.handles[id] = h
	s.records[id] = &ObjectData{ID: id, Count: 1, NeighborCount: 0, handle: h}
	s.labels.SetLabel(id, label.Unclassified)
	s.spatial.Insert(id, coords)

	// The spatial query now returns id itself (distance 0 <= eps) along
	// with every pre-existing point within eps.
	for _, nid := range s.spatial.QueryRadius(coords) {
		s.records[nid].NeighborCount++
		if nid != id {
			s.records[id].NeighborCount += s.records[nid].Count
			s.graph.addEdge(h, s.handles[nid])
		}
	}

	return id
}

// DeleteObject decrements id's count, fully removing its record, graph
// vertex, spatial entry, and label once the count reaches zero. The
// closed neighborhood and core status are snapshotted before any
// mutation, since a fully-removed point can't answer those questions from
// its own record afterward.
func (s *Store) DeleteObject(id pointid.ID) DeletedInfo {
	data := s.records[id]
	snapshot := s.ClosedNeighbors(id)
	wasCore := data.IsCore(s.minPts)

	data.Count--
	fullyRemoved := data.Count == 0

	for _, nid := range snapshot {
		s.records[nid].NeighborCount--
	}

	if fullyRemoved {
		s.graph.removeVertex(s.handles[id])
		delete(s.handles, id)
		delete(s.records, id)
		s.spatial.Delete(id)
		s.labels.Delete(id)
	}

	return DeletedInfo{
		ID:                id,
		SnapshotNeighbors: snapshot,
		WasCore:           wasCore,
		FullyRemoved:      fullyRemoved,
	}
}

// ClosedNeighbors returns id followed by every graph-neighbor of id, with
// no duplicates. If id is absent it returns just {id}, matching the
// convention that a point's closed neighborhood always includes itself.
func (s *Store) ClosedNeighbors(id pointid.ID) []pointid.ID {
	h, ok := s.handles[id]
	if !ok {
		return []pointid.ID{id}
	}
	neighbors := s.graph.neighbors(h)
	out := make([]pointid.ID, 0, len(neighbors)+1)
	out = append(out, id)
	for _, n := range neighbors {
		out = append(out, s.graph.pointID(n))
	}
	return out
}

// Neighbors returns the open neighborhood of id: its graph-neighbors,
// excluding id itself.
func (s *Store) Neighbors(id pointid.ID) []pointid.ID {
	h, ok := s.handles[id]
	if !ok {
		return nil
	}
	neighbors := s.graph.neighbors(h)
	out := make([]pointid.ID, 0, len(neighbors))
	for _, n := range neighbors {
		out = append(out, s.graph.pointID(n))
	}
	return out
}

// AreNeighbors reports graph adjacency between a and b.
func (s *Store) AreNeighbors(a, b pointid.ID) bool {
	ha, ok := s.handles[a]
	if !ok {
		return false
	}
	hb, ok := s.handles[b]
	if !ok {
		return false
	}
	return s.graph.hasEdge(ha, hb)
}

// IsCore reports whether id's NeighborCount has reached minPts. An absent
// id is never core.
func (s *Store) IsCore(id pointid.ID) bool {
	data, ok := s.records[id]
	return ok && data.IsCore(s.minPts)
}

// NeighborCount returns id's count-weighted closed-neighborhood size, or 0
// if id is absent.
func (s *Store) NeighborCount(id pointid.ID) uint32 {
	if data, ok := s.records[id]; ok {
		return data.NeighborCount
	}
	return 0
}

// GetLabel returns id's current cluster label.
func (s *Store) GetLabel(id pointid.ID) (label.Label, bool) {
	return s.labels.GetLabel(id)
}

// SetLabel assigns lbl to id.
func (s *Store) SetLabel(id pointid.ID, lbl label.Label) {
	s.labels.SetLabel(id, lbl)
}

// SetLabels is the bulk form of SetLabel.
func (s *Store) SetLabels(ids []pointid.ID, lbl label.Label) {
	s.labels.SetLabels(ids, lbl)
}

// NextClusterLabel allocates the next monotonic cluster id.
func (s *Store) NextClusterLabel() label.Label {
	return s.labels.NextClusterLabel()
}

// ChangeLabels reassigns every point carrying from to carry to instead.
func (s *Store) ChangeLabels(from, to label.Label) {
	s.labels.ChangeLabels(from, to)
}
