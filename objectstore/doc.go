// Package objectstore owns the per-point records, the undirected neighbor
// graph, the spatial index, and the cluster-label registry for a clustered
// point set, and mediates every mutation of them.
//
// No caller reaches into the graph, the spatial index, or the label
// registry directly: InsertObject and DeleteObject are the only ways the
// point set changes, and every other method is a read or a label write
// (SetLabel, SetLabels, ChangeLabels). This is what keeps the
// cross-structure invariants (a point's neighbor_count matching the
// count-weighted size of its closed neighborhood in the graph, the
// spatial index and the graph agreeing on the live id
// set, ...) from being violated by a caller that only knows about one of
// the structures.
//
// The neighbor graph is arena-backed (see graph.go): a point's vertex
// handle is stable for the point's lifetime, even as unrelated points are
// inserted and removed elsewhere in the arena.
package objectstore
