// Package incdbscan maintains a density-based clustering of a dynamically
// changing point set under single-point insertions and deletions. Each
// call to Insert or Delete repairs the clustering in place, touching only
// the locally affected neighborhood, and leaves the engine in the same
// labeled state a batch DBSCAN re-run over the current point multiset
// would produce.
//
// Engine owns an objectstore.Store (per-point records, neighbor graph,
// spatial index, and label registry) and layers the update procedures on
// top: which points crossed the core threshold, how cluster identity
// propagates along newly core-connected points, when insertions merge
// clusters, when deletions split them, and how border points get
// reassigned. See insert.go, delete.go, and objectstore/splitbfs.go.
package incdbscan
