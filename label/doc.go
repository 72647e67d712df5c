// Package label maintains the bidirectional mapping between points and
// cluster labels, and allocates fresh cluster ids.
//
// A Label is one of two sentinels (Unclassified, Noise) or a non-negative
// cluster id allocated monotonically by NextClusterLabel. Cluster ids are
// never reused once their cluster dissolves — the allocator is only ever
// bounded below by the current maximum live label.
package label
