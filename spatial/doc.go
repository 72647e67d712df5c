// Package spatial provides a brute-force nearest-neighbor index over a
// flat coordinate buffer: O(1) insert, O(1) delete via swap-remove, O(n)
// radius query. It trades query speed for the insert/delete efficiency
// an incremental clustering engine actually needs; a tree index would
// pay rebalancing costs on every mutation that this workload doesn't
// tolerate.
package spatial
