// Package pointid derives a stable 63-bit identifier from a coordinate
// vector's byte representation.
//
// Two coordinate vectors with identical contents hash to the same ID and
// therefore share one logical point record; the identifier is stable only
// within a single process (cross-process/cross-version stability is not a
// contract — see spec §6).
package pointid
