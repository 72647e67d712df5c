package pointid

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// ID identifies a distinct coordinate vector within one process lifetime.
type ID = uint64

// Hash returns the point identifier for coords: a 64-bit xxhash digest of
// the vector's 8-bytes-per-double byte layout in host endianness, with the
// top bit cleared so the result also fits a signed 63-bit space.
//
// coords is reinterpreted as a byte slice in place (no copy), mirroring
// the raw byte-slice view the reference implementation takes of its
// coordinate array.
func Hash(coords []float64) ID {
	if len(coords) == 0 {
		return xxhash.Sum64(nil) >> 1
	}
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&coords[0])), len(coords)*8)
	return xxhash.Sum64(bytes) >> 1
}
