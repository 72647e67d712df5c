//go:build !debug

package objectstore

// AssertInvariants is a no-op in ordinary builds. Build with `-tags debug`
// to enable the checks in invariants_debug.go.
func (s *Store) AssertInvariants() {}
