//go:build debug

package objectstore

import "strings"

// AssertInvariants panics if checkInvariants reports any violation. Built
// only with `-tags debug`; see
// invariants_release.go for the no-op compiled into ordinary builds.
func (s *Store) AssertInvariants() {
	if violations := s.checkInvariants(); len(violations) > 0 {
		panic("objectstore: invariant violation: " + strings.Join(violations, "; "))
	}
}
