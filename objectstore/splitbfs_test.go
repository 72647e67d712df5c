package objectstore_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dendritic-labs/incdbscan/objectstore"
	"github.com/dendritic-labs/incdbscan/pointid"
)

type SplitBFSSuite struct {
	suite.Suite
	s *objectstore.Store
}

func TestSplitBFSSuite(t *testing.T) {
	suite.Run(t, new(SplitBFSSuite))
}

func (s *SplitBFSSuite) SetupTest() {
	s.s = objectstore.New(0.7, 2, 2.0)
}

func (s *SplitBFSSuite) TestSingleSeedReturnsNil() {
	a := s.s.InsertObject([]float64{0, 0})
	s.Nil(s.s.SplitComponents([]pointid.ID{a}))
}

func (s *SplitBFSSuite) TestEmptySeedsReturnsNil() {
	s.Nil(s.s.SplitComponents(nil))
}

func (s *SplitBFSSuite) TestTwoDisconnectedSeedsReportOneMinorComponent() {
	a := s.s.InsertObject([]float64{0, 0})
	b := s.s.InsertObject([]float64{0.5, 0})

	c := s.s.InsertObject([]float64{10, 10})
	d := s.s.InsertObject([]float64{10.5, 10})

	comps := s.s.SplitComponents([]pointid.ID{a, c})
	s.Require().Len(comps, 1)

	_, aInResult := comps[0][a]
	_, bInResult := comps[0][b]
	_, cInResult := comps[0][c]
	_, dInResult := comps[0][d]

	// Exactly one side is reported (the non-largest); the other (the
	// largest, by discovery count) keeps the original label implicitly.
	s.True((aInResult && bInResult && !cInResult && !dInResult) ||
		(!aInResult && !bInResult && cInResult && dInResult))
}

func (s *SplitBFSSuite) TestMergingNonTreeEdgeKeepsSingleComponent() {
	// A 4-cycle: every vertex core-connected to every other via two
	// paths, so seeding from two opposite corners must not report a
	// split — both seeds converge into the same final component.
	a := s.s.InsertObject([]float64{0, 0})
	b := s.s.InsertObject([]float64{0.5, 0})
	c := s.s.InsertObject([]float64{0.5, 0.5})
	d := s.s.InsertObject([]float64{0, 0.5})
	_ = b
	_ = d

	comps := s.s.SplitComponents([]pointid.ID{a, c})
	s.Len(comps, 0)
}
