package label_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dendritic-labs/incdbscan/label"
)

type RegistrySuite struct {
	suite.Suite
	r *label.Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.r = label.NewRegistry()
}

func (s *RegistrySuite) TestSetAndGetLabel() {
	s.r.SetLabel(1, label.Unclassified)
	lbl, ok := s.r.GetLabel(1)
	s.True(ok)
	s.Equal(label.Unclassified, lbl)
}

func (s *RegistrySuite) TestSetLabelMovesBetweenSets() {
	s.r.SetLabel(1, 0)
	s.r.SetLabel(1, 1)
	lbl, ok := s.r.GetLabel(1)
	s.True(ok)
	s.Equal(label.Label(1), lbl)
}

func (s *RegistrySuite) TestDelete() {
	s.r.SetLabel(1, label.Unclassified)
	s.r.Delete(1)
	_, ok := s.r.GetLabel(1)
	s.False(ok)
}

func (s *RegistrySuite) TestGetLabelAbsent() {
	_, ok := s.r.GetLabel(42)
	s.False(ok)
}

func (s *RegistrySuite) TestChangeLabels() {
	s.r.SetLabel(1, 0)
	s.r.SetLabel(2, 0)
	s.r.ChangeLabels(0, 1)
	l1, _ := s.r.GetLabel(1)
	l2, _ := s.r.GetLabel(2)
	s.Equal(label.Label(1), l1)
	s.Equal(label.Label(1), l2)
}

func (s *RegistrySuite) TestChangeLabelsNoOpWhenSame() {
	s.r.SetLabel(1, 0)
	s.r.ChangeLabels(0, 0)
	lbl, ok := s.r.GetLabel(1)
	s.True(ok)
	s.Equal(label.Label(0), lbl)
}

func (s *RegistrySuite) TestNextClusterLabelEmpty() {
	s.Equal(label.FirstCluster, s.r.NextClusterLabel())
}

func (s *RegistrySuite) TestNextClusterLabelOnlySentinels() {
	s.r.SetLabel(1, label.Noise)
	s.r.SetLabel(2, label.Unclassified)
	s.Equal(label.FirstCluster, s.r.NextClusterLabel())
}

func (s *RegistrySuite) TestNextClusterLabelAfterAllocation() {
	s.r.SetLabel(1, 0)
	s.Equal(label.Label(1), s.r.NextClusterLabel())
}

func (s *RegistrySuite) TestNextClusterLabelNotReusedAfterDissolve() {
	s.r.SetLabel(1, 0)
	s.r.SetLabel(1, label.Noise)
	s.Equal(label.Label(1), s.r.NextClusterLabel())
}

func (s *RegistrySuite) TestSetLabelsBulk() {
	s.r.SetLabel(1, label.Unclassified)
	s.r.SetLabel(2, label.Unclassified)
	s.r.SetLabel(3, label.Unclassified)
	s.r.SetLabels([]uint64{1, 2, 3}, 5)
	for _, p := range []uint64{1, 2, 3} {
		lbl, ok := s.r.GetLabel(p)
		s.True(ok)
		s.Equal(label.Label(5), lbl)
	}
}
