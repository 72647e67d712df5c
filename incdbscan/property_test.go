package incdbscan_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dendritic-labs/incdbscan"
	"github.com/dendritic-labs/incdbscan/label"
)

// PropertySuite cross-checks the incremental engine's partition against
// a brute-force batch DBSCAN run on the same final point multiset, over
// randomized insert/delete sequences. This is the verification spec.md
// §9's open question on the split-BFS's endpoint-only merge calls for:
// trusting the resulting *partition*, not the rule, by comparison
// against an independent reference rather than by analysis alone.
type PropertySuite struct {
	suite.Suite
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

const (
	propertyEps    = 1.0
	propertyMinPts = 3
	propertyP      = 2.0
)

func (s *PropertySuite) TestRandomizedSequencesMatchBatchReference() {
	for seed := int64(0); seed < 12; seed++ {
		r := rand.New(rand.NewSource(seed))
		e, err := incdbscan.New(propertyEps, propertyMinPts, propertyP)
		s.Require().NoError(err)

		counts := make(map[[2]float64]int)

		for step := 0; step < 60; step++ {
			p := randomGridPoint(r)
			if counts[p] > 0 && r.Float64() < 0.35 {
				e.Delete(p[:])
				counts[p]--
			} else {
				e.Insert(p[:])
				counts[p]++
			}
		}

		var points [][2]float64
		for p, n := range counts {
			if n > 0 {
				points = append(points, p)
			}
		}

		got := make(map[[2]float64]label.Label)
		for _, p := range points {
			lbl, ok := e.GetLabel(p[:])
			s.Require().True(ok)
			got[p] = lbl
		}

		want := batchDBSCAN(points, counts, propertyEps, propertyMinPts)

		s.Require().True(partitionsEquivalent(got, want), "seed %d: partitions diverge\nincremental=%v\nbatch=%v", seed, got, want)
	}
}

// randomGridPoint samples from a coarse grid so repeated coordinates
// (duplicate-count semantics) and close neighbors (core/border/merge
// logic) both occur often within a short sequence.
func randomGridPoint(r *rand.Rand) [2]float64 {
	return [2]float64{float64(r.Intn(5)) * 0.5, float64(r.Intn(5)) * 0.5}
}

// batchDBSCAN is an intentionally simple reference implementation: plain
// DBSCAN over the final point set, used only to check that the
// incremental engine's partition matches what a from-scratch run would
// produce. It is not part of the production engine.
func batchDBSCAN(points [][2]float64, counts map[[2]float64]int, eps float64, minPts int) map[[2]float64]label.Label {
	n := len(points)
	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if dist2(points[i], points[j]) <= eps*eps {
				neighbors[i] = append(neighbors[i], j)
			}
		}
	}

	// neighbor_count is count-weighted: a point's own multiplicity plus
	// the multiplicity of every distinct neighboring coordinate.
	isCore := make([]bool, n)
	for i := 0; i < n; i++ {
		nc := counts[points[i]]
		for _, j := range neighbors[i] {
			nc += counts[points[j]]
		}
		isCore[i] = nc >= minPts
	}

	result := make(map[[2]float64]label.Label, n)
	assigned := make([]bool, n)
	next := label.FirstCluster

	for i := 0; i < n; i++ {
		if assigned[i] || !isCore[i] {
			continue
		}
		// Flood-fill this core's cluster via core-connected points.
		queue := []int{i}
		assigned[i] = true
		members := []int{i}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			if !isCore[v] {
				continue
			}
			for _, w := range neighbors[v] {
				if assigned[w] {
					continue
				}
				assigned[w] = true
				members = append(members, w)
				queue = append(queue, w)
			}
		}
		for _, m := range members {
			result[points[m]] = next
		}
		next++
	}

	for i := 0; i < n; i++ {
		if isCore[i] {
			continue
		}
		best := label.Label(math.MinInt64)
		found := false
		for _, w := range neighbors[i] {
			if !isCore[w] {
				continue
			}
			found = true
			if result[points[w]] > best {
				best = result[points[w]]
			}
		}
		if found {
			result[points[i]] = best
		} else {
			result[points[i]] = label.Noise
		}
	}

	return result
}

func dist2(a, b [2]float64) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}

// partitionsEquivalent checks that two label assignments over the same
// key set induce the same partition, ignoring actual label values and
// ignoring NOISE (which is not a cluster, so it needs no id agreement
// beyond both sides calling the same points NOISE).
func partitionsEquivalent(a, b map[[2]float64]label.Label) bool {
	if len(a) != len(b) {
		return false
	}

	mapping := make(map[label.Label]label.Label)
	reverse := make(map[label.Label]label.Label)

	for p, la := range a {
		lb, ok := b[p]
		if !ok {
			return false
		}
		if la == label.Noise || lb == label.Noise {
			if la != lb {
				return false
			}
			continue
		}
		if existing, ok := mapping[la]; ok {
			if existing != lb {
				return false
			}
		} else {
			mapping[la] = lb
		}
		if existing, ok := reverse[lb]; ok {
			if existing != la {
				return false
			}
		} else {
			reverse[lb] = la
		}
	}
	return true
}
