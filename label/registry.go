package label

import "github.com/dendritic-labs/incdbscan/pointid"

// Label is a cluster identifier, or one of the two sentinel values below.
type Label = int64

const (
	// Unclassified marks a point just inserted, not yet assigned a label.
	// Transient: never observed externally once an update completes.
	Unclassified Label = -2

	// Noise marks a live point with no core neighbor.
	Noise Label = -1

	// FirstCluster is the first id NextClusterLabel ever hands out.
	FirstCluster Label = 0
)

// Registry is a bidirectional map between points and cluster labels.
//
// It keeps both directions — point→label and label→set(point) — in sync
// on every mutation, so label.ChangeLabels and getters never need to
// reconcile them on read.
type Registry struct {
	pointToLabel map[pointid.ID]Label
	labelToPoint map[Label]map[pointid.ID]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		pointToLabel: make(map[pointid.ID]Label),
		labelToPoint: make(map[Label]map[pointid.ID]struct{}),
	}
}

// SetLabel assigns label to point, removing it from any previous label's
// set first. Idempotent: setting the same label twice is a no-op beyond
// the redundant write.
func (r *Registry) SetLabel(point pointid.ID, lbl Label) {
	if prev, ok := r.pointToLabel[point]; ok {
		if set := r.labelToPoint[prev]; set != nil {
			delete(set, point)
		}
	}
	if r.labelToPoint[lbl] == nil {
		r.labelToPoint[lbl] = make(map[pointid.ID]struct{})
	}
	r.labelToPoint[lbl][point] = struct{}{}
	r.pointToLabel[point] = lbl
}

// SetLabels is the bulk form of SetLabel.
func (r *Registry) SetLabels(points []pointid.ID, lbl Label) {
	for _, p := range points {
		r.SetLabel(p, lbl)
	}
}

// GetLabel returns the label currently assigned to point, or false if
// point carries no label (never inserted, or fully removed).
func (r *Registry) GetLabel(point pointid.ID) (Label, bool) {
	lbl, ok := r.pointToLabel[point]
	return lbl, ok
}

// Delete removes point from both directions of the map.
func (r *Registry) Delete(point pointid.ID) {
	if lbl, ok := r.pointToLabel[point]; ok {
		if set := r.labelToPoint[lbl]; set != nil {
			delete(set, point)
		}
		delete(r.pointToLabel, point)
	}
}

// NextClusterLabel returns one greater than the maximum label currently
// known to the registry (including the negative sentinels, which are
// dominated by any proper label), or FirstCluster if the registry is
// empty or holds only sentinel labels. A label whose last point moved
// away stays known, so a dissolved cluster's id is not handed out again.
func (r *Registry) NextClusterLabel() Label {
	max := FirstCluster - 1
	found := false
	for lbl := range r.labelToPoint {
		found = true
		if lbl > max {
			max = lbl
		}
	}
	if !found {
		return FirstCluster
	}
	return max + 1
}

// ChangeLabels atomically reassigns every point currently carrying from
// to to instead. A no-op when from == to, so it never corrupts the
// inverse map by having a label delete itself.
func (r *Registry) ChangeLabels(from, to Label) {
	if from == to {
		return
	}
	affected, ok := r.labelToPoint[from]
	if !ok || len(affected) == 0 {
		return
	}
	delete(r.labelToPoint, from)
	if r.labelToPoint[to] == nil {
		r.labelToPoint[to] = make(map[pointid.ID]struct{})
	}
	for p := range affected {
		r.pointToLabel[p] = to
		r.labelToPoint[to][p] = struct{}{}
	}
}
