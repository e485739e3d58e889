package graphtest

import (
	"math"

	"github.com/kairoute/turnguide/pkg/graph"
)

// FlatWeighting is the simplest Weighting that satisfies
// pkg/weighting.Weighting: cost is travel time at the edge's recorded
// speed, access controls routability, and turn costs are disabled.
// Grounded on the teacher's own "currEdgeSpeed := edge.Dist /
// edge.Weight" relationship in driving_instruction.go.
type FlatWeighting struct {
	// Forbidden marks specific (edgeID, reverse) combinations as
	// non-routable regardless of Access, letting a test fixture model
	// one-way restrictions the facade's Access flag doesn't capture on
	// its own (e.g. the active vehicle profile forbidding an edge).
	Forbidden map[forbiddenKey]bool
}

type forbiddenKey struct {
	edgeID  int32
	reverse bool
}

func NewFlatWeighting() *FlatWeighting {
	return &FlatWeighting{Forbidden: make(map[forbiddenKey]bool)}
}

func (w *FlatWeighting) Forbid(edgeID int32, reverse bool) {
	w.Forbidden[forbiddenKey{edgeID, reverse}] = true
}

func (w *FlatWeighting) EdgeWeight(edge graph.DirectedEdgeView, reverse bool) float64 {
	if !edge.Access || w.Forbidden[forbiddenKey{edge.EdgeID, reverse}] {
		return math.Inf(1)
	}
	if edge.SpeedKMH <= 0 {
		return math.Inf(1)
	}
	return edge.DistanceM / edge.SpeedKMH
}

func (w *FlatWeighting) EdgeMillis(edge graph.DirectedEdgeView, reverse bool) int64 {
	weight := w.EdgeWeight(edge, reverse)
	if math.IsInf(weight, 1) {
		return 0
	}
	hours := edge.DistanceM / 1000.0 / edge.SpeedKMH
	return int64(hours * 3600 * 1000)
}

func (w *FlatWeighting) TurnWeight(inEdgeID, viaNode, outEdgeID int32) float64 { return 0 }
func (w *FlatWeighting) TurnMillis(inEdgeID, viaNode, outEdgeID int32) int64   { return 0 }
func (w *FlatWeighting) HasTurnCosts() bool                                   { return false }
