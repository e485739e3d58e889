// Package weighting declares the routability collaborator consumed by
// path reconstruction and junction-alternative enumeration. Like
// pkg/graph, it names a contract rather than implementing a router;
// the weighting's own construction (vehicle profile, turn-cost tables)
// happens entirely outside this module.
package weighting

import (
	"math"

	"github.com/kairoute/turnguide/pkg/graph"
)

// Weighting mirrors the teacher's edge.Weight/turn-cost plumbing in
// bidirectional_dijkstra_ch.go, generalized from a CH-specific struct
// into the interface the facade-based synthesizer needs.
type Weighting interface {
	// EdgeWeight returns the routing cost of traversing edge in the
	// given direction; +Inf means the edge is not traversable that way.
	EdgeWeight(edge graph.DirectedEdgeView, reverse bool) float64
	// EdgeMillis returns the travel time, in milliseconds, of
	// traversing edge in the given direction.
	EdgeMillis(edge graph.DirectedEdgeView, reverse bool) int64
	// TurnWeight returns the extra routing cost of the turn from
	// inEdgeID to outEdgeID via viaNode; 0 when hasTurnCosts is false.
	TurnWeight(inEdgeID, viaNode, outEdgeID int32) float64
	// TurnMillis is the time-domain counterpart of TurnWeight.
	TurnMillis(inEdgeID, viaNode, outEdgeID int32) int64
	HasTurnCosts() bool
}

// Routable reports whether edge can be traversed in the outgoing
// direction under w, i.e. whether it is a real alternative at a
// junction. Grounded on the "routability under active weighting" design
// note: an alternative only counts if it has finite weight.
func Routable(w Weighting, edge graph.DirectedEdgeView, reverse bool) bool {
	weight := w.EdgeWeight(edge, reverse)
	return weight >= 0 && !math.IsInf(weight, 1)
}
