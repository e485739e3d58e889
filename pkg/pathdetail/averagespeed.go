package pathdetail

import (
	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/weighting"
)

// ShortEdgeThresholdM is the length below which an edge is absorbed
// into the previous average-speed run regardless of its own speed,
// avoiding spurious one-point runs from short connector edges.
const ShortEdgeThresholdM = 1.0

// AverageSpeedBuilder partitions by the edge's forward speed.
//
// On a reverse-traversed path the leading run's value is left nil: the
// node the reverse traversal starts from is the forward path's last
// node, which never had an incoming edge resolved for it in that
// direction, so there is nothing to report speed for until the first
// edge has actually been walked. Ported from the upstream null-first-
// value quirk PathTest's testCalcAverageSpeedDetailsWithShortDistances_issue1848
// pins down: the reverse path gets one extra detail run, its first
// value null, because the undefined leading value can't coalesce with
// what follows.
type AverageSpeedBuilder struct{}

func (AverageSpeedBuilder) Value(facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) interface{} {
	if reverse && i == 0 {
		return nil
	}
	return edges[i].Speed()
}

func (AverageSpeedBuilder) SameRun(cur interface{}, facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) bool {
	e := edges[i]
	if e.Distance() < ShortEdgeThresholdM {
		return true
	}
	if cur == nil {
		return false
	}
	speed, ok := cur.(float64)
	return ok && speed == e.Speed()
}
