package pathdetail

import (
	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/weighting"
)

// DistanceBuilder partitions by an edge's length.
type DistanceBuilder struct{}

func (DistanceBuilder) Value(facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) interface{} {
	return edges[i].Distance()
}

func (DistanceBuilder) SameRun(cur interface{}, facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) bool {
	dist, ok := cur.(float64)
	return ok && dist == edges[i].Distance()
}
