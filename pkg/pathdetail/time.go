package pathdetail

import (
	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/weighting"
)

// TimeBuilder partitions by an edge's traversal time in the direction
// travelled; consecutive edges only coalesce when they happen to cost
// exactly the same number of milliseconds.
type TimeBuilder struct{}

func (TimeBuilder) Value(facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) interface{} {
	return w.EdgeMillis(edges[i], false)
}

func (TimeBuilder) SameRun(cur interface{}, facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) bool {
	ms, ok := cur.(int64)
	return ok && ms == w.EdgeMillis(edges[i], false)
}
