package pathdetail

import (
	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/weighting"
)

// StreetNameBuilder partitions by street name; an empty name is a
// value in its own right, not a gap in the run sequence.
type StreetNameBuilder struct{}

func (StreetNameBuilder) Value(facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) interface{} {
	return edges[i].Name()
}

func (StreetNameBuilder) SameRun(cur interface{}, facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) bool {
	name, ok := cur.(string)
	return ok && name == edges[i].Name()
}
