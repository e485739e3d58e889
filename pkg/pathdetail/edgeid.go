package pathdetail

import (
	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/weighting"
)

// EdgeIDBuilder and EdgeKeyBuilder never coalesce two distinct edges
// (ids/keys are unique per traversal), so every edge opens its own
// run; they exist for callers that want the id/key detail map shaped
// the same way as the other builders rather than reading it straight
// off Path.Edges.

type EdgeIDBuilder struct{}

func (EdgeIDBuilder) Value(facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) interface{} {
	return edges[i].EdgeID
}

func (EdgeIDBuilder) SameRun(cur interface{}, facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) bool {
	id, ok := cur.(int32)
	return ok && id == edges[i].EdgeID
}

type EdgeKeyBuilder struct{}

func (EdgeKeyBuilder) Value(facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) interface{} {
	return edges[i].EdgeKey()
}

func (EdgeKeyBuilder) SameRun(cur interface{}, facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) bool {
	key, ok := cur.(int64)
	return ok && key == edges[i].EdgeKey()
}
