package pathdetail

import (
	"golang.org/x/exp/slices"

	"github.com/kairoute/turnguide/pkg/geo"
	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/weighting"
)

// Intersection is the value an IntersectionBuilder run carries: the
// fan-out of alternatives at the node the edge departs from, ordered
// by bearing starting from north, clockwise.
type Intersection struct {
	// Out is the position, within Bearings/Entries, of the alternative
	// actually taken.
	Out int
	// In is the position of the alternative the path arrived from
	// (its reverse traversal, read as an outgoing direction from the
	// junction); HasIn is false at the path's first node, which has no
	// preceding junction.
	In      int
	HasIn   bool
	Entries []bool
	Bearings []int
}

type bearingAlt struct {
	edge    graph.DirectedEdgeView
	bearing int
}

func alternativeBearings(facade graph.Facade, v int32) []bearingAlt {
	vLat, vLon := facade.LatLon(v)
	alts := facade.EdgesFrom(v)
	out := make([]bearingAlt, len(alts))
	for i, alt := range alts {
		otherLat, otherLon := facade.LatLon(alt.AdjNode)
		deg := int(geo.BearingTo(vLat, vLon, otherLat, otherLon))
		out[i] = bearingAlt{edge: alt, bearing: deg}
	}
	slices.SortFunc(out, func(a, b bearingAlt) int { return a.bearing - b.bearing })
	return out
}

// IntersectionBuilder never coalesces edges into a shared run: every
// edge departs from its own junction, so every edge gets its own
// Intersection value.
type IntersectionBuilder struct{}

func (IntersectionBuilder) Value(facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) interface{} {
	e := edges[i]
	sorted := alternativeBearings(facade, e.BaseNode)

	result := Intersection{
		Out:      -1,
		In:       -1,
		Entries:  make([]bool, len(sorted)),
		Bearings: make([]int, len(sorted)),
	}

	var prevEdgeID int32 = -1
	if i > 0 {
		prevEdgeID = edges[i-1].EdgeID
		result.HasIn = true
	}

	for idx, alt := range sorted {
		result.Bearings[idx] = alt.bearing
		result.Entries[idx] = weighting.Routable(w, alt.edge, false)
		if alt.edge.EdgeID == e.EdgeID {
			result.Out = idx
		}
		if result.HasIn && alt.edge.EdgeID == prevEdgeID {
			result.In = idx
		}
	}
	return result
}

func (IntersectionBuilder) SameRun(cur interface{}, facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) bool {
	return false
}
