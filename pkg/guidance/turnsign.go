package guidance

import (
	"github.com/kairoute/turnguide/pkg/geo"
	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/weighting"
)

// sameStreet mirrors the teacher's isSameName: empty names never
// compare equal to each other, since an empty name in OSM usually
// means "no name recorded", not "same street".
func sameStreet(a, b graph.DirectedEdgeView) bool {
	return a.Name() != "" && b.Name() != "" && a.Name() == b.Name()
}

func isLink(e graph.DirectedEdgeView) bool {
	return e.RoadClassLink()
}

// isMotorwayContext mirrors the teacher's isMajorRoad narrowed to the
// motorway/trunk pair the motorway-fork branch cares about.
func isMotorwayContext(a, b graph.DirectedEdgeView) bool {
	return a.RoadClass().IsMotorwayLike() && b.RoadClass().IsMotorwayLike()
}

// entryBearing is the bearing of the tangent arriving at edge's
// AdjNode: from the last pillar (or BaseNode, if edge has no pillars)
// to AdjNode.
func entryBearing(facade graph.Facade, edge graph.DirectedEdgeView) float64 {
	geomPoints := edge.Geometry()
	var fromLat, fromLon float64
	if len(geomPoints) > 0 {
		last := geomPoints[len(geomPoints)-1]
		fromLat, fromLon = last.Lat, last.Lon
	} else {
		fromLat, fromLon = facade.LatLon(edge.BaseNode)
	}
	toLat, toLon := facade.LatLon(edge.AdjNode)
	return geo.CalcOrientation(fromLat, fromLon, toLat, toLon)
}

// exitBearing is the bearing of the tangent leaving edge's BaseNode:
// from BaseNode to the first pillar (or AdjNode, if edge has none).
func exitBearing(facade graph.Facade, edge graph.DirectedEdgeView) float64 {
	fromLat, fromLon := facade.LatLon(edge.BaseNode)
	geomPoints := edge.Geometry()
	var toLat, toLon float64
	if len(geomPoints) > 0 {
		first := geomPoints[0]
		toLat, toLon = first.Lat, first.Lon
	} else {
		toLat, toLon = facade.LatLon(edge.AdjNode)
	}
	return geo.CalcOrientation(fromLat, fromLon, toLat, toLon)
}

// turnAngleAt returns the signed turn angle (§4.4) from incoming to
// outgoing at their shared junction.
func turnAngleAt(facade graph.Facade, incoming, outgoing graph.DirectedEdgeView) float64 {
	return geo.TurnAngle(entryBearing(facade, incoming), exitBearing(facade, outgoing))
}

// alternativesAt enumerates the outgoing, routable edges from v that
// are not the reverse traversal of excludeEdgeID, comparing by edge id
// rather than node id so parallel edges between the same two nodes are
// told apart, per the design note in spec §9.
func alternativesAt(facade graph.Facade, w weighting.Weighting, v int32, excludeEdgeID int32) []graph.DirectedEdgeView {
	var out []graph.DirectedEdgeView
	for _, e := range facade.EdgesFrom(v) {
		if e.EdgeID == excludeEdgeID {
			continue
		}
		if !weighting.Routable(w, e, false) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// hasComparableSlightAlternative reports whether alternatives (other
// than taken) contains an edge whose turn angle from incoming is also
// in the slight band and on the same side as taken's angle, the
// condition spec §4.2 step 7 uses to decide whether a slight turn must
// be called out to disambiguate a fork.
func hasComparableSlightAlternative(facade graph.Facade, incoming graph.DirectedEdgeView, taken graph.DirectedEdgeView, alternatives []graph.DirectedEdgeView, takenDelta float64) bool {
	for _, alt := range alternatives {
		if alt.EdgeID == taken.EdgeID {
			continue
		}
		delta := turnAngleAt(facade, incoming, alt)
		if geo.ClassifyAngle(delta) != geo.BandSlight {
			continue
		}
		if sameSide(delta, takenDelta) {
			return true
		}
	}
	return false
}

func sameSide(a, b float64) bool {
	return (a < 0) == (b < 0)
}

// straightAlternative looks for another alternative that also reads as
// straight-ahead from v, the case the teacher's GetTurnSign resolves
// with KEEP_LEFT/KEEP_RIGHT: two roads both continue roughly
// straight-on and the traveler needs telling which fork is theirs, even
// though the taken edge's own bearing alone looks unremarkable.
func straightAlternative(facade graph.Facade, incoming graph.DirectedEdgeView, taken graph.DirectedEdgeView, alternatives []graph.DirectedEdgeView) (delta float64, ok bool) {
	for _, alt := range alternatives {
		if alt.EdgeID == taken.EdgeID {
			continue
		}
		d := turnAngleAt(facade, incoming, alt)
		if geo.ClassifyAngle(d) == geo.BandStraight {
			return d, true
		}
	}
	return 0, false
}

// signForBand picks a Turn sign from a classified angle band and its
// side, for the normal/sharp/slight cases (straight and U-turn are
// handled by their own branches in the engine).
func signForBand(band geo.Band, delta float64) Sign {
	left := delta < 0
	switch band {
	case geo.BandSlight:
		if left {
			return SignSlightLeft
		}
		return SignSlightRight
	case geo.BandSharp:
		if left {
			return SignSharpLeft
		}
		return SignSharpRight
	default: // geo.BandNormal
		if left {
			return SignLeft
		}
		return SignRight
	}
}
