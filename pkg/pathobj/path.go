// Package pathobj reconstructs a traversal-ordered Path from a
// predecessor chain produced by a shortest-path search, generalizing
// the teacher's cameFromPair walk in bidirectional_dijkstra_ch.go from
// a map[int32]cameFromPair into an explicit linked structure so this
// package never depends on a search's internal bookkeeping.
package pathobj

import (
	"github.com/kairoute/turnguide/pkg/geo"
	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/navcodes"
	"github.com/kairoute/turnguide/pkg/weighting"
)

// SPTEntry is one link in a shortest-path-tree predecessor chain,
// child->parent, terminated by the sentinel EdgeID == -1.
type SPTEntry struct {
	EdgeID int32
	NodeID int32
	Weight float64
	Parent *SPTEntry
}

// Path is the reconstructed route: an ordered list of directed edge
// traversals plus endpoints, weight, time and distance totals.
type Path struct {
	Found    bool
	FromNode int32
	ToNode   int32
	Edges    []graph.DirectedEdgeView
	Weight   float64
	TimeMS   int64
	Distance float64
}

// EmptyPath returns the not-found sentinel result (spec's EmptyPath
// error kind: not an error, just found=false with no edges).
func EmptyPath(fromNode, toNode int32) Path {
	return Path{Found: false, FromNode: fromNode, ToNode: toNode}
}

// NewPathFromSPT walks entry's Parent chain to the sentinel, reverses
// it into traversal order, and resolves each step's DirectedEdgeView
// against facade. Failure to resolve a traversed edge id is
// PathMalformed, per the teacher's own "no path found" error style in
// alternative_route_xchv.go, upgraded to a typed navcodes.Error.
func NewPathFromSPT(entry *SPTEntry, fromNode, toNode int32, facade graph.Facade, w weighting.Weighting) (Path, error) {
	if entry == nil {
		return EmptyPath(fromNode, toNode), nil
	}

	var reversed []*SPTEntry
	for cur := entry; cur != nil && cur.EdgeID != -1; cur = cur.Parent {
		reversed = append(reversed, cur)
	}
	if len(reversed) == 0 {
		return Path{Found: true, FromNode: fromNode, ToNode: toNode}, nil
	}

	edges := make([]graph.DirectedEdgeView, len(reversed))
	for i, link := range reversed {
		baseNode := link.Parent.NodeID
		edge, err := facade.EdgeByID(link.EdgeID, baseNode)
		if err != nil {
			return Path{}, navcodes.Wrap(navcodes.PathMalformed, "resolving edge in predecessor chain", err)
		}
		// reversed[] is child-to-parent; flip into traversal order.
		edges[len(reversed)-1-i] = edge
	}

	path := Path{Found: true, FromNode: fromNode, ToNode: toNode, Edges: edges}

	var prevEdgeID int32 = -1
	for i, edge := range edges {
		path.Distance += edge.Distance()
		path.Weight += w.EdgeWeight(edge, false)
		path.TimeMS += w.EdgeMillis(edge, false)

		if i > 0 && w.HasTurnCosts() {
			path.Weight += w.TurnWeight(prevEdgeID, edge.BaseNode, edge.EdgeID)
			path.TimeMS += w.TurnMillis(prevEdgeID, edge.BaseNode, edge.EdgeID)
		}
		prevEdgeID = edge.EdgeID
	}

	return path, nil
}

// Points concatenates baseLatLon(edges[0]), then each edge's pillar
// geometry followed by its adjLatLon, per the teacher's calcPoints
// convention (pillars exclude tower endpoints, callers compose the
// full line).
func (p Path) Points(facade graph.Facade) []geo.Coordinate {
	if len(p.Edges) == 0 {
		if !p.Found {
			return nil
		}
		// zero-length path: fromNode == toNode, the traveler is already
		// there, so the point list is just that one node.
		lat, lon := facade.LatLon(p.FromNode)
		return []geo.Coordinate{geo.NewCoordinate(lat, lon)}
	}

	points := make([]geo.Coordinate, 0, len(p.Edges)*2)
	firstLat, firstLon := facade.LatLon(p.Edges[0].BaseNode)
	points = append(points, geo.NewCoordinate(firstLat, firstLon))

	for _, edge := range p.Edges {
		points = append(points, edge.Geometry()...)
		lat, lon := facade.LatLon(edge.AdjNode)
		points = append(points, geo.NewCoordinate(lat, lon))
	}
	return points
}
