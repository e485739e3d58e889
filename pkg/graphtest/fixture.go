// Package graphtest is an in-memory, hand-built implementation of
// pkg/graph.Facade and pkg/weighting.Weighting used only by this
// module's own tests. It never parses OSM, never touches disk, and
// exists solely so pkg/guidance and pkg/pathdetail are testable
// without a full contraction-hierarchies stack.
package graphtest

import (
	"fmt"

	"github.com/kairoute/turnguide/pkg/geo"
	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/navcodes"
)

// EdgeSpec describes one edge to add to a Fixture. Distance, speeds
// and geometry are all given in the A->B direction the edge was added
// with; Fixture derives the B->A view automatically.
type EdgeSpec struct {
	Name          string
	Distance      float64
	SpeedAB       float64
	SpeedBA       float64
	AccessAB      bool
	AccessBA      bool
	RoadClass     graph.RoadClass
	RoadClassLink bool
	RoadEnv       graph.RoadEnvironment
	Roundabout    bool
	// GeometryAB holds pillar points strictly between A and B, in A->B
	// order. Leave nil for an edge with no intermediate shape points.
	GeometryAB []geo.Coordinate
}

type edgeRecord struct {
	id         int32
	nodeA      int32
	nodeB      int32
	spec       EdgeSpec
}

// Fixture is a small, explicit graph: nodes are added in order and
// referenced by the int32 index AddNode returns.
type Fixture struct {
	nodes []geo.Coordinate
	edges []edgeRecord
}

func NewFixture() *Fixture {
	return &Fixture{}
}

func (f *Fixture) AddNode(lat, lon float64) int32 {
	id := int32(len(f.nodes))
	f.nodes = append(f.nodes, geo.NewCoordinate(lat, lon))
	return id
}

// AddEdge registers an edge between nodeA and nodeB and returns its
// edge id. AccessAB/AccessBA both default to true whenever the spec
// leaves them both false, whatever its other fields say, a plain
// two-way street fixture being the common case in tests; an edge closed
// in both directions therefore cannot be described here.
func (f *Fixture) AddEdge(nodeA, nodeB int32, spec EdgeSpec) int32 {
	if !spec.AccessAB && !spec.AccessBA {
		spec.AccessAB = true
		spec.AccessBA = true
	}
	id := int32(len(f.edges))
	f.edges = append(f.edges, edgeRecord{id: id, nodeA: nodeA, nodeB: nodeB, spec: spec})
	return id
}

func (f *Fixture) NodeCount() int {
	return len(f.nodes)
}

func (f *Fixture) LatLon(nodeID int32) (float64, float64) {
	c := f.nodes[nodeID]
	return c.Lat, c.Lon
}

func (f *Fixture) EdgesFrom(nodeID int32) []graph.DirectedEdgeView {
	var out []graph.DirectedEdgeView
	for _, rec := range f.edges {
		switch nodeID {
		case rec.nodeA:
			out = append(out, forwardView(rec))
		case rec.nodeB:
			out = append(out, reverseView(rec))
		}
	}
	return out
}

func (f *Fixture) EdgeByID(edgeID int32, baseNode int32) (graph.DirectedEdgeView, error) {
	if edgeID < 0 || int(edgeID) >= len(f.edges) {
		return graph.DirectedEdgeView{}, navcodes.Newf(navcodes.GraphContractViolation, "unknown edge id %d", edgeID)
	}
	rec := f.edges[edgeID]
	switch baseNode {
	case rec.nodeA:
		return forwardView(rec), nil
	case rec.nodeB:
		return reverseView(rec), nil
	default:
		return graph.DirectedEdgeView{}, navcodes.Newf(navcodes.GraphContractViolation,
			"node %d is not an endpoint of edge %d", baseNode, edgeID)
	}
}

func forwardView(rec edgeRecord) graph.DirectedEdgeView {
	return graph.DirectedEdgeView{
		BaseNode:         rec.nodeA,
		AdjNode:          rec.nodeB,
		EdgeID:           rec.id,
		Direction:        0,
		DistanceM:        rec.spec.Distance,
		SpeedKMH:         rec.spec.SpeedAB,
		Access:           rec.spec.AccessAB,
		RoadClassV:       rec.spec.RoadClass,
		RoadClassLinkV:   rec.spec.RoadClassLink,
		RoadEnvironmentV: rec.spec.RoadEnv,
		RoundaboutV:      rec.spec.Roundabout,
		NameV:            rec.spec.Name,
		GeometryV:        rec.spec.GeometryAB,
	}
}

func reverseView(rec edgeRecord) graph.DirectedEdgeView {
	return graph.DirectedEdgeView{
		BaseNode:         rec.nodeB,
		AdjNode:          rec.nodeA,
		EdgeID:           rec.id,
		Direction:        1,
		DistanceM:        rec.spec.Distance,
		SpeedKMH:         rec.spec.SpeedBA,
		Access:           rec.spec.AccessBA,
		RoadClassV:       rec.spec.RoadClass,
		RoadClassLinkV:   rec.spec.RoadClassLink,
		RoadEnvironmentV: rec.spec.RoadEnv,
		RoundaboutV:      rec.spec.Roundabout,
		NameV:            rec.spec.Name,
		GeometryV:        geo.ReverseCoordinates(rec.spec.GeometryAB),
	}
}

func (f *Fixture) String() string {
	return fmt.Sprintf("graphtest.Fixture{nodes=%d, edges=%d}", len(f.nodes), len(f.edges))
}
