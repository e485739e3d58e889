// Package graph declares the read-only facade the guidance and
// path-detail packages are driven by. It never constructs a graph: the
// contraction-hierarchies/CSR implementation lives in the calling
// application, this package only names the contract it must satisfy.
package graph

import "github.com/kairoute/turnguide/pkg/geo"

// RoadClass mirrors the teacher's road-class string constants
// ("motorway", "trunk", ...), promoted to a closed enum since the
// facade contract here is typed rather than an OSM-id lookup.
type RoadClass int

const (
	RoadClassUnclassified RoadClass = iota
	RoadClassMotorway
	RoadClassTrunk
	RoadClassPrimary
	RoadClassSecondary
	RoadClassTertiary
	RoadClassResidential
	RoadClassService
)

func (c RoadClass) String() string {
	switch c {
	case RoadClassMotorway:
		return "motorway"
	case RoadClassTrunk:
		return "trunk"
	case RoadClassPrimary:
		return "primary"
	case RoadClassSecondary:
		return "secondary"
	case RoadClassTertiary:
		return "tertiary"
	case RoadClassResidential:
		return "residential"
	case RoadClassService:
		return "service"
	default:
		return "unclassified"
	}
}

// IsMajor matches the teacher's isMajorRoad predicate in
// driving_instruction.go.
func (c RoadClass) IsMajor() bool {
	switch c {
	case RoadClassMotorway, RoadClassTrunk, RoadClassPrimary, RoadClassSecondary, RoadClassTertiary:
		return true
	default:
		return false
	}
}

// IsMotorwayLike matches the motorway/trunk pairing the motorway-fork
// branch of the instruction state machine needs.
func (c RoadClass) IsMotorwayLike() bool {
	return c == RoadClassMotorway || c == RoadClassTrunk
}

type RoadEnvironment int

const (
	RoadEnvironmentRoad RoadEnvironment = iota
	RoadEnvironmentFerry
	RoadEnvironmentTunnel
	RoadEnvironmentBridge
	RoadEnvironmentFord
)

func (e RoadEnvironment) String() string {
	switch e {
	case RoadEnvironmentFerry:
		return "ferry"
	case RoadEnvironmentTunnel:
		return "tunnel"
	case RoadEnvironmentBridge:
		return "bridge"
	case RoadEnvironmentFord:
		return "ford"
	default:
		return "road"
	}
}

// DirectedEdgeView is a read-only view of one directed traversal of an
// edge, oriented base->adj. It never mutates the underlying graph.
type DirectedEdgeView struct {
	BaseNode        int32
	AdjNode         int32
	EdgeID          int32
	Direction       int32 // directionBit: 0 forward, 1 reverse
	DistanceM       float64
	SpeedKMH        float64
	Access          bool
	RoadClassV      RoadClass
	RoadClassLinkV  bool
	RoadEnvironmentV RoadEnvironment
	RoundaboutV     bool
	NameV           string
	// GeometryV holds pillar points strictly between the tower
	// endpoints, in base->adj order, per the teacher's convention.
	GeometryV []geo.Coordinate
}

// EdgeKey is 2*edgeId + directionBit, so the same edge has two keys,
// one per traversal direction.
func (e DirectedEdgeView) EdgeKey() int64 {
	return 2*int64(e.EdgeID) + int64(e.Direction)
}

func (e DirectedEdgeView) Name() string              { return e.NameV }
func (e DirectedEdgeView) RoadClass() RoadClass       { return e.RoadClassV }
func (e DirectedEdgeView) RoadClassLink() bool        { return e.RoadClassLinkV }
func (e DirectedEdgeView) RoadEnvironment() RoadEnvironment { return e.RoadEnvironmentV }
func (e DirectedEdgeView) Roundabout() bool           { return e.RoundaboutV }
func (e DirectedEdgeView) Distance() float64          { return e.DistanceM }
func (e DirectedEdgeView) Speed() float64             { return e.SpeedKMH }
func (e DirectedEdgeView) Geometry() []geo.Coordinate { return e.GeometryV }

// Facade is the read-only graph collaborator consumed by pkg/guidance
// and pkg/pathdetail. Implementations must be safe for concurrent
// readers once construction has finished; the core never writes
// through it.
type Facade interface {
	NodeCount() int
	LatLon(nodeID int32) (lat, lon float64)
	// EdgesFrom enumerates all edges incident to nodeID, oriented
	// nodeID->other, regardless of direction of travel; callers filter
	// by Access/weight themselves.
	EdgesFrom(nodeID int32) []DirectedEdgeView
	// EdgeByID resolves a single traversal oriented baseNode->adjNode.
	EdgeByID(edgeID int32, baseNode int32) (DirectedEdgeView, error)
}
