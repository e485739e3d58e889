package geo

import "github.com/kairoute/turnguide/pkg/util"

// Coordinate is a lat/lon pair. It is the point type shared by every
// package in this module: edge geometry, instruction point ranges, and
// path-detail runs are all expressed over []Coordinate.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Lat: lat, Lon: lon}
}

func NewCoordinates(lat, lon []float64) []Coordinate {
	coords := make([]Coordinate, len(lat))
	for i := range lat {
		coords[i] = NewCoordinate(lat[i], lon[i])
	}
	return coords
}

// ReverseCoordinates returns pillar geometry reversed for the opposite
// traversal direction of the same edge.
func ReverseCoordinates(points []Coordinate) []Coordinate {
	return util.ReverseG(points)
}
