package geo

import "github.com/twpayne/go-polyline"

// EncodePolyline renders points as a Google polyline-encoded string, the
// same codec the teacher's RenderPath helper used for rendering shortest
// paths, so that an InstructionList's point ranges can be handed to a map
// widget without re-deriving geometry.
func EncodePolyline(points []Coordinate) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat, p.Lon}
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline is the inverse of EncodePolyline.
func DecodePolyline(encoded string) ([]Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	points := make([]Coordinate, len(coords))
	for i, c := range coords {
		points[i] = NewCoordinate(c[0], c[1])
	}
	return points, nil
}
