package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// BearingTo returns the initial bearing in degrees [0, 360) from point one
// to point two, measured clockwise from north.
func BearingTo(lat1, lon1, lat2, lon2 float64) float64 {
	from := s2.LatLngFromDegrees(lat1, lon1)
	to := s2.LatLngFromDegrees(lat2, lon2)

	phi1, phi2 := from.Lat.Radians(), to.Lat.Radians()
	deltaLambda := to.Lng.Radians() - from.Lng.Radians()

	y := math.Sin(deltaLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLambda)
	theta := math.Atan2(y, x)

	deg := theta * (180 / math.Pi)
	return math.Mod(deg+360, 360)
}

// CalcOrientation returns the bearing from (lat1,lon1) to (lat2,lon2) as a
// signed angle in (-pi, pi], relative to east-of-north in the usual
// navigation convention (0 = north, positive = clockwise).
func CalcOrientation(lat1, lon1, lat2, lon2 float64) float64 {
	rad := toRadians(BearingTo(lat1, lon1, lat2, lon2))
	if rad > math.Pi {
		rad -= 2 * math.Pi
	}
	return rad
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// AlignOrientation shifts orientation by +-2pi so that it lies within pi of
// base, without changing which direction it points.
func AlignOrientation(base, orientation float64) float64 {
	if base >= 0 {
		if orientation < -math.Pi+base {
			return orientation + 2*math.Pi
		}
		return orientation
	}
	if orientation > math.Pi+base {
		return orientation - 2*math.Pi
	}
	return orientation
}

// NormalizeAngle folds a into (-pi, pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// TurnAngle returns the signed turn angle in (-pi, pi] between an inbound
// bearing and an outbound bearing, negative for left, positive for right.
func TurnAngle(inBearing, outBearing float64) float64 {
	aligned := AlignOrientation(inBearing, outBearing)
	return NormalizeAngle(aligned - inBearing)
}

// RoundaboutTurnAngle computes the signed sweep angle of a roundabout
// traversal from its entry bearing to its exit bearing. Clockwise
// roundabouts fold around pi+delta, counter-clockwise ones around
// -(pi-delta), matching the direction convention of the roundabout's
// physical travel, not the short-way turn angle TurnAngle would give.
func RoundaboutTurnAngle(entryBearing, exitBearing float64, clockwise bool) float64 {
	delta := AlignOrientation(entryBearing, exitBearing) - entryBearing
	if clockwise {
		return math.Pi + delta
	}
	return -(math.Pi - delta)
}

// Band classifies the magnitude of a turn angle into the bands §4.2 uses to
// pick an instruction sign.
type Band int

const (
	BandStraight Band = iota
	BandSlight
	BandNormal
	BandSharp
	BandUTurn
)

func ClassifyAngle(delta float64) Band {
	abs := math.Abs(delta)
	switch {
	case abs < 0.2:
		return BandStraight
	case abs < 0.8:
		return BandSlight
	case abs < 2.3:
		return BandNormal
	case abs < 2.9:
		return BandSharp
	default:
		return BandUTurn
	}
}

// ConcatPoints joins point slices in order, preserving the direction each
// was already given in.
func ConcatPoints(segments ...[]Coordinate) []Coordinate {
	total := 0
	for _, s := range segments {
		total += len(s)
	}
	out := make([]Coordinate, 0, total)
	for _, s := range segments {
		out = append(out, s...)
	}
	return out
}
