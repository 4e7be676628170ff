package spatial

import (
	"math"
)

// BearingAlgorithm computes a compass bearing in degrees between two
// coordinates. Results are normalized into [0, 360), where 0 is North and
// 90 is East
type BearingAlgorithm interface {
	// Calculate returns the bearing in degrees from from to to
	Calculate(from, to Coordinate) float64

	// CalculateRaw returns the bearing in degrees between two raw lat/lon
	// pairs. Agrees exactly with Calculate
	CalculateRaw(lat1, lon1, lat2, lon2 float64) float64
}

// InitialBearing calculates the forward azimuth of the great circle at the
// starting point
type InitialBearing struct{}

// Calculate returns the initial bearing in degrees
func (b InitialBearing) Calculate(from, to Coordinate) float64 {
	return b.CalculateRaw(from.Lat, from.Lon, to.Lat, to.Lon)
}

// CalculateRaw returns the initial bearing in degrees between raw pairs
func (b InitialBearing) CalculateRaw(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lonDiff := (lon2 - lon1) * math.Pi / 180

	y := math.Sin(lonDiff) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) - math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(lonDiff)
	bearing := math.Atan2(y, x)

	// Convert to degrees and normalize to 0-360
	return NormalizeBearing(bearing * 180 / math.Pi)
}

// FinalBearing calculates the bearing of arrival at the destination: the
// initial bearing measured in the opposite direction, reversed
type FinalBearing struct{}

// Calculate returns the final bearing in degrees
func (b FinalBearing) Calculate(from, to Coordinate) float64 {
	return b.CalculateRaw(from.Lat, from.Lon, to.Lat, to.Lon)
}

// CalculateRaw returns the final bearing in degrees between raw pairs
func (b FinalBearing) CalculateRaw(lat1, lon1, lat2, lon2 float64) float64 {
	reverse := InitialBearing{}.CalculateRaw(lat2, lon2, lat1, lon1)
	return NormalizeBearing(reverse + 180)
}

// RhumbLineBearing calculates the constant compass bearing of the loxodrome
// between two points, using the Mercator-projected latitude difference
type RhumbLineBearing struct{}

// Calculate returns the rhumb-line bearing in degrees
func (b RhumbLineBearing) Calculate(from, to Coordinate) float64 {
	return b.CalculateRaw(from.Lat, from.Lon, to.Lat, to.Lon)
}

// CalculateRaw returns the rhumb-line bearing in degrees between raw pairs
func (b RhumbLineBearing) CalculateRaw(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	// Normalize the longitude delta into (-π, π] so paths crossing the
	// antimeridian take the short way around
	for dLon > math.Pi {
		dLon -= 2 * math.Pi
	}
	for dLon <= -math.Pi {
		dLon += 2 * math.Pi
	}

	dPsi := math.Log(math.Tan(math.Pi/4+lat2Rad/2) / math.Tan(math.Pi/4+lat1Rad/2))
	return NormalizeBearing(math.Atan2(dLon, dPsi) * 180 / math.Pi)
}
