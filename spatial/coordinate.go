package spatial

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Earth radius constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// Coordinate represents a geographic point in decimal degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewCoordinate creates a Coordinate and validates its ranges:
// latitude must be within [-90, 90], longitude within [-180, 180].
// Algorithms in this package assume validated input and do not re-check
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}

// LatLng converts the coordinate to an S2 LatLng
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}
