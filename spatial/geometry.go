package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Centroid calculates the arithmetic mean of a set of coordinates. Not a
// geodesic mean; acceptable for point sets spanning a small area
func Centroid(coords []Coordinate) Coordinate {
	if len(coords) == 0 {
		return Coordinate{}
	}

	var sumLat, sumLon float64
	for _, c := range coords {
		sumLat += c.Lat
		sumLon += c.Lon
	}

	return Coordinate{
		Lat: sumLat / float64(len(coords)),
		Lon: sumLon / float64(len(coords)),
	}
}

// RadiusOfGyration calculates the dispersion of a set of coordinates around
// their centroid, in meters
func RadiusOfGyration(coords []Coordinate) float64 {
	if len(coords) == 0 {
		return 0
	}

	center := Centroid(coords)
	h := HaversineDistance{}

	var sumSquaredDist float64
	for _, c := range coords {
		dist := h.Calculate(center, c)
		sumSquaredDist += dist * dist
	}

	return math.Sqrt(sumSquaredDist / float64(len(coords)))
}

// BoundingBox calculates the bounding box of a set of coordinates.
// Returns (minLat, minLon, maxLat, maxLon)
func BoundingBox(coords []Coordinate) (float64, float64, float64, float64) {
	if len(coords) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat := coords[0].Lat, coords[0].Lat
	minLon, maxLon := coords[0].Lon, coords[0].Lon

	for _, c := range coords[1:] {
		if c.Lat < minLat {
			minLat = c.Lat
		}
		if c.Lat > maxLat {
			maxLat = c.Lat
		}
		if c.Lon < minLon {
			minLon = c.Lon
		}
		if c.Lon > maxLon {
			maxLon = c.Lon
		}
	}

	return minLat, minLon, maxLat, maxLon
}

// PathLength calculates the total great-circle length of a path in meters
func PathLength(coords []Coordinate) float64 {
	if len(coords) < 2 {
		return 0
	}

	h := HaversineDistance{}
	var total float64
	for i := 1; i < len(coords); i++ {
		total += h.Calculate(coords[i-1], coords[i])
	}

	return total
}

// Tortuosity calculates path length divided by the straight-line distance
// between the endpoints. 1 means a straight path, >1 a winding one
func Tortuosity(coords []Coordinate) float64 {
	if len(coords) < 2 {
		return 1.0
	}

	straight := HaversineDistance{}.Calculate(coords[0], coords[len(coords)-1])
	if straight == 0 {
		return 1.0
	}

	return PathLength(coords) / straight
}

// DestinationPoint projects a point along a great circle given an initial
// bearing in degrees and a distance in meters
func DestinationPoint(start Coordinate, bearing, distance float64) Coordinate {
	bearingRad := bearing * math.Pi / 180
	angularDistance := distance / EarthRadiusMeters

	latRad := start.Lat * math.Pi / 180
	lonRad := start.Lon * math.Pi / 180

	lat2 := math.Asin(math.Sin(latRad)*math.Cos(angularDistance) +
		math.Cos(latRad)*math.Sin(angularDistance)*math.Cos(bearingRad))

	lon2 := lonRad + math.Atan2(
		math.Sin(bearingRad)*math.Sin(angularDistance)*math.Cos(latRad),
		math.Cos(angularDistance)-math.Sin(latRad)*math.Sin(lat2))

	return Coordinate{Lat: lat2 * 180 / math.Pi, Lon: lon2 * 180 / math.Pi}
}

// Midpoint calculates the great-circle midpoint between two coordinates
func Midpoint(a, b Coordinate) Coordinate {
	mid := s2.Interpolate(0.5, s2.PointFromLatLng(a.LatLng()), s2.PointFromLatLng(b.LatLng()))
	midLatLng := s2.LatLngFromPoint(mid)
	return Coordinate{Lat: midLatLng.Lat.Degrees(), Lon: midLatLng.Lng.Degrees()}
}

// SimplifyPath simplifies a path with the Ramer-Douglas-Peucker algorithm.
// epsilon is the maximum allowed deviation from the simplified path in meters
func SimplifyPath(coords []Coordinate, epsilon float64) []Coordinate {
	if len(coords) < 3 {
		return coords
	}

	// Find the point with maximum deviation from the end-to-end segment
	maxDist := 0.0
	maxIndex := 0
	for i := 1; i < len(coords)-1; i++ {
		dist := perpendicularDistance(coords[i], coords[0], coords[len(coords)-1])
		if dist > maxDist {
			maxDist = dist
			maxIndex = i
		}
	}

	if maxDist > epsilon {
		left := SimplifyPath(coords[:maxIndex+1], epsilon)
		right := SimplifyPath(coords[maxIndex:], epsilon)

		// Combine, dropping the duplicated split point
		result := make([]Coordinate, len(left)+len(right)-1)
		copy(result, left)
		copy(result[len(left):], right[1:])
		return result
	}

	return []Coordinate{coords[0], coords[len(coords)-1]}
}

// perpendicularDistance approximates the perpendicular distance in meters
// from a point to the segment between lineStart and lineEnd
func perpendicularDistance(point, lineStart, lineEnd Coordinate) float64 {
	x0, y0 := point.Lat, point.Lon
	x1, y1 := lineStart.Lat, lineStart.Lon
	x2, y2 := lineEnd.Lat, lineEnd.Lon

	num := math.Abs((y2-y1)*x0 - (x2-x1)*y0 + x2*y1 - y2*x1)
	den := math.Sqrt((y2-y1)*(y2-y1) + (x2-x1)*(x2-x1))

	if den == 0 {
		return HaversineDistance{}.Calculate(point, lineStart)
	}

	// Degrees to meters, approximate
	const metersPerDegree = 111320.0
	return (num / den) * metersPerDegree
}
