package spatial

import (
	"math"
)

// InterpolationAlgorithm computes an intermediate coordinate between two
// endpoints. The fraction is clamped into [0, 1] before use, so 0 yields the
// start point and 1 the end point
type InterpolationAlgorithm interface {
	// Interpolate returns the point at the given fraction along the path
	// from from to to
	Interpolate(from, to Coordinate, fraction float64) Coordinate
}

// GeneratePath samples the algorithm at evenly spaced fractions and returns
// steps+2 coordinates, endpoints included
func GeneratePath(algo InterpolationAlgorithm, from, to Coordinate, steps int) []Coordinate {
	if steps < 0 {
		steps = 0
	}

	total := steps + 1
	path := make([]Coordinate, 0, steps+2)
	for i := 0; i <= total; i++ {
		path = append(path, algo.Interpolate(from, to, float64(i)/float64(total)))
	}
	return path
}

func clampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// LinearInterpolation blends latitude and longitude independently. Fast, but
// geographically wrong over long distances; acceptable for very short hops
type LinearInterpolation struct{}

// Interpolate returns the per-axis linear blend of the endpoints
func (LinearInterpolation) Interpolate(from, to Coordinate, fraction float64) Coordinate {
	f := clampFraction(fraction)
	return Coordinate{
		Lat: from.Lat + (to.Lat-from.Lat)*f,
		Lon: from.Lon + (to.Lon-from.Lon)*f,
	}
}

// SlerpInterpolation interpolates along the great-circle arc between the
// endpoints by spherical linear interpolation of their unit vectors
type SlerpInterpolation struct{}

// Interpolate returns the point at the given fraction along the great circle
func (SlerpInterpolation) Interpolate(from, to Coordinate, fraction float64) Coordinate {
	f := clampFraction(fraction)

	lat1 := from.Lat * math.Pi / 180
	lon1 := from.Lon * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	lon2 := to.Lon * math.Pi / 180

	// Unit vectors on the sphere
	x1 := math.Cos(lat1) * math.Cos(lon1)
	y1 := math.Cos(lat1) * math.Sin(lon1)
	z1 := math.Sin(lat1)
	x2 := math.Cos(lat2) * math.Cos(lon2)
	y2 := math.Cos(lat2) * math.Sin(lon2)
	z2 := math.Sin(lat2)

	// Clamp the dot product so floating-point overshoot cannot feed acos a
	// value outside [-1, 1]
	dot := x1*x2 + y1*y2 + z1*z2
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	theta := math.Acos(dot)

	if theta < 1e-10 {
		// Near-identical endpoints; sin(theta) is ~0
		return from
	}

	sinTheta := math.Sin(theta)
	a := math.Sin((1-f)*theta) / sinTheta
	b := math.Sin(f*theta) / sinTheta

	x := a*x1 + b*x2
	y := a*y1 + b*y2
	z := a*z1 + b*z2

	return Coordinate{
		Lat: math.Atan2(z, math.Sqrt(x*x+y*y)) * 180 / math.Pi,
		Lon: math.Atan2(y, x) * 180 / math.Pi,
	}
}

// CubicInterpolation blends the endpoints with the cubic Hermite basis. The
// tangents at both ends are the direct displacement vector, so the path stays
// on the straight chord between the endpoints
type CubicInterpolation struct{}

// Interpolate returns the Hermite blend of the endpoints at the given fraction
func (CubicInterpolation) Interpolate(from, to Coordinate, fraction float64) Coordinate {
	t := clampFraction(fraction)
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	mLat := to.Lat - from.Lat
	mLon := to.Lon - from.Lon

	return Coordinate{
		Lat: h00*from.Lat + h10*mLat + h01*to.Lat + h11*mLat,
		Lon: h00*from.Lon + h10*mLon + h01*to.Lon + h11*mLon,
	}
}
