package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// DistanceAlgorithm computes the distance in meters between two coordinates.
// Implementations are pure and safe for concurrent use
type DistanceAlgorithm interface {
	// Calculate returns the distance in meters between from and to
	Calculate(from, to Coordinate) float64

	// CalculateRaw returns the distance in meters between two raw lat/lon
	// pairs. Agrees exactly with Calculate
	CalculateRaw(lat1, lon1, lat2, lon2 float64) float64
}

// HaversineDistance calculates the great-circle distance between two points
// on a spherical Earth (R = 6,371,000 m). Accuracy is within ~0.5% of the
// ellipsoidal distance
type HaversineDistance struct{}

// Calculate returns the great-circle distance in meters
func (h HaversineDistance) Calculate(from, to Coordinate) float64 {
	return h.CalculateRaw(from.Lat, from.Lon, to.Lat, to.Lon)
}

// CalculateRaw returns the great-circle distance in meters between raw pairs
func (h HaversineDistance) CalculateRaw(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// WGS-84 ellipsoid parameters and Vincenty iteration bounds
const (
	wgs84SemiMajorAxis = 6378137.0
	wgs84SemiMinorAxis = 6356752.314245
	wgs84Flattening    = 1 / 298.257223563

	vincentyMaxIterations = 200
	vincentyThreshold     = 1e-12
)

// VincentyDistance calculates the geodesic distance on the WGS-84 ellipsoid
// using Vincenty's inverse formula. The iteration is bounded; when it does
// not converge (near-antipodal points) the result silently degrades to the
// haversine approximation instead of returning a wrong value
type VincentyDistance struct{}

// Calculate returns the ellipsoidal distance in meters
func (v VincentyDistance) Calculate(from, to Coordinate) float64 {
	return v.CalculateRaw(from.Lat, from.Lon, to.Lat, to.Lon)
}

// CalculateRaw returns the ellipsoidal distance in meters between raw pairs
func (v VincentyDistance) CalculateRaw(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	l := (lon2 - lon1) * math.Pi / 180
	u1 := math.Atan((1 - wgs84Flattening) * math.Tan(lat1*math.Pi/180))
	u2 := math.Atan((1 - wgs84Flattening) * math.Tan(lat2*math.Pi/180))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := l
	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64
	converged := false

	for i := 0; i < vincentyMaxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		sinSigma = math.Sqrt(
			(cosU2*sinLambda)*(cosU2*sinLambda) +
				(cosU1*sinU2-sinU1*cosU2*cosLambda)*(cosU1*sinU2-sinU1*cosU2*cosLambda))
		if sinSigma == 0 {
			// Coincident points
			return 0
		}

		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha == 0 {
			// Equatorial geodesic
			cos2SigmaM = 0
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := wgs84Flattening / 16 * cosSqAlpha * (4 + wgs84Flattening*(4-3*cosSqAlpha))
		lambdaPrev := lambda
		lambda = l + (1-c)*wgs84Flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-lambdaPrev) < vincentyThreshold {
			converged = true
			break
		}
	}

	if !converged {
		return HaversineDistance{}.CalculateRaw(lat1, lon1, lat2, lon2)
	}

	uSq := cosSqAlpha * (wgs84SemiMajorAxis*wgs84SemiMajorAxis - wgs84SemiMinorAxis*wgs84SemiMinorAxis) /
		(wgs84SemiMinorAxis * wgs84SemiMinorAxis)
	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4*
		(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return wgs84SemiMinorAxis * bigA * (sigma - deltaSigma)
}

// Meters per degree of latitude used by the planar approximation
const metersPerDegreeLat = 111000.0

// SimpleDistance is a flat-Earth planar approximation. Longitude is scaled by
// the cosine of the mean latitude. Accurate only below roughly 1 km; the
// error grows with distance and latitude
type SimpleDistance struct{}

// Calculate returns the planar approximate distance in meters
func (s SimpleDistance) Calculate(from, to Coordinate) float64 {
	return s.CalculateRaw(from.Lat, from.Lon, to.Lat, to.Lon)
}

// CalculateRaw returns the planar approximate distance in meters between raw pairs
func (s SimpleDistance) CalculateRaw(lat1, lon1, lat2, lon2 float64) float64 {
	avgLatRad := (lat1 + lat2) / 2 * math.Pi / 180
	dLat := (lat2 - lat1) * metersPerDegreeLat
	dLon := (lon2 - lon1) * metersPerDegreeLat * math.Cos(avgLatRad)
	return math.Sqrt(dLat*dLat + dLon*dLon)
}
