package camera

import (
	"math"

	"github.com/trailglass/geocore/spatial"
)

// ArcTrajectoryCalculator builds fly-to animation paths: the camera zooms out
// toward an apex, traverses the great circle, and zooms back in
type ArcTrajectoryCalculator struct {
	interpolation spatial.InterpolationAlgorithm
}

// NewArcTrajectoryCalculator creates a calculator using the given
// interpolation for the camera target. nil selects spherical interpolation
func NewArcTrajectoryCalculator(interpolation spatial.InterpolationAlgorithm) *ArcTrajectoryCalculator {
	if interpolation == nil {
		interpolation = spatial.SlerpInterpolation{}
	}
	return &ArcTrajectoryCalculator{interpolation: interpolation}
}

// Calculate returns steps+1 camera positions forming the animation from
// start to end. With fewer than two steps it returns exactly [start, end]
func (c *ArcTrajectoryCalculator) Calculate(start, end CameraPosition, steps int) []CameraPosition {
	if steps < 2 {
		return []CameraPosition{start, end}
	}

	distanceDeg := centralAngleDegrees(start.Target, end.Target)
	apexZoom := math.Min(start.Zoom, end.Zoom) - apexZoomDelta(distanceDeg)

	startBearing := spatial.NormalizeBearing(start.Bearing)
	bearingDelta := spatial.AngularDifference(startBearing, spatial.NormalizeBearing(end.Bearing))

	path := make([]CameraPosition, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)

		// Parabolic zoom: equal to the linear blend at the endpoints,
		// reaching the apex at t = 0.5
		linearZoom := start.Zoom + (end.Zoom-start.Zoom)*t
		weight := 1 - 4*(t-0.5)*(t-0.5)
		zoom := linearZoom + (apexZoom-linearZoom)*weight

		path = append(path, CameraPosition{
			Target:  c.interpolation.Interpolate(start.Target, end.Target, t),
			Zoom:    zoom,
			Tilt:    start.Tilt + (end.Tilt-start.Tilt)*t,
			Bearing: spatial.NormalizeBearing(startBearing + bearingDelta*t),
		})
	}

	return path
}

// apexZoomDelta maps the angular span of the trip to how far the camera zooms
// out at the apex. Longer trips zoom out more
func apexZoomDelta(distanceDeg float64) float64 {
	switch {
	case distanceDeg > 10:
		return 5
	case distanceDeg > 5:
		return 4
	case distanceDeg > 1:
		return 3
	case distanceDeg > 0.5:
		return 2
	case distanceDeg > 0.1:
		return 1.5
	default:
		return 1
	}
}

// centralAngleDegrees is a self-contained haversine central angle between two
// targets, in degrees. Camera pacing does not depend on the configurable
// distance algorithm
func centralAngleDegrees(a, b spatial.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h)) * 180 / math.Pi
}
