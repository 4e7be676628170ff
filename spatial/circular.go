package spatial

import (
	"math"
)

// NormalizeBearing wraps a bearing in degrees into [0, 360)
func NormalizeBearing(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngularDifference returns the signed smallest rotation from one bearing to
// another in degrees, in (-180, 180]. Positive means clockwise
func AngularDifference(from, to float64) float64 {
	diff := math.Mod(to-from, 360)
	if diff > 180 {
		diff -= 360
	}
	if diff <= -180 {
		diff += 360
	}
	return diff
}

// CircularMeanDegrees calculates the mean of circular data in degrees.
// weights may be nil for equal weighting
func CircularMeanDegrees(angles []float64, weights []float64) float64 {
	if len(angles) == 0 {
		return 0
	}

	var sumSin, sumCos float64
	for i, angle := range angles {
		w := 1.0
		if weights != nil && i < len(weights) {
			w = weights[i]
		}
		rad := angle * math.Pi / 180
		sumSin += w * math.Sin(rad)
		sumCos += w * math.Cos(rad)
	}

	return NormalizeBearing(math.Atan2(sumSin, sumCos) * 180 / math.Pi)
}
