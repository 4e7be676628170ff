package camera

import (
	"time"

	"github.com/trailglass/geocore/spatial"
)

// CameraPosition describes a map camera view. Positions are immutable values;
// animation steps always produce fresh ones
type CameraPosition struct {
	Target  spatial.Coordinate `json:"target"`
	Zoom    float64            `json:"zoom"`    // unitless, typically 0-21
	Tilt    float64            `json:"tilt"`    // degrees
	Bearing float64            `json:"bearing"` // degrees, 0-360, wraps
}

// CameraMove describes a camera animation intent. It is a closed set of
// variants; only Fly is handled by the arc trajectory calculator, the rest
// are executed by the map layer directly
type CameraMove interface {
	isCameraMove()
}

// Instant jumps to the position with no animation
type Instant struct {
	Position CameraPosition
}

// Ease transitions to the position with an eased linear animation
type Ease struct {
	Position CameraPosition
	Duration time.Duration
}

// Fly runs an arc trajectory animation to the position
type Fly struct {
	Position CameraPosition
	Duration time.Duration
}

// FollowUser continuously re-centers on the user with fixed zoom, tilt and
// bearing
type FollowUser struct {
	Zoom    float64
	Tilt    float64
	Bearing float64
}

func (Instant) isCameraMove()    {}
func (Ease) isCameraMove()       {}
func (Fly) isCameraMove()        {}
func (FollowUser) isCameraMove() {}
