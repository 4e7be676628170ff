package spatial

import (
	"math"
	"testing"
)

func TestCentroid(t *testing.T) {
	coords := []Coordinate{
		{Lat: 10, Lon: 20},
		{Lat: 20, Lon: 30},
		{Lat: 30, Lon: 40},
	}

	got := Centroid(coords)
	want := Coordinate{Lat: 20, Lon: 30}
	if !coordsAlmostEqual(got, want, 1e-9) {
		t.Errorf("got %v, want %v", got, want)
	}

	if got := Centroid(nil); got != (Coordinate{}) {
		t.Errorf("empty input gave %v, want zero coordinate", got)
	}
}

func TestRadiusOfGyration(t *testing.T) {
	if got := RadiusOfGyration(nil); got != 0 {
		t.Errorf("empty input gave %f, want 0", got)
	}

	// All points identical: no dispersion
	same := []Coordinate{paris, paris, paris}
	if got := RadiusOfGyration(same); got != 0 {
		t.Errorf("identical points gave %f, want 0", got)
	}

	spread := []Coordinate{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 0.01}}
	if got := RadiusOfGyration(spread); got <= 0 {
		t.Errorf("spread points gave %f, want > 0", got)
	}
}

func TestBoundingBox(t *testing.T) {
	coords := []Coordinate{
		{Lat: 10, Lon: -20},
		{Lat: -5, Lon: 35},
		{Lat: 7, Lon: 0},
	}

	minLat, minLon, maxLat, maxLon := BoundingBox(coords)
	if minLat != -5 || minLon != -20 || maxLat != 10 || maxLon != 35 {
		t.Errorf("got (%f, %f, %f, %f), want (-5, -20, 10, 35)", minLat, minLon, maxLat, maxLon)
	}
}

func TestPathLength(t *testing.T) {
	if got := PathLength([]Coordinate{paris}); got != 0 {
		t.Errorf("single point gave %f, want 0", got)
	}

	// Two one-degree hops along the equator add up
	path := []Coordinate{{0, 0}, {0, 1}, {0, 2}}
	want := 2 * math.Pi / 180 * EarthRadiusMeters
	if got := PathLength(path); math.Abs(got-want) > 1 {
		t.Errorf("got %f, want %f ± 1", got, want)
	}
}

func TestTortuosity(t *testing.T) {
	straight := []Coordinate{{0, 0}, {0, 1}, {0, 2}}
	if got := Tortuosity(straight); math.Abs(got-1) > 1e-9 {
		t.Errorf("straight path gave %f, want 1", got)
	}

	detour := []Coordinate{{0, 0}, {1, 1}, {0, 2}}
	if got := Tortuosity(detour); got <= 1 {
		t.Errorf("winding path gave %f, want > 1", got)
	}

	// Closed loop: zero straight-line distance
	loop := []Coordinate{{0, 0}, {0, 1}, {0, 0}}
	if got := Tortuosity(loop); got != 1 {
		t.Errorf("closed loop gave %f, want 1", got)
	}
}

func TestDestinationPointRoundTrip(t *testing.T) {
	tests := []struct {
		bearing  float64
		distance float64
	}{
		{0, 1000},
		{90, 1000},
		{225, 25000},
	}

	h := HaversineDistance{}
	for _, tt := range tests {
		dest := DestinationPoint(paris, tt.bearing, tt.distance)
		got := h.Calculate(paris, dest)
		if math.Abs(got-tt.distance) > 0.01 {
			t.Errorf("bearing %f distance %f: measured %f back", tt.bearing, tt.distance, got)
		}
	}
}

func TestMidpointAlongEquator(t *testing.T) {
	got := Midpoint(Coordinate{0, 0}, Coordinate{0, 90})
	if !coordsAlmostEqual(got, Coordinate{0, 45}, 1e-9) {
		t.Errorf("got %v, want (0, 45)", got)
	}
}

func TestSimplifyPathDropsCollinearPoints(t *testing.T) {
	path := []Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 0.000001, Lon: 1}, // deviates ~0.1 m from the chord
		{Lat: 0, Lon: 2},
	}

	got := SimplifyPath(path, 10)
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if got[0] != path[0] || got[1] != path[2] {
		t.Errorf("endpoints not preserved: %v", got)
	}
}

func TestSimplifyPathKeepsSignificantPoints(t *testing.T) {
	path := []Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 0.01, Lon: 1}, // deviates ~1.1 km from the chord
		{Lat: 0, Lon: 2},
	}

	got := SimplifyPath(path, 10)
	if len(got) != 3 {
		t.Errorf("got %d points, want all 3 kept", len(got))
	}
}
