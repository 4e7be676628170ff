package spatial

import (
	"testing"
)

func TestEncodeGeohashKnownValue(t *testing.T) {
	got := EncodeGeohash(57.64911, 10.40744, 11)
	if got != "u4pruydqqvj" {
		t.Errorf("got %q, want %q", got, "u4pruydqqvj")
	}
}

func TestEncodeGeohashClampsPrecision(t *testing.T) {
	if got := EncodeGeohash(0, 0, 0); len(got) != 1 {
		t.Errorf("precision 0 gave %d characters, want 1", len(got))
	}
	if got := EncodeGeohash(0, 0, 99); len(got) != 12 {
		t.Errorf("precision 99 gave %d characters, want 12", len(got))
	}
}

func TestGeohashRoundTrip(t *testing.T) {
	points := []Coordinate{
		paris,
		london,
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 0, Lon: 0},
	}

	h := HaversineDistance{}
	for _, p := range points {
		hash := EncodeGeohash(p.Lat, p.Lon, 8)
		lat, lon := DecodeGeohash(hash)

		// The decoded cell center must be within one cell of the input
		if dist := h.CalculateRaw(p.Lat, p.Lon, lat, lon); dist > GeohashCellSize(8)*2 {
			t.Errorf("%v decoded %f m away via %q", p, dist, hash)
		}
	}
}
