package spatial

import (
	"math"
	"testing"
)

func TestNormalizeBearing(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{720, 0},
		{-90, 270},
		{359.5, 359.5},
		{-450, 270},
	}

	for _, tt := range tests {
		if got := NormalizeBearing(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeBearing(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestAngularDifference(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{180, 0, 180}, // -180 wraps to +180
		{90, 45, -45},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := AngularDifference(tt.from, tt.to); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AngularDifference(%f, %f) = %f, want %f", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCircularMeanDegrees(t *testing.T) {
	tests := []struct {
		name   string
		angles []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{90}, 90},
		{"across north", []float64{350, 10}, 0},
		{"east cluster", []float64{80, 100}, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircularMeanDegrees(tt.angles, nil)
			if math.Abs(AngularDifference(got, tt.want)) > 1e-6 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}
