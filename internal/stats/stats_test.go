package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"simple", []float64{1, 2, 3}, 2},
		{"negative", []float64{-2, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); got != tt.want {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	if got := Variance([]float64{42}); got != 0 {
		t.Errorf("single value gave %f, want 0", got)
	}
	// Sample variance of {1, 3} is 2
	if got := Variance([]float64{1, 3}); math.Abs(got-2) > 1e-12 {
		t.Errorf("got %f, want 2", got)
	}
}

func TestStdDev(t *testing.T) {
	if got := StdDev([]float64{7, 7, 7}); got != 0 {
		t.Errorf("constant values gave %f, want 0", got)
	}
	if got := StdDev([]float64{1, 3}); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("got %f, want sqrt(2)", got)
	}
}
