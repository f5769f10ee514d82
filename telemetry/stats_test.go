package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeSurvivalStats(t *testing.T) {
	values := []float64{100, 40, 80, 20, 60}
	mean, std, p50, p90, longest := ComputeSurvivalStats(values)

	if math.Abs(mean-60) > 0.001 {
		t.Errorf("mean = %v, want 60", mean)
	}
	// Population standard deviation of 20,40,60,80,100.
	if math.Abs(std-math.Sqrt(800)) > 0.001 {
		t.Errorf("std = %v, want %v", std, math.Sqrt(800))
	}
	if math.Abs(p50-60) > 0.001 {
		t.Errorf("p50 = %v, want 60", p50)
	}
	if math.Abs(p90-92) > 0.001 {
		t.Errorf("p90 = %v, want 92", p90)
	}
	if longest != 100 {
		t.Errorf("max = %v, want 100", longest)
	}
	if values[0] != 100 {
		t.Error("input slice was reordered")
	}
}

func TestComputeSurvivalStatsEmpty(t *testing.T) {
	mean, std, p50, p90, longest := ComputeSurvivalStats(nil)
	if mean != 0 || std != 0 || p50 != 0 || p90 != 0 || longest != 0 {
		t.Error("empty slice should return all zeros")
	}
}
