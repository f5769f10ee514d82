package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/flappy/config"
)

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: got %v, want %v", pv.Specs[i].Name, back[i], raw[i])
		}
	}
}

func TestClamp(t *testing.T) {
	pv := NewParamVector()
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"in range", []float64{0.3, 50.4, 3.6}, []float64{0.3, 50, 4}},
		{"below", []float64{-1, 0, 0}, []float64{0.02, 10, 2}},
		{"above", []float64{5, 1000, 99}, []float64{0.6, 200, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pv.Clamp(tt.in)
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("%s: got %v, want %v", pv.Specs[i].Name, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestApplyAndExtract(t *testing.T) {
	pv := NewParamVector()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	pv.ApplyToConfig(cfg, []float64{0.35, 42.2, 5})
	if cfg.Mutation.Rate != 0.35 || cfg.Population.Size != 42 || cfg.Pipes.Count != 5 {
		t.Fatalf("unexpected config %+v %+v %+v", cfg.Mutation, cfg.Population, cfg.Pipes)
	}

	got := pv.ExtractFromConfig(cfg)
	want := []float64{0.35, 42, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: got %v, want %v", pv.Specs[i].Name, got[i], want[i])
		}
	}
}

func TestEvaluateShortRun(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 300, []int64{1, 2}, cfg)

	fitness := fe.Evaluate([]float64{0.2, 10, 3})
	if fitness > 0 {
		t.Errorf("fitness = %v, want <= 0", fitness)
	}
	if got := fe.Last().MeanBestScore; got != -fitness {
		t.Errorf("MeanBestScore = %v, want %v", got, -fitness)
	}
	if fe.Last().MeanGeneration < 1 {
		t.Errorf("MeanGeneration = %v", fe.Last().MeanGeneration)
	}
}
