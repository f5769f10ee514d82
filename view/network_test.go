package view

import (
	"math"
	"testing"

	"github.com/pthm-cable/flappy/neural"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestInputNormScale(t *testing.T) {
	norm := NewInputNorm(506, 587)

	if !approx(norm.Scale(0), 202.4) {
		t.Errorf("Scale(0) = %v, want 202.4", norm.Scale(0))
	}
	for i := 1; i < neural.NumFeatures; i++ {
		if norm.Scale(i) != 587 {
			t.Errorf("Scale(%d) = %v, want 587", i, norm.Scale(i))
		}
	}
}

func TestInputShades(t *testing.T) {
	norm := InputNorm{Distance: 200, Height: 400}

	tests := []struct {
		name   string
		inputs []float32
		want   []float32
	}{
		{"zero inputs are full", []float32{0, 0}, []float32{1, 1}},
		{"distance uses its own scale", []float32{100, 100}, []float32{0.5, 0.75}},
		{"at scale is empty", []float32{200, 400, 400}, []float32{0, 0, 0}},
		{"past scale goes negative", []float32{400}, []float32{-1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := norm.InputShades(tt.inputs, nil)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !approx(got[i], tt.want[i]) {
					t.Errorf("shade[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestInputShadesReusesBuffer(t *testing.T) {
	norm := InputNorm{Distance: 10, Height: 10}
	buf := make([]float32, 0, 8)

	got := norm.InputShades([]float32{5, 5, 5}, buf)
	if &got[0] != &buf[:1][0] {
		t.Error("expected the buffer to be reused")
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestInputShadesOnDeeperLevels(t *testing.T) {
	// Both hidden units fire, so level 1 sees the binary inputs {1, 1}.
	l0 := neural.NewLevelFromParams([][]float32{{1, 1}}, []float32{0, 0})
	l1 := neural.NewLevelFromParams([][]float32{{1}, {1}}, []float32{0})
	nn := neural.NewNetworkFromLevels(l0, l1)
	nn.Forward([]float32{50})

	norm := InputNorm{Distance: 100, Height: 4}

	first := norm.InputShades(nn.Levels[0].Inputs, nil)
	if !approx(first[0], 0.5) {
		t.Errorf("level 0 shade = %v, want 0.5", first[0])
	}

	deep := norm.InputShades(nn.Levels[1].Inputs, nil)
	want := []float32{0.99, 0.75}
	for i := range want {
		if !approx(deep[i], want[i]) {
			t.Errorf("level 1 shade[%d] = %v, want %v", i, deep[i], want[i])
		}
	}
}

func TestValueColor(t *testing.T) {
	tests := []struct {
		v    float32
		want Color
	}{
		{1, Color{R: 255, A: 255}},
		{-1, Color{B: 255, A: 255}},
		{0.5, Color{R: 255, A: 127}},
		{-3, Color{B: 255, A: 255}},
		{0, Color{}},
	}
	for _, tt := range tests {
		if got := ValueColor(tt.v); got != tt.want {
			t.Errorf("ValueColor(%v) = %+v, want %+v", tt.v, got, tt.want)
		}
	}
}

func TestNodeGeometry(t *testing.T) {
	// Three nodes across 400 px sit at quarter points.
	for i, want := range []float32{100, 200, 300} {
		if got := NodeX(i, 3, 0, 400); got != want {
			t.Errorf("NodeX(%d) = %v, want %v", i, got, want)
		}
	}
	if got := NodeX(0, 1, 50, 400); got != 250 {
		t.Errorf("single node at %v, want 250", got)
	}

	if NodeRadius(400, 8) >= NodeRadius(400, 5) {
		t.Error("wider rows should have smaller nodes")
	}

	if got := LevelTop(2, 3, 10, 300); got != 210 {
		t.Errorf("LevelTop = %v, want 210", got)
	}
}
