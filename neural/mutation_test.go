package neural

import (
	"math"
	"math/rand"
	"testing"
)

func TestMutateRate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	tests := []struct {
		name string
		rate float64
	}{
		{"default", DefaultMutationRate},
		{"low", 0.05},
		{"high", 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const trials = 200
			total, changed := 0, 0
			for i := 0; i < trials; i++ {
				nn := NewBirdNetwork(rng)
				total += nn.ParamCount()
				changed += Mutate(rng, nn, tt.rate)
			}
			got := float64(changed) / float64(total)
			if math.Abs(got-tt.rate) > 0.02 {
				t.Errorf("resampled fraction = %.3f, want about %.2f", got, tt.rate)
			}
		})
	}
}

func TestMutateZeroRateIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	nn := NewBirdNetwork(rng)
	before := nn.Clone()

	if n := Mutate(rng, nn, 0); n != 0 {
		t.Errorf("Mutate(0) changed %d parameters", n)
	}
	if !nn.Equal(before) {
		t.Error("Mutate(0) modified the network")
	}
}

func TestMutateKeepsRangeAndShape(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	nn := NewBirdNetwork(rng)
	params := nn.ParamCount()

	for i := 0; i < 50; i++ {
		Mutate(rng, nn, 1)
	}
	if nn.ParamCount() != params {
		t.Fatalf("ParamCount changed from %d to %d", params, nn.ParamCount())
	}
	for k, l := range nn.Levels {
		for _, b := range l.Biases {
			if b < -1 || b > 1 {
				t.Errorf("level %d bias %v out of [-1,1]", k, b)
			}
		}
		for _, row := range l.Weights {
			for _, w := range row {
				if w < -1 || w > 1 {
					t.Errorf("level %d weight %v out of [-1,1]", k, w)
				}
			}
		}
	}
}

func TestMutateCloneLeavesParent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	parent := NewBirdNetwork(rng)
	snapshot := parent.Clone()

	child := parent.Clone()
	Mutate(rng, child, 1)

	if !parent.Equal(snapshot) {
		t.Error("mutating a clone changed the parent")
	}
	if parent.Equal(child) {
		t.Error("full-rate mutation left the child identical")
	}
}
