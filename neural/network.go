package neural

import (
	"fmt"
	"math/rand"
)

// Bird brain dimensions. The topology is fixed for every bird.
const (
	NumFeatures = 5 // pipe distance, pipe top, pipe bottom, bird y, bird velocity
	NumActions  = 1 // jump
)

// BirdTopology lists the layer widths of a bird brain.
var BirdTopology = [...]int{NumFeatures, 8, 8, NumActions}

// Features is the fixed-width input of a bird brain.
type Features [NumFeatures]float32

// Network is an ordered stack of levels. Each level's output feeds the next.
type Network struct {
	Levels []*Level
}

// NewNetwork creates a randomly initialized network with the given layer
// widths, producing len(widths)-1 levels.
func NewNetwork(rng *rand.Rand, widths ...int) *Network {
	if len(widths) < 2 {
		panic(fmt.Sprintf("neural: network needs at least two layer widths, got %v", widths))
	}
	nn := &Network{Levels: make([]*Level, len(widths)-1)}
	for i := range nn.Levels {
		nn.Levels[i] = NewLevel(rng, widths[i], widths[i+1])
	}
	return nn
}

// NewBirdNetwork creates a randomly initialized network with BirdTopology.
func NewBirdNetwork(rng *rand.Rand) *Network {
	return NewNetwork(rng, BirdTopology[:]...)
}

// NewNetworkFromLevels chains existing levels. Panics if adjacent widths
// do not match.
func NewNetworkFromLevels(levels ...*Level) *Network {
	if len(levels) == 0 {
		panic("neural: network needs at least one level")
	}
	for i := 1; i < len(levels); i++ {
		if levels[i-1].NumOutputs() != levels[i].NumInputs() {
			panic(fmt.Sprintf("neural: level %d outputs %d values, level %d expects %d",
				i-1, levels[i-1].NumOutputs(), i, levels[i].NumInputs()))
		}
	}
	return &Network{Levels: levels}
}

// NumInputs returns the width of the first level.
func (nn *Network) NumInputs() int { return nn.Levels[0].NumInputs() }

// NumOutputs returns the width of the last level.
func (nn *Network) NumOutputs() int { return nn.Levels[len(nn.Levels)-1].NumOutputs() }

// Forward feeds inputs through every level and returns the last level's
// outputs. The slice is owned by the network.
func (nn *Network) Forward(inputs []float32) []float32 {
	outputs := nn.Levels[0].Forward(inputs)
	for _, l := range nn.Levels[1:] {
		outputs = l.Forward(outputs)
	}
	return outputs
}

// Fires reports whether the jump unit fires for f. Panics unless the
// network takes NumFeatures inputs.
func (nn *Network) Fires(f *Features) bool {
	return nn.Forward(f[:])[0] != 0
}

// Clone creates a deep copy of the network.
func (nn *Network) Clone() *Network {
	clone := &Network{Levels: make([]*Level, len(nn.Levels))}
	for i, l := range nn.Levels {
		clone.Levels[i] = l.clone()
	}
	return clone
}

// Equal reports whether both networks have the same topology and parameters.
// Activation caches are ignored.
func (nn *Network) Equal(other *Network) bool {
	if nn == nil || other == nil {
		return nn == other
	}
	if len(nn.Levels) != len(other.Levels) {
		return false
	}
	for k, l := range nn.Levels {
		o := other.Levels[k]
		if l.NumInputs() != o.NumInputs() || l.NumOutputs() != o.NumOutputs() {
			return false
		}
		for j := range l.Biases {
			if l.Biases[j] != o.Biases[j] {
				return false
			}
		}
		for i := range l.Weights {
			for j := range l.Weights[i] {
				if l.Weights[i][j] != o.Weights[i][j] {
					return false
				}
			}
		}
	}
	return true
}

// ParamCount returns the total number of weights and biases.
func (nn *Network) ParamCount() int {
	n := 0
	for _, l := range nn.Levels {
		n += l.NumInputs()*l.NumOutputs() + l.NumOutputs()
	}
	return n
}
