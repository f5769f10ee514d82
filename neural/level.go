// Package neural provides the binary-step feedforward networks that steer the birds.
package neural

import (
	"fmt"
	"math/rand"
)

// Level is one fully connected layer with a binary step activation.
// Weights are indexed [input][output]. The bias of an output acts as a
// threshold: the unit fires when the weighted sum is strictly greater than it.
type Level struct {
	Weights [][]float32
	Biases  []float32

	// Last forward pass, kept for the next level and for visualization.
	Inputs  []float32
	Outputs []float32
}

// NewLevel creates a level with weights and biases uniform in [-1, 1].
func NewLevel(rng *rand.Rand, numInputs, numOutputs int) *Level {
	if numInputs < 1 || numOutputs < 1 {
		panic(fmt.Sprintf("neural: level needs at least one input and output, got %dx%d", numInputs, numOutputs))
	}

	l := &Level{
		Weights: make([][]float32, numInputs),
		Biases:  make([]float32, numOutputs),
		Inputs:  make([]float32, numInputs),
		Outputs: make([]float32, numOutputs),
	}
	for i := range l.Weights {
		l.Weights[i] = make([]float32, numOutputs)
		for j := range l.Weights[i] {
			l.Weights[i][j] = randomParam(rng)
		}
	}
	for j := range l.Biases {
		l.Biases[j] = randomParam(rng)
	}
	return l
}

// NewLevelFromParams builds a level from explicit weights ([input][output])
// and biases. The slices are copied. Panics if the shape is inconsistent.
func NewLevelFromParams(weights [][]float32, biases []float32) *Level {
	if len(weights) == 0 || len(biases) == 0 {
		panic("neural: level needs at least one input and output")
	}
	for i, row := range weights {
		if len(row) != len(biases) {
			panic(fmt.Sprintf("neural: weight row %d has %d outputs, biases have %d", i, len(row), len(biases)))
		}
	}

	l := &Level{
		Weights: make([][]float32, len(weights)),
		Biases:  append([]float32(nil), biases...),
		Inputs:  make([]float32, len(weights)),
		Outputs: make([]float32, len(biases)),
	}
	for i, row := range weights {
		l.Weights[i] = append([]float32(nil), row...)
	}
	return l
}

// NumInputs returns the input width.
func (l *Level) NumInputs() int { return len(l.Weights) }

// NumOutputs returns the output width.
func (l *Level) NumOutputs() int { return len(l.Biases) }

// Forward evaluates the level and returns its output vector, every element
// 0 or 1. The returned slice is the level's own cache and is overwritten by
// the next call. Panics if len(inputs) != NumInputs().
func (l *Level) Forward(inputs []float32) []float32 {
	if len(inputs) != len(l.Weights) {
		panic(fmt.Sprintf("neural: level expects %d inputs, got %d", len(l.Weights), len(inputs)))
	}
	copy(l.Inputs, inputs)

	for j := range l.Outputs {
		var sum float32
		for i, in := range l.Inputs {
			sum += in * l.Weights[i][j]
		}
		if sum > l.Biases[j] {
			l.Outputs[j] = 1
		} else {
			l.Outputs[j] = 0
		}
	}
	return l.Outputs
}

// clone returns a deep copy including the activation caches.
func (l *Level) clone() *Level {
	c := &Level{
		Weights: make([][]float32, len(l.Weights)),
		Biases:  append([]float32(nil), l.Biases...),
		Inputs:  append([]float32(nil), l.Inputs...),
		Outputs: append([]float32(nil), l.Outputs...),
	}
	for i, row := range l.Weights {
		c.Weights[i] = append([]float32(nil), row...)
	}
	return c
}

// randomParam returns a value uniform in [-1, 1).
func randomParam(rng *rand.Rand) float32 {
	return rng.Float32()*2 - 1
}
