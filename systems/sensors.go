package systems

import (
	"github.com/pthm-cable/flappy/components"
	"github.com/pthm-cable/flappy/neural"
)

// Feature indices.
const (
	FeaturePipeDistance = iota // bird's right edge to the target pair's left edge
	FeaturePipeTop             // height of the target's upper segment
	FeaturePipeBottom          // y of the target's lower segment
	FeatureBirdY
	FeatureBirdVelocity
)

// FeatureLabels names each feature for display.
var FeatureLabels = [neural.NumFeatures]string{"Dist", "Top", "Bottom", "Y", "Vel"}

// Features is the input vector fed to a bird's network.
type Features = neural.Features

// TargetPair returns the index of the pair a bird at x should steer by:
// the lead pair until x passes its right edge, then the next one.
func TargetPair(x float32, pipes []components.PipePair) int {
	if x > pipes[0].Right() {
		return 1
	}
	return 0
}

// ComputeFeatures builds the input vector for one bird. passed reports
// whether the bird is beyond the lead pair. Panics if fewer than two pairs
// exist.
func ComputeFeatures(pos components.Position, vel components.Velocity, body components.Body, pipes []components.PipePair) (f Features, passed bool) {
	if len(pipes) < 2 {
		panic("systems: feature construction needs at least two pipe pairs")
	}

	idx := TargetPair(pos.X, pipes)
	target := pipes[idx]

	f[FeaturePipeDistance] = target.Upper.X - (pos.X + body.W)
	f[FeaturePipeTop] = target.Upper.H
	f[FeaturePipeBottom] = target.Lower.Y
	f[FeatureBirdY] = pos.Y
	f[FeatureBirdVelocity] = vel.Y
	return f, idx == 1
}
