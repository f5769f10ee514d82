package neural

import "math/rand"

// DefaultMutationRate is the per-parameter resample probability.
const DefaultMutationRate = 0.2

// Mutate resamples parameters of nn in place. Every bias and every weight is
// independently replaced by a fresh uniform value in [-1, 1] with probability
// rate. Returns the number of parameters resampled.
func Mutate(rng *rand.Rand, nn *Network, rate float64) int {
	changed := 0
	for _, l := range nn.Levels {
		for j := range l.Biases {
			if rng.Float64() < rate {
				l.Biases[j] = randomParam(rng)
				changed++
			}
		}
		for i := range l.Weights {
			for j := range l.Weights[i] {
				if rng.Float64() < rate {
					l.Weights[i][j] = randomParam(rng)
					changed++
				}
			}
		}
	}
	return changed
}
