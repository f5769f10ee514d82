package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/flappy/components"
)

// PipeGeometry holds the pixel dimensions used to generate pipe pairs.
type PipeGeometry struct {
	Width, Height float32 // playfield
	PipeW         float32
	Spacing       float32 // horizontal distance between consecutive pairs
	Gap           float32 // vertical gap height
	Step          float32 // leftward movement per tick
}

// PipeQueue is the ordered stream of pipe pairs, lead pair first.
type PipeQueue struct {
	geom    PipeGeometry
	pairs   []components.PipePair
	crossed bool // lead pair already counted toward the score
}

// NewPipeQueue creates an empty queue.
func NewPipeQueue(geom PipeGeometry) *PipeQueue {
	return &PipeQueue{geom: geom}
}

// Spawn appends a pair with a random gap. The first pair starts at the right
// edge of the playfield; later pairs follow the last one at Spacing.
func (q *PipeQueue) Spawn(rng *rand.Rand) {
	g := q.geom
	x := g.Width
	if n := len(q.pairs); n > 0 {
		x = q.pairs[n-1].X() + g.Spacing
	}
	// Bottom of the gap lands in [Gap, Height].
	gapBottom := float32(math.Floor(float64(rng.Float32()*(g.Height-g.Gap+1)))) + g.Gap
	q.pairs = append(q.pairs, components.NewPipePair(x, g.PipeW, gapBottom-g.Gap, gapBottom, g.Height))
}

// Fill spawns pairs until the queue holds n.
func (q *PipeQueue) Fill(rng *rand.Rand, n int) {
	for len(q.pairs) < n {
		q.Spawn(rng)
	}
}

// Advance moves every pair left by one step.
func (q *PipeQueue) Advance() {
	for i := range q.pairs {
		q.pairs[i].Shift(-q.geom.Step)
	}
}

// RetireLead drops the lead pair once it is fully off-screen and enqueues a
// replacement. Returns true if a pair was retired.
func (q *PipeQueue) RetireLead(rng *rand.Rand) bool {
	if len(q.pairs) == 0 || !q.pairs[0].OffScreen() {
		return false
	}
	q.pairs = append(q.pairs[:0], q.pairs[1:]...)
	q.Spawn(rng)
	q.crossed = false
	return true
}

// MarkCrossed records that a bird has passed the lead pair. Returns true only
// the first time for each lead pair.
func (q *PipeQueue) MarkCrossed() bool {
	if q.crossed {
		return false
	}
	q.crossed = true
	return true
}

// Clear removes every pair.
func (q *PipeQueue) Clear() {
	q.pairs = q.pairs[:0]
	q.crossed = false
}

// Pairs returns the live pairs, lead first. The slice is owned by the queue.
func (q *PipeQueue) Pairs() []components.PipePair {
	return q.pairs
}

// Len returns the number of pairs.
func (q *PipeQueue) Len() int {
	return len(q.pairs)
}

// Geometry returns the queue's dimensions.
func (q *PipeQueue) Geometry() PipeGeometry {
	return q.geom
}
