package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flappy/components"
)

// BrainSystem evaluates each bird's network and applies jumps.
type BrainSystem struct {
	filter       ecs.Filter4[components.Position, components.Velocity, components.Body, components.Bird]
	jumpVelocity float32
}

// NewBrainSystem creates a new brain system.
func NewBrainSystem(w *ecs.World, jumpVelocity float32) *BrainSystem {
	return &BrainSystem{
		filter:       *ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Bird](w),
		jumpVelocity: jumpVelocity,
	}
}

// Update builds features for every bird and sets its velocity to the jump
// velocity when its network fires. onPass is called for every bird beyond
// the lead pair; onJump for every jump. Either may be nil.
func (s *BrainSystem) Update(pipes []components.PipePair, onPass func(), onJump func(bird *components.Bird)) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, body, bird := query.Get()

		features, passed := ComputeFeatures(*pos, *vel, *body, pipes)
		if passed && onPass != nil {
			onPass()
		}

		if bird.Brain.Fires(&features) {
			vel.Y = s.jumpVelocity
			bird.Jumps++
			if onJump != nil {
				onJump(bird)
			}
		}
	}
}
