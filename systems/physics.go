// Package systems contains ECS systems for the simulation.
package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flappy/components"
)

// PhysicsSystem applies gravity to every bird and updates its tilt.
type PhysicsSystem struct {
	filter       ecs.Filter3[components.Position, components.Velocity, components.Rotation]
	gravity      float32
	angleDivisor float32
}

// NewPhysicsSystem creates a new physics system.
// gravity is added to the vertical velocity once per tick.
func NewPhysicsSystem(w *ecs.World, gravity, angleDivisor float32) *PhysicsSystem {
	return &PhysicsSystem{
		filter:       *ecs.NewFilter3[components.Position, components.Velocity, components.Rotation](w),
		gravity:      gravity,
		angleDivisor: angleDivisor,
	}
}

// Update runs the physics system.
func (s *PhysicsSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, rot := query.Get()
		Integrate(pos, vel, rot, s.gravity, s.angleDivisor)
	}
}

// Integrate advances a single body by one tick.
func Integrate(pos *components.Position, vel *components.Velocity, rot *components.Rotation, gravity, angleDivisor float32) {
	vel.Y += gravity
	pos.Y += vel.Y
	rot.Angle = float32(math.Atan(float64(vel.Y / angleDivisor)))
}
