// Package components defines ECS components for the simulation.
package components

// Position is the top-left corner of an entity's box, in playfield pixels.
type Position struct {
	X float32 `inspect:"label,fmt:%.1f"`
	Y float32 `inspect:"label,fmt:%.1f"`
}

// Velocity is vertical speed in pixels per tick. Positive is downward.
type Velocity struct {
	Y float32 `inspect:"bar,min:-5,max:15,fmt:%.1f"`
}

// Rotation is the visual tilt derived from velocity.
type Rotation struct {
	Angle float32 `inspect:"tilt,min:-0.59,max:1.11"` // radians
}
