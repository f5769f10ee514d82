package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input turns arrow keys and horizontal swipes into game speed changes.
// Touch input reaches raylib as the left mouse button.
type Input struct {
	swipeThreshold float32
	startX         float32
	pressed        bool
}

// NewInput creates an input handler. A swipe must travel more than
// swipeThreshold pixels horizontally to count.
func NewInput(swipeThreshold float32) *Input {
	return &Input{swipeThreshold: swipeThreshold}
}

// SpeedDelta returns the speed change requested this frame.
func (in *Input) SpeedDelta() int {
	delta := 0
	if rl.IsKeyPressed(rl.KeyRight) {
		delta++
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		delta--
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		in.startX = rl.GetMousePosition().X
		in.pressed = true
	}
	if in.pressed && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		in.pressed = false
		delta += swipeDelta(in.startX, rl.GetMousePosition().X, in.swipeThreshold)
	}
	return delta
}

// swipeDelta is +1 for a rightward swipe, -1 for a leftward one and 0 when
// the travel does not exceed threshold.
func swipeDelta(startX, endX, threshold float32) int {
	switch {
	case endX-startX > threshold:
		return 1
	case startX-endX > threshold:
		return -1
	}
	return 0
}
