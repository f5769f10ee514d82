package components

// Body holds the collision box size of an entity.
type Body struct {
	W float32 `inspect:"label,fmt:%.1f"`
	H float32 `inspect:"label,fmt:%.1f"`
}

// Rect returns the box at the given position.
func (b Body) Rect(pos Position) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: b.W, H: b.H}
}
