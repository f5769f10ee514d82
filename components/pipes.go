package components

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Segment is one half of a pipe pair.
type Segment = Rect

// PipePair is an upper and lower segment with a vertical gap between them.
// Both segments share X and W.
type PipePair struct {
	Upper Segment
	Lower Segment
}

// NewPipePair builds a pair at x whose gap spans [gapTop, gapBottom) on a
// playfield of the given height.
func NewPipePair(x, w, gapTop, gapBottom, height float32) PipePair {
	return PipePair{
		Upper: Segment{X: x, Y: 0, W: w, H: gapTop},
		Lower: Segment{X: x, Y: gapBottom, W: w, H: height - gapBottom},
	}
}

// X returns the left edge of the pair.
func (p PipePair) X() float32 { return p.Upper.X }

// Right returns the right edge of the pair.
func (p PipePair) Right() float32 { return p.Upper.Right() }

// Shift moves both segments horizontally by dx.
func (p *PipePair) Shift(dx float32) {
	p.Upper.X += dx
	p.Lower.X += dx
}

// OffScreen reports whether both segments have fully left the playfield on
// the left side.
func (p PipePair) OffScreen() bool {
	return p.Upper.Right() < 0 && p.Lower.Right() < 0
}
