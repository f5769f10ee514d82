package view

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout splits the window into the playfield on the left and the network
// panel on the right.
type Layout struct {
	Playfield Rect
	Panel     Rect
	Network   Rect // drawing area of the network inside Panel
}

// NewLayout places a playW x playH playfield at the origin of a screenW x
// screenH window.
func NewLayout(playW, playH, screenW, screenH float32) Layout {
	panel := Rect{X: playW, W: screenW - playW, H: screenH}
	return Layout{
		Playfield: Rect{W: playW, H: playH},
		Panel:     panel,
		Network: Rect{
			X: panel.X + panel.W*0.1,
			Y: screenH*0.1 + 20,
			W: panel.W * 0.8,
			H: screenH*0.8 - 40,
		},
	}
}
