// Package renderer draws the playfield with raylib.
package renderer

import (
	"math"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flappy/components"
	"github.com/pthm-cable/flappy/game"
)

var (
	ColorPipe       = rl.Color{R: 115, G: 190, B: 46, A: 255}
	ColorPipeShade  = rl.Color{R: 84, G: 140, B: 34, A: 255}
	ColorPipeBorder = rl.Color{R: 40, G: 60, B: 20, A: 255}
	ColorBird       = rl.Color{R: 250, G: 200, B: 40, A: 220}
	ColorLeadBird   = rl.Color{R: 240, G: 90, B: 50, A: 255}
	ColorBirdEye    = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorTextShadow = rl.Color{R: 0, G: 0, B: 0, A: 160}
)

// WorldRenderer draws the sky, pipes, birds, score and generation.
type WorldRenderer struct {
	background *BackgroundRenderer
	width      float32
	height     float32
	fontSize   int32
}

// NewWorldRenderer creates a renderer for a playfield of the given size.
func NewWorldRenderer(width, height float32) *WorldRenderer {
	return &WorldRenderer{
		background: NewBackgroundRenderer(int32(width), int32(height)),
		width:      width,
		height:     height,
		fontSize:   int32(width / 10),
	}
}

// Draw renders one frame of the playfield at the window origin.
func (r *WorldRenderer) Draw(g *game.Game) {
	r.background.Draw()

	for _, p := range g.Pipes() {
		r.drawPipe(p.Upper, true)
		r.drawPipe(p.Lower, false)
	}

	lead, hasLead := g.LeadBird()
	for _, b := range g.Birds() {
		if hasLead && b.Entity == lead.Entity {
			continue
		}
		drawBird(b, ColorBird)
	}
	// Lead bird on top: its network is the one on display.
	if hasLead {
		drawBird(lead, ColorLeadBird)
	}

	r.drawText(strconv.Itoa(g.Score()), r.width/2, r.height/2, true)
	r.drawText(strconv.Itoa(g.Generation()), r.width/15, r.height/15, false)
}

// drawPipe draws a segment with a lip on the end facing the gap.
func (r *WorldRenderer) drawPipe(s components.Segment, upper bool) {
	if s.H <= 0 {
		return
	}
	rl.DrawRectangleRec(rl.Rectangle{X: s.X, Y: s.Y, Width: s.W, Height: s.H}, ColorPipe)
	rl.DrawRectangleRec(rl.Rectangle{X: s.X + s.W*0.7, Y: s.Y, Width: s.W * 0.3, Height: s.H}, ColorPipeShade)

	lipH := float32(math.Min(float64(s.H), float64(s.W*0.4)))
	lipY := s.Y
	if upper {
		lipY = s.Bottom() - lipH
	}
	lip := rl.Rectangle{X: s.X - 3, Y: lipY, Width: s.W + 6, Height: lipH}
	rl.DrawRectangleRec(lip, ColorPipe)
	rl.DrawRectangleLinesEx(lip, 2, ColorPipeBorder)
}

// drawBird draws the bird box rotated about its centre.
func drawBird(b game.BirdView, c rl.Color) {
	cx, cy := b.X+b.W/2, b.Y+b.H/2
	deg := b.Angle * 180 / math.Pi
	rl.DrawRectanglePro(
		rl.Rectangle{X: cx, Y: cy, Width: b.W, Height: b.H},
		rl.Vector2{X: b.W / 2, Y: b.H / 2},
		deg,
		c,
	)

	// Eye towards the front, following the tilt.
	sin, cos := math.Sincos(float64(b.Angle))
	ex := cx + float32(cos)*b.W*0.25 - float32(sin)*-b.H*0.15
	ey := cy + float32(sin)*b.W*0.25 + float32(cos)*-b.H*0.15
	rl.DrawCircleV(rl.Vector2{X: ex, Y: ey}, b.H*0.12, ColorBirdEye)
}

func (r *WorldRenderer) drawText(s string, x, y float32, centred bool) {
	if centred {
		x -= float32(rl.MeasureText(s, r.fontSize)) / 2
		y -= float32(r.fontSize) / 2
	}
	shadow := r.fontSize / 25
	if shadow < 1 {
		shadow = 1
	}
	rl.DrawText(s, int32(x)+shadow, int32(y)+shadow, r.fontSize, ColorTextShadow)
	rl.DrawText(s, int32(x), int32(y), r.fontSize, rl.White)
}

// Unload frees GPU resources.
func (r *WorldRenderer) Unload() {
	r.background.Unload()
}
