package inspector

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flappy/neural"
	"github.com/pthm-cable/flappy/systems"
	"github.com/pthm-cable/flappy/view"
)

// OutputLabels names the network outputs.
var OutputLabels = []string{"Jump"}

var (
	ColorNodeRing = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorLabelDim = rl.Color{R: 120, G: 120, B: 120, A: 255}
)

// NetworkView draws a network into a fixed area of the panel.
type NetworkView struct {
	area   view.Rect
	norm   view.InputNorm
	shades []float32
}

// NewNetworkView creates a view filling area. norm shades the input row of
// every level.
func NewNetworkView(area view.Rect, norm view.InputNorm) *NetworkView {
	return &NetworkView{area: area, norm: norm}
}

// Draw renders every level of nn from the inputs at the top to the output
// at the bottom.
func (v *NetworkView) Draw(nn *neural.Network) {
	a := v.area
	if nn == nil || len(nn.Levels) == 0 {
		rl.DrawText("No network", int32(a.X+10), int32(a.Y+10), 14, ColorLabelDim)
		return
	}

	// Lower levels first so the input row of each level sits on top.
	n := len(nn.Levels)
	levelH := a.H / float32(n)
	for k := n - 1; k >= 0; k-- {
		v.drawLevel(nn.Levels[k], view.LevelTop(k, n, a.Y, a.H), levelH)
	}

	first := nn.Levels[0]
	for i := range first.Inputs {
		if i >= len(systems.FeatureLabels) {
			break
		}
		label := systems.FeatureLabels[i]
		nx := view.NodeX(i, len(first.Inputs), a.X, a.W)
		tw := float32(rl.MeasureText(label, 12))
		rl.DrawText(label, int32(nx-tw/2), int32(a.Y-24), 12, ColorLabelDim)
	}
	last := nn.Levels[n-1]
	for j := range last.Outputs {
		if j >= len(OutputLabels) {
			break
		}
		nx := view.NodeX(j, len(last.Outputs), a.X, a.W)
		r := view.NodeRadius(a.W, len(last.Outputs))
		rl.DrawText(OutputLabels[j], int32(nx+2*r+6), int32(a.Y+a.H-6), 12, ColorLabelDim)
	}
}

// drawLevel renders one level: edges, the input row at y and the output row
// at y+height with bias rings.
func (v *NetworkView) drawLevel(l *neural.Level, y, height float32) {
	x, width := v.area.X, v.area.W
	nIn, nOut := len(l.Inputs), len(l.Outputs)

	for i := 0; i < nIn; i++ {
		from := rl.Vector2{X: view.NodeX(i, nIn, x, width), Y: y}
		for j := 0; j < nOut; j++ {
			to := rl.Vector2{X: view.NodeX(j, nOut, x, width), Y: y + height}
			rl.DrawLineEx(from, to, 3, rl.Color(view.ValueColor(l.Weights[i][j])))
		}
	}

	v.shades = v.norm.InputShades(l.Inputs, v.shades)
	r := view.NodeRadius(width, nIn)
	for i, s := range v.shades {
		c := rl.Vector2{X: view.NodeX(i, nIn, x, width), Y: y}
		rl.DrawCircleV(c, 2*r, ColorNodeRing)
		rl.DrawCircleV(c, r, rl.Color(view.ValueColor(s)))
	}

	r = view.NodeRadius(width, nOut)
	for j := 0; j < nOut; j++ {
		c := rl.Vector2{X: view.NodeX(j, nOut, x, width), Y: y + height}
		rl.DrawCircleV(c, 2*r, ColorNodeRing)
		rl.DrawCircleV(c, r, rl.Color(view.ValueColor(l.Outputs[j])))
		rl.DrawCircleLinesV(c, 1.5*r, rl.Color(view.ValueColor(l.Biases[j])))
	}
}
