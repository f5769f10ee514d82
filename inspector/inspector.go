package inspector

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flappy/game"
	"github.com/pthm-cable/flappy/inspector/fields"
	"github.com/pthm-cable/flappy/view"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
	panelHeight  = 420
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 40, G: 34, B: 26, A: 240}
	ColorPanelHeader = rl.Color{R: 83, G: 130, B: 44, A: 255}
	ColorPanelBorder = rl.Color{R: 115, G: 191, B: 46, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 232, G: 97, B: 1, A: 255}
	ColorSection     = rl.Color{R: 62, G: 54, B: 40, A: 255}
	ColorSectionText = rl.Color{R: 222, G: 216, B: 149, A: 255}
)

// Inspector tracks the selected bird and renders its panel.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	panelX      int32
	panelY      int32
	norm        view.InputNorm
	shades      []float32
}

// NewInspector creates an inspector whose panel sits at (x, y). norm shades
// the input nodes the same way the network panel does.
func NewInspector(x, y int32, norm view.InputNorm) *Inspector {
	return &Inspector{
		panelX: x,
		panelY: y,
		norm:   norm,
	}
}

// HandleInput selects the bird under a left click at (mouseX, mouseY) in
// playfield coordinates. Right click or Escape deselects.
func (ins *Inspector) HandleInput(mouseX, mouseY float32, g *game.Game) {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) || rl.IsKeyPressed(rl.KeyEscape) {
		ins.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	if ins.hasSelected {
		closeX := ins.panelX + PanelWidth - 25
		closeY := ins.panelY + 5
		if int32(mouseX) >= closeX && int32(mouseX) <= closeX+20 &&
			int32(mouseY) >= closeY && int32(mouseY) <= closeY+20 {
			ins.Deselect()
			return
		}
	}

	if b, ok := g.BirdAt(mouseX, mouseY); ok {
		ins.selected = b.Entity
		ins.hasSelected = true
	}
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Draw renders the panel for the selected bird. The selection is dropped
// once the bird has crashed.
func (ins *Inspector) Draw(g *game.Game) {
	if !ins.hasSelected {
		return
	}
	comps, ok := g.BirdComponents(ins.selected)
	if !ok {
		ins.Deselect()
		return
	}

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: panelHeight},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	section := ""
	for _, c := range comps {
		for _, f := range fields.Extract(c) {
			if f.Component != section {
				section = f.Component
				ins.drawSectionHeader(x, y, strings.ToUpper(section))
				y += 20
			}
			y += drawField(x, y, f)
		}
	}

	y += 4
	ins.drawSectionHeader(x, y, "INPUTS")
	y += 20
	if f, ok := g.BirdFeatures(ins.selected); ok {
		ins.shades = drawInputs(x, y, f, ins.norm, ins.shades)
	} else {
		rl.DrawText("(no pipes)", x, y, 12, ColorLabelDim)
	}
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// DrawSelectionHighlight outlines the selected bird on the playfield.
func (ins *Inspector) DrawSelectionHighlight(g *game.Game) {
	if !ins.hasSelected {
		return
	}
	b, ok := g.Bird(ins.selected)
	if !ok {
		return
	}
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: b.X - 3, Y: b.Y - 3, Width: b.W + 6, Height: b.H + 6},
		2,
		rl.Yellow,
	)
}
