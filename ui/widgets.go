package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws panel rows with a shared theme.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with a pipe-green border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.Panel)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(height)},
		2,
		r.Theme.Border,
	)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.Header)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.Dim)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.Text)
	return y + r.Theme.LineHeight
}

// DrawShare draws a [0,1] share as a percentage bar. Shares at or above
// the theme's HotShare are drawn in the hot colour.
func (r *Renderer) DrawShare(x, y int32, label string, share float32, width int32) int32 {
	share = min(max(share, 0), 1)

	fill := r.Theme.Fill
	if share >= r.Theme.HotShare {
		fill = r.Theme.Hot
	}

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 40

	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.Dim)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.Track)
	rl.DrawRectangle(barX, y+2, int32(float32(barWidth)*share), r.Theme.BarHeight, fill)
	rl.DrawText(fmt.Sprintf("%.0f%%", share*100), barX+barWidth+5, y, r.Theme.FontSize, r.Theme.Text)

	return y + r.Theme.LineHeight + 2
}
