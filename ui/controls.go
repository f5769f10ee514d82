package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyHelp lists the fixed bindings shown under the overlay toggles.
var keyHelp = [][2]string{
	{"Left / Right", "speed -1 / +1"},
	{"Swipe", "speed -1 / +1"},
	{"Space", "pause"},
	{"Click", "inspect bird"},
	{"C", "this panel"},
}

// ControlsPanel lists the overlay toggles and key bindings.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a hidden controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel if visible.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) {
	if !c.visible {
		return
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	categories := overlays.Categories()
	rows := len(keyHelp) + 1
	for _, cat := range categories {
		rows += len(overlays.ByCategory(cat)) + 1
	}
	height := int32(rows)*lineHeight + int32(len(categories))*4 + padding*3 + lineHeight
	r.DrawPanel(c.x, c.y, c.width, height)

	y := c.y + padding
	rl.DrawText("Controls", c.x+padding, y, 16, r.Theme.Text)
	y += lineHeight + 4

	for _, cat := range categories {
		rl.DrawText(categoryLabel(cat), c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.Header)
		y += lineHeight
		for _, desc := range overlays.ByCategory(cat) {
			c.drawToggle(c.x+padding, y, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
			y += lineHeight
		}
		y += 4
	}

	y = r.DrawSectionHeader(c.x+padding, y, "Keys")
	for _, kh := range keyHelp {
		y = r.DrawLabelValue(c.x+padding, y, kh[0], kh[1])
	}
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	status := r.Theme.Track
	name := r.Theme.Dim
	if enabled {
		status = r.Theme.Fill
		name = r.Theme.Text
	}
	rl.DrawRectangle(x, y+2, 8, 8, status)
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, name)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, r.Theme.Dim)
	}
}

func categoryLabel(cat string) string {
	switch cat {
	case "network":
		return "Network"
	case "perception":
		return "Perception"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
