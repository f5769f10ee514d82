package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flappy/systems"
	"github.com/pthm-cable/flappy/telemetry"
)

// HUDData holds the values shown in the network panel header.
type HUDData struct {
	Speed      int
	Generation int
	Score      int
	BestScore  int
	Alive      int
	Population int
	Tick       int32
	FPS        int32
	Paused     bool
	NetSource  string // whose network is on display
}

// HUD renders the game speed controls and run status.
type HUD struct {
	x, y     int32
	fontSize int32
}

// NewHUD creates a HUD anchored at (x, y) with text scaled to panelWidth.
func NewHUD(x, y, panelWidth int32) *HUD {
	fs := panelWidth / 40
	if fs < 14 {
		fs = 14
	}
	return &HUD{x: x, y: y, fontSize: fs}
}

// Draw renders the HUD and returns the speed change requested through the
// on-screen buttons.
func (h *HUD) Draw(data HUDData) int {
	speedText := fmt.Sprintf("Game Speed : %d", data.Speed)
	rl.DrawText(speedText, h.x, h.y, h.fontSize, rl.Black)

	delta := 0
	bx := float32(h.x + rl.MeasureText(speedText, h.fontSize) + 12)
	by := float32(h.y - 2)
	bh := float32(h.fontSize + 4)
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: bh, Height: bh}, "<") {
		delta--
	}
	if gui.Button(rl.Rectangle{X: bx + bh + 4, Y: by, Width: bh, Height: bh}, ">") {
		delta++
	}

	line := h.y + h.fontSize + 6
	rl.DrawText(
		fmt.Sprintf("Generation %d | Score %d | Best %d | Alive %d/%d", data.Generation, data.Score, data.BestScore, data.Alive, data.Population),
		h.x, line, 14, rl.DarkGray,
	)
	line += 18

	status := fmt.Sprintf("Tick %d | FPS %d | Network: %s", data.Tick, data.FPS, data.NetSource)
	if data.Paused {
		status += " | PAUSED"
	}
	rl.DrawText(status, h.x, line, 14, rl.DarkGray)

	return delta
}

// PerfPanel renders per-phase tick timing.
type PerfPanel struct {
	renderer *Renderer
	registry *systems.SystemRegistry
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32, registry *systems.SystemRegistry) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		registry: registry,
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	ids := p.registry.IDs()
	height := int32(len(ids)+3)*r.Theme.LineHeight + 2*r.Theme.Padding
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding
	y = r.DrawSectionHeader(x, y, "Tick Performance")
	y = r.DrawLabelValue(x, y, "Avg tick", stats.AvgTickDuration.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "Ticks/s", fmt.Sprintf("%.0f", stats.TicksPerSecond))

	for _, id := range ids {
		y = r.DrawShare(x, y, p.registry.GetName(id), float32(stats.PhasePct[id]/100), p.width-2*r.Theme.Padding)
	}
}

// GenerationPanel renders the stats of the last finished generation.
type GenerationPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewGenerationPanel creates a new generation stats panel.
func NewGenerationPanel(x, y, width int32) *GenerationPanel {
	return &GenerationPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// Draw renders the panel. ok is false before the first extinction.
func (p *GenerationPanel) Draw(stats telemetry.GenerationStats, ok bool) {
	r := p.renderer
	height := 9*r.Theme.LineHeight + 2*r.Theme.Padding
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding
	y = r.DrawSectionHeader(x, y, "Last Generation")
	if !ok {
		r.DrawLabelValue(x, y, "Status", "running first generation")
		return
	}

	champion := "no"
	if stats.ChampionUpdated {
		champion = "yes"
	}
	y = r.DrawLabelValue(x, y, "Generation", fmt.Sprintf("%d", stats.Generation))
	y = r.DrawLabelValue(x, y, "Score", fmt.Sprintf("%d (best %d)", stats.Score, stats.BestScore))
	y = r.DrawLabelValue(x, y, "Ticks", fmt.Sprintf("%d", stats.Ticks))
	y = r.DrawLabelValue(x, y, "Jumps/bird", fmt.Sprintf("%.1f", stats.JumpsPerBird))
	y = r.DrawLabelValue(x, y, "Survival", fmt.Sprintf("%.0f +/- %.0f", stats.SurvivalMean, stats.SurvivalStd))
	y = r.DrawLabelValue(x, y, "p50 / p90", fmt.Sprintf("%.0f / %.0f", stats.SurvivalP50, stats.SurvivalP90))
	r.DrawLabelValue(x, y, "Champion", champion)
}
