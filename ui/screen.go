package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flappy/game"
	"github.com/pthm-cable/flappy/inspector"
	"github.com/pthm-cable/flappy/neural"
	"github.com/pthm-cable/flappy/renderer"
	"github.com/pthm-cable/flappy/systems"
	"github.com/pthm-cable/flappy/view"
)

var (
	ColorNetworkBg = rl.Color{R: 245, G: 245, B: 240, A: 255}
	ColorDivider   = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorTarget    = rl.Color{R: 255, G: 60, B: 200, A: 200}
	ColorBoxes     = rl.Color{R: 255, G: 0, B: 0, A: 200}
)

// Screen lays out the playfield on the left and the network panel on the
// right, and routes input to the game. The window must exist before
// NewScreen is called.
type Screen struct {
	game      *game.Game
	world     *renderer.WorldRenderer
	hud       *HUD
	perf      *PerfPanel
	genPanel  *GenerationPanel
	controls  *ControlsPanel
	overlays  *OverlayRegistry
	input     *Input
	inspector *inspector.Inspector
	network   *inspector.NetworkView

	layout view.Layout
	paused bool
}

// NewScreen builds every panel for g.
func NewScreen(g *game.Game) *Screen {
	cfg := g.Config()
	d := cfg.Derived

	layout := view.NewLayout(d.Width, d.Height, float32(cfg.Screen.Width), float32(cfg.Screen.Height))
	panelX := int32(layout.Panel.X)
	panelW := int32(layout.Panel.W)
	screenH := int32(layout.Panel.H)
	norm := view.NewInputNorm(d.Width, d.Height)

	return &Screen{
		game:      g,
		world:     renderer.NewWorldRenderer(d.Width, d.Height),
		hud:       NewHUD(panelX+panelW/20, screenH/20, panelW),
		perf:      NewPerfPanel(panelX+panelW-250, screenH-200, 240, systems.NewSystemRegistry()),
		genPanel:  NewGenerationPanel(panelX+10, screenH-175, 240),
		controls:  NewControlsPanel(10, 10, 240),
		overlays:  NewOverlayRegistry(),
		input:     NewInput(float32(cfg.Speed.SwipeThreshold)),
		inspector: inspector.NewInspector(panelX+panelW-inspector.PanelWidth-10, 10, norm),
		network:   inspector.NewNetworkView(layout.Network, norm),
		layout:    layout,
	}
}

// Update handles input and advances the game unless paused.
func (s *Screen) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		s.paused = !s.paused
	}
	if rl.IsKeyPressed(rl.KeyC) {
		s.controls.Toggle()
	}
	s.overlays.HandleKeys()

	if d := s.input.SpeedDelta(); d != 0 {
		s.game.SetGameSpeed(d)
	}

	mouse := rl.GetMousePosition()
	if s.layout.Playfield.Contains(mouse.X, mouse.Y) {
		s.inspector.HandleInput(mouse.X, mouse.Y, s.game)
	}

	if !s.paused {
		s.game.Update()
	}
}

// Draw renders one frame.
func (s *Screen) Draw() {
	s.game.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(ColorNetworkBg)

	play := s.layout.Playfield
	rl.BeginScissorMode(int32(play.X), int32(play.Y), int32(play.W), int32(play.H))
	s.world.Draw(s.game)
	s.drawPlayfieldOverlays()
	s.inspector.DrawSelectionHighlight(s.game)
	rl.EndScissorMode()
	panel := s.layout.Panel
	rl.DrawLineEx(rl.Vector2{X: panel.X, Y: 0}, rl.Vector2{X: panel.X, Y: panel.H}, 3, ColorDivider)

	net, source := s.displayedNetwork()
	s.network.Draw(net)

	lastStats, hasStats := s.game.LastStats()
	delta := s.hud.Draw(HUDData{
		Speed:      s.game.Speed(),
		Generation: s.game.Generation(),
		Score:      s.game.Score(),
		BestScore:  s.game.BestScore(),
		Alive:      s.game.Alive(),
		Population: s.game.Config().Population.Size,
		Tick:       s.game.Tick(),
		FPS:        rl.GetFPS(),
		Paused:     s.paused,
		NetSource:  source,
	})
	if delta != 0 {
		s.game.SetGameSpeed(delta)
	}

	if s.overlays.IsEnabled(OverlayGenerationStats) {
		s.genPanel.Draw(lastStats, hasStats)
	}
	if s.overlays.IsEnabled(OverlayPerf) {
		s.perf.Draw(s.game.PerfStats())
	}
	s.inspector.Draw(s.game)
	s.controls.Draw(s.overlays)

	rl.EndDrawing()
}

// displayedNetwork picks the network for the panel: the lead bird by
// default, or the champion or selected bird when those overlays are on.
func (s *Screen) displayedNetwork() (*neural.Network, string) {
	if s.overlays.IsEnabled(OverlayChampionNet) {
		if c := s.game.Champion(); c.Has() {
			return c.Network(), "champion"
		}
	}
	if s.overlays.IsEnabled(OverlaySelectedNet) {
		if e, ok := s.inspector.Selected(); ok {
			if b, ok := s.game.Bird(e); ok {
				return b.Brain, "selected"
			}
		}
	}
	if lead, ok := s.game.LeadBird(); ok {
		return lead.Brain, "lead"
	}
	return nil, "none"
}

func (s *Screen) drawPlayfieldOverlays() {
	if s.overlays.IsEnabled(OverlayCollisionBoxes) {
		for _, p := range s.game.Pipes() {
			for _, seg := range []rl.Rectangle{
				{X: p.Upper.X, Y: p.Upper.Y, Width: p.Upper.W, Height: p.Upper.H},
				{X: p.Lower.X, Y: p.Lower.Y, Width: p.Lower.W, Height: p.Lower.H},
			} {
				rl.DrawRectangleLinesEx(seg, 1, ColorBoxes)
			}
		}
		for _, b := range s.game.Birds() {
			rl.DrawRectangleLinesEx(rl.Rectangle{X: b.X, Y: b.Y, Width: b.W, Height: b.H}, 1, ColorBoxes)
		}
	}

	if s.overlays.IsEnabled(OverlayTargetPipe) {
		pipes := s.game.Pipes()
		lead, ok := s.game.LeadBird()
		if !ok || len(pipes) < 2 {
			return
		}
		target := pipes[systems.TargetPair(lead.X, pipes)]
		from := rl.Vector2{X: lead.X + lead.W, Y: lead.Y + lead.H/2}
		rl.DrawLineEx(from, rl.Vector2{X: target.X(), Y: target.Upper.Bottom()}, 2, ColorTarget)
		rl.DrawLineEx(from, rl.Vector2{X: target.X(), Y: target.Lower.Y}, 2, ColorTarget)
	}
}

// Unload frees GPU resources.
func (s *Screen) Unload() {
	s.world.Unload()
}
