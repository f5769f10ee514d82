package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flappy/config"
	"github.com/pthm-cable/flappy/game"
	"github.com/pthm-cable/flappy/tui"
	"github.com/pthm-cable/flappy/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	useTUI := flag.Bool("tui", false, "Run with a terminal dashboard instead of a window")
	logStats := flag.Bool("log-stats", false, "Output generation and perf stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	maxGenerations := flag.Int("max-generations", 0, "Stop after N generations (0 = unlimited)")
	speed := flag.Int("speed", 0, "Initial game speed in ticks per update (0 = use config)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// The TUI owns the terminal, so logs go to a file.
	logOut := os.Stdout
	if *useTUI {
		f, err := os.OpenFile("flappy.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			slog.Error("failed to open log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	opts := game.Options{
		Config:    cfg,
		Seed:      rngSeed,
		Speed:     *speed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	done := func(g *game.Game) bool {
		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "best_score", g.BestScore())
			return true
		}
		if *maxGenerations > 0 && g.Generation() > *maxGenerations {
			slog.Info("max generations reached", "generation", g.Generation()-1, "best_score", g.BestScore())
			return true
		}
		return false
	}

	switch {
	case *useTUI:
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting tui", "seed", rngSeed, "population", cfg.Population.Size)
		p := tea.NewProgram(tui.New(g, int32(*maxTicks), *maxGenerations), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			slog.Error("tui failed", "error", err)
			os.Exit(1)
		}

	case *headless:
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"population", cfg.Population.Size,
			"max_ticks", *maxTicks,
			"max_generations", *maxGenerations,
			"speed", g.Speed(),
		)

		for !done(g) {
			g.Update()
		}

	default:
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Flappy Neuroevolution")
		defer rl.CloseWindow()
		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		screen := ui.NewScreen(g)
		defer screen.Unload()

		for !rl.WindowShouldClose() {
			screen.Update()
			screen.Draw()

			if done(g) {
				break
			}
		}
	}
}
