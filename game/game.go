// Package game runs the neuroevolution loop: a population of birds, each
// steered by its own network, flies through a stream of pipes until every
// bird has crashed, then the next generation is bred from the champion.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flappy/components"
	"github.com/pthm-cable/flappy/config"
	"github.com/pthm-cable/flappy/systems"
	"github.com/pthm-cable/flappy/telemetry"
)

// Options configures a new game.
type Options struct {
	Config        *config.Config // nil = config.Cfg()
	Seed          int64          // 0 = time-based
	Speed         int            // ticks per Update; 0 = config value
	LogStats      bool           // log generation stats via slog
	OutputDir     string         // CSV and config output; empty = disabled
	StatsCallback func(telemetry.GenerationStats)
}

// Game holds the complete simulation state.
// It is not safe for concurrent use.
type Game struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	world *ecs.World

	// Entity mapper for the bird archetype
	birdMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Body,
		components.Bird,
	]
	birdFilter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Body,
		components.Bird,
	]
	birdMap *ecs.Map[components.Bird]

	// Systems
	physics   *systems.PhysicsSystem
	brains    *systems.BrainSystem
	collision *systems.CollisionSystem
	pipes     *systems.PipeQueue

	champion Champion

	// State
	tick       int32
	score      int
	generation int
	speed      int
	alive      int
	nextID     uint32

	// Telemetry
	collector        *telemetry.Collector
	lifetimes        *telemetry.LifetimeTracker
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool
	statsCallback    func(telemetry.GenerationStats)
	lastStats        telemetry.GenerationStats
	hasLastStats     bool

	views []BirdView // reused by Birds
}

// NewGameWithOptions creates a game and spawns the first generation.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	d := cfg.Derived

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	speed := opts.Speed
	if speed < 1 {
		speed = cfg.Speed.Initial
	}
	if speed < 1 {
		speed = 1
	}

	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		seed:  seed,
		world: world,
		birdMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Body,
			components.Bird,
		](world),
		birdFilter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Body,
			components.Bird,
		](world),
		birdMap: ecs.NewMap[components.Bird](world),

		physics:   systems.NewPhysicsSystem(world, d.Gravity, d.AngleDivisor),
		brains:    systems.NewBrainSystem(world, d.JumpVelocity),
		collision: systems.NewCollisionSystem(world),
		pipes: systems.NewPipeQueue(systems.PipeGeometry{
			Width:   d.Width,
			Height:  d.Height,
			PipeW:   d.PipeW,
			Spacing: d.PipeSpacing,
			Gap:     d.PipeGap,
			Step:    d.PipeStep,
		}),

		generation: 1,
		speed:      speed,

		collector:     telemetry.NewCollector(cfg.Population.Size),
		lifetimes:     telemetry.NewLifetimeTracker(),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(
			cfg.Telemetry.BookmarkHistorySize,
			cfg.Telemetry.BreakthroughMultiplier,
			cfg.Telemetry.StagnationGenerations,
		),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	g.spawnGeneration()
	return g
}

// Unload releases resources held by the game.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
	g.outputManager = nil
}

// Update advances the simulation by Speed() ticks.
func (g *Game) Update() {
	for i := 0; i < g.speed; i++ {
		g.Step()
	}
}

// SetGameSpeed changes the number of ticks per Update by delta.
// The speed never drops below 1.
func (g *Game) SetGameSpeed(delta int) {
	g.speed += delta
	if g.speed < 1 {
		g.speed = 1
	}
}

// Speed returns the number of ticks per Update.
func (g *Game) Speed() int { return g.speed }

// Tick returns the number of ticks simulated so far.
func (g *Game) Tick() int32 { return g.tick }

// Score returns the number of pipes passed in the current generation.
func (g *Game) Score() int { return g.score }

// BestScore returns the highest score reached by any generation.
func (g *Game) BestScore() int { return g.collector.BestScore() }

// Generation returns the current generation, starting at 1.
func (g *Game) Generation() int { return g.generation }

// Alive returns the number of live birds.
func (g *Game) Alive() int { return g.alive }

// Seed returns the RNG seed in use.
func (g *Game) Seed() int64 { return g.seed }

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config { return g.cfg }

// Champion returns the best-network slot.
func (g *Game) Champion() *Champion { return &g.champion }

// Pipes returns the live pipe pairs, lead first. Callers must not modify it.
func (g *Game) Pipes() []components.PipePair { return g.pipes.Pairs() }

// LastStats returns the stats of the most recently finished generation.
func (g *Game) LastStats() (telemetry.GenerationStats, bool) {
	return g.lastStats, g.hasLastStats
}

// PerfStats returns timing statistics over the recent tick window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// RecordFrame records frame timing in graphical mode.
func (g *Game) RecordFrame() {
	g.perfCollector.RecordFrame()
}
