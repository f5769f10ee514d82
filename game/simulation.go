package game

import (
	"log/slog"

	"github.com/pthm-cable/flappy/components"
	"github.com/pthm-cable/flappy/telemetry"
)

// Step advances the simulation by one tick.
func (g *Game) Step() {
	g.tick++
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhasePhysics)
	g.physics.Update()

	g.perfCollector.StartPhase(telemetry.PhasePipes)
	g.pipes.Advance()
	g.pipes.RetireLead(g.rng)

	g.perfCollector.StartPhase(telemetry.PhaseBrains)
	g.brains.Update(g.pipes.Pairs(), g.onPass, g.onJump)

	g.perfCollector.StartPhase(telemetry.PhaseCollisions)
	dead := g.collision.Collect(g.pipes.Pairs(), g.cfg.Derived.Height)
	g.removeBirds(dead)

	g.perfCollector.StartPhase(telemetry.PhaseEvolution)
	if g.alive == 0 {
		g.endGeneration()
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushPerf()

	g.perfCollector.EndTick()
}

func (g *Game) onPass() {
	if !g.pipes.MarkCrossed() {
		return
	}
	g.score++
	g.collector.Record(telemetry.NewPipePassedEvent(g.tick, g.generation, g.score))
}

func (g *Game) onJump(bird *components.Bird) {
	g.lifetimes.RecordJump(bird.ID)
	g.collector.Record(telemetry.NewJumpEvent(g.tick, g.generation, bird.ID))
}

func (g *Game) storeChampion() {
	bird := g.survivor()
	if bird == nil {
		panic("game: live count is 1 but no bird found")
	}
	g.champion.store(bird.Brain, bird.ID, g.generation, g.tick)
	g.collector.Record(telemetry.NewChampionEvent(g.tick, g.generation, bird.ID))

	if g.logStats {
		slog.Info("champion_updated",
			"generation", g.generation,
			"bird", bird.ID,
			"index", bird.Index,
			"score", g.score,
		)
	}
}
