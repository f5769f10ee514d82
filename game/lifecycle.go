package game

import (
	"log/slog"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flappy/components"
	"github.com/pthm-cable/flappy/neural"
	"github.com/pthm-cable/flappy/telemetry"
)

// spawnGeneration populates the world with a full generation of birds and
// fills the pipe queue.
func (g *Game) spawnGeneration() {
	d := g.cfg.Derived
	n := g.cfg.Population.Size
	rate := g.cfg.Mutation.Rate

	for i := 0; i < n; i++ {
		var brain *neural.Network
		if g.champion.Has() {
			brain = g.champion.Offspring(g.rng, i, rate)
		} else {
			brain = neural.NewBirdNetwork(g.rng)
		}
		g.spawnBird(i, brain)
	}

	g.pipes.Fill(g.rng, g.cfg.Pipes.Count)

	slog.Debug("generation spawned",
		"generation", g.generation,
		"birds", g.alive,
		"pipes", g.pipes.Len(),
		"from_champion", g.champion.Has(),
		"start_y", d.BirdStartY,
	)
}

func (g *Game) spawnBird(index int, brain *neural.Network) ecs.Entity {
	d := g.cfg.Derived
	g.nextID++

	pos := components.Position{X: d.BirdX, Y: d.BirdStartY}
	vel := components.Velocity{Y: d.BirdVelocity}
	rot := components.Rotation{}
	body := components.Body{W: d.BirdW, H: d.BirdH}
	bird := components.Bird{
		ID:       g.nextID,
		Index:    index,
		BornTick: g.tick,
		Brain:    brain,
	}

	e := g.birdMapper.NewEntity(&pos, &vel, &rot, &body, &bird)
	g.lifetimes.Register(bird.ID, g.tick, index)
	g.alive++
	return e
}

// removeBirds deletes crashed birds one at a time, highest slot index
// first. Whenever a removal leaves exactly one bird in the world, that bird's
// network is stored as champion, even if it is itself about to crash. Must
// not be called during a query.
func (g *Game) removeBirds(dead []ecs.Entity) {
	sort.Slice(dead, func(i, j int) bool {
		return g.birdMap.Get(dead[i]).Index > g.birdMap.Get(dead[j]).Index
	})

	for _, e := range dead {
		if !g.world.Alive(e) {
			continue
		}
		bird := g.birdMap.Get(e)
		ticksAlive := 0
		if ls := g.lifetimes.Remove(bird.ID, g.tick); ls != nil {
			ticksAlive = ls.TicksAlive(g.tick)
		}
		g.collector.Record(telemetry.NewDeathEvent(g.tick, g.generation, bird.ID, ticksAlive))

		g.world.RemoveEntity(e)
		g.alive--

		if g.alive == 1 {
			g.storeChampion()
		}
	}
}

// survivor returns the single live bird. Only valid when alive == 1.
func (g *Game) survivor() *components.Bird {
	var found *components.Bird
	query := g.birdFilter.Query()
	for query.Next() {
		_, _, _, _, bird := query.Get()
		found = bird
	}
	return found
}

// endGeneration handles extinction: telemetry flush, score reset, next
// generation.
func (g *Game) endGeneration() {
	g.collector.Record(telemetry.NewExtinctionEvent(g.tick, g.generation, g.score))
	g.flushGeneration()

	g.score = 0
	g.generation++
	g.pipes.Clear()
	g.spawnGeneration()
}
