package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flappy/neural"
	"github.com/pthm-cable/flappy/systems"
)

// BirdView is a read-only snapshot of a live bird for presentation.
type BirdView struct {
	Entity   ecs.Entity
	ID       uint32
	Index    int
	X, Y     float32
	W, H     float32
	Angle    float32
	Velocity float32
	Jumps    int32
	Brain    *neural.Network
}

// Birds returns views of every live bird. The slice is reused between
// calls.
func (g *Game) Birds() []BirdView {
	g.views = g.views[:0]
	query := g.birdFilter.Query()
	for query.Next() {
		pos, vel, rot, body, bird := query.Get()
		g.views = append(g.views, BirdView{
			Entity:   query.Entity(),
			ID:       bird.ID,
			Index:    bird.Index,
			X:        pos.X,
			Y:        pos.Y,
			W:        body.W,
			H:        body.H,
			Angle:    rot.Angle,
			Velocity: vel.Y,
			Jumps:    bird.Jumps,
			Brain:    bird.Brain,
		})
	}
	return g.views
}

// Bird returns the view of entity e, if it is still alive.
func (g *Game) Bird(e ecs.Entity) (BirdView, bool) {
	if !g.world.Alive(e) {
		return BirdView{}, false
	}
	pos, vel, rot, body, bird := g.birdMapper.Get(e)
	return BirdView{
		Entity:   e,
		ID:       bird.ID,
		Index:    bird.Index,
		X:        pos.X,
		Y:        pos.Y,
		W:        body.W,
		H:        body.H,
		Angle:    rot.Angle,
		Velocity: vel.Y,
		Jumps:    bird.Jumps,
		Brain:    bird.Brain,
	}, true
}

// LeadBird returns the live bird with the lowest slot index: the bird whose
// network the visualizer shows.
func (g *Game) LeadBird() (BirdView, bool) {
	var lead BirdView
	found := false
	for _, b := range g.Birds() {
		if !found || b.Index < lead.Index {
			lead = b
			found = true
		}
	}
	return lead, found
}

// BirdAt returns the live bird whose box contains (x, y), preferring the
// lowest slot index when boxes overlap.
func (g *Game) BirdAt(x, y float32) (BirdView, bool) {
	var hit BirdView
	found := false
	for _, b := range g.Birds() {
		if x < b.X || x > b.X+b.W || y < b.Y || y > b.Y+b.H {
			continue
		}
		if !found || b.Index < hit.Index {
			hit = b
			found = true
		}
	}
	return hit, found
}

// BirdComponents returns copies of every component of entity e, in
// archetype order, for reflection-driven inspection.
func (g *Game) BirdComponents(e ecs.Entity) ([]any, bool) {
	if !g.world.Alive(e) {
		return nil, false
	}
	pos, vel, rot, body, bird := g.birdMapper.Get(e)
	return []any{*pos, *vel, *rot, *body, *bird}, true
}

// BirdFeatures returns the network inputs entity e would see this tick.
func (g *Game) BirdFeatures(e ecs.Entity) (systems.Features, bool) {
	if !g.world.Alive(e) || g.pipes.Len() < 2 {
		return systems.Features{}, false
	}
	pos, vel, _, body, _ := g.birdMapper.Get(e)
	f, _ := systems.ComputeFeatures(*pos, *vel, *body, g.pipes.Pairs())
	return f, true
}
