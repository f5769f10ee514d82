package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flappy/components"
)

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func Overlaps(a, b components.Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// OutOfBounds reports whether r crosses the floor or the ceiling.
func OutOfBounds(r components.Rect, height float32) bool {
	return r.Bottom() > height || r.Y < 0
}

// Collides reports whether r hits the playfield bounds or any pipe segment.
func Collides(r components.Rect, pipes []components.PipePair, height float32) bool {
	if OutOfBounds(r, height) {
		return true
	}
	for _, p := range pipes {
		if Overlaps(r, p.Upper) || Overlaps(r, p.Lower) {
			return true
		}
	}
	return false
}

// CollisionSystem finds birds that hit something this tick.
type CollisionSystem struct {
	filter ecs.Filter2[components.Position, components.Body]
	hits   []ecs.Entity
}

// NewCollisionSystem creates a new collision system.
func NewCollisionSystem(w *ecs.World) *CollisionSystem {
	return &CollisionSystem{
		filter: *ecs.NewFilter2[components.Position, components.Body](w),
	}
}

// Collect returns every entity that collided. Removal is left to the caller
// since the world cannot change while the query is open. The returned slice
// is reused by the next call.
func (s *CollisionSystem) Collect(pipes []components.PipePair, height float32) []ecs.Entity {
	s.hits = s.hits[:0]

	query := s.filter.Query()
	for query.Next() {
		pos, body := query.Get()
		if Collides(body.Rect(*pos), pipes, height) {
			s.hits = append(s.hits, query.Entity())
		}
	}
	return s.hits
}
