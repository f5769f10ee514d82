package telemetry

// LifetimeStats tracks per-bird statistics over its lifetime.
type LifetimeStats struct {
	BirthTick int32
	DeathTick int32
	Index     int // slot within the generation
	Jumps     int
}

// TicksAlive returns how long the bird lived, or has lived so far at tick.
func (s *LifetimeStats) TicksAlive(tick int32) int {
	end := s.DeathTick
	if end == 0 {
		end = tick
	}
	return int(end - s.BirthTick)
}

// LifetimeTracker manages per-bird lifetime statistics.
type LifetimeTracker struct {
	stats map[uint32]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uint32]*LifetimeStats),
	}
}

// Register creates lifetime stats for a new bird.
func (lt *LifetimeTracker) Register(birdID uint32, birthTick int32, index int) {
	lt.stats[birdID] = &LifetimeStats{
		BirthTick: birthTick,
		Index:     index,
	}
}

// Get returns the lifetime stats for a bird, or nil if not found.
func (lt *LifetimeTracker) Get(birdID uint32) *LifetimeStats {
	return lt.stats[birdID]
}

// RecordJump increments a bird's jump count.
func (lt *LifetimeTracker) RecordJump(birdID uint32) {
	if s := lt.stats[birdID]; s != nil {
		s.Jumps++
	}
}

// Remove stops tracking a bird and returns its final stats with the death
// tick filled in.
func (lt *LifetimeTracker) Remove(birdID uint32, deathTick int32) *LifetimeStats {
	s := lt.stats[birdID]
	if s == nil {
		return nil
	}
	s.DeathTick = deathTick
	delete(lt.stats, birdID)
	return s
}

// Count returns the number of tracked birds.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}
