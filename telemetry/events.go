// Package telemetry provides generation statistics, bookmarking and CSV output.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventJump EventType = iota
	EventPipePassed
	EventDeath
	EventChampion
	EventExtinction
)

var eventNames = [...]string{"jump", "pipe_passed", "death", "champion", "extinction"}

// String returns the event name.
func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type       EventType
	Tick       int32
	Generation int
	BirdID     uint32

	// Depends on type: ticks lived for deaths, score for pipe passes and
	// extinctions.
	Value int
}

// NewJumpEvent creates a jump event.
func NewJumpEvent(tick int32, generation int, birdID uint32) Event {
	return Event{Type: EventJump, Tick: tick, Generation: generation, BirdID: birdID}
}

// NewPipePassedEvent creates an event for the score increasing to score.
func NewPipePassedEvent(tick int32, generation, score int) Event {
	return Event{Type: EventPipePassed, Tick: tick, Generation: generation, Value: score}
}

// NewDeathEvent creates a death event for a bird that lived ticksAlive ticks.
func NewDeathEvent(tick int32, generation int, birdID uint32, ticksAlive int) Event {
	return Event{Type: EventDeath, Tick: tick, Generation: generation, BirdID: birdID, Value: ticksAlive}
}

// NewChampionEvent creates an event for a bird's network entering the champion slot.
func NewChampionEvent(tick int32, generation int, birdID uint32) Event {
	return Event{Type: EventChampion, Tick: tick, Generation: generation, BirdID: birdID}
}

// NewExtinctionEvent creates an event for the last bird of a generation dying.
func NewExtinctionEvent(tick int32, generation, score int) Event {
	return Event{Type: EventExtinction, Tick: tick, Generation: generation, Value: score}
}
