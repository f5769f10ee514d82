package telemetry

import "testing"

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(4)

	c.Record(NewJumpEvent(1, 1, 1))
	c.Record(NewJumpEvent(2, 1, 2))
	c.Record(NewDeathEvent(10, 1, 1, 10))
	c.Record(NewDeathEvent(20, 1, 2, 20))
	c.Record(NewPipePassedEvent(25, 1, 1))
	c.Record(NewChampionEvent(30, 1, 3))
	c.Record(NewDeathEvent(30, 1, 3, 30))
	c.Record(NewDeathEvent(40, 1, 4, 40))

	stats := c.Flush(40, 1, 4)

	if stats.Generation != 1 {
		t.Errorf("generation = %d, want 1", stats.Generation)
	}
	if stats.Ticks != 40 {
		t.Errorf("ticks = %d, want 40", stats.Ticks)
	}
	if stats.Jumps != 2 || stats.JumpsPerBird != 0.5 {
		t.Errorf("jumps = %d (%v per bird), want 2 (0.5)", stats.Jumps, stats.JumpsPerBird)
	}
	if stats.Deaths != 4 {
		t.Errorf("deaths = %d, want 4", stats.Deaths)
	}
	if stats.SurvivalMean != 25 || stats.SurvivalMax != 40 {
		t.Errorf("survival mean/max = %v/%v, want 25/40", stats.SurvivalMean, stats.SurvivalMax)
	}
	if !stats.ChampionUpdated {
		t.Error("expected champion_updated")
	}
	if stats.Score != 1 || stats.BestScore != 1 {
		t.Errorf("score/best = %d/%d, want 1/1", stats.Score, stats.BestScore)
	}
}

func TestCollectorResetsBetweenGenerations(t *testing.T) {
	c := NewCollector(2)
	c.Record(NewPipePassedEvent(5, 1, 1))
	c.Record(NewPipePassedEvent(9, 1, 2))
	c.Record(NewChampionEvent(10, 1, 1))
	c.Record(NewDeathEvent(10, 1, 1, 10))
	c.Record(NewDeathEvent(11, 1, 2, 11))
	c.Flush(11, 2, 3)

	c.Record(NewDeathEvent(15, 2, 3, 4))
	stats := c.Flush(15, 0, 3)

	if stats.Generation != 2 {
		t.Errorf("generation = %d, want 2", stats.Generation)
	}
	if stats.StartTick != 11 || stats.Ticks != 4 {
		t.Errorf("start/ticks = %d/%d, want 11/4", stats.StartTick, stats.Ticks)
	}
	if stats.Population != 3 {
		t.Errorf("population = %d, want 3", stats.Population)
	}
	if stats.Deaths != 1 || stats.ChampionUpdated {
		t.Errorf("counters not reset: deaths %d champion %v", stats.Deaths, stats.ChampionUpdated)
	}
	if stats.BestScore != 2 {
		t.Errorf("best score = %d, want 2 carried over", stats.BestScore)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventPipePassed.String() != "pipe_passed" {
		t.Errorf("EventPipePassed = %q", EventPipePassed.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("EventType(99) = %q", EventType(99).String())
	}
}

func TestLifetimeTracker(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(7, 100, 0)
	lt.RecordJump(7)
	lt.RecordJump(7)
	lt.RecordJump(8) // unknown bird is ignored

	if s := lt.Get(7); s.TicksAlive(130) != 30 {
		t.Errorf("TicksAlive while alive = %d, want 30", s.TicksAlive(130))
	}

	s := lt.Remove(7, 150)
	if s == nil {
		t.Fatal("Remove returned nil")
	}
	if s.Jumps != 2 {
		t.Errorf("jumps = %d, want 2", s.Jumps)
	}
	if s.TicksAlive(999) != 50 {
		t.Errorf("TicksAlive after death = %d, want 50", s.TicksAlive(999))
	}
	if lt.Count() != 0 {
		t.Errorf("Count = %d, want 0", lt.Count())
	}
	if lt.Remove(7, 160) != nil {
		t.Error("second Remove should return nil")
	}
}
