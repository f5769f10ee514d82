package systems

import (
	"math/rand"
	"testing"
)

func testGeometry() PipeGeometry {
	return PipeGeometry{
		Width:   506,
		Height:  587,
		PipeW:   50,
		Spacing: 202.4,
		Gap:     146.75,
		Step:    1,
	}
}

func TestPipeQueueFill(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := testGeometry()
	q := NewPipeQueue(g)
	q.Fill(rng, 4)

	if q.Len() != 4 {
		t.Fatalf("Len = %d, want 4", q.Len())
	}
	for i, p := range q.Pairs() {
		wantX := g.Width + float32(i)*g.Spacing
		if diff := p.X() - wantX; diff > 1e-3 || diff < -1e-3 {
			t.Errorf("pair %d x = %v, want %v", i, p.X(), wantX)
		}
		if p.Upper.Y != 0 {
			t.Errorf("pair %d upper segment should start at the ceiling", i)
		}
		if gap := p.Lower.Y - p.Upper.H; gap != g.Gap {
			t.Errorf("pair %d gap = %v, want %v", i, gap, g.Gap)
		}
		if p.Upper.H < 0 || p.Lower.Y > g.Height+1 {
			t.Errorf("pair %d gap outside playfield: top %v bottom %v", i, p.Upper.H, p.Lower.Y)
		}
		if p.Lower.Bottom() != g.Height {
			t.Errorf("pair %d lower segment should reach the floor", i)
		}
	}
}

func TestPipeQueueAdvance(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	q := NewPipeQueue(testGeometry())
	q.Fill(rng, 2)

	before := q.Pairs()[1].X()
	q.Advance()
	q.Advance()
	if got := q.Pairs()[1].X(); got != before-2 {
		t.Errorf("x after two steps = %v, want %v", got, before-2)
	}
	if q.Pairs()[0].Upper.X != q.Pairs()[0].Lower.X {
		t.Error("segments of a pair drifted apart")
	}
}

func TestPipeQueueRetireLead(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := testGeometry()
	q := NewPipeQueue(g)
	q.Fill(rng, 4)
	q.MarkCrossed()

	if q.RetireLead(rng) {
		t.Fatal("retired a pair that is still on screen")
	}

	// Scroll until the lead pair has fully left the playfield.
	second := q.Pairs()[1]
	for !q.Pairs()[0].OffScreen() {
		q.Advance()
	}
	if !q.RetireLead(rng) {
		t.Fatal("expected the lead pair to retire")
	}
	if q.Len() != 4 {
		t.Errorf("Len after retire = %d, want 4", q.Len())
	}
	if q.Pairs()[0].Upper.H != second.Upper.H {
		t.Error("second pair did not become the lead")
	}
	last := q.Pairs()[3].X() - q.Pairs()[2].X()
	if diff := last - g.Spacing; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("new pair spacing = %v, want %v", last, g.Spacing)
	}
	if !q.MarkCrossed() {
		t.Error("retiring should reset the crossed flag")
	}
}

func TestPipeQueueMarkCrossedOnce(t *testing.T) {
	q := NewPipeQueue(testGeometry())
	if !q.MarkCrossed() {
		t.Error("first MarkCrossed should report true")
	}
	if q.MarkCrossed() {
		t.Error("second MarkCrossed should report false")
	}
	q.Clear()
	if !q.MarkCrossed() {
		t.Error("Clear should reset the crossed flag")
	}
}

func TestPipeQueueClear(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	q := NewPipeQueue(testGeometry())
	q.Fill(rng, 4)
	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("Len after Clear = %d", q.Len())
	}
	q.Spawn(rng)
	if q.Pairs()[0].X() != testGeometry().Width {
		t.Error("first pair after Clear should start at the right edge")
	}
}
