package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flappy/components"
)

func TestIntegrate(t *testing.T) {
	pos := components.Position{X: 50, Y: 100}
	vel := components.Velocity{Y: 1}
	rot := components.Rotation{}

	Integrate(&pos, &vel, &rot, 0.2, 7.5)

	if math.Abs(float64(vel.Y)-1.2) > 1e-6 {
		t.Errorf("velocity = %v, want 1.2", vel.Y)
	}
	if math.Abs(float64(pos.Y)-101.2) > 1e-4 {
		t.Errorf("y = %v, want 101.2", pos.Y)
	}
	if pos.X != 50 {
		t.Errorf("x changed to %v", pos.X)
	}
	wantAngle := math.Atan(1.2 / 7.5)
	if math.Abs(float64(rot.Angle)-wantAngle) > 1e-5 {
		t.Errorf("angle = %v, want %v", rot.Angle, wantAngle)
	}
}

func TestPhysicsSystemUpdate(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Position, components.Velocity, components.Rotation](w)
	e := mapper.NewEntity(&components.Position{Y: 100}, &components.Velocity{Y: -5}, &components.Rotation{})

	s := NewPhysicsSystem(w, 0.2, 7.5)
	for i := 0; i < 10; i++ {
		s.Update()
	}

	pos, vel, _ := mapper.Get(e)
	// v_n = -5 + 0.2n; y moves by the sum of v_1..v_10.
	if math.Abs(float64(vel.Y)-(-3)) > 1e-4 {
		t.Errorf("velocity = %v, want -3", vel.Y)
	}
	if math.Abs(float64(pos.Y)-(100-39)) > 1e-3 {
		t.Errorf("y = %v, want 61", pos.Y)
	}
}
