package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFallAndLand(t *testing.T) {
	w := NewWorld()
	b := NewBody(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, 1, 1}, 1, false)
	w.AddBody(b)

	for i := 0; i < 300; i++ {
		w.Step(1.0 / 60)
	}
	if !b.Grounded() {
		t.Fatal("body never landed")
	}
	if b.Position.Y() != b.HalfExtents.Y() {
		t.Errorf("resting y = %f, want %f", b.Position.Y(), b.HalfExtents.Y())
	}
	if b.Velocity.Y() != 0 {
		t.Errorf("resting vy = %f", b.Velocity.Y())
	}
}

func TestLaunchOnlyWhenGrounded(t *testing.T) {
	w := NewWorld()
	b := NewBody(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1}, 1, false)
	w.AddBody(b)
	w.Step(1.0 / 60)

	b.Launch(15)
	if b.Velocity.Y() != 15 {
		t.Fatalf("grounded launch vy = %f", b.Velocity.Y())
	}
	// Airborne now: a second launch is ignored.
	b.Launch(30)
	if b.Velocity.Y() == 30 {
		t.Error("airborne launch took effect")
	}
}

func TestFlyingHovers(t *testing.T) {
	w := NewWorld()
	b := NewBody(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, 1, 1}, 1, false)
	b.Flying = true
	w.AddBody(b)

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60)
	}
	if b.Position.Y() < 9 {
		t.Errorf("flying body sank to y = %f", b.Position.Y())
	}
	sig := b.Signal()
	if !sig.Flying || sig.Grounded {
		t.Errorf("signal = %+v, want flying and airborne", sig)
	}
}

func TestStaticAbsorbsPush(t *testing.T) {
	w := NewWorld()
	wall := NewBody(mgl32.Vec3{3, 1, 0}, mgl32.Vec3{1, 5, 5}, 1, true)
	b := NewBody(mgl32.Vec3{1.5, 1, 0}, mgl32.Vec3{1, 1, 1}, 1, false)
	w.AddBody(wall)
	w.AddBody(b)

	w.Step(1.0 / 60)
	if wall.Position.X() != 3 {
		t.Errorf("static wall moved to x = %f", wall.Position.X())
	}
	if b.Position.X() >= 1.5 {
		t.Errorf("body not pushed out of the wall: x = %f", b.Position.X())
	}
	sig := b.Signal()
	if !sig.OnWall || sig.WallSide != 1 {
		t.Errorf("signal = %+v, want on-wall with side +1", sig)
	}
}

func TestDynamicPairSplitsByMass(t *testing.T) {
	w := NewWorld()
	heavy := NewBody(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1}, 3, false)
	light := NewBody(mgl32.Vec3{1.5, 1, 0}, mgl32.Vec3{1, 1, 1}, 1, false)
	w.AddBody(heavy)
	w.AddBody(light)

	w.Step(1.0 / 60)
	dHeavy := 0 - heavy.Position.X()
	dLight := light.Position.X() - 1.5
	if dHeavy <= 0 || dLight <= 0 {
		t.Fatalf("pair not separated: heavy %f light %f", heavy.Position.X(), light.Position.X())
	}
	if dHeavy >= dLight {
		t.Errorf("heavy moved %f, light %f; lighter body should move further", dHeavy, dLight)
	}
}
