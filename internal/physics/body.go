package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/anim"
)

// Body is a creature-scale rigid body: position, velocity, and an AABB from
// half extents. Static bodies (arena props) never move and ignore gravity.
type Body struct {
	Position    mgl32.Vec3
	Velocity    mgl32.Vec3
	HalfExtents mgl32.Vec3
	Mass        float32
	Static      bool

	// Flying holds the body against gravity; Diving drops it fast. Both are
	// driven by the preview controls and read back into the animator signal.
	Flying bool
	Diving bool

	grounded bool
	onWall   bool
	wallSide float32
}

// NewBody returns a body at position with the given AABB half extents.
// Mass defaults to 1.
func NewBody(position, halfExtents mgl32.Vec3, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{Position: position, HalfExtents: halfExtents, Mass: mass, Static: static}
}

// Grounded reports whether the body rested on the ground or another body
// during the last step.
func (b *Body) Grounded() bool { return b.grounded }

// Launch gives the body an upward impulse if it is grounded.
func (b *Body) Launch(speed float32) {
	if !b.grounded {
		return
	}
	b.Velocity[1] = speed
	b.grounded = false
}

// Signal packages the body's state for the animator.
func (b *Body) Signal() anim.PhysicsSignal {
	return anim.PhysicsSignal{
		Velocity: b.Velocity,
		Grounded: b.grounded,
		Flying:   b.Flying,
		Diving:   b.Diving,
		OnWall:   b.onWall,
		WallSide: b.wallSide,
	}
}

func (b *Body) min() mgl32.Vec3 { return b.Position.Sub(b.HalfExtents) }
func (b *Body) max() mgl32.Vec3 { return b.Position.Add(b.HalfExtents) }
