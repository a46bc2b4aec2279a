package anim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/body"
)

// Intent is the externally supplied animation state. The combat simulation
// decides intent; the animator only turns it into motion.
type Intent string

const (
	IntentIdle    Intent = "idle"
	IntentAttack  Intent = "attack"
	IntentHit     Intent = "hit"
	IntentDeath   Intent = "death"
	IntentVictory Intent = "victory"
	IntentJump    Intent = "jump"
)

// PhysicsSignal is the per-frame state the external simulation supplies.
// Read-only to the animator.
type PhysicsSignal struct {
	Velocity mgl32.Vec3
	Grounded bool
	Flying   bool
	Diving   bool
	OnWall   bool
	WallSide float32
}

// motion is one state's closed-form pose function. It is evaluated against
// the rig's base snapshot every frame; nothing accumulates across frames
// except the animator's own clocks.
type motion interface {
	evaluate(a *Animator, sig PhysicsSignal, speed float32)
}

// Animator drives a rig's local transforms from (intent, physics signal).
// Per-frame evaluation restores the base pose first, so every state's math
// is purely additive over the assembly-time snapshot.
type Animator struct {
	rig   *body.Rig
	state Intent
	clock float32

	motions map[Intent]motion

	// Death sub-state: orientation while tumbling, and the clock since the
	// first grounded frame.
	deathQuat      mgl32.Quat
	deathLanded    bool
	deathLandClock float32
}

// New returns an animator for the rig, starting in idle.
func New(rig *body.Rig) *Animator {
	return &Animator{
		rig:   rig,
		state: IntentIdle,
		motions: map[Intent]motion{
			IntentIdle:    idleMotion{},
			IntentAttack:  attackMotion{},
			IntentHit:     hitMotion{},
			IntentDeath:   deathMotion{},
			IntentVictory: victoryMotion{},
			IntentJump:    jumpMotion{},
		},
		deathQuat: mgl32.QuatIdent(),
	}
}

// State returns the current animation state.
func (a *Animator) State() Intent { return a.state }

// Clock returns seconds since the current state was entered.
func (a *Animator) Clock() float32 { return a.clock }

// Update advances the state clock and recomputes every animated node's local
// transform in place. A changed intent resets the clock and sub-state before
// evaluation. Missing rig parts are skipped, never an error.
func (a *Animator) Update(dt float32, intent Intent, sig PhysicsSignal) {
	if intent != a.state {
		a.state = intent
		a.clock = 0
		a.deathQuat = mgl32.QuatIdent()
		a.deathLanded = false
		a.deathLandClock = 0
	} else {
		a.clock += dt
	}

	a.rig.Root.ResetToBase()

	speed := sig.Velocity.Len() / 10
	if speed > 1 {
		speed = 1
	}

	m, ok := a.motions[a.state]
	if !ok {
		m = a.motions[IntentIdle]
	}
	m.evaluate(a, sig, speed)
}

// envelope helpers shared by the motion states.

// ramp eases 0->1 over the given duration of state time.
func ramp(clock, duration float32) float32 {
	if duration <= 0 || clock >= duration {
		return 1
	}
	if clock <= 0 {
		return 0
	}
	return clock / duration
}

// easeOutCubic is 1-(1-t)^3 on clamped t.
func easeOutCubic(t float32) float32 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// window maps t into [0,1] across the sub-range [from,to); 0 before, 1 after.
func window(t, from, to float32) float32 {
	if t <= from {
		return 0
	}
	if t >= to {
		return 1
	}
	return (t - from) / (to - from)
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
