package anim

import "github.com/chewxy/math32"

// Jump runs a fixed cycle so it reads the same with or without a live
// physics body: crouch, ascend, descend, land, then hold the idle-like
// stance until the intent changes.
const jumpCycle = 2.0

// jumpMotion drives body squash and leg pose through the four sub-phases
// of the cycle. The vertical offset is additive over the root's base
// height, so a physics-driven world position still composes with it.
type jumpMotion struct{}

func (jumpMotion) evaluate(a *Animator, sig PhysicsSignal, speed float32) {
	rig := a.rig
	t := a.clock
	if t > jumpCycle {
		t = jumpCycle
	}
	p := t / jumpCycle

	var lift, squash, legFold float32
	switch {
	case p < 0.2:
		// Crouch: compress down, fold the legs for the push.
		u := p / 0.2
		lift = -0.6 * u
		squash = 0.25 * u
		legFold = u
	case p < 0.5:
		// Ascend: stretch out of the crouch, legs trail.
		u := (p - 0.2) / 0.3
		e := easeOutCubic(u)
		lift = -0.6 + 3.0*e
		squash = 0.25 - 0.4*e
		legFold = 1 - 0.7*e
	case p < 0.8:
		// Descend: fall back toward the ground, legs reach.
		u := (p - 0.5) / 0.3
		lift = 2.4 - 2.4*u*u
		squash = -0.15 + 0.15*u
		legFold = 0.3 + 0.3*u
	default:
		// Land: absorb with a brief squash that relaxes to rest.
		u := (p - 0.8) / 0.2
		rebound := math32.Sin(u*math32.Pi) * (1 - u)
		lift = -0.3 * rebound
		squash = 0.2 * rebound
		legFold = 0.6 * (1 - u)
	}

	rig.Root.Position[1] = rig.Root.Anchors.BasePosition.Y() + lift
	if rig.Thorax != nil {
		base := rig.Thorax.Anchors.BaseScale
		rig.Thorax.Scale[1] = base.Y() * (1 - squash)
		rig.Thorax.Scale[0] = base.X() * (1 + squash*0.5)
		rig.Thorax.Scale[2] = base.Z() * (1 + squash*0.5)
	}
	for _, leg := range rig.Legs {
		if leg.Femur != nil {
			leg.Femur.Rotation[0] = leg.Femur.Anchors.BaseRotation.X() + 0.7*legFold
		}
		if leg.Tibia != nil {
			leg.Tibia.Rotation[0] = leg.Tibia.Anchors.BaseRotation.X() - 0.9*legFold
		}
	}
}
