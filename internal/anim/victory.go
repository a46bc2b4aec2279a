package anim

import "github.com/chewxy/math32"

// victoryMotion is a celebratory loop: the whole body bounces on a sine,
// the thorax puffs, wings flutter fast, antennae wave, and the legs take
// turns kicking. Everything ramps in over the first moments so entering
// the state never pops.
type victoryMotion struct{}

func (victoryMotion) evaluate(a *Animator, sig PhysicsSignal, speed float32) {
	rig := a.rig
	t := a.clock
	env := ramp(t, 0.25)

	// Bounce the root on its base height.
	bounce := math32.Abs(math32.Sin(t*tau*1.2)) * 0.6 * env
	rig.Root.Position[1] = rig.Root.Anchors.BasePosition.Y() + bounce

	// Body puff, a faster and deeper breath than idle.
	if rig.Thorax != nil {
		puff := 1 + 0.08*math32.Sin(t*tau*1.2)*env
		base := rig.Thorax.Anchors.BaseScale
		rig.Thorax.Scale[0] = base.X() * puff
		rig.Thorax.Scale[1] = base.Y() * puff
		rig.Thorax.Scale[2] = base.Z() * puff
	}

	// Fast flutter regardless of flight state.
	flutter := math32.Sin(t*tau*5) * 0.5 * env
	if w := rig.WingRight; w != nil {
		w.Rotation[2] = w.Anchors.BaseRotation.Z() - flutter
	}
	if w := rig.WingLeft; w != nil {
		w.Rotation[2] = w.Anchors.BaseRotation.Z() + flutter
	}

	// Antennae wave out of phase with each other.
	for i, ant := range rig.Antennae {
		ph := float32(i) * math32.Pi
		ant.Rotation[0] = ant.Anchors.BaseRotation.X() + 0.4*math32.Sin(t*tau*1.5+ph)*env
	}

	// Each chain kicks in turn, staggered by the leg's gait phase.
	for _, leg := range rig.Legs {
		kick := math32.Sin(t*tau*1.2+leg.Phase*tau) * env
		if kick < 0 {
			kick = 0
		}
		if leg.Femur != nil {
			leg.Femur.Rotation[0] = leg.Femur.Anchors.BaseRotation.X() - 0.5*kick
		}
		if leg.Tibia != nil {
			leg.Tibia.Rotation[0] = leg.Tibia.Anchors.BaseRotation.X() + 0.3*kick
		}
	}
}
