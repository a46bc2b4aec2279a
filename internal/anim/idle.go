package anim

import (
	"github.com/chewxy/math32"

	"github.com/amplice/bug-fight-sub000/internal/body"
)

const tau = 2 * math32.Pi

// idleMotion: breathing, one of three leg gaits picked from the physics
// flags, antenna sway, and wing flap. All offsets vanish at clock 0 with a
// stationary grounded signal, so a fresh idle shows exactly the base pose.
type idleMotion struct{}

func (idleMotion) evaluate(a *Animator, sig PhysicsSignal, speed float32) {
	rig := a.rig
	t := a.clock

	// Breathing: Y-scale sinusoid on the body masses, faster and deeper the
	// quicker the creature moves.
	breathFreq := 0.4 + 0.8*speed
	breath := math32.Sin(tau*breathFreq*t) * (0.02 + 0.03*speed)
	if rig.Thorax != nil {
		rig.Thorax.Scale[1] = rig.Thorax.Anchors.BaseScale.Y() * (1 + breath)
	}
	if rig.Abdomen != nil {
		rig.Abdomen.Scale[1] = rig.Abdomen.Anchors.BaseScale.Y() * (1 + breath*1.4)
	}

	vy := sig.Velocity.Y()
	switch {
	case sig.Grounded:
		walkCycle(rig, t, speed)
	case math32.Abs(vy) > 2:
		jumpPose(rig, vy)
	default:
		danglePose(rig, t)
	}

	antennaSway(rig, t, ramp(t, 0.3))
	wingFlap(rig, t, sig, ramp(t, 0.2))
}

// walkCycle swings each leg chain on its own phase. Amplitude scales with
// speed so a stationary creature stands still.
func walkCycle(rig *body.Rig, t, speed float32) {
	if speed <= 0 {
		return
	}
	freq := 1.2 + 2.2*speed
	for _, leg := range rig.Legs {
		swing := math32.Sin(tau * (t*freq + leg.Phase))
		lift := math32.Cos(tau * (t*freq + leg.Phase))
		amp := 0.35 * speed
		if leg.Coxa != nil {
			leg.Coxa.Rotation[0] = leg.Coxa.Anchors.BaseRotation.X() + swing*amp*0.6
		}
		if leg.Femur != nil {
			leg.Femur.Rotation[0] = leg.Femur.Anchors.BaseRotation.X() + swing*amp
		}
		if leg.Tibia != nil {
			leg.Tibia.Rotation[0] = leg.Tibia.Anchors.BaseRotation.X() - lift*amp*0.8
		}
		if leg.Tarsus != nil {
			leg.Tarsus.Rotation[0] = leg.Tarsus.Anchors.BaseRotation.X() + lift*amp*0.4
		}
	}
}

// jumpPose extends the legs on the way up and tucks them on the way down,
// scaled by vertical speed.
func jumpPose(rig *body.Rig, vy float32) {
	k := math32.Abs(vy) / 10
	if k > 1 {
		k = 1
	}
	for _, leg := range rig.Legs {
		if vy > 0 {
			if leg.Femur != nil {
				leg.Femur.Rotation[0] = leg.Femur.Anchors.BaseRotation.X() - 0.45*k
			}
			if leg.Tibia != nil {
				leg.Tibia.Rotation[0] = leg.Tibia.Anchors.BaseRotation.X() - 0.3*k
			}
		} else {
			if leg.Femur != nil {
				leg.Femur.Rotation[0] = leg.Femur.Anchors.BaseRotation.X() + 0.55*k
			}
			if leg.Tibia != nil {
				leg.Tibia.Rotation[0] = leg.Tibia.Anchors.BaseRotation.X() + 0.65*k
			}
		}
	}
}

// danglePose relaxes every chain with a slow wobble.
func danglePose(rig *body.Rig, t float32) {
	for i, leg := range rig.Legs {
		wobble := math32.Sin(tau*0.7*t+float32(i)) * 0.08
		if leg.Femur != nil {
			leg.Femur.Rotation[0] = leg.Femur.Anchors.BaseRotation.X() + 0.3 + wobble
		}
		if leg.Tibia != nil {
			leg.Tibia.Rotation[0] = leg.Tibia.Anchors.BaseRotation.X() + 0.4 + wobble
		}
	}
}

func antennaSway(rig *body.Rig, t, envelope float32) {
	for _, ant := range rig.Antennae {
		phase := ant.Anchors.Phase
		ant.Rotation[0] = ant.Anchors.BaseRotation.X() + math32.Sin(tau*(0.5*t+phase))*0.12*envelope
		ant.Rotation[2] = ant.Anchors.BaseRotation.Z() + math32.Cos(tau*(0.4*t+phase))*0.08*envelope*ant.Anchors.Side
	}
}

// wingFlap beats the wing hinges in mirror. Grounded creatures rest their
// wings; airborne non-flyers flutter; true flight drives a deep fast beat.
func wingFlap(rig *body.Rig, t float32, sig PhysicsSignal, envelope float32) {
	if rig.WingLeft == nil || rig.WingRight == nil || sig.Grounded {
		return
	}
	amp, freq := float32(0.25), float32(4)
	if sig.Flying {
		amp, freq = 0.9, 9
	}
	if sig.Diving {
		amp *= 0.4
	}
	beat := math32.Sin(tau*freq*t) * amp * envelope
	rig.WingRight.Rotation[2] = rig.WingRight.Anchors.BaseRotation.Z() + beat
	rig.WingLeft.Rotation[2] = rig.WingLeft.Anchors.BaseRotation.Z() - beat
}
