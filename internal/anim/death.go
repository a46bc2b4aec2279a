package anim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Death timing: the ground flip takes flipDuration seconds of cubic
// ease-out once the body first touches down.
const flipDuration = 0.6

// deathMotion is a sub-state machine: falling (airborne tumble), landing
// (ease-out flip onto the back), settling (upside-down twitches). While
// airborne the orientation is slerped toward upright and the inverted Euler
// pose is never written; the flip clock starts on the first grounded frame.
type deathMotion struct{}

func (deathMotion) evaluate(a *Animator, sig PhysicsSignal, speed float32) {
	rig := a.rig
	t := a.clock

	if !sig.Grounded && !a.deathLanded {
		// Falling: tuck the legs progressively, drift orientation upright.
		tuck := clamp01(t * 2)
		for _, leg := range rig.Legs {
			if leg.Femur != nil {
				leg.Femur.Rotation[0] = leg.Femur.Anchors.BaseRotation.X() + 0.8*tuck
			}
			if leg.Tibia != nil {
				leg.Tibia.Rotation[0] = leg.Tibia.Anchors.BaseRotation.X() + 1.0*tuck
			}
		}
		// Tumble without controlling absolute orientation: nudge the stored
		// quaternion toward upright and convert back to the root's Eulers.
		a.deathQuat = mgl32.QuatSlerp(a.deathQuat, mgl32.QuatIdent(), 0.1)
		roll, pitch := quatRollPitch(a.deathQuat)
		rig.Root.Rotation[0] = rig.Root.Anchors.BaseRotation.X() + pitch
		rig.Root.Rotation[2] = rig.Root.Anchors.BaseRotation.Z() + roll
		droop(a, t)
		return
	}

	if !a.deathLanded {
		a.deathLanded = true
		a.deathLandClock = t
	}
	u := t - a.deathLandClock
	switch {
	case u < flipDuration:
		// Landing: cubic ease-out from upright to fully inverted.
		flip := math32.Pi * easeOutCubic(u/flipDuration)
		rig.Root.Rotation[2] = rig.Root.Anchors.BaseRotation.Z() + flip
		legsCurl(a, clamp01(u/flipDuration))
	default:
		// Settling: inverted, twitching less and less.
		rig.Root.Rotation[2] = rig.Root.Anchors.BaseRotation.Z() + math32.Pi
		legsCurl(a, 1)
		twitch := math32.Sin(17*u) * math32.Exp(-1.2*(u-flipDuration)) * 0.15
		for i, leg := range rig.Legs {
			if leg.Tibia != nil {
				leg.Tibia.Rotation[0] += twitch * math32.Sin(float32(i)*1.7+u)
			}
		}
	}
	droop(a, t)
}

// legsCurl folds every chain inward, the dead-bug pose.
func legsCurl(a *Animator, amount float32) {
	for _, leg := range a.rig.Legs {
		if leg.Femur != nil {
			leg.Femur.Rotation[0] = leg.Femur.Anchors.BaseRotation.X() + 1.1*amount
		}
		if leg.Tibia != nil {
			leg.Tibia.Rotation[0] = leg.Tibia.Anchors.BaseRotation.X() + 1.4*amount
		}
		if leg.Tarsus != nil {
			leg.Tarsus.Rotation[0] = leg.Tarsus.Anchors.BaseRotation.X() + 0.8*amount
		}
	}
}

// droop lowers wings and antennae monotonically with the state clock.
func droop(a *Animator, t float32) {
	sag := clamp01(t / 2)
	for _, ant := range a.rig.Antennae {
		ant.Rotation[0] = ant.Anchors.BaseRotation.X() + 1.0*sag
	}
	if w := a.rig.WingRight; w != nil {
		w.Rotation[2] = w.Anchors.BaseRotation.Z() - 0.7*sag
	}
	if w := a.rig.WingLeft; w != nil {
		w.Rotation[2] = w.Anchors.BaseRotation.Z() + 0.7*sag
	}
}

// quatRollPitch extracts the Z (roll) and X (pitch) components of a small
// orientation quaternion. Good enough for the tumble drift, which never
// approaches gimbal range.
func quatRollPitch(q mgl32.Quat) (roll, pitch float32) {
	w, x, y, z := q.W, q.X(), q.Y(), q.Z()
	roll = math32.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	pitch = math32.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	return
}
