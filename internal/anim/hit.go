package anim

import (
	"github.com/chewxy/math32"
)

// hitMotion: exponentially decaying recoil. The shake, squash, and leg
// buckle all ride one decay envelope so the whole body settles together.
type hitMotion struct{}

func (hitMotion) evaluate(a *Animator, sig PhysicsSignal, speed float32) {
	rig := a.rig
	t := a.clock
	decay := math32.Exp(-4 * t)
	shake := math32.Sin(28*t) * decay

	if rig.Head != nil {
		rig.Head.Rotation[0] = rig.Head.Anchors.BaseRotation.X() - 0.35*decay
		rig.Head.Rotation[2] = rig.Head.Anchors.BaseRotation.Z() + shake*0.2
	}
	if rig.Thorax != nil {
		rig.Thorax.Position[2] = rig.Thorax.Anchors.BasePosition.Z() - 0.6*decay
		rig.Thorax.Scale[1] = rig.Thorax.Anchors.BaseScale.Y() * (1 - 0.18*decay)
		rig.Thorax.Rotation[2] = rig.Thorax.Anchors.BaseRotation.Z() + shake*0.1
	}
	if rig.Abdomen != nil {
		rig.Abdomen.Position[2] = rig.Abdomen.Anchors.BasePosition.Z() - 0.4*decay
		rig.Abdomen.Scale[1] = rig.Abdomen.Anchors.BaseScale.Y() * (1 - 0.12*decay)
	}

	// Wings flare open on impact.
	if rig.WingRight != nil {
		rig.WingRight.Rotation[2] = rig.WingRight.Anchors.BaseRotation.Z() + 0.5*decay
	}
	if rig.WingLeft != nil {
		rig.WingLeft.Rotation[2] = rig.WingLeft.Anchors.BaseRotation.Z() - 0.5*decay
	}

	// Leg buckle: knees give, then spring back with the shake.
	for _, leg := range rig.Legs {
		if leg.Femur != nil {
			leg.Femur.Rotation[0] = leg.Femur.Anchors.BaseRotation.X() + 0.3*decay
		}
		if leg.Tibia != nil {
			leg.Tibia.Rotation[0] = leg.Tibia.Anchors.BaseRotation.X() + (0.35*decay + shake*0.1)
		}
	}
}
