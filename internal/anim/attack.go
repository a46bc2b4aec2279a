package anim

import (
	"github.com/chewxy/math32"

	"github.com/amplice/bug-fight-sub000/internal/body"
	"github.com/amplice/bug-fight-sub000/internal/genome"
)

// attackDuration is the full weapon sequence length in seconds.
const attackDuration = 0.8

// attackMotion runs the weapon-specific three-phase sequence. Every phase is
// a piecewise interpolation of deltas over normalized time, added onto the
// base snapshots; past the end the pose holds at base.
type attackMotion struct{}

func (attackMotion) evaluate(a *Animator, sig PhysicsSignal, speed float32) {
	rig := a.rig
	t := clamp01(a.clock / attackDuration)

	switch rig.WeaponKind {
	case genome.WeaponMandibles:
		mandibleStrike(rig, t)
	case genome.WeaponFangs:
		fangStrike(rig, t)
	case genome.WeaponStinger:
		stingerStrike(rig, t)
	case genome.WeaponPincers:
		pincerStrike(rig, t)
	case genome.WeaponHorn:
		hornSweep(rig, t)
	default:
		bodyLunge(rig, t)
	}
}

// mandibleStrike: open 0-40%, lunge+snap 40-70%, return 70-100%.
func mandibleStrike(rig *body.Rig, t float32) {
	open := window(t, 0, 0.4) - window(t, 0.4, 0.55)*1.3 - (window(t, 0.7, 1) * -0.3)
	// open rises to 1, snaps past closed to -0.3, then returns to 0.
	lunge := math32.Sin(window(t, 0.4, 0.7)*math32.Pi) * (1 - window(t, 0.85, 1))

	setYaw(rig.WeaponRight, -0.6*open)
	setYaw(rig.WeaponLeft, 0.6*open)

	if rig.Weapon != nil && rig.Weapon.Name == "weapon" {
		rig.Weapon.Position[2] = rig.Weapon.Anchors.BasePosition.Z() + lunge*1.8
	}
	if rig.Head != nil {
		rig.Head.Position[2] = rig.Head.Anchors.BasePosition.Z() + lunge*1.2
		rig.Head.Rotation[0] = rig.Head.Anchors.BaseRotation.X() + lunge*0.15
	}
}

// fangStrike: rear 0-40%, strike down 40-70%, withdraw 70-100%.
func fangStrike(rig *body.Rig, t float32) {
	rear := window(t, 0, 0.4) * (1 - window(t, 0.4, 0.7))
	strike := math32.Sin(window(t, 0.4, 0.7)*math32.Pi) * (1 - window(t, 0.8, 1))

	if rig.Head != nil {
		rig.Head.Rotation[0] = rig.Head.Anchors.BaseRotation.X() - rear*0.5 + strike*0.8
		rig.Head.Position[1] = rig.Head.Anchors.BasePosition.Y() + rear*0.8 - strike*0.6
	}
	setPitch(rig.WeaponLeft, -rear*0.4+strike*0.5)
	setPitch(rig.WeaponRight, -rear*0.4+strike*0.5)
}

// stingerStrike: coil 0-40%, strike over the body 40-70%, venom-pump 70-100%.
func stingerStrike(rig *body.Rig, t float32) {
	if rig.Weapon == nil {
		bodyLunge(rig, t)
		return
	}
	coil := window(t, 0, 0.4) * (1 - window(t, 0.4, 0.55))
	strike := math32.Sin(window(t, 0.4, 0.7)*math32.Pi) * (1 - window(t, 0.9, 1))
	pump := window(t, 0.7, 1)

	rig.Weapon.Rotation[0] = rig.Weapon.Anchors.BaseRotation.X() + coil*0.6 - strike*1.7
	rig.Weapon.Position[1] = rig.Weapon.Anchors.BasePosition.Y() + strike*1.2

	// Venom pump: quick pulsing squeeze along the shaft.
	pulse := 1 + math32.Sin(pump*math32.Pi*4)*0.12*pump
	rig.Weapon.Scale[1] = rig.Weapon.Anchors.BaseScale.Y() * pulse
	if rig.Abdomen != nil {
		rig.Abdomen.Rotation[0] = rig.Abdomen.Anchors.BaseRotation.X() + coil*0.25 - strike*0.35
	}
}

// pincerStrike: spread 0-40%, clamp 40-70%, relax 70-100%.
func pincerStrike(rig *body.Rig, t float32) {
	spread := window(t, 0, 0.4) - window(t, 0.4, 0.7)*1.4 + window(t, 0.7, 1)*0.4
	push := math32.Sin(window(t, 0.4, 0.7)*math32.Pi) * (1 - window(t, 0.85, 1))

	setYaw(rig.WeaponRight, -0.7*spread)
	setYaw(rig.WeaponLeft, 0.7*spread)
	if rig.Weapon != nil {
		rig.Weapon.Position[2] = rig.Weapon.Anchors.BasePosition.Z() + push*1.4
	}
}

// hornSweep: crouch 0-40%, upward sweep 40-70%, settle 70-100%.
func hornSweep(rig *body.Rig, t float32) {
	crouch := window(t, 0, 0.4) * (1 - window(t, 0.4, 0.6))
	sweep := math32.Sin(window(t, 0.4, 0.7)*math32.Pi) * (1 - window(t, 0.9, 1))

	if rig.Head != nil {
		rig.Head.Rotation[0] = rig.Head.Anchors.BaseRotation.X() + crouch*0.5 - sweep*0.9
		rig.Head.Position[1] = rig.Head.Anchors.BasePosition.Y() - crouch*0.7 + sweep*1.0
	}
	if rig.Weapon != nil {
		rig.Weapon.Rotation[0] = rig.Weapon.Anchors.BaseRotation.X() + crouch*0.4 - sweep*1.1
		rig.Weapon.Position[1] = rig.Weapon.Anchors.BasePosition.Y() - crouch*0.6 + sweep*1.2
	}
}

// bodyLunge is the weaponless fallback: the whole body jabs forward.
func bodyLunge(rig *body.Rig, t float32) {
	lunge := math32.Sin(window(t, 0.2, 0.7)*math32.Pi) * (1 - window(t, 0.85, 1))
	rig.Root.Position[2] = rig.Root.Anchors.BasePosition.Z() + lunge*1.5
	if rig.Head != nil {
		rig.Head.Rotation[0] = rig.Head.Anchors.BaseRotation.X() + lunge*0.25
	}
}

func setYaw(n *body.Node, delta float32) {
	if n == nil {
		return
	}
	n.Rotation[1] = n.Anchors.BaseRotation.Y() + delta
}

func setPitch(n *body.Node, delta float32) {
	if n == nil {
		return
	}
	n.Rotation[0] = n.Anchors.BaseRotation.X() + delta
}
