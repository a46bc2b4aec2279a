package voxel

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/anim"
	"github.com/amplice/bug-fight-sub000/internal/body"
)

// DefaultFrameRate is the bake rate in frames per second.
const DefaultFrameRate = 12

// PartPose is one node's local transform in a baked frame. Rotation is the
// node's Euler pose converted to a quaternion so playback can interpolate
// between frames without wrap trouble.
type PartPose struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Frame is every tree node's pose at one bake instant.
type Frame struct {
	Time  float32
	Poses []PartPose
}

// FrameSet is a complete baked animation state.
type FrameSet struct {
	Intent anim.Intent
	Rate   float32
	Loop   bool
	Frames []Frame
}

// At returns the frame for a playback clock, wrapping looped sets and
// clamping one-shot sets to their final frame.
func (s *FrameSet) At(t float32) *Frame {
	if len(s.Frames) == 0 {
		return nil
	}
	i := int(t * s.Rate)
	if s.Loop {
		i %= len(s.Frames)
		if i < 0 {
			i += len(s.Frames)
		}
	} else if i >= len(s.Frames) {
		i = len(s.Frames) - 1
	}
	return &s.Frames[i]
}

// Library holds one baked set per animation state.
type Library map[anim.Intent]*FrameSet

// bakePlan fixes the duration, signal, and looping of each state's bake.
// Idle bakes a walking loop; death leads with half a second of free fall so
// the tumble and the ground flip both land in the set.
var bakePlan = []struct {
	intent   anim.Intent
	duration float32
	loop     bool
	airborne float32 // leading airborne seconds
	signal   anim.PhysicsSignal
}{
	{anim.IntentIdle, 2.0, true, 0, anim.PhysicsSignal{Grounded: true, Velocity: mgl32.Vec3{0, 0, 5}}},
	{anim.IntentAttack, 0.8, false, 0, anim.PhysicsSignal{Grounded: true}},
	{anim.IntentHit, 1.2, false, 0, anim.PhysicsSignal{Grounded: true}},
	{anim.IntentDeath, 2.4, false, 0.5, anim.PhysicsSignal{Grounded: true}},
	{anim.IntentVictory, 2.0, true, 0, anim.PhysicsSignal{Grounded: true}},
	{anim.IntentJump, 2.0, false, 0, anim.PhysicsSignal{Grounded: true}},
}

// Bake runs the animator offline and records every voxel node's pose at the
// fixed rate, one set per state. The rig is restored to its base pose before
// returning.
func Bake(rig *body.Rig, fps float32) Library {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	dt := 1 / fps

	lib := make(Library, len(bakePlan))
	for _, plan := range bakePlan {
		a := anim.New(rig)
		set := &FrameSet{Intent: plan.intent, Rate: fps, Loop: plan.loop}

		a.Update(0, plan.intent, planSignal(plan.signal, plan.airborne, 0))
		for t := float32(0); t < plan.duration; t += dt {
			set.Frames = append(set.Frames, captureFrame(rig, t))
			a.Update(dt, plan.intent, planSignal(plan.signal, plan.airborne, t+dt))
		}
		lib[plan.intent] = set
	}

	rig.Root.ResetToBase()
	return lib
}

func planSignal(sig anim.PhysicsSignal, airborne, t float32) anim.PhysicsSignal {
	if t < airborne {
		sig.Grounded = false
	}
	return sig
}

// captureFrame records every node's local pose. Pivot nodes without voxels
// are included too: the animator drives the pivots and the voxel-bearing
// leaves inherit their motion through the hierarchy at playback.
func captureFrame(rig *body.Rig, t float32) Frame {
	f := Frame{Time: t}
	rig.Root.Walk(func(n *body.Node) {
		f.Poses = append(f.Poses, PartPose{
			Name:     n.Name,
			Position: n.Position,
			Rotation: eulerQuat(n.Rotation),
			Scale:    n.Scale,
		})
	})
	return f
}

// Apply writes a baked frame's poses back onto the tree for drawing. Pose
// order matches the capture walk order; a name mismatch (tree from a
// different genome) leaves that node untouched.
func Apply(f *Frame, root *body.Node) {
	i := 0
	root.Walk(func(n *body.Node) {
		if i >= len(f.Poses) {
			return
		}
		if p := f.Poses[i]; p.Name == n.Name {
			n.Position = p.Position
			n.Rotation = quatEuler(p.Rotation)
			n.Scale = p.Scale
		}
		i++
	})
}

// eulerQuat converts the node convention (Euler radians, applied Z then Y
// then X) to a quaternion.
func eulerQuat(r mgl32.Vec3) mgl32.Quat {
	return mgl32.AnglesToQuat(r.Z(), r.Y(), r.X(), mgl32.ZYX)
}

// quatEuler is the inverse of eulerQuat.
func quatEuler(q mgl32.Quat) mgl32.Vec3 {
	w, x, y, z := q.W, q.X(), q.Y(), q.Z()
	sinp := 2 * (w*y - z*x)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	return mgl32.Vec3{
		math32.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y)),
		math32.Asin(sinp),
		math32.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z)),
	}
}
