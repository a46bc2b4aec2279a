package body

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
)

// buildWeapon builds the genome's weapon subtree and records its animated
// parts on the rig. Fangs hang off the head so head rotation carries them;
// every other weapon hangs off the body root.
func buildWeapon(c *buildCtx, rig *Rig) {
	rig.WeaponKind = c.g.Weapon
	switch c.g.Weapon {
	case genome.WeaponMandibles:
		weaponMandibles(c, rig)
	case genome.WeaponFangs:
		weaponFangs(c, rig)
	case genome.WeaponStinger:
		weaponStinger(c, rig)
	case genome.WeaponPincers:
		weaponPincers(c, rig)
	case genome.WeaponHorn:
		weaponHorn(c, rig)
	default: // none
	}
}

// curvedBlade makes one horizontally curving tube with a hard tip, used for
// mandible and pincer halves. side bends the curve inward.
func (c *buildCtx) curvedBlade(name string, side, length, radius float32) *Node {
	s := c.scale
	n := NewNode(name)
	ctrl := []mgl32.Vec3{
		{0, 0, 0},
		{side * 0.4 * length * s, 0, 0.7 * length * s},
		{-side * 0.3 * length * s, 0, 1.3 * length * s},
	}
	blade := NewNode(name + "_blade")
	blade.Mesh = geometry.Tube(ctrl, geometry.TaperedRadius(radius*s, radius*0.25*s), 10, 8)
	blade.Material = c.chitinMaterial()
	n.AddChild(blade)

	// Serration ridge along the inner edge.
	for i := 1; i <= 3; i++ {
		t := float32(i) / 4
		at := geometry.QuadraticBezier(ctrl[0], ctrl[1], ctrl[2], t)
		tooth := NewNode(name + "_tooth")
		tooth.Mesh = geometry.Cone(radius*0.25*s, radius*1.2*s, 5)
		tooth.Material = c.chitinMaterial()
		tooth.Position = at
		tooth.Rotation[2] = side * halfPi * 0.8
		n.AddChild(tooth)
	}
	return n
}

func weaponMandibles(c *buildCtx, rig *Rig) {
	sb := c.scale * c.bulk
	weapon := NewNode("weapon")
	weapon.Position = mgl32.Vec3{0, 0.2 * sb, headZ * sb}
	for _, side := range []float32{-1, 1} {
		half := c.curvedBlade("mandible", side, 2.4, 0.5)
		half.Position = mgl32.Vec3{side * 1.6 * sb, 0, 1.2 * sb}
		half.Rotation[1] = -side * 0.5 // resting half-open
		half.Anchors.Side = side
		weapon.AddChild(half)
		if side < 0 {
			rig.WeaponLeft = half
		} else {
			rig.WeaponRight = half
		}
	}
	rig.Weapon = weapon
	rig.Root.AddChild(weapon)
}

func weaponFangs(c *buildCtx, rig *Rig) {
	s := c.scale
	sb := c.scale * c.bulk
	weapon := NewNode("weapon")
	weapon.Position = mgl32.Vec3{0, -0.8 * sb, 1.6 * sb}
	for _, side := range []float32{-1, 1} {
		fang := NewNode("fang")
		fang.Position = mgl32.Vec3{side * 0.9 * sb, 0, 0}
		fang.Anchors.Side = side
		ctrl := []mgl32.Vec3{
			{0, 0, 0},
			{0, -1.6 * s, 1.0 * s},
			{0, -2.8 * s, 0.4 * s},
		}
		shaft := NewNode("fang_shaft")
		shaft.Mesh = geometry.Tube(ctrl, geometry.TaperedRadius(0.35*s, 0.12*s), 8, 8)
		shaft.Material = c.chitinMaterial()
		fang.AddChild(shaft)

		tip := NewNode("fang_tip")
		tip.Mesh = geometry.Cone(0.14*s, 0.7*s, 6)
		tip.Material = c.venomMaterial()
		tip.Position = ctrl[2]
		tip.Rotation[0] = mgl32.DegToRad(190)
		fang.AddChild(tip)

		weapon.AddChild(fang)
		if side < 0 {
			rig.WeaponLeft = fang
		} else {
			rig.WeaponRight = fang
		}
	}
	rig.Weapon = weapon
	// Fangs ride the head so head pitch carries them.
	rig.Head.AddChild(weapon)
}

func weaponStinger(c *buildCtx, rig *Rig) {
	s := c.scale
	sb := c.scale * c.bulk
	weapon := NewNode("weapon")
	weapon.Position = mgl32.Vec3{0, 0.4 * sb, (-abdomenPush(c.g.Thorax) - 3.6) * sb}

	ctrl := []mgl32.Vec3{
		{0, 0, 0},
		{0, 1.8 * s, -2.2 * s},
		{0, 3.4 * s, -1.0 * s},
	}
	shaft := NewNode("stinger_shaft")
	shaft.Mesh = geometry.Tube(ctrl, geometry.TaperedRadius(0.8*s, 0.3*s), 10, 8)
	shaft.Material = c.bodyMaterial()
	weapon.AddChild(shaft)

	barb := NewNode("stinger_barb")
	barb.Mesh = geometry.Cone(0.3*s, 1.6*s, 8)
	barb.Material = c.venomMaterial()
	barb.Position = ctrl[2]
	barb.Rotation[0] = 0.8
	weapon.AddChild(barb)

	rig.Weapon = weapon
	rig.Root.AddChild(weapon)
}

func weaponPincers(c *buildCtx, rig *Rig) {
	sb := c.scale * c.bulk
	weapon := NewNode("weapon")
	weapon.Position = mgl32.Vec3{0, -0.4 * sb, (headZ + 1.0) * sb}
	for _, side := range []float32{-1, 1} {
		arm := NewNode("pincer")
		arm.Position = mgl32.Vec3{side * 2.2 * sb, 0, 0}
		arm.Rotation[1] = -side * 0.35
		arm.Anchors.Side = side
		half := c.curvedBlade("pincer_claw", side, 3.2, 0.8)
		arm.AddChild(half)
		weapon.AddChild(arm)
		if side < 0 {
			rig.WeaponLeft = arm
		} else {
			rig.WeaponRight = arm
		}
	}
	rig.Weapon = weapon
	rig.Root.AddChild(weapon)
}

func weaponHorn(c *buildCtx, rig *Rig) {
	s := c.scale
	sb := c.scale * c.bulk
	weapon := NewNode("weapon")
	weapon.Position = mgl32.Vec3{0, 1.8 * sb, (headZ + 0.8) * sb}

	ctrl := []mgl32.Vec3{
		{0, 0, 0},
		{0, 1.6 * s, 1.8 * s},
		{0, 3.8 * s, 2.2 * s},
	}
	horn := NewNode("horn_shaft")
	horn.Mesh = geometry.Tube(ctrl, geometry.TaperedRadius(0.7*s, 0.1*s), 10, 8)
	horn.Material = c.chitinMaterial()
	weapon.AddChild(horn)

	// Ridge knobs up the front face.
	along := geometry.SampleCurve(ctrl, 4)
	for _, at := range along[1:4] {
		knob := NewNode("horn_ridge")
		knob.Mesh = geometry.Sphere(0.22 * s)
		knob.Material = c.chitinMaterial()
		knob.Position = at
		weapon.AddChild(knob)
	}

	rig.Weapon = weapon
	rig.Root.AddChild(weapon)
}
