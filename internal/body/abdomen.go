package body

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
)

// abdomenBuilders maps each abdomen variant to its builder. Lookup falls back
// to the round variant for anything missing from the table.
var abdomenBuilders = map[genome.AbdomenType]func(*buildCtx) *Node{
	genome.AbdomenRound:     abdomenRound,
	genome.AbdomenOval:      abdomenOval,
	genome.AbdomenPointed:   abdomenPointed,
	genome.AbdomenBulbous:   abdomenBulbous,
	genome.AbdomenSegmented: abdomenSegmented,
	genome.AbdomenSac:       abdomenSac,
	genome.AbdomenPlated:    abdomenPlated,
	genome.AbdomenTailed:    abdomenTailed,
}

func buildAbdomen(c *buildCtx) *Node {
	build, ok := abdomenBuilders[c.g.Abdomen]
	if !ok {
		build = abdomenRound
	}
	return build(c)
}

// abdomenMass returns the variant's main spheroid node. Radii are base units
// times bulk and creature scale.
func (c *buildCtx) abdomenMass(name string, rx, ry, rz float32) *Node {
	s := c.scale * c.bulk
	n := NewNode(name)
	n.Mesh = geometry.Spheroid(rx*s, ry*s, rz*s, geometry.DefaultRings, geometry.DefaultSlices)
	n.Material = c.bodyMaterial()
	return n
}

func abdomenRound(c *buildCtx) *Node {
	return c.abdomenMass("abdomen", 4, 4, 4)
}

func abdomenOval(c *buildCtx) *Node {
	return c.abdomenMass("abdomen", 3.4, 3.2, 5)
}

func abdomenPointed(c *buildCtx) *Node {
	s := c.scale * c.bulk
	n := c.abdomenMass("abdomen", 3.5, 3.2, 4.2)
	tip := NewNode("abdomen_tip")
	tip.Mesh = geometry.Cone(2.2*s, 3.5*s, geometry.DefaultSlices)
	tip.Material = c.bodyMaterial()
	tip.Position = mgl32.Vec3{0, 0, -3.4 * s}
	tip.Rotation[0] = -halfPi // cone +Y axis points backward along -Z
	n.AddChild(tip)
	return n
}

func abdomenBulbous(c *buildCtx) *Node {
	return c.abdomenMass("abdomen", 4.5, 4.2, 5)
}

func abdomenSegmented(c *buildCtx) *Node {
	s := c.scale * c.bulk
	n := NewNode("abdomen")
	radii := []float32{3.6, 3.1, 2.5}
	z := float32(0)
	for i, r := range radii {
		seg := NewNode("abdomen_seg")
		seg.Mesh = geometry.Spheroid(r*s, r*0.95*s, r*1.1*s, geometry.DefaultRings, geometry.DefaultSlices)
		seg.Material = c.bodyMaterial()
		seg.Position = mgl32.Vec3{0, 0, -z * s}
		n.AddChild(seg)
		if i < len(radii)-1 {
			next := radii[i+1]
			ring := NewNode("abdomen_ring")
			ring.Mesh = geometry.Torus(next*0.9*s, 0.35*s, geometry.DefaultSlices, 8)
			ring.Material = c.chitinMaterial()
			ring.Position = mgl32.Vec3{0, 0, -(z + r*0.9) * s}
			ring.Rotation[0] = halfPi // torus plane faces the body axis
			n.AddChild(ring)
		}
		z += r*0.9 + r*0.75
	}
	return n
}

func abdomenSac(c *buildCtx) *Node {
	n := c.abdomenMass("abdomen", 4.2, 4.8, 4.6)
	n.Position[1] = -0.6 * c.scale * c.bulk
	return n
}

func abdomenPlated(c *buildCtx) *Node {
	s := c.scale * c.bulk
	n := c.abdomenMass("abdomen", 4, 3.8, 4.6)
	for i := 0; i < 4; i++ {
		plate := NewNode("abdomen_plate")
		r := (3.9 - float32(i)*0.5) * s
		plate.Mesh = geometry.Spheroid(r, 0.5*s, r*0.8, 8, geometry.DefaultSlices)
		plate.Material = c.chitinMaterial()
		plate.Position = mgl32.Vec3{0, (3.2 - float32(i)*0.4) * s, (float32(i)*1.4 - 2.2) * s}
		plate.Rotation[0] = -0.25 + float32(i)*0.12
		n.AddChild(plate)
	}
	return n
}

func abdomenTailed(c *buildCtx) *Node {
	s := c.scale * c.bulk
	n := c.abdomenMass("abdomen", 3.6, 3.4, 4.4)

	tail := NewNode("tail")
	tail.Position = mgl32.Vec3{0, 0.5 * s, -3.8 * s}
	ctrl := []mgl32.Vec3{
		{0, 0, 0},
		{0, 1.5 * s, -3 * s},
		{0, 4.5 * s, -4.5 * s},
		{0, 7 * s, -3.5 * s},
	}
	curve := NewNode("tail_curve")
	curve.Mesh = geometry.Tube(ctrl, geometry.TaperedRadius(1.1*s, 0.45*s), 12, 8)
	curve.Material = c.bodyMaterial()
	tail.AddChild(curve)

	bulb := NewNode("tail_bulb")
	bulb.Mesh = geometry.Sphere(1.1 * s)
	bulb.Material = c.bodyMaterial()
	bulb.Position = ctrl[3]
	tail.AddChild(bulb)

	spike := NewNode("tail_spike")
	spike.Mesh = geometry.Cone(0.45*s, 2*s, 8)
	spike.Material = c.chitinMaterial()
	spike.Position = ctrl[3].Add(mgl32.Vec3{0, 0.6 * s, 0.4 * s})
	spike.Rotation[0] = 0.5
	tail.AddChild(spike)

	for _, side := range []float32{-1, 1} {
		barb := NewNode("tail_barb")
		barb.Mesh = geometry.Cone(0.3*s, 1.2*s, 6)
		barb.Material = c.chitinMaterial()
		barb.Position = ctrl[3].Add(mgl32.Vec3{side * 0.8 * s, 0, 0})
		barb.Rotation[2] = -side * 1.2
		barb.Anchors.Side = side
		tail.AddChild(barb)
	}
	n.AddChild(tail)
	return n
}
