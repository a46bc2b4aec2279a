package body

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
)

const halfPi = 1.5707964

var thoraxBuilders = map[genome.ThoraxType]func(*buildCtx) *Node{
	genome.ThoraxCompact:   thoraxCompact,
	genome.ThoraxElongated: thoraxElongated,
	genome.ThoraxBroad:     thoraxBroad,
	genome.ThoraxSegmented: thoraxSegmented,
	genome.ThoraxArmored:   thoraxArmored,
}

func buildThorax(c *buildCtx) *Node {
	build, ok := thoraxBuilders[c.g.Thorax]
	if !ok {
		build = thoraxCompact
	}
	return build(c)
}

func (c *buildCtx) thoraxMass(rx, ry, rz float32) *Node {
	s := c.scale * c.bulk
	n := NewNode("thorax")
	n.Mesh = geometry.Spheroid(rx*s, ry*s, rz*s, geometry.DefaultRings, geometry.DefaultSlices)
	n.Material = c.bodyMaterial()
	return n
}

func thoraxCompact(c *buildCtx) *Node {
	return c.thoraxMass(3, 3, 3.2)
}

func thoraxElongated(c *buildCtx) *Node {
	return c.thoraxMass(2.6, 2.6, 4.4)
}

func thoraxBroad(c *buildCtx) *Node {
	return c.thoraxMass(3.8, 2.8, 3)
}

func thoraxSegmented(c *buildCtx) *Node {
	s := c.scale * c.bulk
	n := c.thoraxMass(2.9, 2.9, 2.6)
	rear := NewNode("thorax_seg")
	rear.Mesh = geometry.Spheroid(2.5*s, 2.5*s, 2.2*s, geometry.DefaultRings, geometry.DefaultSlices)
	rear.Material = c.bodyMaterial()
	rear.Position = mgl32.Vec3{0, 0, -3.4 * s}
	ring := NewNode("thorax_ring")
	ring.Mesh = geometry.Torus(2.3*s, 0.3*s, geometry.DefaultSlices, 8)
	ring.Material = c.chitinMaterial()
	ring.Position = mgl32.Vec3{0, 0, -1.9 * s}
	ring.Rotation[0] = halfPi
	return n.AddChild(rear, ring)
}

func thoraxArmored(c *buildCtx) *Node {
	s := c.scale * c.bulk
	n := c.thoraxMass(3.2, 3.1, 3.3)
	plate := NewNode("thorax_plate")
	plate.Mesh = geometry.Spheroid(3.3*s, 0.6*s, 3.2*s, 8, geometry.DefaultSlices)
	plate.Material = c.chitinMaterial()
	plate.Position = mgl32.Vec3{0, 2.9 * s, 0}
	return n.AddChild(plate)
}
