package body

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
)

// eyeSockets is what a head variant reports to the eye builder: lateral
// spread and the forward/up offsets of the socket anchors. Eyes are built
// from these alone, independent of which head produced them.
type eyeSockets struct {
	Spread  float32
	OffsetY float32
	OffsetZ float32
}

// headZ is the head center's forward offset from the thorax, in base units.
const headZ = 4.5

var headBuilders = map[genome.HeadType]func(*buildCtx) (*Node, eyeSockets){
	genome.HeadRound:      headRound,
	genome.HeadTriangular: headTriangular,
	genome.HeadElongated:  headElongated,
	genome.HeadBroad:      headBroad,
	genome.HeadHorned:     headHorned,
}

func buildHead(c *buildCtx) (*Node, eyeSockets) {
	build, ok := headBuilders[c.g.Head]
	if !ok {
		build = headRound
	}
	n, sockets := build(c)
	n.Position = mgl32.Vec3{0, 0.6 * c.scale * c.bulk, headZ * c.scale * c.bulk}
	return n, sockets
}

func (c *buildCtx) headMass(rx, ry, rz float32) *Node {
	s := c.scale * c.bulk
	n := NewNode("head")
	n.Mesh = geometry.Spheroid(rx*s, ry*s, rz*s, geometry.DefaultRings, geometry.DefaultSlices)
	n.Material = c.bodyMaterial()
	return n
}

func headRound(c *buildCtx) (*Node, eyeSockets) {
	return c.headMass(2, 2, 2), eyeSockets{Spread: 1.1, OffsetY: 0.5, OffsetZ: 1.5}
}

func headTriangular(c *buildCtx) (*Node, eyeSockets) {
	s := c.scale * c.bulk
	n := c.headMass(2.4, 1.8, 2)
	snout := NewNode("head_snout")
	snout.Mesh = geometry.Cone(1.4*s, 2.4*s, geometry.DefaultSlices)
	snout.Material = c.bodyMaterial()
	snout.Position = mgl32.Vec3{0, 0, 1.4 * s}
	snout.Rotation[0] = halfPi // cone +Y points forward along +Z
	n.AddChild(snout)
	return n, eyeSockets{Spread: 1.6, OffsetY: 0.6, OffsetZ: 1.0}
}

func headElongated(c *buildCtx) (*Node, eyeSockets) {
	return c.headMass(1.7, 1.7, 2.8), eyeSockets{Spread: 1.0, OffsetY: 0.4, OffsetZ: 2.1}
}

func headBroad(c *buildCtx) (*Node, eyeSockets) {
	return c.headMass(2.6, 1.8, 2), eyeSockets{Spread: 1.9, OffsetY: 0.5, OffsetZ: 1.3}
}

func headHorned(c *buildCtx) (*Node, eyeSockets) {
	s := c.scale * c.bulk
	n := c.headMass(2, 2, 2)
	for _, side := range []float32{-1, 1} {
		horn := NewNode("head_horn")
		horn.Mesh = geometry.Cone(0.4*s, 2.6*s, 8)
		horn.Material = c.chitinMaterial()
		horn.Position = mgl32.Vec3{side * 1.2 * s, 1.6 * s, 0}
		horn.Rotation[2] = -side * 0.5
		horn.Anchors.Side = side
		n.AddChild(horn)
	}
	return n, eyeSockets{Spread: 1.1, OffsetY: 0.3, OffsetZ: 1.5}
}
