package body

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
	"github.com/amplice/bug-fight-sub000/internal/palette"
)

var eyeBuilders = map[genome.EyeStyle]func(*buildCtx, *Node, eyeSockets) []*Node{
	genome.EyeCompound: eyesCompound,
	genome.EyeSimple:   eyesSimple,
	genome.EyeStalked:  eyesStalked,
	genome.EyeMultiple: eyesMultiple,
	genome.EyeSunken:   eyesSunken,
	genome.EyeGlowing:  eyesGlowing,
}

// buildEyes attaches the eye cluster to the head at its reported socket
// anchors and returns the eye nodes for the renderer's highlight pass.
func buildEyes(c *buildCtx, head *Node, sockets eyeSockets) []*Node {
	build, ok := eyeBuilders[c.g.Eyes]
	if !ok {
		build = eyesCompound
	}
	eyes := build(c, head, sockets)
	for _, e := range eyes {
		e.Anchors.IsEye = true
	}
	return eyes
}

// eyeAt makes one eye sphere at the socket position for the given side.
func (c *buildCtx) eyeAt(sockets eyeSockets, side, radius float32) *Node {
	s := c.scale * c.bulk
	e := NewNode("eye")
	e.Mesh = geometry.Sphere(radius * s)
	e.Material = c.eyeMaterial()
	e.Position = mgl32.Vec3{side * sockets.Spread * s, sockets.OffsetY * s, sockets.OffsetZ * s}
	e.Anchors.Side = side
	return e
}

func eyesCompound(c *buildCtx, head *Node, sockets eyeSockets) []*Node {
	var eyes []*Node
	for _, side := range []float32{-1, 1} {
		e := c.eyeAt(sockets, side, 0.9)
		e.Scale = mgl32.Vec3{1, 1.2, 1}
		head.AddChild(e)
		eyes = append(eyes, e)
	}
	return eyes
}

func eyesSimple(c *buildCtx, head *Node, sockets eyeSockets) []*Node {
	var eyes []*Node
	for _, side := range []float32{-1, 1} {
		e := c.eyeAt(sockets, side, 0.45)
		head.AddChild(e)
		eyes = append(eyes, e)
	}
	return eyes
}

func eyesStalked(c *buildCtx, head *Node, sockets eyeSockets) []*Node {
	s := c.scale * c.bulk
	var eyes []*Node
	for _, side := range []float32{-1, 1} {
		stalk := NewNode("eye_stalk")
		stalk.Mesh = geometry.Cylinder(0.2*s, 1.6*s, 8)
		stalk.Material = c.limbMaterial()
		stalk.Position = mgl32.Vec3{side * sockets.Spread * s, (sockets.OffsetY + 0.4) * s, sockets.OffsetZ * 0.7 * s}
		stalk.Rotation[2] = -side * 0.4
		stalk.Anchors.Side = side
		e := NewNode("eye")
		e.Mesh = geometry.Sphere(0.55 * s)
		e.Material = c.eyeMaterial()
		e.Position = mgl32.Vec3{0, 1.7 * s, 0}
		e.Anchors.Side = side
		stalk.AddChild(e)
		head.AddChild(stalk)
		eyes = append(eyes, e)
	}
	return eyes
}

func eyesMultiple(c *buildCtx, head *Node, sockets eyeSockets) []*Node {
	var eyes []*Node
	offsets := []mgl32.Vec3{{0, 0, 0}, {0.45, 0.35, -0.1}, {0.35, -0.3, -0.2}}
	for _, side := range []float32{-1, 1} {
		for _, off := range offsets {
			e := c.eyeAt(sockets, side, 0.32)
			e.Position = e.Position.Add(mgl32.Vec3{side * off.X() * c.scale * c.bulk, off.Y() * c.scale * c.bulk, off.Z() * c.scale * c.bulk})
			head.AddChild(e)
			eyes = append(eyes, e)
		}
	}
	return eyes
}

func eyesSunken(c *buildCtx, head *Node, sockets eyeSockets) []*Node {
	var eyes []*Node
	for _, side := range []float32{-1, 1} {
		e := c.eyeAt(sockets, side, 0.5)
		e.Position[2] -= 0.5 * c.scale * c.bulk
		e.Material = &Material{Name: "eye", Color: palette.Darken(c.pal.Eye, 0.4), Roughness: 0.3}
		head.AddChild(e)
		eyes = append(eyes, e)
	}
	return eyes
}

func eyesGlowing(c *buildCtx, head *Node, sockets eyeSockets) []*Node {
	var eyes []*Node
	for _, side := range []float32{-1, 1} {
		e := c.eyeAt(sockets, side, 0.55)
		e.Material = &Material{
			Name:             "eye",
			Color:            c.pal.Eye,
			Emissive:         c.pal.Eye,
			EmissiveStrength: 0.8,
			Roughness:        0.1,
		}
		head.AddChild(e)
		eyes = append(eyes, e)
	}
	return eyes
}
