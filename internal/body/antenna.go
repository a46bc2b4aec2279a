package body

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
)

// antennaCurve is a style's control polygon for the right antenna, in base
// units relative to the head top. Left mirrors X.
var antennaCurves = map[genome.AntennaStyle][]mgl32.Vec3{
	genome.AntennaStraight:  {{0, 0, 0}, {0.4, 2.2, 1.2}, {0.7, 4.2, 2.2}},
	genome.AntennaCurved:    {{0, 0, 0}, {0.6, 2.6, 1.4}, {1.4, 3.6, -0.6}, {2.0, 2.8, -2.2}},
	genome.AntennaClubbed:   {{0, 0, 0}, {0.5, 2.4, 1.0}, {0.9, 4.0, 1.6}},
	genome.AntennaFeathered: {{0, 0, 0}, {0.5, 2.2, 1.0}, {1.0, 4.0, 1.4}},
	genome.AntennaElbowed:   {{0, 0, 0}, {0.2, 2.6, 0.4}, {1.6, 2.8, 1.6}, {2.6, 2.4, 2.8}},
}

// buildAntennae attaches a mirrored antenna pair to the head. Style "none"
// returns no nodes and the animator simply has nothing to sway.
func buildAntennae(c *buildCtx, head *Node) []*Node {
	if c.g.Antenna == genome.AntennaNone {
		return nil
	}
	ctrl, ok := antennaCurves[c.g.Antenna]
	if !ok {
		ctrl = antennaCurves[genome.AntennaStraight]
	}

	s := c.scale
	var out []*Node
	for _, side := range []float32{-1, 1} {
		mirrored := make([]mgl32.Vec3, len(ctrl))
		for i, p := range ctrl {
			mirrored[i] = mgl32.Vec3{side * p.X() * s, p.Y() * s, p.Z() * s}
		}

		root := NewNode("antenna")
		root.Position = mgl32.Vec3{side * 0.7 * c.scale * c.bulk, 1.4 * c.scale * c.bulk, 0.9 * c.scale * c.bulk}
		root.Anchors.Side = side
		root.Anchors.Phase = (side + 1) / 4 // right 0.5, left 0

		shaft := NewNode("antenna_shaft")
		shaft.Mesh = geometry.Tube(mirrored, geometry.TaperedRadius(0.14*s, 0.05*s), 10, 6)
		shaft.Material = c.limbMaterial()
		root.AddChild(shaft)

		switch c.g.Antenna {
		case genome.AntennaClubbed:
			club := NewNode("antenna_club")
			club.Mesh = geometry.Spheroid(0.35*s, 0.5*s, 0.35*s, 8, 8)
			club.Material = c.limbMaterial()
			club.Position = mirrored[len(mirrored)-1]
			root.AddChild(club)
		case genome.AntennaFeathered:
			along := geometry.SampleCurve(mirrored, 5)
			for _, at := range along[1:5] {
				barb := NewNode("antenna_barb")
				barb.Mesh = geometry.Cone(0.04*s, 0.7*s, 5)
				barb.Material = c.limbMaterial()
				barb.Position = at
				barb.Rotation[2] = -side * 1.3
				root.AddChild(barb)
			}
		}

		head.AddChild(root)
		out = append(out, root)
	}
	return out
}
