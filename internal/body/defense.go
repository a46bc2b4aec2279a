package body

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
)

// applyDefense perturbs the assembled body per the defense trait: agility
// thins the body masses, shell stacks armor plates, toxic adds emissive
// pustules and tints the body material.
func applyDefense(c *buildCtx, rig *Rig) {
	switch c.g.Defense {
	case genome.DefenseAgility:
		thin := mgl32.Vec3{0.85, 1, 1}
		rig.Abdomen.Scale = mulVec(rig.Abdomen.Scale, thin)
		rig.Thorax.Scale = mulVec(rig.Thorax.Scale, thin)

	case genome.DefenseShell:
		s := c.scale * c.bulk
		for i := 0; i < 3; i++ {
			plate := NewNode("shell_plate")
			r := (4.3 - float32(i)*0.7) * s
			plate.Mesh = geometry.Spheroid(r, 0.55*s, r*0.85, 8, geometry.DefaultSlices)
			plate.Material = &Material{
				Name:      "shell",
				Color:     c.pal.Dark,
				Metalness: 0.85,
				Roughness: 0.15,
			}
			plate.Position = mgl32.Vec3{0, (3.4 + float32(i)*0.5) * s, float32(1-i) * 1.3 * s}
			rig.Abdomen.AddChild(plate)
		}

	case genome.DefenseToxic:
		s := c.scale * c.bulk
		pustulePos := []mgl32.Vec3{
			{1.8, 2.8, 0.6}, {-2.2, 2.4, -0.8}, {0.4, 3.2, -1.8},
			{-1.2, 2.9, 1.6}, {2.4, 2.2, -1.6},
		}
		for _, p := range pustulePos {
			pustule := NewNode("pustule")
			pustule.Mesh = geometry.Sphere(0.5 * s)
			pustule.Material = &Material{
				Name:             "pustule",
				Color:            c.pal.Accent,
				Emissive:         c.pal.Accent,
				EmissiveStrength: 0.7,
				Roughness:        0.4,
			}
			pustule.Position = p.Mul(s)
			rig.Abdomen.AddChild(pustule)
		}
		// Sickly tint on the shared body material.
		rig.Root.Walk(func(n *Node) {
			if n.Material != nil && n.Material.Name == "body" {
				n.Material.Emissive = c.pal.Accent
				if n.Material.EmissiveStrength < 0.15 {
					n.Material.EmissiveStrength = 0.15
				}
			}
		})
	}
}

func mulVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
