package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/amplice/bug-fight-sub000/internal/body"
)

// DrawVoxels draws the voxel form of the tree: one cube per filled cell,
// colored by the cell's palette index. Surface cells only would be an easy
// win later; at preview cell counts the full fill draws fine.
func (r *Renderer) DrawVoxels(root *body.Node, world mgl32.Mat4, colors [8]color.NRGBA) {
	r.drawVoxelNode(root, world, colors)
}

func (r *Renderer) drawVoxelNode(n *body.Node, parent mgl32.Mat4, colors [8]color.NRGBA) {
	world := parent.Mul4(n.LocalMatrix())
	if n.Voxels != nil {
		g := n.Voxels
		size := g.CellSize * 0.95
		for z := 0; z < g.D; z++ {
			for y := 0; y < g.H; y++ {
				for x := 0; x < g.W; x++ {
					v := g.At(x, y, z)
					if v == 0 {
						continue
					}
					c := g.Center(x, y, z)
					p := world.Mul4x1(mgl32.Vec4{c.X(), c.Y(), c.Z(), 1})
					col := colors[v&7]
					rl.DrawCube(
						rl.NewVector3(p.X(), p.Y(), p.Z()),
						size, size, size,
						rl.NewColor(col.R, col.G, col.B, col.A),
					)
				}
			}
		}
	}
	for _, c := range n.Children {
		r.drawVoxelNode(c, world, colors)
	}
}
