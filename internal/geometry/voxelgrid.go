package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VoxelGrid is the discrete body representation: a filled-volume
// rasterization of the same shapes the mesh generators produce. Cell value 0
// is empty; nonzero values index a material palette.
type VoxelGrid struct {
	W, H, D  int
	Origin   mgl32.Vec3 // world position of cell (0,0,0)'s min corner
	CellSize float32
	Cells    []uint8
}

// NewVoxelGrid returns an empty grid of the given dimensions.
func NewVoxelGrid(w, h, d int, origin mgl32.Vec3, cellSize float32) *VoxelGrid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if d < 1 {
		d = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return &VoxelGrid{W: w, H: h, D: d, Origin: origin, CellSize: cellSize, Cells: make([]uint8, w*h*d)}
}

// At returns the cell value, 0 outside the grid.
func (g *VoxelGrid) At(x, y, z int) uint8 {
	if x < 0 || y < 0 || z < 0 || x >= g.W || y >= g.H || z >= g.D {
		return 0
	}
	return g.Cells[(z*g.H+y)*g.W+x]
}

// Set writes a cell value; out-of-range coordinates are ignored.
func (g *VoxelGrid) Set(x, y, z int, v uint8) {
	if x < 0 || y < 0 || z < 0 || x >= g.W || y >= g.H || z >= g.D {
		return
	}
	g.Cells[(z*g.H+y)*g.W+x] = v
}

// Center returns the world-space center of a cell.
func (g *VoxelGrid) Center(x, y, z int) mgl32.Vec3 {
	return g.Origin.Add(mgl32.Vec3{
		(float32(x) + 0.5) * g.CellSize,
		(float32(y) + 0.5) * g.CellSize,
		(float32(z) + 0.5) * g.CellSize,
	})
}

// Count returns the number of filled cells.
func (g *VoxelGrid) Count() int {
	n := 0
	for _, c := range g.Cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// FillSpheroid fills every cell whose center lies inside the ellipsoid.
func (g *VoxelGrid) FillSpheroid(center mgl32.Vec3, rx, ry, rz float32, v uint8) {
	rx, ry, rz = clampDim(rx), clampDim(ry), clampDim(rz)
	for z := 0; z < g.D; z++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				p := g.Center(x, y, z).Sub(center)
				dx := p.X() / rx
				dy := p.Y() / ry
				dz := p.Z() / rz
				if dx*dx+dy*dy+dz*dz <= 1 {
					g.Set(x, y, z, v)
				}
			}
		}
	}
}

// FillCapsule fills every cell whose center is within radius of the segment
// a-b. Legs and tube weapons rasterize with this.
func (g *VoxelGrid) FillCapsule(a, b mgl32.Vec3, radius float32, v uint8) {
	radius = clampDim(radius)
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	for z := 0; z < g.D; z++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				p := g.Center(x, y, z)
				t := float32(0)
				if lenSq > 0 {
					t = p.Sub(a).Dot(ab) / lenSq
					if t < 0 {
						t = 0
					}
					if t > 1 {
						t = 1
					}
				}
				closest := a.Add(ab.Mul(t))
				if p.Sub(closest).Len() <= radius {
					g.Set(x, y, z, v)
				}
			}
		}
	}
}
