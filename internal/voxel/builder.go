// Package voxel is the discrete body representation: the same genome and
// trait logic as the mesh builder, rasterized into filled voxel grids, with
// animation pre-baked into fixed-rate pose frames instead of evaluated live.
package voxel

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/body"
	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
	"github.com/amplice/bug-fight-sub000/internal/palette"
)

// Material palette indices written into grid cells.
const (
	cellBody uint8 = iota + 1
	cellLimb
	cellChitin
	cellVenom
	cellEye
	cellMembrane
	cellOther
)

// DefaultCellSize is the edge length of one voxel in body units.
const DefaultCellSize = 0.35

// Builder generates the voxel-grid form of a creature. It runs the mesh
// assembly for the transform tree and rig, then rasterizes every meshed
// node into a grid in the node's local frame. The hierarchy and the
// animator work unchanged on the result.
type Builder struct {
	// MapSide overrides the surface map resolution (0 = surface.DefaultSide).
	MapSide int
	// CellSize overrides the voxel edge length (0 = DefaultCellSize).
	CellSize float32
}

// Generate satisfies body.Generator.
func (b *Builder) Generate(g genome.Genome, scale float32) (*body.Result, error) {
	res, err := (&body.Builder{MapSide: b.MapSide}).Generate(g, scale)
	if err != nil {
		return nil, err
	}
	cell := b.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	res.Root.Walk(func(n *body.Node) {
		if n.Mesh == nil {
			return
		}
		n.Voxels = rasterize(n.Mesh, cell, cellIndex(n.Material))
	})
	return res, nil
}

// CellColors maps cell palette indices to draw colors for a creature's
// palette. Index 0 stays transparent.
func CellColors(pal palette.Palette) [8]color.NRGBA {
	venom := color.NRGBA{R: 80, G: 220, B: 60, A: 255}
	return [8]color.NRGBA{
		cellBody:     pal.Primary,
		cellLimb:     pal.Secondary,
		cellChitin:   pal.Dark,
		cellVenom:    venom,
		cellEye:      pal.Eye,
		cellMembrane: pal.Light,
		cellOther:    pal.Accent,
	}
}

func cellIndex(m *body.Material) uint8 {
	if m == nil {
		return cellOther
	}
	switch m.Name {
	case "body":
		return cellBody
	case "limb":
		return cellLimb
	case "chitin":
		return cellChitin
	case "venom":
		return cellVenom
	case "eye":
		return cellEye
	case "membrane":
		return cellMembrane
	}
	return cellOther
}

// rasterize fills a grid covering the mesh bounds. Elongated parts (legs,
// tails, horns) become capsules along their long axis; everything else
// becomes the ellipsoid inscribed in the bounds, which matches how the
// mesh generators shape body masses.
func rasterize(m *geometry.Mesh, cell float32, v uint8) *geometry.VoxelGrid {
	min, max := m.Bounds()
	size := max.Sub(min)

	// One cell of padding so surface cells never clip at the grid edge.
	pad := cell
	origin := min.Sub(mgl32.Vec3{pad, pad, pad})
	w := int(size.X()/cell) + 3
	h := int(size.Y()/cell) + 3
	d := int(size.Z()/cell) + 3
	grid := geometry.NewVoxelGrid(w, h, d, origin, cell)

	center := min.Add(size.Mul(0.5))
	rx, ry, rz := size.X()/2, size.Y()/2, size.Z()/2

	if axis, long := longAxis(size); long {
		radius := capsuleRadius(size, axis)
		a, b := center, center
		switch axis {
		case 0:
			a[0], b[0] = min.X()+radius, max.X()-radius
		case 1:
			a[1], b[1] = min.Y()+radius, max.Y()-radius
		case 2:
			a[2], b[2] = min.Z()+radius, max.Z()-radius
		}
		grid.FillCapsule(a, b, radius, v)
		return fillAtLeastCenter(grid, center, v)
	}

	grid.FillSpheroid(center, rx, ry, rz, v)
	return fillAtLeastCenter(grid, center, v)
}

// fillAtLeastCenter guarantees a nonempty grid. Parts smaller than a cell
// (fang tips, micro-claw teeth, small eyes) can miss every cell center, which
// would drop the trait from the voxel form entirely; they keep one cell.
func fillAtLeastCenter(g *geometry.VoxelGrid, center mgl32.Vec3, v uint8) *geometry.VoxelGrid {
	if g.Count() > 0 {
		return g
	}
	rel := center.Sub(g.Origin)
	g.Set(int(rel.X()/g.CellSize), int(rel.Y()/g.CellSize), int(rel.Z()/g.CellSize), v)
	return g
}

// longAxis reports whether one bound axis dominates the other two by 2.5x.
func longAxis(size mgl32.Vec3) (int, bool) {
	axis := 0
	for i := 1; i < 3; i++ {
		if size[i] > size[axis] {
			axis = i
		}
	}
	long := size[axis]
	for i := 0; i < 3; i++ {
		if i != axis && size[i]*2.5 > long {
			return axis, false
		}
	}
	return axis, true
}

func capsuleRadius(size mgl32.Vec3, axis int) float32 {
	r := float32(0)
	for i := 0; i < 3; i++ {
		if i != axis && size[i] > r {
			r = size[i]
		}
	}
	return r / 2
}
