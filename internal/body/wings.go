package body

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
)

// wingOutline returns a style's membrane outline for the right wing in the
// XY plane (X = outward span, Y = chord), hinge at the origin.
func wingOutline(style genome.WingType, s float32) []mgl32.Vec2 {
	switch style {
	case genome.WingBeetle:
		// Elytron: stubby rounded shell cover.
		return ellipseOutline(3.2*s, 4.6*s, 10, s*1.4)
	case genome.WingDragonfly:
		// Long narrow blade.
		return ellipseOutline(7.0*s, 1.6*s, 12, 0)
	default: // fly
		return ellipseOutline(5.0*s, 2.6*s, 12, 0)
	}
}

// ellipseOutline builds a fan outline: center first, then the rim of a
// half-offset ellipse extending toward +X.
func ellipseOutline(spanX, spanY float32, steps int, droop float32) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, 0, steps+2)
	out = append(out, mgl32.Vec2{0, 0})
	for i := 0; i <= steps; i++ {
		a := 2 * math32.Pi * float32(i) / float32(steps)
		x := spanX/2 + math32.Cos(a)*spanX/2
		y := math32.Sin(a)*spanY/2 - droop*(x/spanX)
		out = append(out, mgl32.Vec2{x, y})
	}
	return out
}

// buildWings attaches a mirrored wing pair to the root at the thorax top.
// Each wing is a hinge pivot with a membrane polygon and vein tubes; the
// animator flaps the hinge about Z.
func buildWings(c *buildCtx, root *Node) (left, right *Node) {
	s := c.scale
	sb := c.scale * c.bulk
	outline := wingOutline(c.g.Wings, s)

	for _, side := range []float32{-1, 1} {
		hinge := NewNode("wing")
		hinge.Position = mgl32.Vec3{side * 1.2 * sb, 2.6 * sb, -0.4 * sb}
		hinge.Rotation = mgl32.Vec3{0, -side * 0.8, side * 0.3}
		hinge.Anchors.Side = side
		hinge.Anchors.Phase = (side + 1) / 4 // wings beat in antiphase pairs

		membrane := NewNode("wing_membrane")
		membrane.Mesh = geometry.Polygon(outline)
		membrane.Material = c.membraneMaterial()
		membrane.Rotation[0] = -halfPi // outline XY plane laid flat onto XZ
		if side < 0 {
			membrane.Scale = mgl32.Vec3{-1, 1, 1}
		}
		hinge.AddChild(membrane)

		if c.g.Wings != genome.WingBeetle {
			hinge.AddChild(c.wingVeins(outline, side)...)
		}

		root.AddChild(hinge)
		if side < 0 {
			left = hinge
		} else {
			right = hinge
		}
	}
	return left, right
}

// wingVeins lays 3 thin tubes from the hinge toward the outline rim.
func (c *buildCtx) wingVeins(outline []mgl32.Vec2, side float32) []*Node {
	s := c.scale
	span := float32(0)
	for _, p := range outline {
		if p.X() > span {
			span = p.X()
		}
	}
	var veins []*Node
	for i := 0; i < 3; i++ {
		spread := (float32(i) - 1) * 0.35
		ctrl := []mgl32.Vec3{
			{0, 0, 0},
			{side * span * 0.5, 0, spread * span * 0.4},
			{side * span, 0, spread * span * 0.8},
		}
		vein := NewNode("wing_vein")
		vein.Mesh = geometry.Tube(ctrl, geometry.TaperedRadius(0.06*s, 0.02*s), 6, 5)
		vein.Material = c.chitinMaterial()
		veins = append(veins, vein)
	}
	return veins
}
