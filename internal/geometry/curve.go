package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// QuadraticBezier evaluates a quadratic Bézier at t in [0,1].
func QuadraticBezier(p0, p1, p2 mgl32.Vec3, t float32) mgl32.Vec3 {
	u := 1 - t
	return p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t))
}

// CubicBezier evaluates a cubic Bézier at t in [0,1].
func CubicBezier(p0, p1, p2, p3 mgl32.Vec3, t float32) mgl32.Vec3 {
	u := 1 - t
	return p0.Mul(u * u * u).
		Add(p1.Mul(3 * u * u * t)).
		Add(p2.Mul(3 * u * t * t)).
		Add(p3.Mul(t * t * t))
}

// SampleCurve samples a Bézier through the control points at segments+1
// parameter values. 3 controls are treated as quadratic, 4 as cubic; other
// counts fall back to piecewise-linear interpolation through the points.
func SampleCurve(ctrl []mgl32.Vec3, segments int) []mgl32.Vec3 {
	if segments < 1 {
		segments = 1
	}
	out := make([]mgl32.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float32(i) / float32(segments)
		out = append(out, curvePoint(ctrl, t))
	}
	return out
}

func curvePoint(ctrl []mgl32.Vec3, t float32) mgl32.Vec3 {
	switch len(ctrl) {
	case 0:
		return mgl32.Vec3{}
	case 1:
		return ctrl[0]
	case 2:
		return ctrl[0].Add(ctrl[1].Sub(ctrl[0]).Mul(t))
	case 3:
		return QuadraticBezier(ctrl[0], ctrl[1], ctrl[2], t)
	case 4:
		return CubicBezier(ctrl[0], ctrl[1], ctrl[2], ctrl[3], t)
	default:
		// Piecewise linear through all points.
		f := t * float32(len(ctrl)-1)
		i := int(f)
		if i >= len(ctrl)-1 {
			return ctrl[len(ctrl)-1]
		}
		return ctrl[i].Add(ctrl[i+1].Sub(ctrl[i]).Mul(f - float32(i)))
	}
}

// FixedRadius adapts a constant radius to the Tube radius-function parameter.
func FixedRadius(r float32) func(t float32) float32 {
	return func(float32) float32 { return r }
}

// TaperedRadius interpolates linearly from start to end radius along the curve.
func TaperedRadius(start, end float32) func(t float32) float32 {
	return func(t float32) float32 { return start + (end-start)*t }
}

// Tube sweeps a circle of varying radius along a Bézier defined by the
// control points. Frames are propagated along the curve so the tube does not
// twist at inflections. Degenerate (zero-length) curves produce an
// epsilon-sized tube rather than NaNs.
func Tube(ctrl []mgl32.Vec3, radius func(t float32) float32, segments, sides int) *Mesh {
	if segments < 1 {
		segments = 1
	}
	if sides < 3 {
		sides = 3
	}
	centers := SampleCurve(ctrl, segments)
	m := &Mesh{}

	// Initial frame from the first non-degenerate tangent.
	tangent := tangentAt(centers, 0)
	ref := mgl32.Vec3{0, 1, 0}
	if math32.Abs(tangent.Dot(ref)) > 0.95 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	side := tangent.Cross(ref).Normalize()
	up := side.Cross(tangent).Normalize()

	for i, c := range centers {
		t := float32(i) / float32(segments)
		// Rotate the previous frame to the new tangent instead of rebuilding
		// from the reference vector.
		nt := tangentAt(centers, i)
		side = nt.Cross(up)
		if side.Len() < 1e-6 {
			side = nt.Cross(mgl32.Vec3{1, 0, 0})
		}
		side = side.Normalize()
		up = side.Cross(nt).Normalize()

		r := clampDim(radius(t))
		for j := 0; j <= sides; j++ {
			a := 2 * math32.Pi * float32(j) / float32(sides)
			n := side.Mul(math32.Cos(a)).Add(up.Mul(math32.Sin(a)))
			m.addVertex(c.Add(n.Mul(r)), n, float32(j)/float32(sides), t)
		}
	}
	stride := uint16(sides + 1)
	for i := 0; i < segments; i++ {
		for j := 0; j < sides; j++ {
			a := uint16(i)*stride + uint16(j)
			m.addQuad(a, a+1, a+stride+1, a+stride)
		}
	}
	return m
}

func tangentAt(centers []mgl32.Vec3, i int) mgl32.Vec3 {
	var d mgl32.Vec3
	switch {
	case i <= 0:
		d = centers[1].Sub(centers[0])
	case i >= len(centers)-1:
		d = centers[len(centers)-1].Sub(centers[len(centers)-2])
	default:
		d = centers[i+1].Sub(centers[i-1])
	}
	if d.Len() < 1e-8 {
		return mgl32.Vec3{0, 0, 1}
	}
	return d.Normalize()
}

// Polygon builds a flat double-sided fan from a 2D outline in the XY plane.
// The first point is the fan center; used for wing membranes.
func Polygon(outline []mgl32.Vec2) *Mesh {
	m := &Mesh{}
	if len(outline) < 3 {
		return m
	}
	front := mgl32.Vec3{0, 0, 1}
	back := mgl32.Vec3{0, 0, -1}
	min, max := outline[0], outline[0]
	for _, p := range outline {
		for a := 0; a < 2; a++ {
			if p[a] < min[a] {
				min[a] = p[a]
			}
			if p[a] > max[a] {
				max[a] = p[a]
			}
		}
	}
	span := max.Sub(min)
	uv := func(p mgl32.Vec2) (float32, float32) {
		u, v := float32(0.5), float32(0.5)
		if span.X() > 0 {
			u = (p.X() - min.X()) / span.X()
		}
		if span.Y() > 0 {
			v = (p.Y() - min.Y()) / span.Y()
		}
		return u, v
	}
	for _, p := range outline {
		u, v := uv(p)
		m.addVertex(mgl32.Vec3{p.X(), p.Y(), 0}, front, u, v)
	}
	for _, p := range outline {
		u, v := uv(p)
		m.addVertex(mgl32.Vec3{p.X(), p.Y(), 0}, back, u, v)
	}
	n := uint16(len(outline))
	for i := uint16(1); i < n-1; i++ {
		m.addTriangle(0, i, i+1)
		m.addTriangle(n, n+i+1, n+i)
	}
	return m
}
