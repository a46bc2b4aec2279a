package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default tessellation levels. Creature bodies are drawn small on screen, so
// 16x16 lat-long is enough for the largest organ.
const (
	DefaultRings  = 16
	DefaultSlices = 16
)

// Spheroid builds an ellipsoid with independent radii around the origin.
// Normals use the ellipsoid gradient, not the normalized position.
func Spheroid(rx, ry, rz float32, rings, slices int) *Mesh {
	rx, ry, rz = clampDim(rx), clampDim(ry), clampDim(rz)
	if rings < 2 {
		rings = 2
	}
	if slices < 3 {
		slices = 3
	}
	m := &Mesh{}
	for i := 0; i <= rings; i++ {
		lat := math32.Pi * (float32(i)/float32(rings) - 0.5) // [-pi/2, pi/2]
		y := math32.Sin(lat)
		c := math32.Cos(lat)
		for j := 0; j <= slices; j++ {
			lon := 2 * math32.Pi * float32(j) / float32(slices)
			x := c * math32.Cos(lon)
			z := c * math32.Sin(lon)
			pos := mgl32.Vec3{x * rx, y * ry, z * rz}
			n := mgl32.Vec3{x / rx, y / ry, z / rz}.Normalize()
			m.addVertex(pos, n, float32(j)/float32(slices), float32(i)/float32(rings))
		}
	}
	stride := uint16(slices + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < slices; j++ {
			a := uint16(i)*stride + uint16(j)
			m.addQuad(a, a+stride, a+stride+1, a+1)
		}
	}
	return m
}

// Sphere is a uniform spheroid at default tessellation.
func Sphere(r float32) *Mesh {
	return Spheroid(r, r, r, DefaultRings, DefaultSlices)
}

// Cone builds a cone with its base circle on the XZ plane and apex at
// +height on Y. Includes the base cap.
func Cone(radius, height float32, slices int) *Mesh {
	return Frustum(radius, 0, height, slices)
}

// Cylinder builds a capped cylinder centered on the Y axis, base at Y=0.
func Cylinder(radius, height float32, slices int) *Mesh {
	return Frustum(radius, radius, height, slices)
}

// Frustum builds a truncated cone from bottom radius to top radius, base at
// Y=0, top at Y=height. A zero top radius degenerates to a cone apex.
func Frustum(rBottom, rTop, height float32, slices int) *Mesh {
	rBottom = clampDim(rBottom)
	height = clampDim(height)
	if rTop < 0 {
		rTop = 0
	}
	if slices < 3 {
		slices = 3
	}
	m := &Mesh{}

	// Side surface. Slope term makes the normal perpendicular to the side.
	slope := (rBottom - rTop) / height
	for j := 0; j <= slices; j++ {
		a := 2 * math32.Pi * float32(j) / float32(slices)
		cx, cz := math32.Cos(a), math32.Sin(a)
		n := mgl32.Vec3{cx, slope, cz}.Normalize()
		u := float32(j) / float32(slices)
		m.addVertex(mgl32.Vec3{cx * rBottom, 0, cz * rBottom}, n, u, 0)
		m.addVertex(mgl32.Vec3{cx * rTop, height, cz * rTop}, n, u, 1)
	}
	for j := 0; j < slices; j++ {
		a := uint16(j * 2)
		m.addQuad(a, a+1, a+3, a+2)
	}

	// Caps.
	down := mgl32.Vec3{0, -1, 0}
	up := mgl32.Vec3{0, 1, 0}
	bc := m.addVertex(mgl32.Vec3{0, 0, 0}, down, 0.5, 0.5)
	var tc uint16
	if rTop > 0 {
		tc = m.addVertex(mgl32.Vec3{0, height, 0}, up, 0.5, 0.5)
	}
	for j := 0; j < slices; j++ {
		a0 := 2 * math32.Pi * float32(j) / float32(slices)
		a1 := 2 * math32.Pi * float32(j+1) / float32(slices)
		b0 := m.addVertex(mgl32.Vec3{math32.Cos(a0) * rBottom, 0, math32.Sin(a0) * rBottom}, down, 0.5, 0.5)
		b1 := m.addVertex(mgl32.Vec3{math32.Cos(a1) * rBottom, 0, math32.Sin(a1) * rBottom}, down, 0.5, 0.5)
		m.addTriangle(bc, b1, b0)
		if rTop > 0 {
			t0 := m.addVertex(mgl32.Vec3{math32.Cos(a0) * rTop, height, math32.Sin(a0) * rTop}, up, 0.5, 0.5)
			t1 := m.addVertex(mgl32.Vec3{math32.Cos(a1) * rTop, height, math32.Sin(a1) * rTop}, up, 0.5, 0.5)
			m.addTriangle(tc, t0, t1)
		}
	}
	return m
}

// Torus builds a torus in the XZ plane: ring of the given radius, tube of
// ringRadius around it.
func Torus(radius, ringRadius float32, segments, sides int) *Mesh {
	radius = clampDim(radius)
	ringRadius = clampDim(ringRadius)
	if segments < 3 {
		segments = 3
	}
	if sides < 3 {
		sides = 3
	}
	m := &Mesh{}
	for i := 0; i <= segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		center := mgl32.Vec3{math32.Cos(a) * radius, 0, math32.Sin(a) * radius}
		radial := mgl32.Vec3{math32.Cos(a), 0, math32.Sin(a)}
		for j := 0; j <= sides; j++ {
			b := 2 * math32.Pi * float32(j) / float32(sides)
			n := radial.Mul(math32.Cos(b)).Add(mgl32.Vec3{0, math32.Sin(b), 0})
			m.addVertex(center.Add(n.Mul(ringRadius)), n, float32(i)/float32(segments), float32(j)/float32(sides))
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
