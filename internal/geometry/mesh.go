package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is CPU-side triangle geometry: position/normal/texcoord per vertex,
// indexed triangles. Generators in this package produce it; the render layer
// uploads it.
type Mesh struct {
	Vertices  []float32 // x,y,z per vertex
	Normals   []float32 // x,y,z per vertex
	TexCoords []float32 // u,v per vertex
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned extent of the mesh. A mesh with no
// vertices reports a zero box.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) < 3 {
		return
	}
	min = mgl32.Vec3{m.Vertices[0], m.Vertices[1], m.Vertices[2]}
	max = min
	for i := 3; i < len(m.Vertices); i += 3 {
		for a := 0; a < 3; a++ {
			v := m.Vertices[i+a]
			if v < min[a] {
				min[a] = v
			}
			if v > max[a] {
				max[a] = v
			}
		}
	}
	return
}

func (m *Mesh) addVertex(pos, normal mgl32.Vec3, u, v float32) uint16 {
	idx := uint16(m.VertexCount())
	m.Vertices = append(m.Vertices, pos.X(), pos.Y(), pos.Z())
	m.Normals = append(m.Normals, normal.X(), normal.Y(), normal.Z())
	m.TexCoords = append(m.TexCoords, u, v)
	return idx
}

func (m *Mesh) addTriangle(a, b, c uint16) {
	m.Indices = append(m.Indices, a, b, c)
}

func (m *Mesh) addQuad(a, b, c, d uint16) {
	m.addTriangle(a, b, c)
	m.addTriangle(a, c, d)
}

// minDim is the epsilon every radius/length is clamped to so degenerate
// parameters produce tiny geometry instead of NaN normals.
const minDim = 1e-4

func clampDim(v float32) float32 {
	if v < minDim {
		return minDim
	}
	return v
}
