package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestSpheroidBounds(t *testing.T) {
	m := Spheroid(4.4, 3, 5, DefaultRings, DefaultSlices)
	min, max := m.Bounds()
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"min x", min.X(), -4.4},
		{"max x", max.X(), 4.4},
		{"min y", min.Y(), -3},
		{"max y", max.Y(), 3},
		{"min z", min.Z(), -5},
		{"max z", max.Z(), 5},
	}
	for _, tt := range tests {
		if math32.Abs(tt.got-tt.want) > 0.01 {
			t.Errorf("%s = %f, want %f", tt.name, tt.got, tt.want)
		}
	}
}

func TestSpheroidNormalsUnit(t *testing.T) {
	m := Spheroid(2, 1, 3, 8, 8)
	for i := 0; i < len(m.Normals); i += 3 {
		n := mgl32.Vec3{m.Normals[i], m.Normals[i+1], m.Normals[i+2]}
		if math32.Abs(n.Len()-1) > 1e-4 {
			t.Fatalf("normal %d has length %f", i/3, n.Len())
		}
	}
}

func TestDegenerateParamsDoNotNaN(t *testing.T) {
	meshes := []*Mesh{
		Spheroid(0, 0, 0, 4, 4),
		Cone(0, 0, 6),
		Cylinder(0, 0, 6),
		Torus(0, 0, 6, 6),
		Tube([]mgl32.Vec3{{}, {}}, FixedRadius(0), 4, 4),
	}
	for mi, m := range meshes {
		if m.VertexCount() == 0 {
			t.Errorf("mesh %d is empty", mi)
		}
		for i, v := range m.Vertices {
			if math32.IsNaN(v) || math32.IsInf(v, 0) {
				t.Fatalf("mesh %d vertex component %d is %f", mi, i, v)
			}
		}
		for i, n := range m.Normals {
			if math32.IsNaN(n) {
				t.Fatalf("mesh %d normal component %d is NaN", mi, i)
			}
		}
	}
}

func TestFrustumHeights(t *testing.T) {
	m := Frustum(2, 1, 5, 8)
	min, max := m.Bounds()
	if min.Y() != 0 || math32.Abs(max.Y()-5) > 1e-5 {
		t.Errorf("frustum spans y [%f,%f], want [0,5]", min.Y(), max.Y())
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	p0 := mgl32.Vec3{0, 0, 0}
	p3 := mgl32.Vec3{1, 2, 3}
	if got := CubicBezier(p0, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1}, p3, 0); got != p0 {
		t.Errorf("t=0 -> %v, want %v", got, p0)
	}
	if got := CubicBezier(p0, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1}, p3, 1); got != p3 {
		t.Errorf("t=1 -> %v, want %v", got, p3)
	}
}

func TestTubeFollowsCurve(t *testing.T) {
	ctrl := []mgl32.Vec3{{0, 0, 0}, {0, 2, 0}, {0, 4, 2}}
	m := Tube(ctrl, TaperedRadius(0.5, 0.1), 8, 6)
	if m.TriangleCount() == 0 {
		t.Fatal("tube has no triangles")
	}
	min, max := m.Bounds()
	if max.Y() < 3.5 || min.Y() > 0.6 {
		t.Errorf("tube bounds %v..%v do not follow curve", min, max)
	}
}

func TestPolygonDoubleSided(t *testing.T) {
	outline := []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	m := Polygon(outline)
	if m.VertexCount() != 8 {
		t.Errorf("vertex count = %d, want 8 (both sides)", m.VertexCount())
	}
	if m.TriangleCount() != 4 {
		t.Errorf("triangle count = %d, want 4", m.TriangleCount())
	}
	if m2 := Polygon(outline[:2]); m2.VertexCount() != 0 {
		t.Error("degenerate outline should produce empty mesh")
	}
}

func TestVoxelFillSpheroid(t *testing.T) {
	g := NewVoxelGrid(16, 16, 16, mgl32.Vec3{-8, -8, -8}, 1)
	g.FillSpheroid(mgl32.Vec3{0, 0, 0}, 5, 5, 5, 1)
	if g.Count() == 0 {
		t.Fatal("no cells filled")
	}
	if g.At(8, 8, 8) != 1 {
		t.Error("center cell not filled")
	}
	if g.At(0, 0, 0) != 0 {
		t.Error("corner cell filled outside spheroid")
	}
}

func TestVoxelFillCapsule(t *testing.T) {
	g := NewVoxelGrid(16, 16, 16, mgl32.Vec3{0, 0, 0}, 1)
	g.FillCapsule(mgl32.Vec3{2, 2, 2}, mgl32.Vec3{12, 2, 2}, 1.2, 3)
	if g.At(7, 2, 2) != 3 {
		t.Error("cell along the segment not filled")
	}
	if g.At(7, 10, 2) != 0 {
		t.Error("cell far from segment filled")
	}
}
