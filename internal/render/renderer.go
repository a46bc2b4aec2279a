// Package render uploads generated creature geometry to the GPU and draws
// the transform tree. Meshes and surface maps are uploaded lazily on first
// draw so GPU resources are only allocated once the window exists, and
// cached per pointer so shared surface maps upload once.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/amplice/bug-fight-sub000/internal/body"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
	"github.com/amplice/bug-fight-sub000/internal/surface"
)

// Renderer caches uploaded meshes and textures and owns the lit shaders.
type Renderer struct {
	meshes   map[*geometry.Mesh]rl.Mesh
	textures map[*surface.Maps]rl.Texture2D

	plain    rl.Material
	textured rl.Material

	viewPos  [3]float32
	lightDir [3]float32
}

// New returns an empty renderer. Shaders load on the first draw.
func New() *Renderer {
	return &Renderer{
		meshes:   make(map[*geometry.Mesh]rl.Mesh),
		textures: make(map[*surface.Maps]rl.Texture2D),
		lightDir: [3]float32{0.5, 1, 0.5},
	}
}

// SetView sets the camera position and direction-to-light for the frame.
// Call once per frame before drawing.
func (r *Renderer) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// DrawCreature draws the whole tree at the given world transform. Call
// between BeginMode3D and EndMode3D, after SetView.
func (r *Renderer) DrawCreature(root *body.Node, world mgl32.Mat4) {
	r.ensureMaterials()
	r.drawNode(root, world)
}

func (r *Renderer) drawNode(n *body.Node, parent mgl32.Mat4) {
	world := parent.Mul4(n.LocalMatrix())
	if n.Mesh != nil {
		r.drawMesh(n, world)
	}
	for _, c := range n.Children {
		r.drawNode(c, world)
	}
}

func (r *Renderer) drawMesh(n *body.Node, world mgl32.Mat4) {
	mesh := r.uploadMesh(n.Mesh)

	mat := n.Material
	if mat == nil {
		mat = &body.Material{Color: color.NRGBA{R: 128, G: 128, B: 128, A: 255}}
	}

	tint := rl.NewColor(mat.Color.R, mat.Color.G, mat.Color.B, mat.Color.A)
	if mat.Maps != nil {
		tex := r.uploadTexture(mat.Maps)
		rl.SetMaterialTexture(&r.textured, rl.MapAlbedo, tex)
		if albedo := r.textured.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = tint
		}
		r.setUniforms(r.textured.Shader, mat, n.Anchors.IsEye)
		rl.DrawMesh(mesh, r.textured, rlMatrix(world))
		return
	}

	if albedo := r.plain.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setUniforms(r.plain.Shader, mat, n.Anchors.IsEye)
	rl.DrawMesh(mesh, r.plain, rlMatrix(world))
}

// uploadMesh uploads a generated mesh once and reuses the GPU copy after.
func (r *Renderer) uploadMesh(g *geometry.Mesh) rl.Mesh {
	if m, ok := r.meshes[g]; ok {
		return m
	}
	m := rl.Mesh{
		VertexCount:   int32(g.VertexCount()),
		TriangleCount: int32(g.TriangleCount()),
	}
	m.Vertices = &g.Vertices[0]
	m.Normals = &g.Normals[0]
	m.Texcoords = &g.TexCoords[0]
	m.Indices = &g.Indices[0]
	rl.UploadMesh(&m, false)
	r.meshes[g] = m
	return m
}

// uploadTexture uploads the diffuse map once per surface.Maps value.
func (r *Renderer) uploadTexture(maps *surface.Maps) rl.Texture2D {
	if t, ok := r.textures[maps]; ok {
		return t
	}
	img := rl.NewImageFromImage(maps.Diffuse)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	r.textures[maps] = tex
	return tex
}

// Unload releases every uploaded mesh and texture. Call before closing the
// window.
func (r *Renderer) Unload() {
	for g, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, g)
	}
	for s, t := range r.textures {
		rl.UnloadTexture(t)
		delete(r.textures, s)
	}
}

// rlMatrix converts a column-major mgl32 matrix to raylib's layout. Both
// store column-major, so the mapping is element-for-element.
func rlMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
