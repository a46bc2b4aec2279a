package body

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/geometry"
	"github.com/amplice/bug-fight-sub000/internal/surface"
)

// Material describes how a node's geometry is shaded. Maps is nil for plain
// tinted parts (eyes, claws, venom tips).
type Material struct {
	Name             string
	Color            color.NRGBA
	Maps             *surface.Maps
	Metalness        float32
	Roughness        float32
	Emissive         color.NRGBA
	EmissiveStrength float32
}

// Anchors is the closed set of animation anchor fields recorded per node.
// Base* are the resting local transform captured at assembly; the animator
// writes additive offsets against them and never accumulates across frames.
type Anchors struct {
	BasePosition mgl32.Vec3
	BaseRotation mgl32.Vec3
	BaseScale    mgl32.Vec3

	// Phase offsets a leg or wing within the gait cycle; Side is -1 for
	// left, +1 for right, 0 for centered parts.
	Phase float32
	Side  float32

	// IsEye marks eye nodes for the renderer's highlight pass.
	IsEye bool
}

// Node is one element of the creature's transform tree. Rotation is Euler
// radians applied Z then Y then X in the local frame. Ownership is strictly
// tree-shaped: dropping a node drops its whole subtree.
type Node struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3

	Mesh     *geometry.Mesh
	Voxels   *geometry.VoxelGrid
	Material *Material

	Children []*Node
	Anchors  Anchors
}

// NewNode returns a node with identity transform and no geometry.
func NewNode(name string) *Node {
	return &Node{Name: name, Scale: mgl32.Vec3{1, 1, 1}}
}

// AddChild appends children and returns the node for chaining.
func (n *Node) AddChild(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first node named name in the subtree, depth-first, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node in the subtree depth-first, parent before children.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the subtree node count.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) { count++ })
	return count
}

// SnapshotBase records the current local transform of every node in the
// subtree as its animation base. Called once by the assembler; the animator
// relies on it to apply offsets additively.
func (n *Node) SnapshotBase() {
	n.Walk(func(node *Node) {
		node.Anchors.BasePosition = node.Position
		node.Anchors.BaseRotation = node.Rotation
		node.Anchors.BaseScale = node.Scale
	})
}

// ResetToBase restores every node in the subtree to its base snapshot.
func (n *Node) ResetToBase() {
	n.Walk(func(node *Node) {
		node.Position = node.Anchors.BasePosition
		node.Rotation = node.Anchors.BaseRotation
		node.Scale = node.Anchors.BaseScale
	})
}

// LocalMatrix returns the node's local transform: translate, then rotate
// Z·Y·X, then scale.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DZ(n.Rotation.Z()))
	m = m.Mul4(mgl32.HomogRotate3DY(n.Rotation.Y()))
	m = m.Mul4(mgl32.HomogRotate3DX(n.Rotation.X()))
	return m.Mul4(mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z()))
}
