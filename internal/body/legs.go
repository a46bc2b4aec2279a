package body

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
)

// legSegmentSpec is one entry of a chain preset: segment length, top/bottom
// shaft radii, and the rest angle of the segment's pivot about X.
type legSegmentSpec struct {
	Length       float32
	TopRadius    float32
	BottomRadius float32
	Rest         float32
}

// legAttachment is a right-side coxa position (base units, x > 0) plus the
// leg's gait phase. Left legs mirror the position and add 0.5 to the phase.
type legAttachment struct {
	Pos   mgl32.Vec3
	Phase float32
}

type footKind string

const (
	footTarsal  footKind = "tarsal"
	footClaws   footKind = "claws"
	footPadHook footKind = "padhook"
	footTapered footKind = "tapered"
)

// legConfig is one leg style preset. Special marks the attachment index that
// gets SpecialScale applied to femur and tibia (raptorial front leg, jumping
// hind leg); -1 disables it.
type legConfig struct {
	attachments  []legAttachment
	segments     [4]legSegmentSpec // Tarsus Length 0 = 3-segment chain
	splay        float32           // outward coxa tilt about Z
	foot         footKind
	special      int
	specialScale float32
}

var legConfigs = map[genome.LegStyle]legConfig{
	genome.LegInsect: {
		attachments: []legAttachment{
			{Pos: mgl32.Vec3{2.8, -0.6, 2.0}, Phase: 0},
			{Pos: mgl32.Vec3{3.0, -0.6, 0}, Phase: 0.5},
			{Pos: mgl32.Vec3{2.8, -0.6, -2.0}, Phase: 0},
		},
		segments: [4]legSegmentSpec{
			{Length: 1.2, TopRadius: 0.5, BottomRadius: 0.4, Rest: -0.35},
			{Length: 3.2, TopRadius: 0.4, BottomRadius: 0.3, Rest: -0.8},
			{Length: 3.6, TopRadius: 0.3, BottomRadius: 0.18, Rest: 1.7},
			{Length: 1.1, TopRadius: 0.18, BottomRadius: 0.1, Rest: 0.5},
		},
		splay:   0.55,
		foot:    footTarsal,
		special: -1,
	},
	genome.LegSpider: {
		attachments: []legAttachment{
			{Pos: mgl32.Vec3{2.6, 0.2, 2.2}, Phase: 0},
			{Pos: mgl32.Vec3{2.9, 0.2, 0.8}, Phase: 0.5},
			{Pos: mgl32.Vec3{2.9, 0.2, -0.8}, Phase: 0},
			{Pos: mgl32.Vec3{2.6, 0.2, -2.2}, Phase: 0.5},
		},
		segments: [4]legSegmentSpec{
			{Length: 1.6, TopRadius: 0.4, BottomRadius: 0.32, Rest: -0.7},
			{Length: 4.4, TopRadius: 0.32, BottomRadius: 0.22, Rest: -0.7},
			{Length: 4.8, TopRadius: 0.22, BottomRadius: 0.12, Rest: 2.1},
			{Length: 1.4, TopRadius: 0.12, BottomRadius: 0.06, Rest: 0.4},
		},
		splay:   0.8,
		foot:    footClaws,
		special: -1,
	},
	genome.LegMantis: {
		attachments: []legAttachment{
			{Pos: mgl32.Vec3{2.2, -0.2, 2.6}, Phase: 0},
			{Pos: mgl32.Vec3{2.9, -0.6, 0.2}, Phase: 0.5},
			{Pos: mgl32.Vec3{2.8, -0.6, -1.8}, Phase: 0},
		},
		segments: [4]legSegmentSpec{
			{Length: 1.3, TopRadius: 0.45, BottomRadius: 0.36, Rest: -0.3},
			{Length: 3.4, TopRadius: 0.36, BottomRadius: 0.26, Rest: -0.9},
			{Length: 3.8, TopRadius: 0.26, BottomRadius: 0.14, Rest: 1.8},
			{Length: 1.0, TopRadius: 0.14, BottomRadius: 0.08, Rest: 0.4},
		},
		splay:        0.5,
		foot:         footTapered,
		special:      0, // raptorial front pair
		specialScale: 1.6,
	},
	genome.LegGrasshopper: {
		attachments: []legAttachment{
			{Pos: mgl32.Vec3{2.7, -0.5, 2.2}, Phase: 0},
			{Pos: mgl32.Vec3{2.9, -0.5, 0.4}, Phase: 0.5},
			{Pos: mgl32.Vec3{2.6, 0.2, -1.8}, Phase: 0},
		},
		segments: [4]legSegmentSpec{
			{Length: 1.2, TopRadius: 0.5, BottomRadius: 0.4, Rest: -0.4},
			{Length: 3.0, TopRadius: 0.45, BottomRadius: 0.3, Rest: -1.1},
			{Length: 4.2, TopRadius: 0.26, BottomRadius: 0.12, Rest: 2.3},
			{Length: 1.2, TopRadius: 0.12, BottomRadius: 0.07, Rest: 0.4},
		},
		splay:        0.5,
		foot:         footTarsal,
		special:      2, // jumping hind pair
		specialScale: 1.8,
	},
	genome.LegBeetle: {
		attachments: []legAttachment{
			{Pos: mgl32.Vec3{2.9, -1.0, 1.8}, Phase: 0},
			{Pos: mgl32.Vec3{3.1, -1.0, 0}, Phase: 0.5},
			{Pos: mgl32.Vec3{2.9, -1.0, -1.8}, Phase: 0},
		},
		segments: [4]legSegmentSpec{
			{Length: 1.0, TopRadius: 0.6, BottomRadius: 0.5, Rest: -0.3},
			{Length: 2.2, TopRadius: 0.5, BottomRadius: 0.38, Rest: -0.6},
			{Length: 2.4, TopRadius: 0.38, BottomRadius: 0.2, Rest: 1.4},
			{Length: 0.9, TopRadius: 0.2, BottomRadius: 0.12, Rest: 0.5},
		},
		splay:   0.45,
		foot:    footPadHook,
		special: -1,
	},
	genome.LegStick: {
		attachments: []legAttachment{
			{Pos: mgl32.Vec3{2.4, 0, 2.4}, Phase: 0},
			{Pos: mgl32.Vec3{2.7, 0, 0}, Phase: 0.5},
			{Pos: mgl32.Vec3{2.4, 0, -2.4}, Phase: 0},
		},
		segments: [4]legSegmentSpec{
			{Length: 1.8, TopRadius: 0.22, BottomRadius: 0.2, Rest: -0.55},
			{Length: 5.4, TopRadius: 0.2, BottomRadius: 0.15, Rest: -0.75},
			{Length: 5.8, TopRadius: 0.15, BottomRadius: 0.08, Rest: 2.0},
			{Length: 1.6, TopRadius: 0.08, BottomRadius: 0.04, Rest: 0.35},
		},
		splay:   0.65,
		foot:    footTapered,
		special: -1,
	},
	genome.LegCentipede: {
		attachments: []legAttachment{
			{Pos: mgl32.Vec3{2.6, -0.8, 2.5}, Phase: 0},
			{Pos: mgl32.Vec3{2.7, -0.8, 1.5}, Phase: 0.25},
			{Pos: mgl32.Vec3{2.8, -0.8, 0.5}, Phase: 0.5},
			{Pos: mgl32.Vec3{2.8, -0.8, -0.5}, Phase: 0.75},
			{Pos: mgl32.Vec3{2.7, -0.8, -1.5}, Phase: 0},
			{Pos: mgl32.Vec3{2.6, -0.8, -2.5}, Phase: 0.25},
		},
		segments: [4]legSegmentSpec{
			{Length: 0.8, TopRadius: 0.3, BottomRadius: 0.26, Rest: -0.4},
			{Length: 2.0, TopRadius: 0.26, BottomRadius: 0.18, Rest: -0.5},
			{Length: 2.2, TopRadius: 0.18, BottomRadius: 0.1, Rest: 1.3},
			{},
		},
		splay:   0.7,
		foot:    footTapered,
		special: -1,
	},
}

func legConfigFor(style genome.LegStyle) legConfig {
	if cfg, ok := legConfigs[style]; ok {
		return cfg
	}
	return legConfigs[genome.LegInsect]
}

// buildLegs mirrors every attachment across X into a left/right pair and
// hangs the chains off the creature root.
func buildLegs(c *buildCtx, root *Node) []*Leg {
	cfg := legConfigFor(c.g.Legs)
	legs := make([]*Leg, 0, len(cfg.attachments)*2)
	for i, att := range cfg.attachments {
		for _, side := range []float32{1, -1} {
			leg := c.buildLeg(cfg, i, att, side)
			root.AddChild(leg.Coxa)
			legs = append(legs, leg)
		}
	}
	return legs
}

func (c *buildCtx) buildLeg(cfg legConfig, index int, att legAttachment, side float32) *Leg {
	s := c.scale
	phase := att.Phase
	if side < 0 {
		phase += 0.5
		if phase >= 1 {
			phase -= 1
		}
	}
	leg := &Leg{Phase: phase, Side: side}

	lengthScale := float32(1)
	if index == cfg.special {
		lengthScale = cfg.specialScale
	}

	parent := (*Node)(nil)
	pivots := make([]*Node, 0, 4)
	names := [4]string{"coxa", "femur", "tibia", "tarsus"}
	offsetY := float32(0)
	for si, spec := range cfg.segments {
		if spec.Length <= 0 {
			break
		}
		length := spec.Length * s
		if si == 1 || si == 2 {
			length *= lengthScale
		}
		pivot := NewNode(legNodeName(index, side, names[si]))
		pivot.Rotation[0] = spec.Rest
		pivot.Anchors.Phase = phase
		pivot.Anchors.Side = side
		if si == 0 {
			pivot.Position = mgl32.Vec3{side * att.Pos.X() * s * c.bulk, att.Pos.Y() * s, att.Pos.Z() * s * c.bulk}
			pivot.Rotation[2] = -side * cfg.splay
		} else {
			pivot.Position = mgl32.Vec3{0, -offsetY, 0}
		}

		shaft := NewNode(pivot.Name + "_shaft")
		shaft.Mesh = geometry.Frustum(spec.TopRadius*s, spec.BottomRadius*s, length, 10)
		shaft.Material = c.limbMaterial()
		shaft.Rotation[0] = mgl32.DegToRad(180) // frustum grows +Y; leg hangs -Y
		pivot.AddChild(shaft)

		if parent != nil {
			parent.AddChild(pivot)
		}
		parent = pivot
		pivots = append(pivots, pivot)
		offsetY = length
	}

	if parent != nil {
		parent.AddChild(c.buildFoot(cfg.foot, offsetY))
	}

	leg.Coxa = pivots[0]
	if len(pivots) > 1 {
		leg.Femur = pivots[1]
	}
	if len(pivots) > 2 {
		leg.Tibia = pivots[2]
	}
	if len(pivots) > 3 {
		leg.Tarsus = pivots[3]
	}
	return leg
}

func legNodeName(index int, side float32, part string) string {
	sc := "r"
	if side < 0 {
		sc = "l"
	}
	return fmt.Sprintf("leg_%s%d_%s", sc, index, part)
}

// buildFoot caps the chain at the given distance below the last pivot.
func (c *buildCtx) buildFoot(kind footKind, below float32) *Node {
	s := c.scale
	foot := NewNode("foot")
	foot.Position = mgl32.Vec3{0, -below, 0}
	switch kind {
	case footClaws:
		for _, side := range []float32{-1, 1} {
			claw := NewNode("foot_claw")
			claw.Mesh = geometry.Cone(0.08*s, 0.5*s, 6)
			claw.Material = c.chitinMaterial()
			claw.Rotation = mgl32.Vec3{mgl32.DegToRad(200), 0, side * 0.3}
			foot.AddChild(claw)
		}
	case footPadHook:
		pad := NewNode("foot_pad")
		pad.Mesh = geometry.Sphere(0.25 * s)
		pad.Material = c.chitinMaterial()
		foot.AddChild(pad)
		for _, side := range []float32{-1, 1} {
			hook := NewNode("foot_hook")
			hook.Mesh = geometry.Cone(0.05*s, 0.3*s, 6)
			hook.Material = c.chitinMaterial()
			hook.Position = mgl32.Vec3{side * 0.12 * s, -0.15 * s, 0.1 * s}
			hook.Rotation[0] = mgl32.DegToRad(210)
			foot.AddChild(hook)
		}
	case footTapered:
		tip := NewNode("foot_tip")
		tip.Mesh = geometry.Cone(0.07*s, 0.6*s, 6)
		tip.Material = c.limbMaterial()
		tip.Rotation[0] = mgl32.DegToRad(180)
		foot.AddChild(tip)
	default: // tarsal segments with micro-claws
		seg := NewNode("foot_tarsal")
		seg.Mesh = geometry.Frustum(0.1*s, 0.06*s, 0.5*s, 8)
		seg.Material = c.limbMaterial()
		seg.Rotation[0] = mgl32.DegToRad(180)
		foot.AddChild(seg)
		for _, side := range []float32{-1, 1} {
			claw := NewNode("foot_microclaw")
			claw.Mesh = geometry.Cone(0.04*s, 0.2*s, 5)
			claw.Material = c.chitinMaterial()
			claw.Position = mgl32.Vec3{side * 0.06 * s, -0.5 * s, 0}
			claw.Rotation[0] = mgl32.DegToRad(195)
			foot.AddChild(claw)
		}
	}
	return foot
}
