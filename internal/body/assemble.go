package body

import (
	"image/color"

	"github.com/google/uuid"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/palette"
	"github.com/amplice/bug-fight-sub000/internal/surface"
)

// Generator turns a genome into a creature. The mesh Builder here and the
// voxel builder are interchangeable implementations.
type Generator interface {
	Generate(g genome.Genome, scale float32) (*Result, error)
}

// Result is one assembled creature: the transform tree, the rig the animator
// drives, and the surface-map cache the tree's materials point into. The
// three share a lifetime; dropping the Result releases everything.
type Result struct {
	ID      uuid.UUID
	Root    *Node
	Rig     *Rig
	Maps    *surface.Cache
	Genome  genome.Genome
	Palette palette.Palette
}

// Builder is the continuous-mesh body generator.
type Builder struct {
	// MapSide overrides the surface map resolution (0 = surface.DefaultSide).
	MapSide int
}

// Generate builds the full creature tree for the genome. It never fails on
// genome content: unknown traits fall back to default variants and stats are
// clamped. The error return satisfies the Generator contract shared with the
// voxel builder.
func (b *Builder) Generate(g genome.Genome, scale float32) (*Result, error) {
	g = g.Normalized()
	if scale <= 0 {
		scale = 1
	}
	ctx := &buildCtx{
		g:     g,
		pal:   palette.Derive(g),
		maps:  surface.NewCache(b.MapSide),
		scale: scale * g.Size,
		bulk:  g.BulkFactor(),
	}

	root := NewNode("creature")
	rig := &Rig{Root: root}

	rig.Thorax = buildThorax(ctx)
	root.AddChild(rig.Thorax)

	rig.Abdomen = buildAbdomen(ctx)
	rig.Abdomen.Position[2] = -abdomenPush(g.Thorax) * ctx.scale * ctx.bulk
	root.AddChild(rig.Abdomen)

	head, sockets := buildHead(ctx)
	rig.Head = head
	root.AddChild(head)
	rig.Eyes = buildEyes(ctx, head, sockets)

	rig.Legs = buildLegs(ctx, root)
	rig.Antennae = buildAntennae(ctx, head)
	buildWeapon(ctx, rig)
	if g.Mobility == genome.MobilityWinged {
		rig.WingLeft, rig.WingRight = buildWings(ctx, root)
	}
	applyDefense(ctx, rig)

	root.SnapshotBase()
	return &Result{
		ID:      uuid.New(),
		Root:    root,
		Rig:     rig,
		Maps:    ctx.maps,
		Genome:  g,
		Palette: ctx.pal,
	}, nil
}

// abdomenPush is the longitudinal offset of the abdomen center behind the
// thorax, per thorax variant. Elongated and segmented thoraxes push it
// further back.
func abdomenPush(t genome.ThoraxType) float32 {
	switch t {
	case genome.ThoraxElongated:
		return 8.0
	case genome.ThoraxSegmented:
		return 8.2
	case genome.ThoraxBroad:
		return 6.3
	case genome.ThoraxArmored:
		return 6.8
	default:
		return 6.5
	}
}

// buildCtx carries the shared inputs every organ builder reads.
type buildCtx struct {
	g     genome.Genome
	pal   palette.Palette
	maps  *surface.Cache
	scale float32
	bulk  float32
}

// bodyMaterial is the textured chitin shared by abdomen/thorax/head.
func (c *buildCtx) bodyMaterial() *Material {
	return &Material{
		Name:      "body",
		Color:     c.pal.Primary,
		Maps:      c.maps.Get(c.g.Texture, c.pal.Primary, c.pal.Secondary, c.g.Seed),
		Roughness: 0.7,
	}
}

// limbMaterial is the textured secondary used by legs and antennae.
func (c *buildCtx) limbMaterial() *Material {
	return &Material{
		Name:      "limb",
		Color:     c.pal.Secondary,
		Maps:      c.maps.Get(c.g.Texture, c.pal.Secondary, c.pal.Dark, c.g.Seed),
		Roughness: 0.75,
	}
}

// chitinMaterial is the dark untextured shell used by claws and weapons.
func (c *buildCtx) chitinMaterial() *Material {
	return &Material{Name: "chitin", Color: c.pal.Dark, Metalness: 0.2, Roughness: 0.45}
}

// venomMaterial marks fang and stinger tips.
func (c *buildCtx) venomMaterial() *Material {
	return &Material{
		Name:             "venom",
		Color:            color.NRGBA{R: 120, G: 220, B: 60, A: 255},
		Emissive:         color.NRGBA{R: 90, G: 200, B: 40, A: 255},
		EmissiveStrength: 0.6,
		Roughness:        0.3,
	}
}

func (c *buildCtx) eyeMaterial() *Material {
	return &Material{Name: "eye", Color: c.pal.Eye, Roughness: 0.15}
}

func (c *buildCtx) membraneMaterial() *Material {
	lightFade := c.pal.Light
	lightFade.A = 140
	return &Material{Name: "membrane", Color: lightFade, Roughness: 0.25}
}
