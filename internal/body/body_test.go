package body

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/surface"
)

// testBuilder keeps surface maps small so assembly stays fast under -race.
func testBuilder() *Builder {
	return &Builder{MapSide: 32}
}

func referenceGenome() genome.Genome {
	return genome.Genome{
		Abdomen:    genome.AbdomenRound,
		Thorax:     genome.ThoraxCompact,
		Head:       genome.HeadRound,
		Eyes:       genome.EyeCompound,
		Legs:       genome.LegInsect,
		Antenna:    genome.AntennaStraight,
		Weapon:     genome.WeaponMandibles,
		Wings:      genome.WingFly,
		Defense:    genome.DefenseNone,
		Mobility:   genome.MobilityGround,
		Texture:    genome.TextureSmooth,
		Bulk:       50,
		Speed:      50,
		Size:       1,
		Hue:        120,
		Saturation: 0.6,
		Lightness:  0.5,
		AccentHue:  -1,
		Seed:       7,
	}
}

func TestGenerateReferenceScenario(t *testing.T) {
	res, err := testBuilder().Generate(referenceGenome(), 1)
	if err != nil {
		t.Fatal(err)
	}
	rig := res.Rig

	// bulk 50 -> bulkFactor 1.1 -> round abdomen radius 4*1.1 = 4.4.
	min, max := rig.Abdomen.Mesh.Bounds()
	if math32.Abs(max.X()-4.4) > 0.01 || math32.Abs(min.X()+4.4) > 0.01 {
		t.Errorf("abdomen x bounds [%f,%f], want ±4.4", min.X(), max.X())
	}
	if math32.Abs(max.Y()-4.4) > 0.01 {
		t.Errorf("abdomen y max %f, want 4.4", max.Y())
	}

	// Insect style attaches 3 leg pairs.
	if len(rig.Legs) != 6 {
		t.Errorf("leg count = %d, want 6", len(rig.Legs))
	}

	if rig.WeaponKind != genome.WeaponMandibles || rig.WeaponLeft == nil || rig.WeaponRight == nil {
		t.Error("mandibles missing left/right halves")
	}

	// Ground mobility builds no wings.
	if rig.WingLeft != nil || rig.WingRight != nil {
		t.Error("ground creature has wings")
	}
}

func TestOrganCompleteness(t *testing.T) {
	b := testBuilder()
	for seed := int64(0); seed < 30; seed++ {
		g := genome.Roll(seed)
		res, err := b.Generate(g, 1)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		rig := res.Rig
		for _, part := range []struct {
			name string
			node *Node
		}{
			{"abdomen", rig.Abdomen},
			{"thorax", rig.Thorax},
			{"head", rig.Head},
		} {
			if part.node == nil {
				t.Fatalf("seed %d: %s missing", seed, part.name)
			}
			hasMesh := false
			part.node.Walk(func(n *Node) {
				if n.Mesh != nil && n.Mesh.VertexCount() > 0 {
					hasMesh = true
				}
			})
			if !hasMesh {
				t.Errorf("seed %d: %s subtree has no geometry", seed, part.name)
			}
		}
		if len(rig.Legs) == 0 {
			t.Errorf("seed %d: no legs", seed)
		}
		if (g.Mobility == genome.MobilityWinged) != (rig.WingLeft != nil) {
			t.Errorf("seed %d: mobility %q but wingLeft=%v", seed, g.Mobility, rig.WingLeft != nil)
		}
	}
}

func TestBilateralSymmetry(t *testing.T) {
	res, _ := testBuilder().Generate(referenceGenome(), 1)
	legs := res.Rig.Legs
	// Legs are emitted right then left per attachment.
	for i := 0; i < len(legs); i += 2 {
		right, left := legs[i], legs[i+1]
		if right.Side != 1 || left.Side != -1 {
			t.Fatalf("pair %d sides = %f,%f", i/2, right.Side, left.Side)
		}
		rp, lp := right.Coxa.Position, left.Coxa.Position
		if math32.Abs(rp.X()+lp.X()) > 1e-5 || rp.Y() != lp.Y() || rp.Z() != lp.Z() {
			t.Errorf("pair %d coxa positions %v / %v not mirrored", i/2, rp, lp)
		}
		if math32.Abs(right.Coxa.Rotation.Z()+left.Coxa.Rotation.Z()) > 1e-5 {
			t.Errorf("pair %d coxa splay %f / %f not mirrored", i/2, right.Coxa.Rotation.Z(), left.Coxa.Rotation.Z())
		}
		wantPhase := right.Phase + 0.5
		if wantPhase >= 1 {
			wantPhase -= 1
		}
		if math32.Abs(left.Phase-wantPhase) > 1e-5 {
			t.Errorf("pair %d phases %f / %f, want left = right+0.5", i/2, right.Phase, left.Phase)
		}
	}

	g := referenceGenome()
	g.Mobility = genome.MobilityWinged
	res, _ = testBuilder().Generate(g, 1)
	wl, wr := res.Rig.WingLeft, res.Rig.WingRight
	if wl == nil || wr == nil {
		t.Fatal("winged genome missing wing pair")
	}
	if math32.Abs(wl.Position.X()+wr.Position.X()) > 1e-5 {
		t.Errorf("wing positions %v / %v not mirrored", wl.Position, wr.Position)
	}
	if math32.Abs(wl.Rotation.Z()+wr.Rotation.Z()) > 1e-5 {
		t.Errorf("wing roll %f / %f not mirrored", wl.Rotation.Z(), wr.Rotation.Z())
	}
}

func TestSurfaceMapsShared(t *testing.T) {
	res, _ := testBuilder().Generate(referenceGenome(), 1)
	var bodyMaps []*surface.Maps
	res.Root.Walk(func(n *Node) {
		if n.Material != nil && n.Material.Name == "body" {
			bodyMaps = append(bodyMaps, n.Material.Maps)
		}
	})
	if len(bodyMaps) < 2 {
		t.Fatal("expected multiple textured body parts")
	}
	for _, m := range bodyMaps[1:] {
		if m != bodyMaps[0] {
			t.Fatal("body parts hold different map instances; cache must share one")
		}
	}
	// One body pair + one limb pair of colors for this genome.
	if res.Maps.Len() > 2 {
		t.Errorf("cache holds %d map sets, want at most 2", res.Maps.Len())
	}
}

func TestSnapshotAndReset(t *testing.T) {
	res, _ := testBuilder().Generate(referenceGenome(), 1)
	head := res.Rig.Head
	if head.Anchors.BasePosition != head.Position {
		t.Fatal("base position not captured at assembly")
	}
	orig := head.Position
	head.Position[1] += 3
	head.Rotation[0] = 1.2
	res.Root.ResetToBase()
	if head.Position != orig || head.Rotation[0] != 0 {
		t.Errorf("reset left position %v rotation %v", head.Position, head.Rotation)
	}
}

func TestFangsRideHead(t *testing.T) {
	g := referenceGenome()
	g.Weapon = genome.WeaponFangs
	res, _ := testBuilder().Generate(g, 1)
	if res.Rig.Head.Find("weapon") == nil {
		t.Error("fangs not parented under head")
	}

	g.Weapon = genome.WeaponStinger
	res, _ = testBuilder().Generate(g, 1)
	if res.Rig.Head.Find("weapon") != nil {
		t.Error("stinger parented under head; belongs on the root")
	}
	if res.Root.Find("weapon") == nil {
		t.Error("stinger missing from root")
	}
}

func TestUnknownTraitsFallBack(t *testing.T) {
	g := referenceGenome()
	g.Abdomen = "gelatinous"
	g.Legs = "wheels"
	res, err := testBuilder().Generate(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Genome.Abdomen != genome.AbdomenRound {
		t.Errorf("abdomen fallback = %q", res.Genome.Abdomen)
	}
	if len(res.Rig.Legs) != 6 {
		t.Errorf("unknown leg style built %d legs, want insect fallback 6", len(res.Rig.Legs))
	}
}

func TestResultIdentity(t *testing.T) {
	b := testBuilder()
	a, _ := b.Generate(referenceGenome(), 1)
	c, _ := b.Generate(referenceGenome(), 1)
	if a.ID == c.ID {
		t.Error("two creatures share an instance ID")
	}
	if a.Maps == c.Maps {
		t.Error("two creatures share a surface cache")
	}
}
