package voxel

import (
	"testing"

	"github.com/amplice/bug-fight-sub000/internal/anim"
	"github.com/amplice/bug-fight-sub000/internal/body"
	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/geometry"
)

func testGenome() genome.Genome {
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
		Hue:        200,
		Saturation: 0.6,
		Lightness:  0.5,
		AccentHue:  -1,
		Seed:       3,
	}
}

func testResult(t *testing.T) *body.Result {
	t.Helper()
	res, err := (&Builder{MapSide: 32, CellSize: 0.5}).Generate(testGenome(), 1)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestGenerateVoxelizesEveryMeshedNode(t *testing.T) {
	res := testResult(t)

	meshed, filled := 0, 0
	res.Root.Walk(func(n *body.Node) {
		if n.Mesh == nil {
			return
		}
		meshed++
		if n.Voxels == nil {
			t.Errorf("%s has a mesh but no voxel grid", n.Name)
			return
		}
		if n.Voxels.Count() > 0 {
			filled++
		}
	})
	if meshed == 0 {
		t.Fatal("no meshed nodes in the tree")
	}
	if filled != meshed {
		t.Errorf("%d of %d grids are empty", meshed-filled, meshed)
	}
}

func TestCellIndexFollowsMaterial(t *testing.T) {
	res := testResult(t)

	want := map[string]uint8{
		"body": cellBody,
		"limb": cellLimb,
		"eye":  cellEye,
	}
	res.Root.Walk(func(n *body.Node) {
		if n.Voxels == nil || n.Material == nil {
			return
		}
		idx, ok := want[n.Material.Name]
		if !ok {
			return
		}
		for _, c := range n.Voxels.Cells {
			if c != 0 && c != idx {
				t.Errorf("%s (%s) holds cell value %d, want %d", n.Name, n.Material.Name, c, idx)
				return
			}
		}
	})
}

func TestSameGenomeSameVoxels(t *testing.T) {
	a := testResult(t)
	b := testResult(t)

	na := a.Root.Find("thorax")
	nb := b.Root.Find("thorax")
	if na == nil || nb == nil || na.Voxels == nil || nb.Voxels == nil {
		t.Fatal("thorax grid missing")
	}
	if na.Voxels.Count() != nb.Voxels.Count() {
		t.Errorf("fill counts differ: %d vs %d", na.Voxels.Count(), nb.Voxels.Count())
	}
}

func TestBakeCoversEveryState(t *testing.T) {
	res := testResult(t)
	lib := Bake(res.Rig, DefaultFrameRate)

	states := []anim.Intent{
		anim.IntentIdle, anim.IntentAttack, anim.IntentHit,
		anim.IntentDeath, anim.IntentVictory, anim.IntentJump,
	}
	for _, s := range states {
		set := lib[s]
		if set == nil || len(set.Frames) == 0 {
			t.Errorf("state %s has no baked frames", s)
			continue
		}
		if set.Rate != DefaultFrameRate {
			t.Errorf("state %s rate = %f", s, set.Rate)
		}
		for _, f := range set.Frames {
			if len(f.Poses) != len(set.Frames[0].Poses) {
				t.Errorf("state %s has ragged pose counts", s)
				break
			}
		}
	}

	// Attack is a one-shot of attackDuration seconds at the bake rate.
	if n := len(lib[anim.IntentAttack].Frames); n < 9 || n > 11 {
		t.Errorf("attack frame count = %d, want ~0.8s * 12fps", n)
	}
	if lib[anim.IntentIdle].Loop != true || lib[anim.IntentAttack].Loop != false {
		t.Error("loop flags wrong")
	}
}

func TestBakeRestoresBasePose(t *testing.T) {
	res := testResult(t)
	Bake(res.Rig, 0)

	n := res.Rig.Thorax
	if n.Scale != n.Anchors.BaseScale || n.Position != n.Anchors.BasePosition {
		t.Error("rig left off base pose after bake")
	}
}

func TestBakedFramesActuallyMove(t *testing.T) {
	res := testResult(t)
	lib := Bake(res.Rig, DefaultFrameRate)

	set := lib[anim.IntentAttack]
	first, mid := set.Frames[0], set.Frames[len(set.Frames)/2]
	moved := false
	for i := range first.Poses {
		if first.Poses[i].Position != mid.Poses[i].Position ||
			first.Poses[i].Rotation != mid.Poses[i].Rotation {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("mid-attack frame identical to the first frame")
	}
}

func TestFrameSetAt(t *testing.T) {
	set := &FrameSet{Rate: 10, Loop: false, Frames: make([]Frame, 5)}
	for i := range set.Frames {
		set.Frames[i].Time = float32(i) / 10
	}

	if f := set.At(0.25); f.Time != 0.2 {
		t.Errorf("At(0.25) = frame %f", f.Time)
	}
	// One-shot clamps past the end.
	if f := set.At(3); f.Time != 0.4 {
		t.Errorf("clamped At(3) = frame %f", f.Time)
	}
	set.Loop = true
	if f := set.At(0.65); f.Time != 0.1 {
		t.Errorf("looped At(0.65) = frame %f", f.Time)
	}
}

func TestApplyRoundTripsPose(t *testing.T) {
	res := testResult(t)
	lib := Bake(res.Rig, DefaultFrameRate)

	set := lib[anim.IntentAttack]
	mid := &set.Frames[len(set.Frames)/2]
	Apply(mid, res.Root)

	// The applied tree must match the captured poses after converting the
	// rotations back.
	recap := captureFrame(res.Rig, mid.Time)
	for i := range mid.Poses {
		if mid.Poses[i].Position != recap.Poses[i].Position {
			t.Fatalf("pose %d position drifted: %v vs %v",
				i, mid.Poses[i].Position, recap.Poses[i].Position)
		}
	}
	res.Root.ResetToBase()
}

func TestSubCellPartStillFills(t *testing.T) {
	// Fang tips and claw teeth can be far smaller than a cell; the grid
	// must still carry at least one cell so the trait survives voxelization.
	tiny := geometry.Sphere(0.05)
	grid := rasterize(tiny, 0.5, cellVenom)
	if grid.Count() < 1 {
		t.Fatal("sub-cell mesh rasterized to an empty grid")
	}
	long := geometry.Cylinder(0.04, 0.3, 6)
	grid = rasterize(long, 0.5, cellLimb)
	if grid.Count() < 1 {
		t.Fatal("sub-cell capsule rasterized to an empty grid")
	}
}

func TestFrameContainer(t *testing.T) {
	var c FrameContainer
	if c.Latest() != nil {
		t.Fatal("fresh container not empty")
	}
	f := &Frame{Time: 1}
	c.Publish(f)
	if c.Latest() != f {
		t.Fatal("Latest did not return the published frame")
	}
}
