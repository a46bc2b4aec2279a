package anim

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/amplice/bug-fight-sub000/internal/body"
	"github.com/amplice/bug-fight-sub000/internal/genome"
)

func testRig(t *testing.T, g genome.Genome) *body.Rig {
	t.Helper()
	res, err := (&body.Builder{MapSide: 32}).Generate(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	return res.Rig
}

func mandibleGenome() genome.Genome {
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
		Mobility:   genome.MobilityWinged,
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

const eps = 1e-4

func near(a, b float32) bool { return math32.Abs(a-b) < eps }

func requireBasePose(t *testing.T, root *body.Node) {
	t.Helper()
	root.Walk(func(n *body.Node) {
		if !near(n.Position[0], n.Anchors.BasePosition.X()) ||
			!near(n.Position[1], n.Anchors.BasePosition.Y()) ||
			!near(n.Position[2], n.Anchors.BasePosition.Z()) {
			t.Errorf("%s position %v, want base %v", n.Name, n.Position, n.Anchors.BasePosition)
		}
		if !near(n.Rotation[0], n.Anchors.BaseRotation.X()) ||
			!near(n.Rotation[1], n.Anchors.BaseRotation.Y()) ||
			!near(n.Rotation[2], n.Anchors.BaseRotation.Z()) {
			t.Errorf("%s rotation %v, want base %v", n.Name, n.Rotation, n.Anchors.BaseRotation)
		}
		if !near(n.Scale[0], n.Anchors.BaseScale.X()) ||
			!near(n.Scale[1], n.Anchors.BaseScale.Y()) ||
			!near(n.Scale[2], n.Anchors.BaseScale.Z()) {
			t.Errorf("%s scale %v, want base %v", n.Name, n.Scale, n.Anchors.BaseScale)
		}
	})
}

func TestFreshIdleIsBasePose(t *testing.T) {
	rig := testRig(t, mandibleGenome())
	a := New(rig)
	a.Update(0, IntentIdle, PhysicsSignal{Grounded: true})
	requireBasePose(t, rig.Root)
}

func TestStateChangeResetsToBase(t *testing.T) {
	rig := testRig(t, mandibleGenome())
	a := New(rig)
	sig := PhysicsSignal{Grounded: true}

	// Run well into an attack so many nodes carry offsets.
	a.Update(0, IntentAttack, sig)
	for i := 0; i < 10; i++ {
		a.Update(0.05, IntentAttack, sig)
	}

	// Switching back to a fresh stationary idle must land exactly on the
	// assembly-time snapshot, with no residue from the attack.
	a.Update(0, IntentIdle, sig)
	requireBasePose(t, rig.Root)
}

func TestMandibleStrikeLungesForward(t *testing.T) {
	rig := testRig(t, mandibleGenome())
	a := New(rig)
	sig := PhysicsSignal{Grounded: true}

	a.Update(0, IntentAttack, sig)
	a.Update(0.4, IntentAttack, sig) // halfway through the sequence

	baseZ := rig.Head.Anchors.BasePosition.Z()
	if rig.Head.Position[2] <= baseZ {
		t.Errorf("head z = %f at mid-strike, want > base %f", rig.Head.Position[2], baseZ)
	}
	if rig.WeaponLeft == nil || rig.WeaponRight == nil {
		t.Fatal("mandible halves missing")
	}
	if near(rig.WeaponLeft.Rotation[1], rig.WeaponLeft.Anchors.BaseRotation.Y()) {
		t.Error("left mandible never moved during strike")
	}
}

func TestAttackHoldsBaseAfterSequence(t *testing.T) {
	rig := testRig(t, mandibleGenome())
	a := New(rig)
	sig := PhysicsSignal{Grounded: true}

	a.Update(0, IntentAttack, sig)
	a.Update(2, IntentAttack, sig) // well past attackDuration
	requireBasePose(t, rig.Root)
}

func TestDeathFlipsOnlyAfterLanding(t *testing.T) {
	rig := testRig(t, mandibleGenome())
	a := New(rig)
	baseRoll := rig.Root.Anchors.BaseRotation.Z()

	// Airborne: orientation drifts toward upright, never inverts.
	a.Update(0, IntentDeath, PhysicsSignal{})
	for i := 0; i < 40; i++ {
		a.Update(0.05, IntentDeath, PhysicsSignal{})
		if math32.Abs(rig.Root.Rotation[2]-baseRoll) > 1 {
			t.Fatalf("inverted while airborne: roll delta %f", rig.Root.Rotation[2]-baseRoll)
		}
	}

	// First grounded frame starts the flip clock at zero.
	a.Update(0.05, IntentDeath, PhysicsSignal{Grounded: true})
	if !near(rig.Root.Rotation[2], baseRoll) {
		t.Errorf("flip started before the landing clock: roll %f", rig.Root.Rotation[2])
	}

	// Past flipDuration the body is fully on its back.
	for i := 0; i < 20; i++ {
		a.Update(0.05, IntentDeath, PhysicsSignal{Grounded: true})
	}
	if math32.Abs(rig.Root.Rotation[2]-(baseRoll+math32.Pi)) > 0.01 {
		t.Errorf("final roll %f, want %f", rig.Root.Rotation[2], baseRoll+math32.Pi)
	}
}

func TestJumpCycleReturnsToRest(t *testing.T) {
	rig := testRig(t, mandibleGenome())
	a := New(rig)
	sig := PhysicsSignal{Grounded: true}

	a.Update(0, IntentJump, sig)
	a.Update(0.9, IntentJump, sig) // mid-descent
	if rig.Root.Position[1] <= rig.Root.Anchors.BasePosition.Y() {
		t.Errorf("root y = %f mid-jump, want above base", rig.Root.Position[1])
	}

	a.Update(2, IntentJump, sig) // clock clamps at the cycle end
	requireBasePose(t, rig.Root)
}

func TestVictoryBounces(t *testing.T) {
	rig := testRig(t, mandibleGenome())
	a := New(rig)
	sig := PhysicsSignal{Grounded: true}

	a.Update(0, IntentVictory, sig)
	var moved bool
	for i := 0; i < 20; i++ {
		a.Update(0.05, IntentVictory, sig)
		if rig.Root.Position[1] > rig.Root.Anchors.BasePosition.Y()+0.1 {
			moved = true
		}
	}
	if !moved {
		t.Error("victory never bounced the root")
	}
}

func TestWingFlapRespondsToFlight(t *testing.T) {
	rig := testRig(t, mandibleGenome())
	if rig.WingLeft == nil || rig.WingRight == nil {
		t.Fatal("winged genome built no wings")
	}
	a := New(rig)

	a.Update(0, IntentIdle, PhysicsSignal{Flying: true})
	a.Update(0.3, IntentIdle, PhysicsSignal{Flying: true})
	baseR := rig.WingRight.Anchors.BaseRotation.Z()
	if near(rig.WingRight.Rotation[2], baseR) {
		t.Error("flying wing never left rest")
	}
	// Mirrored beat: the two hinges move in opposite directions.
	dr := rig.WingRight.Rotation[2] - baseR
	dl := rig.WingLeft.Rotation[2] - rig.WingLeft.Anchors.BaseRotation.Z()
	if dr*dl > 0 {
		t.Errorf("wing deltas %f and %f not mirrored", dr, dl)
	}
}

func TestSparseRigNeverPanics(t *testing.T) {
	root := body.NewNode("root")
	root.SnapshotBase()
	rig := &body.Rig{Root: root}
	a := New(rig)

	intents := []Intent{IntentIdle, IntentAttack, IntentHit, IntentDeath, IntentVictory, IntentJump}
	for _, in := range intents {
		a.Update(0, in, PhysicsSignal{})
		a.Update(0.5, in, PhysicsSignal{Grounded: true})
	}
}
