package genome

import "testing"

func TestNormalizedDefaults(t *testing.T) {
	g := Genome{}.Normalized()
	if g.Abdomen != AbdomenRound {
		t.Errorf("empty abdomen = %q, want round", g.Abdomen)
	}
	if g.Legs != LegInsect {
		t.Errorf("empty legs = %q, want insect", g.Legs)
	}
	if g.Size != 1 {
		t.Errorf("empty size = %f, want 1", g.Size)
	}
}

func TestNormalizedUnknownTrait(t *testing.T) {
	g := Genome{Weapon: "lazor", Texture: "velvet"}.Normalized()
	if g.Weapon != WeaponMandibles {
		t.Errorf("unknown weapon = %q, want mandibles fallback", g.Weapon)
	}
	if g.Texture != TextureSmooth {
		t.Errorf("unknown texture = %q, want smooth fallback", g.Texture)
	}
}

func TestNormalizedClamps(t *testing.T) {
	g := Genome{Bulk: 250, Speed: -10, Hue: 725, Saturation: 3, Lightness: -1}.Normalized()
	if g.Bulk != 100 || g.Speed != 0 {
		t.Errorf("stats not clamped: bulk=%f speed=%f", g.Bulk, g.Speed)
	}
	if g.Hue < 0 || g.Hue >= 360 {
		t.Errorf("hue not wrapped: %f", g.Hue)
	}
	if g.Saturation != 1 || g.Lightness != 0 {
		t.Errorf("sat/light not clamped: %f %f", g.Saturation, g.Lightness)
	}
}

func TestBulkFactor(t *testing.T) {
	tests := []struct {
		bulk float32
		want float32
	}{
		{0, 0.8},
		{50, 1.1},
		{100, 1.4},
	}
	for _, tt := range tests {
		g := Genome{Bulk: tt.bulk}
		got := g.BulkFactor()
		if diff := got - tt.want; diff < -1e-5 || diff > 1e-5 {
			t.Errorf("BulkFactor(bulk=%f) = %f, want %f", tt.bulk, got, tt.want)
		}
	}
}

func TestRollDeterministic(t *testing.T) {
	a := Roll(1234)
	b := Roll(1234)
	if a != b {
		t.Fatalf("Roll(1234) not deterministic:\n%+v\n%+v", a, b)
	}
	c := Roll(1235)
	if a == c {
		t.Fatal("Roll(1234) == Roll(1235)")
	}
}

func TestRollValid(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := Roll(seed)
		if g != g.Normalized() {
			t.Fatalf("Roll(%d) produced non-normalized genome %+v", seed, g)
		}
	}
}
