package noise

import "testing"

func TestValue2DRange(t *testing.T) {
	s := New(7)
	for y := float32(-5); y < 5; y += 0.37 {
		for x := float32(-5); x < 5; x += 0.41 {
			v := s.Value2D(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("Value2D(%f, %f) = %f, want [0,1]", x, y, v)
			}
		}
	}
}

func TestSameSeedSameField(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		x := float32(i) * 0.13
		y := float32(i) * 0.29
		if a.FBM(x, y, 4, 2, 0.5) != b.FBM(x, y, 4, 2, 0.5) {
			t.Fatalf("seeded sources diverge at sample %d", i)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	const samples = 64
	for i := 0; i < samples; i++ {
		x := float32(i) * 0.31
		if a.Value2D(x, x) == b.Value2D(x, x) {
			same++
		}
	}
	if same == samples {
		t.Fatal("different seeds produced identical fields")
	}
}

func TestFBMContinuity(t *testing.T) {
	s := New(9)
	prev := s.FBM(0, 0, 3, 2, 0.5)
	for x := float32(0.001); x < 1; x += 0.001 {
		v := s.FBM(x, 0, 3, 2, 0.5)
		if diff := v - prev; diff > 0.05 || diff < -0.05 {
			t.Fatalf("FBM jumps by %f at x=%f", diff, x)
		}
		prev = v
	}
}
