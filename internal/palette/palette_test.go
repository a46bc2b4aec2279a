package palette

import (
	"image/color"
	"testing"

	"github.com/amplice/bug-fight-sub000/internal/genome"
)

func TestHSLPrimaries(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float32
		want    color.NRGBA
	}{
		{"red", 0, 1, 0.5, color.NRGBA{255, 0, 0, 255}},
		{"green", 120, 1, 0.5, color.NRGBA{0, 255, 0, 255}},
		{"blue", 240, 1, 0.5, color.NRGBA{0, 0, 255, 255}},
		{"white", 0, 0, 1, color.NRGBA{255, 255, 255, 255}},
		{"black", 180, 1, 0, color.NRGBA{0, 0, 0, 255}},
		{"gray", 90, 0, 0.5, color.NRGBA{128, 128, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			if got != tt.want {
				t.Errorf("HSL(%f,%f,%f) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHSLClampsInput(t *testing.T) {
	got := HSL(-120, 2, 0.5)
	want := HSL(240, 1, 0.5)
	if got != want {
		t.Errorf("out-of-range HSL = %v, want clamped %v", got, want)
	}
}

// Lighten then darken with the compensating factor must land within rounding
// tolerance of the original, as long as no channel saturates. Channels above
// 255/1.3 clamp and are covered by TestLightenClampLoses.
func TestLightenDarkenRoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{
		{150, 100, 50, 255},
		{10, 10, 12, 255},
		{128, 128, 128, 255},
	} {
		got := Darken(Lighten(c, 0.3), 0.3/1.3)
		if absDiff(got.R, c.R) > 2 || absDiff(got.G, c.G) > 2 || absDiff(got.B, c.B) > 2 {
			t.Errorf("round trip %v -> %v drifts more than tolerance", c, got)
		}
	}
}

// Clamping is lossy on purpose: a saturated channel pins at 255 and the
// compensating darken lands below the original.
func TestLightenClampLoses(t *testing.T) {
	c := color.NRGBA{200, 100, 50, 255}
	lit := Lighten(c, 0.3)
	if lit.R != 255 {
		t.Fatalf("Lighten R = %d, want clamped 255", lit.R)
	}
	back := Darken(lit, 0.3/1.3)
	if back.R >= c.R {
		t.Errorf("clamped round trip R = %d, want below %d", back.R, c.R)
	}
	if absDiff(back.G, c.G) > 2 || absDiff(back.B, c.B) > 2 {
		t.Errorf("unsaturated channels drifted: %v vs %v", back, c)
	}
}

func TestDeriveAccentDefaultsToComplement(t *testing.T) {
	g := genome.Genome{Hue: 30, Saturation: 0.8, Lightness: 0.5, AccentHue: -1, Size: 1}.Normalized()
	p := Derive(g)
	want := HSL(210, 0.8, 0.5)
	if p.Accent != want {
		t.Errorf("accent = %v, want complement %v", p.Accent, want)
	}
}

func TestParseFallback(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff8000", color.NRGBA{255, 128, 0, 255}},
		{"0a0b0c", color.NRGBA{10, 11, 12, 255}},
		{"purple", color.NRGBA{128, 128, 128, 255}},
		{"", color.NRGBA{128, 128, 128, 255}},
		{"#ggg", color.NRGBA{128, 128, 128, 255}},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
