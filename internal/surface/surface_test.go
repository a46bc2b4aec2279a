package surface

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/amplice/bug-fight-sub000/internal/genome"
)

var (
	testA = color.NRGBA{180, 90, 40, 255}
	testB = color.NRGBA{40, 90, 180, 255}
)

func allStyles() []genome.TextureStyle {
	return []genome.TextureStyle{
		genome.TextureSmooth,
		genome.TexturePlated,
		genome.TextureRough,
		genome.TextureSpotted,
		genome.TextureStriped,
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	for _, style := range allStyles() {
		t.Run(string(style), func(t *testing.T) {
			a := Synthesize(style, testA, testB, 42, 64)
			b := Synthesize(style, testA, testB, 42, 64)
			if !bytes.Equal(a.Diffuse.Pix, b.Diffuse.Pix) {
				t.Error("diffuse differs across identical calls")
			}
			if !bytes.Equal(a.Normal.Pix, b.Normal.Pix) {
				t.Error("normal differs across identical calls")
			}
			if !bytes.Equal(a.Roughness.Pix, b.Roughness.Pix) {
				t.Error("roughness differs across identical calls")
			}
		})
	}
}

func TestSynthesizeSeedMatters(t *testing.T) {
	a := Synthesize(genome.TextureSpotted, testA, testB, 1, 64)
	b := Synthesize(genome.TextureSpotted, testA, testB, 2, 64)
	if bytes.Equal(a.Diffuse.Pix, b.Diffuse.Pix) {
		t.Error("different seeds produced identical spotted diffuse")
	}
}

func TestFlatNormalStyles(t *testing.T) {
	for _, style := range []genome.TextureStyle{genome.TextureSmooth, genome.TextureStriped} {
		m := Synthesize(style, testA, testB, 7, 32)
		for i := 0; i < len(m.Normal.Pix); i += 4 {
			if m.Normal.Pix[i] != 128 || m.Normal.Pix[i+1] != 128 || m.Normal.Pix[i+2] != 255 {
				t.Fatalf("%s normal not flat at pixel %d: %v", style, i/4, m.Normal.Pix[i:i+3])
			}
		}
	}
}

func TestPlatedHasGrooves(t *testing.T) {
	m := Synthesize(genome.TexturePlated, testA, testB, 42, 128)
	lo, hi := m.Roughness.Pix[0], m.Roughness.Pix[0]
	for _, v := range m.Roughness.Pix {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		t.Error("plated roughness is uniform, want shiny grooves against satin plates")
	}
}

func TestMapsShareSide(t *testing.T) {
	m := Synthesize(genome.TextureRough, testA, testB, 3, 96)
	if m.Diffuse.Rect.Dx() != 96 || m.Normal.Rect.Dx() != 96 || m.Roughness.Rect.Dx() != 96 {
		t.Error("map triple sizes disagree")
	}
	if m.Side() != 96 {
		t.Errorf("Side() = %d, want 96", m.Side())
	}
}

func TestCacheSharesMaps(t *testing.T) {
	c := NewCache(32)
	a := c.Get(genome.TextureSmooth, testA, testB, 9)
	b := c.Get(genome.TextureSmooth, testA, testB, 9)
	if a != b {
		t.Error("cache returned distinct maps for identical key")
	}
	if c.Len() != 1 {
		t.Errorf("cache len = %d, want 1", c.Len())
	}
	d := c.Get(genome.TextureSmooth, testA, testB, 10)
	if d == a {
		t.Error("cache shared maps across different seeds")
	}
}

func TestResized(t *testing.T) {
	m := Synthesize(genome.TextureStriped, testA, testB, 5, 64)
	r := Resized(m, 16)
	if r.Side() != 16 {
		t.Fatalf("resized side = %d, want 16", r.Side())
	}
	if same := Resized(m, 64); same != m {
		t.Error("resize to same side should return the original")
	}
}
