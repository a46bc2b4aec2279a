package palette

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
)

// Palette is the named color set derived once from a genome. Organ builders
// read it; nothing writes it after Derive.
type Palette struct {
	Primary   color.NRGBA
	Secondary color.NRGBA
	Accent    color.NRGBA
	Dark      color.NRGBA
	Light     color.NRGBA
	Black     color.NRGBA
	White     color.NRGBA
	Eye       color.NRGBA
}

// Derive builds the palette from the genome's hue/saturation/lightness.
// Secondary is the primary desaturated and lightened; accent is the accent
// hue (complement by default) at fixed saturation/lightness; dark/light are
// ±30% channel scales of primary.
func Derive(g genome.Genome) Palette {
	primary := HSL(g.Hue, g.Saturation, g.Lightness)
	secondary := HSL(g.Hue, g.Saturation*0.8, clamp01(g.Lightness*1.2))
	accentHue := g.AccentHue
	if accentHue < 0 {
		accentHue = math32.Mod(g.Hue+180, 360)
	}
	return Palette{
		Primary:   primary,
		Secondary: secondary,
		Accent:    HSL(accentHue, 0.8, 0.5),
		Dark:      Darken(primary, 0.3),
		Light:     Lighten(primary, 0.3),
		Black:     color.NRGBA{R: 10, G: 10, B: 12, A: 255},
		White:     color.NRGBA{R: 245, G: 245, B: 240, A: 255},
		Eye:       HSL(accentHue, 0.9, 0.6),
	}
}

// HSL converts hue [0,360), saturation and lightness [0,1] to RGB using the
// standard chroma formula. Inputs outside range are clamped, not rejected.
func HSL(h, s, l float32) color.NRGBA {
	h = math32.Mod(math32.Mod(h, 360)+360, 360)
	s = clamp01(s)
	l = clamp01(l)

	c := (1 - math32.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math32.Abs(math32.Mod(hp, 2)-1))
	var r, g, b float32
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return color.NRGBA{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
		A: 255,
	}
}

// Darken scales each channel by (1-amount), clamped to [0,255].
func Darken(c color.NRGBA, amount float32) color.NRGBA {
	f := 1 - amount
	return color.NRGBA{R: scale(c.R, f), G: scale(c.G, f), B: scale(c.B, f), A: c.A}
}

// Lighten scales each channel by (1+amount), clamped to [0,255].
func Lighten(c color.NRGBA, amount float32) color.NRGBA {
	f := 1 + amount
	return color.NRGBA{R: scale(c.R, f), G: scale(c.G, f), B: scale(c.B, f), A: c.A}
}

// Mix blends a toward b by t in [0,1].
func Mix(a, b color.NRGBA, t float32) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: uint8(float32(a.R) + (float32(b.R)-float32(a.R))*t),
		G: uint8(float32(a.G) + (float32(b.G)-float32(a.G))*t),
		B: uint8(float32(a.B) + (float32(b.B)-float32(a.B))*t),
		A: 255,
	}
}

// neutralGray substitutes for colors that fail to parse.
var neutralGray = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// Parse reads "#rrggbb" or "rrggbb". Malformed input yields neutral gray
// rather than an error.
func Parse(s string) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return neutralGray
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return neutralGray
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func channel(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func scale(c uint8, f float32) uint8 {
	v := float32(c) * f
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
