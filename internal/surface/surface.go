package surface

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/anthonynsimon/bild/blur"
	"github.com/chewxy/math32"

	"github.com/amplice/bug-fight-sub000/internal/genome"
	"github.com/amplice/bug-fight-sub000/internal/noise"
	"github.com/amplice/bug-fight-sub000/internal/palette"
)

// DefaultSide is the default square map resolution.
const DefaultSide = 512

// Roughness levels, 0 = mirror, 1 = fully matte.
const (
	roughSatin  = 0.65
	roughMatte  = 0.85
	roughGroove = 0.35
)

// Maps is one synthesized surface: diffuse color, tangent-space normal
// (127.5-biased), and scalar roughness.
type Maps struct {
	Diffuse   *image.NRGBA
	Normal    *image.NRGBA
	Roughness *image.Gray
}

// Side returns the square map side in pixels.
func (m *Maps) Side() int {
	return m.Diffuse.Rect.Dx()
}

// Synthesize generates the map triple for one style/color-pair/seed. The full
// procedure: an FBM scalar field plus style-specific features are accumulated
// into a height field and diffuse buffer; the height field is blurred and
// differentiated into the normal map. Same inputs always produce identical
// pixels.
func Synthesize(style genome.TextureStyle, colorA, colorB color.NRGBA, seed int64, side int) *Maps {
	if side <= 0 {
		side = DefaultSide
	}
	f := newField(side, colorA, seed)
	switch style {
	case genome.TexturePlated:
		f.plated(colorA, colorB)
	case genome.TextureRough:
		f.rough(colorA, colorB)
	case genome.TextureSpotted:
		f.spotted(colorA, colorB)
	case genome.TextureStriped:
		f.striped(colorA, colorB)
	default:
		f.smooth(colorA)
	}
	return f.finish()
}

// field accumulates per-pixel state during synthesis.
type field struct {
	side      int
	height    []float32 // surface elevation, arbitrary units
	roughness []float32
	diffuse   *image.NRGBA
	normFlat  bool // true = skip height differentiation, emit flat normals
	src       *noise.Source
	rng       *rand.Rand
}

func newField(side int, base color.NRGBA, seed int64) *field {
	f := &field{
		side:      side,
		height:    make([]float32, side*side),
		roughness: make([]float32, side*side),
		diffuse:   image.NewNRGBA(image.Rect(0, 0, side, side)),
		src:       noise.New(seed),
		rng:       rand.New(rand.NewSource(seed)),
	}
	for i := range f.roughness {
		f.roughness[i] = roughSatin
	}
	fillNRGBA(f.diffuse, base)
	return f
}

// fbm samples the shared fractal field at pixel coordinates. 3 octaves is
// enough for the organic low-frequency tint every style starts from.
func (f *field) fbm(x, y int) float32 {
	const freq = 6.0
	u := float32(x) / float32(f.side) * freq
	v := float32(y) / float32(f.side) * freq
	return f.src.FBM(u, v, 3, 2, 0.5)
}

func (f *field) set(x, y int, c color.NRGBA) {
	i := f.diffuse.PixOffset(x, y)
	p := f.diffuse.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 255
}

func (f *field) at(x, y int) color.NRGBA {
	i := f.diffuse.PixOffset(x, y)
	p := f.diffuse.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// finish blurs the height field, differentiates it into the normal map, and
// packs roughness. The blur keeps bump edges from aliasing into hard steps.
func (f *field) finish() *Maps {
	side := f.side
	normal := image.NewNRGBA(image.Rect(0, 0, side, side))
	rough := image.NewGray(image.Rect(0, 0, side, side))

	for i, r := range f.roughness {
		rough.Pix[i] = uint8(clamp01(r)*255 + 0.5)
	}

	if f.normFlat {
		fillNRGBA(normal, color.NRGBA{R: 128, G: 128, B: 255, A: 255})
		return &Maps{Diffuse: f.diffuse, Normal: normal, Roughness: rough}
	}

	heights := f.blurredHeights()
	const strength = 2.5
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			x0 := heights[y*side+wrap(x-1, side)]
			x1 := heights[y*side+wrap(x+1, side)]
			y0 := heights[wrap(y-1, side)*side+x]
			y1 := heights[wrap(y+1, side)*side+x]
			nx := (x0 - x1) * strength
			ny := (y0 - y1) * strength
			inv := 1 / math32.Sqrt(nx*nx+ny*ny+1)
			i := normal.PixOffset(x, y)
			p := normal.Pix[i : i+4 : i+4]
			p[0] = uint8(nx*inv*127.5 + 127.5)
			p[1] = uint8(ny*inv*127.5 + 127.5)
			p[2] = uint8(1*inv*127.5 + 127.5)
			p[3] = 255
		}
	}
	return &Maps{Diffuse: f.diffuse, Normal: normal, Roughness: rough}
}

// blurredHeights runs a small gaussian over the height field via an 8-bit
// gray image round trip. Height values are in [-1,1] packed around 127.5.
func (f *field) blurredHeights() []float32 {
	side := f.side
	gray := image.NewGray(image.Rect(0, 0, side, side))
	for i, h := range f.height {
		gray.Pix[i] = uint8(clamp(h, -1, 1)*127 + 127.5)
	}
	blurred := blur.Gaussian(gray, float64(side)/256)
	out := make([]float32, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			r, _, _, _ := blurred.At(x, y).RGBA()
			out[y*side+x] = (float32(r>>8) - 127.5) / 127
		}
	}
	return out
}

func fillNRGBA(img *image.NRGBA, c color.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		p := img.Pix[i : i+4 : i+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 255
	}
}

func wrap(v, side int) int {
	if v < 0 {
		return v + side
	}
	if v >= side {
		return v - side
	}
	return v
}

func clamp01(v float32) float32 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// tint scales a color by 1+amount per channel.
func tint(c color.NRGBA, amount float32) color.NRGBA {
	if amount >= 0 {
		return palette.Lighten(c, amount)
	}
	return palette.Darken(c, -amount)
}
