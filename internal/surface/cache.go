package surface

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/amplice/bug-fight-sub000/internal/genome"
)

// Cache holds the synthesized maps of one creature. Every organ that asks for
// the same style/colors/seed shares one Maps value, so all parts of a body
// agree on the texture. The cache is owned by the creature and dropped with
// it; it is never shared across creatures.
type Cache struct {
	side int
	maps map[cacheKey]*Maps
}

type cacheKey struct {
	style  genome.TextureStyle
	colorA color.NRGBA
	colorB color.NRGBA
	seed   int64
}

// NewCache returns an empty cache generating maps of the given side
// (0 = DefaultSide).
func NewCache(side int) *Cache {
	if side <= 0 {
		side = DefaultSide
	}
	return &Cache{side: side, maps: make(map[cacheKey]*Maps)}
}

// Get returns the maps for the key, synthesizing them on first request.
func (c *Cache) Get(style genome.TextureStyle, colorA, colorB color.NRGBA, seed int64) *Maps {
	k := cacheKey{style: style, colorA: colorA, colorB: colorB, seed: seed}
	if m, ok := c.maps[k]; ok {
		return m
	}
	m := Synthesize(style, colorA, colorB, seed, c.side)
	c.maps[k] = m
	return m
}

// Len reports how many distinct map triples have been synthesized.
func (c *Cache) Len() int {
	return len(c.maps)
}

// Resized returns a copy of m rescaled to the given side with Catmull-Rom
// filtering. Used when the consumer wants smaller GPU textures or export
// thumbnails than the synthesis resolution.
func Resized(m *Maps, side int) *Maps {
	if side <= 0 || side == m.Side() {
		return m
	}
	r := image.Rect(0, 0, side, side)
	diffuse := image.NewNRGBA(r)
	normal := image.NewNRGBA(r)
	rough := image.NewGray(r)
	xdraw.CatmullRom.Scale(diffuse, r, m.Diffuse, m.Diffuse.Rect, xdraw.Src, nil)
	xdraw.CatmullRom.Scale(normal, r, m.Normal, m.Normal.Rect, xdraw.Src, nil)
	xdraw.CatmullRom.Scale(rough, r, m.Roughness, m.Roughness.Rect, xdraw.Src, nil)
	return &Maps{Diffuse: diffuse, Normal: normal, Roughness: rough}
}
