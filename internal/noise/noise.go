package noise

import (
	"github.com/chewxy/math32"
)

// Source is seeded hash-lattice value noise. Two sources with the same seed
// produce identical fields, which the surface synthesizer relies on for
// reproducible texture generation.
type Source struct {
	seed int32
}

// New returns a noise source for the given seed.
func New(seed int64) *Source {
	return &Source{seed: int32(seed)}
}

// Value2D is smooth value noise in [0,1]: hash-based lattice values at cell
// corners, interpolated with cubic easing.
func (s *Source) Value2D(x, y float32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	tx := x - float32(x0)
	ty := y - float32(y0)

	v00 := hash2D(x0, y0, s.seed)
	v10 := hash2D(x0+1, y0, s.seed)
	v01 := hash2D(x0, y0+1, s.seed)
	v11 := hash2D(x0+1, y0+1, s.seed)

	sx := smoothStep(tx)
	sy := smoothStep(ty)

	ix0 := lerp(v00, v10, sx)
	ix1 := lerp(v01, v11, sx)
	return lerp(ix0, ix1, sy)
}

// FBM sums octaves of Value2D with amplitude scaled by gain and frequency by
// lacunarity per octave. Output is normalized to [0,1].
func (s *Source) FBM(x, y float32, octaves int, lacunarity, gain float32) float32 {
	if octaves <= 0 {
		octaves = 1
	}
	var sum float32
	var maxAmp float32
	amplitude := float32(1)
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		// Offset the seed per octave so octaves decorrelate.
		n := (&Source{seed: s.seed + int32(i)}).Value2D(x*freq, y*freq)
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
