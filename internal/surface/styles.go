package surface

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/amplice/bug-fight-sub000/internal/palette"
)

// smooth: near-uniform diffuse with a ±5% noise tint, flat normal, satin.
func (f *field) smooth(colorA color.NRGBA) {
	f.normFlat = true
	for y := 0; y < f.side; y++ {
		for x := 0; x < f.side; x++ {
			n := f.fbm(x, y) - 0.5 // [-0.5,0.5]
			f.set(x, y, tint(colorA, n*0.1))
		}
	}
}

// plated: 5-7 horizontal armor bands. Each band has a darkened, indented
// groove at its leading edge and a lit, protruded ridge at its trailing edge.
// Grooves are shinier than the plate faces.
func (f *field) plated(colorA, colorB color.NRGBA) {
	bands := 5 + f.rng.Intn(3)
	bandH := float32(f.side) / float32(bands)
	const grooveFrac = 0.12
	const ridgeFrac = 0.15

	for y := 0; y < f.side; y++ {
		t := math32.Mod(float32(y), bandH) / bandH
		for x := 0; x < f.side; x++ {
			n := f.fbm(x, y) - 0.5
			c := tint(colorA, n*0.08)
			i := y*f.side + x
			switch {
			case t < grooveFrac:
				depth := 1 - t/grooveFrac
				c = palette.Mix(c, palette.Darken(colorB, 0.4), 0.5*depth)
				f.height[i] = -0.6 * depth
				f.roughness[i] = roughGroove
			case t > 1-ridgeFrac:
				lift := (t - (1 - ridgeFrac)) / ridgeFrac
				c = tint(c, 0.15*lift)
				f.height[i] = 0.5 * lift
			}
			f.set(x, y, c)
		}
	}
}

// rough: FBM-tinted base plus 60-100 circular bumps and pits. 65% of the
// features are raised; pits slightly darken the diffuse as well.
func (f *field) rough(colorA, colorB color.NRGBA) {
	for y := 0; y < f.side; y++ {
		for x := 0; x < f.side; x++ {
			n := f.fbm(x, y) - 0.5
			f.set(x, y, palette.Mix(tint(colorA, n*0.12), colorB, clamp01(n)*0.3))
			f.roughness[y*f.side+x] = roughMatte
		}
	}

	count := 60 + f.rng.Intn(41)
	for b := 0; b < count; b++ {
		cx := f.rng.Float32() * float32(f.side)
		cy := f.rng.Float32() * float32(f.side)
		r := float32(f.side) * (0.01 + f.rng.Float32()*0.025)
		sign := float32(1)
		if f.rng.Float32() >= 0.65 {
			sign = -1
		}
		f.stampBump(cx, cy, r, sign)
	}
}

// stampBump adds a radially falling dome (sign=+1) or crater (sign=-1) to the
// height field, darkening the diffuse inside craters.
func (f *field) stampBump(cx, cy, r, sign float32) {
	x0 := int(cx - r)
	x1 := int(cx + r + 1)
	y0 := int(cy - r)
	y1 := int(cy + r + 1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float32(x) - cx
			dy := float32(y) - cy
			d := math32.Sqrt(dx*dx + dy*dy)
			if d >= r {
				continue
			}
			fall := 1 - d/r
			fall = fall * fall * (3 - 2*fall)
			px, py := wrap(x, f.side), wrap(y, f.side)
			f.height[py*f.side+px] += sign * fall * 0.8
			if sign < 0 {
				f.set(px, py, palette.Darken(f.at(px, py), 0.12*fall))
			}
		}
	}
}

// spotted: 12-22 irregular spots blended toward a darkened secondary color,
// slightly recessed and more matte than the base. Spot outlines are perturbed
// by angular noise so they read as organic rather than stamped circles.
func (f *field) spotted(colorA, colorB color.NRGBA) {
	for y := 0; y < f.side; y++ {
		for x := 0; x < f.side; x++ {
			n := f.fbm(x, y) - 0.5
			f.set(x, y, tint(colorA, n*0.08))
		}
	}

	spotColor := palette.Darken(colorB, 0.25)
	count := 12 + f.rng.Intn(11)
	for s := 0; s < count; s++ {
		cx := f.rng.Float32() * float32(f.side)
		cy := f.rng.Float32() * float32(f.side)
		baseR := float32(f.side) * (0.03 + f.rng.Float32()*0.05)
		f.stampSpot(cx, cy, baseR, float32(s), spotColor)
	}
}

func (f *field) stampSpot(cx, cy, baseR, spotID float32, spotColor color.NRGBA) {
	maxR := baseR * 1.3
	x0, x1 := int(cx-maxR), int(cx+maxR+1)
	y0, y1 := int(cy-maxR), int(cy+maxR+1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float32(x) - cx
			dy := float32(y) - cy
			d := math32.Sqrt(dx*dx + dy*dy)
			if d >= maxR {
				continue
			}
			angle := math32.Atan2(dy, dx)
			wobble := f.src.Value2D(angle*1.5+spotID*17, spotID*31) - 0.5
			r := baseR * (1 + wobble*0.5)
			edge := r * 0.15
			var blend float32
			switch {
			case d <= r-edge:
				blend = 1
			case d < r:
				blend = (r - d) / edge
			default:
				continue
			}
			px, py := wrap(x, f.side), wrap(y, f.side)
			i := py*f.side + px
			f.set(px, py, palette.Mix(f.at(px, py), spotColor, blend))
			f.height[i] -= 0.25 * blend
			f.roughness[i] = f.roughness[i] + (roughMatte-f.roughness[i])*blend
		}
	}
}

// striped: 3-5 soft-edged horizontal bands toward a darkened secondary color.
// Flat normal, uniform satin roughness.
func (f *field) striped(colorA, colorB color.NRGBA) {
	f.normFlat = true
	bands := 3 + f.rng.Intn(3)
	stripeColor := palette.Darken(colorB, 0.2)
	const edge = 0.15

	for y := 0; y < f.side; y++ {
		phase := math32.Mod(float32(y)/float32(f.side)*float32(bands), 1)
		// Distance from the stripe boundary at phase 0.5, eased over the
		// transition width.
		var blend float32
		switch {
		case phase < 0.5-edge/2:
			blend = 0
		case phase < 0.5+edge/2:
			t := (phase - (0.5 - edge/2)) / edge
			blend = t * t * (3 - 2*t)
		default:
			blend = 1
		}
		for x := 0; x < f.side; x++ {
			n := f.fbm(x, y) - 0.5
			c := tint(colorA, n*0.06)
			f.set(x, y, palette.Mix(c, stripeColor, blend))
		}
	}
}
