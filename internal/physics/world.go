// Package physics is the minimal arena simulation behind the preview tool:
// gravity, an infinite ground plane at Y=0, and AABB push-apart between
// bodies. Its only job is to produce believable animator signals.
package physics

// DefaultGravity pulls along -Y in body units per second squared.
const DefaultGravity = -30

// Flight tuning: flyers hover against gravity and dives multiply the pull.
const (
	hoverDamping = 4
	diveFactor   = 3
)

// World steps a set of bodies: gravity, integration, ground plane, then
// pairwise AABB resolution along the minimum penetration axis.
type World struct {
	Gravity float32
	Bodies  []*Body
}

// NewWorld returns a world with default gravity and the ground at Y=0.
func NewWorld() *World {
	return &World{Gravity: DefaultGravity}
}

// AddBody appends a body. Order is preserved so callers can pair bodies with
// their creatures by index.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		switch {
		case b.Flying && !b.Diving:
			// Hover: decay vertical speed instead of accumulating gravity.
			b.Velocity[1] -= b.Velocity[1] * hoverDamping * dt
		case b.Diving:
			b.Velocity[1] += w.Gravity * diveFactor * dt
		default:
			b.Velocity[1] += w.Gravity * dt
		}
		b.Position = b.Position.Add(b.Velocity.Mul(dt))

		// Ground plane at Y=0.
		b.grounded = false
		if bottom := b.Position.Y() - b.HalfExtents.Y(); bottom <= 0 {
			b.Position[1] = b.HalfExtents.Y()
			if b.Velocity[1] < 0 {
				b.Velocity[1] = 0
			}
			b.grounded = true
		}
		b.onWall = false
		b.wallSide = 0
	}

	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			w.resolve(w.Bodies[i], w.Bodies[j])
		}
	}
}

// resolve pushes an overlapping pair apart along the axis of minimum
// penetration, splitting the correction by mass. Static bodies absorb the
// whole push.
func (w *World) resolve(a, b *Body) {
	depth, axis := penetration(a, b)
	if axis < 0 {
		return
	}
	if a.Static && b.Static {
		return
	}

	// dir is the side of a that b sits on along the axis; the pair separates
	// outward along it.
	dir := sign(b.Position[axis] - a.Position[axis])

	var moveA, moveB float32
	switch {
	case a.Static:
		moveB = dir * depth
	case b.Static:
		moveA = -dir * depth
	default:
		total := a.Mass + b.Mass
		moveA = -dir * depth * (b.Mass / total)
		moveB = dir * depth * (a.Mass / total)
	}

	a.Position[axis] += moveA
	b.Position[axis] += moveB
	if !a.Static {
		a.Velocity[axis] = 0
	}
	if !b.Static {
		b.Velocity[axis] = 0
	}

	switch axis {
	case 0, 2:
		// Side contact: record which side the obstacle sits on, for the
		// animator's wall-cling pose.
		if !a.Static {
			a.onWall = true
			a.wallSide = dir
		}
		if !b.Static {
			b.onWall = true
			b.wallSide = -dir
		}
	case 1:
		// Vertical contact: whoever is on top is grounded.
		if dir < 0 {
			if !a.Static {
				a.grounded = true
			}
		} else if !b.Static {
			b.grounded = true
		}
	}
}

// penetration returns the overlap depth and axis (0=X, 1=Y, 2=Z) of minimum
// penetration between two AABBs, or (0, -1) when they do not overlap.
func penetration(a, b *Body) (float32, int) {
	amin, amax := a.min(), a.max()
	bmin, bmax := b.min(), b.max()

	depth := float32(0)
	axis := -1
	for i := 0; i < 3; i++ {
		overlap := minf(amax[i], bmax[i]) - maxf(amin[i], bmin[i])
		if overlap <= 0 {
			return 0, -1
		}
		if axis < 0 || overlap < depth {
			depth = overlap
			axis = i
		}
	}
	return depth, axis
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a < b {
		return b
	}
	return a
}
