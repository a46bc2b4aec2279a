// Package scene owns the preview camera and the ground grid. The camera
// orbits a target point: right-drag orbits, the wheel zooms, middle-drag
// pans the target.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/chewxy/math32"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	orbitSpeed = 0.005
	panSpeed   = 0.02
	zoomSpeed  = 1.2
	minPitch   = -1.4
	maxPitch   = 1.4
	minDist    = 3
	maxDist    = 120
)

// Scene holds the orbit camera state and draws the world shell. Draw opens
// 3D mode and leaves it open so the caller can draw creatures before End.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	target   rl.Vector3
	yaw      float32
	pitch    float32
	distance float32
}

// New returns a scene orbiting the origin from behind-right, grid on.
func New() *Scene {
	s := &Scene{
		GridVisible: true,
		target:      rl.NewVector3(0, 3, 0),
		yaw:         0.8,
		pitch:       0.35,
		distance:    30,
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.apply()
	return s
}

// SetGridVisible toggles the ground grid.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// LookAt moves the orbit target.
func (s *Scene) LookAt(x, y, z float32) {
	s.target = rl.NewVector3(x, y, z)
	s.apply()
}

// Update reads the mouse and recomputes the camera once per frame.
func (s *Scene) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		s.yaw -= d.X * orbitSpeed
		s.pitch += d.Y * orbitSpeed
		if s.pitch < minPitch {
			s.pitch = minPitch
		}
		if s.pitch > maxPitch {
			s.pitch = maxPitch
		}
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		d := rl.GetMouseDelta()
		// Pan in the camera's horizontal plane.
		sin, cos := math32.Sincos(s.yaw)
		s.target.X += (-d.X*cos - d.Y*sin) * panSpeed
		s.target.Z += (d.X*sin - d.Y*cos) * panSpeed
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.distance -= wheel * zoomSpeed
		if s.distance < minDist {
			s.distance = minDist
		}
		if s.distance > maxDist {
			s.distance = maxDist
		}
	}
	s.apply()
}

func (s *Scene) apply() {
	sy, cy := math32.Sincos(s.yaw)
	sp, cp := math32.Sincos(s.pitch)
	s.Camera.Position = rl.NewVector3(
		s.target.X+s.distance*cp*sy,
		s.target.Y+s.distance*sp,
		s.target.Z+s.distance*cp*cy,
	)
	s.Camera.Target = s.target
}

// Begin opens 3D mode and draws the grid. Pair with End after drawing the
// world.
func (s *Scene) Begin() {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawEditorGrid()
	}
}

// End closes 3D mode.
func (s *Scene) End() {
	rl.EndMode3D()
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and
// axis lines through the origin. Reuses start/end vectors to avoid per-frame
// allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
