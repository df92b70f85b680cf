package rigview

import (
	"math"

	"github.com/gekko3d/rigview/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCameraModule turns the world pose with a right-button drag and moves
// the camera along its Z axis with the wheel.
type OrbitCameraModule struct {
	// Speed is radians per dragged pixel.
	Speed float32
	// ZoomStep is camera units per wheel unit (a notch is WheelDelta units).
	ZoomStep float32
}

type OrbitCamera struct {
	Speed    float32
	ZoomStep float32
	Dragging bool
}

const maxPitch = math.Pi / 2

func (m OrbitCameraModule) Install(app *App, cmd *Commands) {
	orbit := &OrbitCamera{Speed: m.Speed, ZoomStep: m.ZoomStep}
	if orbit.Speed == 0 {
		orbit.Speed = 0.01
	}
	if orbit.ZoomStep == 0 {
		orbit.ZoomStep = 0.01
	}
	cmd.AddResources(orbit)
	app.UseSystem(System(orbitCameraSystem).InStage(Update))
}

func orbitCameraSystem(input *Input, orbit *OrbitCamera, rig *core.Rig) {
	switch {
	case input.WasButtonJustPressed(MouseButtonRight):
		// The press frame only anchors the drag.
		orbit.Dragging = true
	case orbit.Dragging && input.IsButtonPressed(MouseButtonRight):
		dx, dy := input.MouseDelta()
		rig.World.Rotate.Y += float32(dx) * orbit.Speed
		rig.World.Rotate.X = mgl32.Clamp(rig.World.Rotate.X+float32(dy)*orbit.Speed, -maxPitch, maxPitch)
	default:
		orbit.Dragging = false
	}

	if wheel := input.Wheel(); wheel != 0 {
		rig.Camera.Translate.Z += float32(wheel) * orbit.ZoomStep
	}
}
