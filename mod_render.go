package rigview

import (
	"github.com/gekko3d/rigview/rt/core"
	"github.com/gekko3d/rigview/rt/raster"
)

const (
	DefaultBackground uint32 = 0x474747FF
	JointRadius              = 0.1
)

var jointColors = []uint32{core.ColorRed, core.ColorGreen, core.ColorBlue}

// RenderModule draws the grid, the joints and the bones into a raster.Canvas
// resource sized to the current view.
type RenderModule struct {
	Background uint32
}

type RenderSettings struct {
	Background uint32
}

func (m RenderModule) Install(app *App, cmd *Commands) {
	settings := &RenderSettings{Background: m.Background}
	if settings.Background == 0 {
		settings.Background = DefaultBackground
	}
	view := Resource[core.ViewConfig](app)
	if view == nil {
		panic("RenderModule requires RigModule")
	}
	cmd.AddResources(settings, raster.NewCanvas(view.Width, view.Height))
	app.UseSystem(System(renderSystem).InStage(Render))
}

func renderSystem(canvas *raster.Canvas, settings *RenderSettings, frame *core.Frame) {
	canvas.Resize(frame.View.Width, frame.View.Height)
	canvas.Clear(settings.Background)
	DrawScene(frame, canvas)
}

// DrawScene draws one frame of the rig to dst: the grid, a sphere per joint
// and a bone from every joint to its parent.
func DrawScene(frame *core.Frame, dst core.LineDrawer) {
	vp, viewport := frame.ViewProjection, frame.Viewport

	core.DrawGrid(vp, viewport, dst)
	for i, p := range frame.JointPositions {
		color := jointColors[i%len(jointColors)]
		core.DrawSphere(core.Sphere{Center: p, Radius: JointRadius}, vp, viewport, color, dst)
	}
	for i, parent := range frame.Parents {
		if parent < 0 || parent >= i {
			continue
		}
		a, b := frame.JointScreen[parent], frame.JointScreen[i]
		dst.DrawLine(a.X, a.Y, b.X, b.Y, core.ColorWhite)
	}
}
