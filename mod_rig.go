package rigview

import "github.com/gekko3d/rigview/rt/core"

// Display describes how window pixels map to canvas pixels.
type Display struct {
	// Scale is the supersampling factor, 1 for a window.
	Scale int
}

// RigModule owns the rig being edited and derives a core.Frame from it after
// every update. The view follows the window size reported by Input.
type RigModule struct {
	Rig   *core.Rig
	View  core.ViewConfig
	Scale int
}

func (m RigModule) Install(app *App, cmd *Commands) {
	rig := m.Rig
	if rig == nil {
		rig = core.NewRig()
	}
	if err := rig.Joints.Validate(); err != nil {
		panic(err)
	}
	view := m.View
	if view.Width == 0 || view.Height == 0 {
		view = core.DefaultViewConfig()
	}
	scale := max(m.Scale, 1)

	frame := rig.Frame(view)
	cmd.AddResources(rig, &view, &frame, &Display{Scale: scale})

	app.UseSystem(System(rigViewSystem).InStage(PreUpdate))
	app.UseSystem(System(rigResetSystem).InStage(Update))
	app.UseSystem(System(rigFrameSystem).InStage(PostUpdate))
}

func rigViewSystem(input *Input, display *Display, view *core.ViewConfig, cmd *Commands) {
	w, h := input.WindowSize()
	if w <= 0 || h <= 0 {
		// Minimized.
		return
	}
	w, h = w*display.Scale, h*display.Scale
	if w != view.Width || h != view.Height {
		cmd.Logger().Debugf("view resized to %dx%d", w, h)
		view.Width, view.Height = w, h
	}
}

func rigResetSystem(input *Input, rig *core.Rig, cmd *Commands) {
	if input.WasJustPressed(KeyR) {
		*rig = *core.NewRig()
		cmd.Logger().Infof("rig reset")
	}
}

func rigFrameSystem(rig *core.Rig, view *core.ViewConfig, frame *core.Frame) {
	*frame = rig.Frame(*view)
}
