package rigview

import (
	"fmt"
	"image"

	"github.com/gekko3d/rigview/rt/core"
	"github.com/gekko3d/rigview/rt/raster"
)

var fieldKinds = [3]string{"Translate", "Rotate", "Scale"}

const (
	panelPad      = 6
	panelTitleH   = 20
	panelRowH     = 22
	panelFieldW   = 64
	panelFieldGap = 4
	panelLabelW   = 150
	panelFontSize = 13

	colorPanel       uint32 = 0x1E1E1EE0
	colorPanelTitle  uint32 = 0x294A7AFF
	colorField       uint32 = 0x3A3A3AFF
	colorFieldHover  uint32 = 0x4A4A5AFF
	colorFieldActive uint32 = 0x5A6A9AFF
	colorText        uint32 = 0xFFFFFFFF
)

// PanelModule draws an editing panel with one row of three drag fields per
// joint transform. Dragging a field with the left button changes its value
// by Step per pixel; Tab hides the panel.
type PanelModule struct {
	X, Y int
	Step float32
}

// FieldRef names one float of the rig: joint index, transform kind
// (0 translate, 1 rotate, 2 scale) and axis.
type FieldRef struct {
	Joint, Kind, Axis int
}

type Panel struct {
	Visible bool
	X, Y    int
	Step    float32
	Rows    int

	Active *FieldRef
	Hover  *FieldRef

	face *raster.Face
}

func (m PanelModule) Install(app *App, cmd *Commands) {
	rig := Resource[core.Rig](app)
	display := Resource[Display](app)
	if rig == nil || display == nil {
		panic("PanelModule requires RigModule")
	}
	face, err := raster.NewFace(panelFontSize * float64(display.Scale))
	if err != nil {
		panic(err)
	}
	panel := &Panel{
		Visible: true,
		X:       m.X,
		Y:       m.Y,
		Step:    m.Step,
		Rows:    len(rig.Joints) * len(fieldKinds),
		face:    face,
	}
	if panel.X == 0 && panel.Y == 0 {
		panel.X, panel.Y = 10, 10
	}
	if panel.Step == 0 {
		panel.Step = 0.01
	}
	cmd.AddResources(panel)
	app.UseSystem(System(panelInputSystem).InStage(Update))
	app.UseSystem(System(panelRenderSystem).InStage(Render))
}

// Bounds is the panel rectangle in window pixels.
func (p *Panel) Bounds() image.Rectangle {
	w := 2*panelPad + 3*(panelFieldW+panelFieldGap) + panelLabelW
	h := panelTitleH + 2*panelPad + p.Rows*panelRowH
	return image.Rect(p.X, p.Y, p.X+w, p.Y+h)
}

func (p *Panel) FieldRect(row, axis int) image.Rectangle {
	x := p.X + panelPad + axis*(panelFieldW+panelFieldGap)
	y := p.Y + panelTitleH + panelPad + row*panelRowH
	return image.Rect(x, y, x+panelFieldW, y+panelRowH-2)
}

func (p *Panel) labelPos(row int) image.Point {
	return image.Pt(p.X+panelPad+3*(panelFieldW+panelFieldGap)+4, p.Y+panelTitleH+panelPad+row*panelRowH+2)
}

// HitTest returns the field under the window position (x, y).
func (p *Panel) HitTest(x, y float64) (FieldRef, bool) {
	if !p.Visible {
		return FieldRef{}, false
	}
	pt := image.Pt(int(x), int(y))
	if !pt.In(p.Bounds()) {
		return FieldRef{}, false
	}
	for row := 0; row < p.Rows; row++ {
		for axis := 0; axis < 3; axis++ {
			if pt.In(p.FieldRect(row, axis)) {
				return FieldRef{Joint: row / 3, Kind: row % 3, Axis: axis}, true
			}
		}
	}
	return FieldRef{}, false
}

// Value returns a pointer to the float the field edits.
func (f FieldRef) Value(rig *core.Rig) *float32 {
	v := rig.Field(f.Joint, f.Kind)
	switch f.Axis {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	default:
		return &v.Z
	}
}

func panelInputSystem(input *Input, panel *Panel, rig *core.Rig) {
	if input.WasJustPressed(KeyTab) {
		panel.Visible = !panel.Visible
		panel.Active = nil
	}
	panel.Rows = len(rig.Joints) * len(fieldKinds)

	panel.Hover = nil
	if f, ok := panel.HitTest(input.Current.MouseX, input.Current.MouseY); ok {
		panel.Hover = &f
	}

	switch {
	case input.WasButtonJustPressed(MouseButtonLeft):
		panel.Active = panel.Hover
	case panel.Active != nil && input.IsButtonPressed(MouseButtonLeft):
		dx, _ := input.MouseDelta()
		*panel.Active.Value(rig) += float32(dx) * panel.Step
	default:
		panel.Active = nil
	}
}

func panelRenderSystem(canvas *raster.Canvas, panel *Panel, rig *core.Rig, display *Display) {
	if !panel.Visible {
		return
	}
	s := display.Scale
	scaled := func(r image.Rectangle) image.Rectangle {
		return image.Rectangle{Min: r.Min.Mul(s), Max: r.Max.Mul(s)}
	}

	bounds := panel.Bounds()
	canvas.FillRect(scaled(bounds), colorPanel)
	title := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+panelTitleH)
	canvas.FillRect(scaled(title), colorPanelTitle)
	canvas.DrawText(panel.face, (bounds.Min.X+panelPad)*s, (bounds.Min.Y+3)*s, "Rig", colorText)

	for row := 0; row < panel.Rows; row++ {
		joint, kind := row/3, row%3
		v := *rig.Field(joint, kind)
		values := [3]float32{v.X, v.Y, v.Z}
		for axis := 0; axis < 3; axis++ {
			ref := FieldRef{Joint: joint, Kind: kind, Axis: axis}
			color := colorField
			switch {
			case panel.Active != nil && *panel.Active == ref:
				color = colorFieldActive
			case panel.Hover != nil && *panel.Hover == ref:
				color = colorFieldHover
			}
			r := panel.FieldRect(row, axis)
			canvas.FillRect(scaled(r), color)
			canvas.DrawText(panel.face, (r.Min.X+4)*s, (r.Min.Y+3)*s, fmt.Sprintf("%.3f", values[axis]), colorText)
		}
		label := panel.labelPos(row)
		canvas.DrawText(panel.face, label.X*s, label.Y*s, rig.Joints[joint].Name+" "+fieldKinds[kind], colorText)
	}
}
