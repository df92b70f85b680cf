package rigview

type Key int

const (
	KeyEscape Key = iota
	KeyF12
	KeyTab
	KeyR
	KeySpace
	keyCount
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	mouseButtonCount
)

// WheelDelta is the wheel value of one notch.
const WheelDelta = 120

// InputState is one polled snapshot of the devices. Mouse coordinates are
// window pixels with y growing downward; Wheel is accumulated over the frame.
type InputState struct {
	Keys    [keyCount]bool
	Buttons [mouseButtonCount]bool

	MouseX, MouseY float64
	Wheel          int

	Width, Height  int
	CloseRequested bool
}

// InputSource fills the next snapshot. The previous snapshot is passed in
// with Wheel reset, so sources only overwrite what they observe.
type InputSource interface {
	Poll(state *InputState)
}

// InputDevice is the resource holding the active source.
type InputDevice struct {
	Source InputSource
}

// Input keeps the current and the previous snapshot so that presses are
// reported on the frame they happen and only then.
type Input struct {
	Current  InputState
	Previous InputState
}

func (in *Input) IsPressed(k Key) bool {
	return in.Current.Keys[k]
}

func (in *Input) WasJustPressed(k Key) bool {
	return in.Current.Keys[k] && !in.Previous.Keys[k]
}

func (in *Input) WasJustReleased(k Key) bool {
	return !in.Current.Keys[k] && in.Previous.Keys[k]
}

func (in *Input) IsButtonPressed(b MouseButton) bool {
	return in.Current.Buttons[b]
}

func (in *Input) WasButtonJustPressed(b MouseButton) bool {
	return in.Current.Buttons[b] && !in.Previous.Buttons[b]
}

func (in *Input) WasButtonJustReleased(b MouseButton) bool {
	return !in.Current.Buttons[b] && in.Previous.Buttons[b]
}

// MouseDelta is the cursor movement since the previous frame.
func (in *Input) MouseDelta() (dx, dy float64) {
	return in.Current.MouseX - in.Previous.MouseX, in.Current.MouseY - in.Previous.MouseY
}

func (in *Input) Wheel() int {
	return in.Current.Wheel
}

func (in *Input) WindowSize() (int, int) {
	return in.Current.Width, in.Current.Height
}

// InputModule polls the InputDevice at the start of every frame. A window or
// headless module must provide the InputDevice resource.
type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(device *InputDevice, input *Input) {
	input.Previous = input.Current
	next := input.Current
	next.Wheel = 0
	device.Source.Poll(&next)
	input.Current = next
}
