package rigview

import (
	"math"
	"runtime"

	"github.com/gekko3d/rigview/rt/gpu"
	"github.com/gekko3d/rigview/rt/raster"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	presenter    *gpu.Presenter
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

// PlatformWindowModule opens a glfw window, presents the canvas to it through
// wgpu and provides the window as the input device.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

// NewPlatformWindow fills zero sizes and an empty title with defaults.
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "rigview"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if Resource[WindowState](app) != nil {
		// One window per app.
		return
	}

	ws := createWindowState(m.Width, m.Height, m.Title)
	presenter, err := gpu.NewPresenter(ws.windowGlfw)
	if err != nil {
		ws.destroy()
		panic(err)
	}
	ws.presenter = presenter
	cmd.Logger().Infof("window %dx%d, surface format %v", m.Width, m.Height, presenter.Config.Format)

	cmd.AddResources(ws, &InputDevice{Source: newGlfwInputSource(ws.windowGlfw)})
	app.UseSystem(System(presentSystem).InStage(PostRender))
	app.UseSystem(System(windowShutdownSystem).InStage(Finale))
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // wgpu owns the surface
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		panic(err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

func (s *WindowState) destroy() {
	if s.presenter != nil {
		s.presenter.Release()
		s.presenter = nil
	}
	if s.windowGlfw != nil {
		s.windowGlfw.Destroy()
		s.windowGlfw = nil
	}
	glfw.Terminate()
}

func presentSystem(ws *WindowState, canvas *raster.Canvas, cmd *Commands) {
	fbw, fbh := ws.windowGlfw.GetFramebufferSize()
	if fbw != int(ws.presenter.Config.Width) || fbh != int(ws.presenter.Config.Height) {
		ws.presenter.Resize(fbw, fbh)
	}
	ws.WindowWidth, ws.WindowHeight = ws.windowGlfw.GetSize()

	if err := ws.presenter.Present(canvas.Pix(), canvas.Width(), canvas.Height()); err != nil {
		cmd.Logger().Warnf("present: %v", err)
	}
}

func windowShutdownSystem(ws *WindowState) {
	ws.destroy()
}

// glfwInputSource reads keys, buttons and the cursor straight from the window.
// Scroll offsets only arrive through a callback and are accumulated until
// the next poll.
type glfwInputSource struct {
	win   *glfw.Window
	wheel float64
}

func newGlfwInputSource(win *glfw.Window) *glfwInputSource {
	s := &glfwInputSource{win: win}
	win.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		s.wheel += yoff
	})
	return s
}

func (s *glfwInputSource) Poll(state *InputState) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		state.Keys[key] = s.win.GetKey(glfwKey) == glfw.Press
	}
	for btn, glfwBtn := range buttonToGlfw {
		state.Buttons[btn] = s.win.GetMouseButton(glfwBtn) == glfw.Press
	}
	state.MouseX, state.MouseY = s.win.GetCursorPos()
	state.Wheel = int(math.Round(s.wheel * WheelDelta))
	s.wheel = 0
	state.Width, state.Height = s.win.GetSize()
	state.CloseRequested = s.win.ShouldClose()
}

var keyToGlfw = map[Key]glfw.Key{
	KeyEscape: glfw.KeyEscape,
	KeyF12:    glfw.KeyF12,
	KeyTab:    glfw.KeyTab,
	KeyR:      glfw.KeyR,
	KeySpace:  glfw.KeySpace,
}

var buttonToGlfw = map[MouseButton]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}
