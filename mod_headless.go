package rigview

// HeadlessModule replaces the window with a scripted input source of a fixed
// size. The app closes itself once the script has been replayed.
type HeadlessModule struct {
	Width, Height int
	Script        []InputState
}

func (m HeadlessModule) Install(app *App, cmd *Commands) {
	w, h := m.Width, m.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 720
	}
	source := &ScriptedInput{Width: w, Height: h, Frames: m.Script}
	cmd.AddResources(&InputDevice{Source: source})
	cmd.Logger().Debugf("headless %dx%d, %d scripted frames", w, h, len(m.Script))
}
