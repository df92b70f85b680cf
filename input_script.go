package rigview

// ScriptedInput replays recorded snapshots, one per frame. Once the script is
// exhausted the last snapshot is repeated with CloseRequested set.
type ScriptedInput struct {
	Width, Height int
	Frames        []InputState

	next int
}

func (s *ScriptedInput) Poll(state *InputState) {
	if s.next < len(s.Frames) {
		*state = s.Frames[s.next]
		s.next++
	} else {
		state.CloseRequested = true
	}
	state.Width, state.Height = s.Width, s.Height
}

// Done reports whether every frame was replayed.
func (s *ScriptedInput) Done() bool {
	return s.next >= len(s.Frames)
}

// Script builds a frame sequence. Each step appends one frame unless noted.
type Script struct {
	cur    InputState
	frames []InputState
}

func NewScript() *Script {
	return &Script{}
}

func (s *Script) push() *Script {
	s.frames = append(s.frames, s.cur)
	s.cur.Wheel = 0
	return s
}

// Idle appends n frames without changes.
func (s *Script) Idle(n int) *Script {
	for i := 0; i < n; i++ {
		s.push()
	}
	return s
}

func (s *Script) MoveTo(x, y float64) *Script {
	s.cur.MouseX, s.cur.MouseY = x, y
	return s.push()
}

func (s *Script) Press(b MouseButton) *Script {
	s.cur.Buttons[b] = true
	return s.push()
}

func (s *Script) Release(b MouseButton) *Script {
	s.cur.Buttons[b] = false
	return s.push()
}

func (s *Script) KeyDown(k Key) *Script {
	s.cur.Keys[k] = true
	return s.push()
}

func (s *Script) KeyUp(k Key) *Script {
	s.cur.Keys[k] = false
	return s.push()
}

// Scroll appends one frame with the given number of wheel notches.
func (s *Script) Scroll(notches int) *Script {
	s.cur.Wheel = notches * WheelDelta
	return s.push()
}

// Drag presses b at the current position, moves by (dx, dy) per frame for
// steps frames and releases. It appends steps+2 frames.
func (s *Script) Drag(b MouseButton, dx, dy float64, steps int) *Script {
	s.Press(b)
	for i := 0; i < steps; i++ {
		s.cur.MouseX += dx
		s.cur.MouseY += dy
		s.push()
	}
	return s.Release(b)
}

func (s *Script) Frames() []InputState {
	return append([]InputState(nil), s.frames...)
}
