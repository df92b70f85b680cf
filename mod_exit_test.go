package rigview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitOnEscapeOnce(t *testing.T) {
	script := NewScript().Idle(2).KeyDown(KeyEscape).Idle(5).KeyUp(KeyEscape).KeyDown(KeyEscape)
	app, logs := newTestApp(script, ExitModule{})

	exits := 0
	app.UseSystem(System(func(in *Input) {
		if in.WasJustPressed(KeyEscape) {
			exits++
		}
	}).InStage(PostUpdate))

	for i := 0; i < 8; i++ {
		app.Step()
	}
	assert.True(t, app.ExitRequested())
	assert.Equal(t, 1, exits)
	assert.Equal(t, 1, strings.Count(logs.String(), "escape pressed"))
	assert.Equal(t, 1, strings.Count(logs.String(), "exit requested"))
}

func TestRunStopsOnEscape(t *testing.T) {
	script := NewScript().Idle(3).KeyDown(KeyEscape).Idle(10)
	app, _ := newTestApp(script, ExitModule{})

	app.Run()
	assert.Equal(t, uint64(4), app.Frames())
}

func TestRunStopsOnClose(t *testing.T) {
	script := NewScript().Idle(3)
	app, logs := newTestApp(script, ExitModule{})

	app.Run()
	// Three scripted frames, then the close request.
	assert.Equal(t, uint64(4), app.Frames())
	assert.NotContains(t, logs.String(), "escape pressed")
}
