package rigview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLogger(&out, &errOut, "rig", false)

	l.Debugf("hidden %d", 1)
	l.Infof("hello %s", "world")
	l.Warnf("careful")
	l.Errorf("broken")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[rig] INFO: hello world")
	assert.Contains(t, errOut.String(), "[rig] WARN: careful")
	assert.Contains(t, errOut.String(), "[rig] ERROR: broken")

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown")
	assert.Contains(t, out.String(), "DEBUG: shown")
}

func TestLoggerWithoutPrefix(t *testing.T) {
	var out bytes.Buffer
	NewLogger(&out, &out, "", false).Infof("plain")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.String()), "INFO: plain"))
}

func TestAppLogger(t *testing.T) {
	var nilApp *App
	assert.NotNil(t, nilApp.Logger())
	assert.NotNil(t, newApp().Logger())

	var out bytes.Buffer
	app := NewAppBuilder().UseModule(LoggingModule{Logger: NewLogger(&out, &out, "x", false)}).Build()
	app.Logger().Infof("via app")
	assert.Contains(t, out.String(), "via app")
}
