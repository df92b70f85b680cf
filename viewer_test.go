package rigview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/gekko3d/rigview/rt/core"
	"github.com/gekko3d/rigview/rt/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.Width, cfg.Height = 320, 180
	cfg.SnapshotDir = t.TempDir()
	return cfg
}

func countRGBA(c *raster.Canvas, packed uint32) int {
	want := raster.RGBA(packed)
	n := 0
	img := c.Image()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if img.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestViewerHeadless(t *testing.T) {
	cfg := testConfig(t)
	cfg.Supersample = 2
	script := NewScript().KeyDown(KeyTab).KeyUp(KeyTab).KeyDown(KeyF12).KeyUp(KeyF12).Idle(1)

	app := NewViewer(cfg, HeadlessModule{Width: cfg.Width, Height: cfg.Height, Script: script.Frames()})
	snaps := Resource[Snapshots](app)
	final := filepath.Join(cfg.SnapshotDir, "final.webp")
	snaps.FinalPath = final
	app.Run()

	canvas := Resource[raster.Canvas](app)
	assert.Equal(t, 640, canvas.Width())
	assert.Equal(t, 360, canvas.Height())
	assert.Greater(t, countRGBA(canvas, core.ColorRed), 0)
	assert.Greater(t, countRGBA(canvas, core.ColorGreen), 0)
	assert.Greater(t, countRGBA(canvas, core.ColorBlue), 0)
	assert.Greater(t, countRGBA(canvas, core.ColorGrid), 0)
	assert.Greater(t, countRGBA(canvas, core.ColorGridCenter), 0)

	require.Len(t, snaps.Written, 2)
	shot := filepath.Base(snaps.Written[0])
	assert.True(t, strings.HasPrefix(shot, "rigview-"), shot)
	assert.Equal(t, ".png", filepath.Ext(shot))
	assert.Equal(t, final, snaps.Written[1])

	f, err := os.Open(final)
	require.NoError(t, err)
	defer f.Close()
	img, err := nativewebp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 180, img.Bounds().Dy())
}

func TestViewerSnapshotNamesAreUnique(t *testing.T) {
	cfg := testConfig(t)
	script := NewScript().KeyDown(KeyF12).KeyUp(KeyF12).KeyDown(KeyF12).Idle(3).KeyUp(KeyF12)

	app := NewViewer(cfg, HeadlessModule{Width: cfg.Width, Height: cfg.Height, Script: script.Frames()})
	app.Run()

	snaps := Resource[Snapshots](app)
	require.Len(t, snaps.Written, 2)
	assert.NotEqual(t, snaps.Written[0], snaps.Written[1])
	for _, p := range snaps.Written {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestDrawSceneBones(t *testing.T) {
	frame := core.NewRig().Frame(core.DefaultViewConfig())
	canvas := raster.NewCanvas(1280, 720)
	DrawScene(&frame, canvas)

	// The bone from elbow to hand is drawn last over the spheres' centres.
	mid := frame.JointScreen[1].Add(frame.JointScreen[2]).Mul(0.5)
	assert.Equal(t, raster.RGBA(core.ColorWhite), canvas.Image().RGBAAt(int(mid.X+0.5), int(mid.Y+0.5)))
}
