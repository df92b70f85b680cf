package rigview

import (
	"errors"
	"testing"

	"github.com/gekko3d/rigview/rt/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, float32(0.45), cfg.FovY)
	assert.Equal(t, float32(0.1), cfg.Near)
	assert.Equal(t, float32(100), cfg.Far)
	assert.Equal(t, float32(0.01), cfg.DragStep)
	assert.Equal(t, 1, cfg.Supersample)
	assert.Equal(t, raster.FormatPNG, cfg.Format())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("RIGVIEW_WIDTH", "800")
	t.Setenv("RIGVIEW_FOV_Y", "0.9")
	t.Setenv("RIGVIEW_SNAPSHOT_FORMAT", "webp")
	t.Setenv("RIGVIEW_DEBUG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, float32(0.9), cfg.FovY)
	assert.Equal(t, raster.FormatWebP, cfg.Format())
	assert.True(t, cfg.Debug)
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("RIGVIEW_HEIGHT", "tall")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfigResolve(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.Resolve(Flags{Height: 600, Title: "arm", Supersample: 2})
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "arm", cfg.Title)

	view := cfg.ViewConfig()
	assert.Equal(t, 2560, view.Width)
	assert.Equal(t, 1200, view.Height)
	assert.Equal(t, cfg.FovY, view.FovY)
	assert.Equal(t, cfg.Far, view.FarZ)
}

func TestConfigValidate(t *testing.T) {
	base, err := LoadConfig()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"near behind far", func(c *Config) { c.Near = 200 }},
		{"zero near", func(c *Config) { c.Near = 0 }},
		{"flat fov", func(c *Config) { c.FovY = 0 }},
		{"no supersample", func(c *Config) { c.Supersample = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}

	c := base
	c.SnapshotFormat = "gif"
	err = c.Validate()
	assert.True(t, errors.Is(err, raster.ErrUnsupportedFormat))
}
