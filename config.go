package rigview

import (
	"errors"
	"fmt"

	"github.com/gekko3d/rigview/rt/core"
	"github.com/gekko3d/rigview/rt/raster"
	"github.com/kelseyhightower/envconfig"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the viewer settings. Every field can be set from the
// environment with the RIGVIEW_ prefix, e.g. RIGVIEW_WIDTH=1920.
type Config struct {
	Width  int    `envconfig:"WIDTH" default:"1280"`
	Height int    `envconfig:"HEIGHT" default:"720"`
	Title  string `envconfig:"TITLE" default:"rigview"`

	FovY float32 `envconfig:"FOV_Y" default:"0.45"`
	Near float32 `envconfig:"NEAR" default:"0.1"`
	Far  float32 `envconfig:"FAR" default:"100"`

	DragStep   float32 `envconfig:"DRAG_STEP" default:"0.01"`
	OrbitSpeed float32 `envconfig:"ORBIT_SPEED" default:"0.01"`
	ZoomStep   float32 `envconfig:"ZOOM_STEP" default:"0.01"`

	Supersample    int    `envconfig:"SUPERSAMPLE" default:"1"`
	SnapshotDir    string `envconfig:"SNAPSHOT_DIR" default:"."`
	SnapshotFormat string `envconfig:"SNAPSHOT_FORMAT" default:"png"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Flags are command line overrides. Zero values leave the config untouched.
type Flags struct {
	Width          int
	Height         int
	Title          string
	Supersample    int
	SnapshotDir    string
	SnapshotFormat string
	Debug          bool
}

// LoadConfig reads the environment on top of the tag defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("RIGVIEW", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Resolve applies non-zero flags over c.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Title != "" {
		c.Title = flags.Title
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.SnapshotDir != "" {
		c.SnapshotDir = flags.SnapshotDir
	}
	if flags.SnapshotFormat != "" {
		c.SnapshotFormat = flags.SnapshotFormat
	}
	if flags.Debug {
		c.Debug = true
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	if !(c.Near > 0 && c.Near < c.Far) {
		return fmt.Errorf("clip planes near=%g far=%g: %w", c.Near, c.Far, ErrInvalidConfig)
	}
	if !(c.FovY > 0 && c.FovY < 3.14159) {
		return fmt.Errorf("fov %g: %w", c.FovY, ErrInvalidConfig)
	}
	if c.Supersample < 1 {
		return fmt.Errorf("supersample %d: %w", c.Supersample, ErrInvalidConfig)
	}
	if _, err := raster.ParseFormat(c.SnapshotFormat); err != nil {
		return fmt.Errorf("snapshot format: %w", err)
	}
	return nil
}

// ViewConfig is the projection setup for a canvas of Width x Height scaled by
// Supersample.
func (c Config) ViewConfig() core.ViewConfig {
	scale := max(c.Supersample, 1)
	return core.ViewConfig{
		Width:  c.Width * scale,
		Height: c.Height * scale,
		FovY:   c.FovY,
		NearZ:  c.Near,
		FarZ:   c.Far,
	}
}

func (c Config) Format() raster.Format {
	f, err := raster.ParseFormat(c.SnapshotFormat)
	if err != nil {
		return raster.FormatPNG
	}
	return f
}
