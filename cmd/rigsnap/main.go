package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gekko3d/rigview"
)

func main() {
	var flags rigview.Flags
	out := flag.String("out", "rig.png", "output image (.png, .webp or .tga)")
	frames := flag.Int("frames", 1, "idle frames to render before the snapshot")
	orbitX := flag.Float64("orbit-x", 0, "horizontal right-drag in pixels")
	orbitY := flag.Float64("orbit-y", 0, "vertical right-drag in pixels")
	zoom := flag.Int("zoom", 0, "wheel notches, positive moves the camera forward")
	flag.IntVar(&flags.Width, "width", 0, "image width in pixels")
	flag.IntVar(&flags.Height, "height", 0, "image height in pixels")
	flag.IntVar(&flags.Supersample, "ss", 0, "supersampling factor")
	flag.BoolVar(&flags.Debug, "debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := rigview.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	script := rigview.NewScript().MoveTo(float64(cfg.Width)/2, float64(cfg.Height)/2)
	if *orbitX != 0 || *orbitY != 0 {
		const steps = 10
		script.Drag(rigview.MouseButtonRight, *orbitX/steps, *orbitY/steps, steps)
	}
	if *zoom != 0 {
		script.Scroll(*zoom)
	}
	script.Idle(max(*frames, 1))

	headless := rigview.HeadlessModule{Width: cfg.Width, Height: cfg.Height, Script: script.Frames()}
	app := rigview.NewViewer(cfg, headless)
	snaps := rigview.Resource[rigview.Snapshots](app)
	snaps.FinalPath = *out
	app.Run()

	if len(snaps.Written) == 0 {
		fmt.Fprintln(os.Stderr, "no image written")
		os.Exit(1)
	}
}
