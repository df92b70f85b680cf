package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gekko3d/rigview"
)

func init() {
	// glfw must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	var flags rigview.Flags
	flag.IntVar(&flags.Width, "width", 0, "window width in pixels")
	flag.IntVar(&flags.Height, "height", 0, "window height in pixels")
	flag.StringVar(&flags.Title, "title", "", "window title")
	flag.StringVar(&flags.SnapshotDir, "snapshots", "", "directory for F12 snapshots")
	flag.StringVar(&flags.SnapshotFormat, "format", "", "snapshot format: png, webp or tga")
	flag.BoolVar(&flags.Debug, "debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := rigview.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Resolve(flags)
	// The window always presents at native resolution.
	cfg.Supersample = 1
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app := rigview.NewViewer(cfg, rigview.NewPlatformWindow(cfg.Width, cfg.Height, cfg.Title))
	app.Run()
}
