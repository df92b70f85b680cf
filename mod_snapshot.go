package rigview

import (
	"path/filepath"

	"github.com/gekko3d/rigview/rt/raster"
	"github.com/google/uuid"
)

// SnapshotModule saves the canvas when F12 goes down, and once more on
// shutdown when FinalPath is set. Supersampled canvases are scaled back to
// window size first.
type SnapshotModule struct {
	Dir       string
	Format    raster.Format
	FinalPath string
}

type Snapshots struct {
	Dir       string
	Format    raster.Format
	FinalPath string
	// Written lists every file saved so far.
	Written []string
}

func (m SnapshotModule) Install(app *App, cmd *Commands) {
	snaps := &Snapshots{Dir: m.Dir, Format: m.Format, FinalPath: m.FinalPath}
	if snaps.Dir == "" {
		snaps.Dir = "."
	}
	if snaps.Format == "" {
		snaps.Format = raster.FormatPNG
	}
	cmd.AddResources(snaps)
	app.UseSystem(System(snapshotSystem).InStage(PostRender))
	app.UseSystem(System(finalSnapshotSystem).InStage(Finale))
}

// NextPath returns a fresh file name in the snapshot directory.
func (s *Snapshots) NextPath() string {
	return filepath.Join(s.Dir, "rigview-"+uuid.NewString()+s.Format.Ext())
}

func (s *Snapshots) save(path string, canvas *raster.Canvas, display *Display, cmd *Commands) {
	img := raster.Downsample(canvas.Image(), display.Scale)
	if err := raster.Save(path, img); err != nil {
		cmd.Logger().Errorf("snapshot %s: %v", path, err)
		return
	}
	s.Written = append(s.Written, path)
	cmd.Logger().Infof("snapshot written to %s", path)
}

func snapshotSystem(input *Input, snaps *Snapshots, canvas *raster.Canvas, display *Display, cmd *Commands) {
	if input.WasJustPressed(KeyF12) {
		snaps.save(snaps.NextPath(), canvas, display, cmd)
	}
}

func finalSnapshotSystem(snaps *Snapshots, canvas *raster.Canvas, display *Display, cmd *Commands) {
	if snaps.FinalPath != "" {
		snaps.save(snaps.FinalPath, canvas, display, cmd)
	}
}
