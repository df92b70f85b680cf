package rigview

import (
	"time"
)

type Time struct {
	Time time.Time
	Dt   time.Duration

	statsStart  time.Time
	statsFrames int
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := time.Now()
	cmd.AddResources(&Time{
		Time:       now,
		Dt:         0,
		statsStart: now,
	})
	cmd.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time, cmd *Commands) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now

	timeResource.statsFrames++
	if elapsed := now.Sub(timeResource.statsStart); elapsed >= time.Second {
		fps := float64(timeResource.statsFrames) / elapsed.Seconds()
		cmd.Logger().Debugf("%.1f fps, %.2f ms/frame", fps, 1000/fps)
		timeResource.statsStart = now
		timeResource.statsFrames = 0
	}
}
