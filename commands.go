package rigview

// Commands is the handle systems and modules use to change the App.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

// Exit asks the App to stop after the current frame. Repeated calls are ignored.
func (cmd *Commands) Exit() {
	cmd.app.requestExit()
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}

func (cmd *Commands) Frame() uint64 {
	return cmd.app.frames
}
