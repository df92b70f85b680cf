package rigview

// ExitModule stops the app when Escape goes down or the window asks to close.
type ExitModule struct{}

func (ExitModule) Install(app *App, cmd *Commands) {
	app.UseSystem(System(exitSystem).InStage(Update))
}

func exitSystem(input *Input, cmd *Commands) {
	switch {
	case input.WasJustPressed(KeyEscape):
		cmd.Logger().Infof("escape pressed")
		cmd.Exit()
	case input.Current.CloseRequested:
		cmd.Exit()
	}
}
