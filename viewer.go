package rigview

// NewViewer builds the arm viewer from cfg. platform provides the InputDevice:
// a PlatformWindowModule or a HeadlessModule. Extra modules are installed last.
func NewViewer(cfg Config, platform Module, extra ...Module) *App {
	return NewAppBuilder().
		UseModule(
			LoggingModule{Prefix: "rigview", Debug: cfg.Debug},
			TimeModule{},
			platform,
			InputModule{},
			RigModule{View: cfg.ViewConfig(), Scale: cfg.Supersample},
			ExitModule{},
			OrbitCameraModule{Speed: cfg.OrbitSpeed, ZoomStep: cfg.ZoomStep},
			RenderModule{},
			PanelModule{Step: cfg.DragStep},
			SnapshotModule{Dir: cfg.SnapshotDir, Format: cfg.Format()},
		).
		UseModule(extra...).
		Build()
}
