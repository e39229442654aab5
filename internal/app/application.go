package app

import (
	"fyne.io/fyne/v2"

	"journal-desktop/internal/config"
	"journal-desktop/internal/gui"
	"journal-desktop/internal/logger"
	"journal-desktop/internal/setup"
	"journal-desktop/internal/shutdown"
)

const (
	AppName    = "Journal"
	AppID      = "com.journal.desktop"
	AppVersion = "1.0.0"
)

// Options tune how the application is assembled. Zero values fall back to
// the event loop dispatcher and the simulated backend work from the config.
type Options struct {
	Config      *config.Config
	Logger      logger.Logger
	Dispatcher  gui.Dispatcher
	BackendWork setup.WorkFunc
}

type Application struct {
	fyneApp fyne.App
	config  *config.Config
	logger  logger.Logger

	shell       *gui.Shell
	splash      *gui.SplashWindow
	mainWindow  *gui.MainWindow
	coordinator *setup.Coordinator
	backend     *setup.BackendTask
	commands    *Commands
	shutdown    *shutdown.Manager
	dispatch    gui.Dispatcher
}

// NewApplication wires the windows, the setup coordinator and the backend
// task around an existing Fyne app. Nothing is shown until Run.
func NewApplication(fyneApp fyne.App, opts Options) *Application {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop
	}
	dispatch := opts.Dispatcher
	if dispatch == nil {
		dispatch = gui.NewLoopDispatcher(fyne.Do)
	}
	work := opts.BackendWork
	if work == nil {
		work = setup.SimulatedWork(cfg.Setup.BackendWork)
	}

	shutdownMgr := shutdown.NewManager(log)
	shell := gui.NewShell(fyneApp, log)

	coordinator := setup.NewCoordinator(shutdownMgr.Context(), shell, setup.Pacing{
		FadeOutDelay: cfg.Transition.FadeOutDelay,
		RevealDelay:  cfg.Transition.RevealDelay,
	}, log)
	backend := setup.NewBackendTask(work, cfg.Setup.BackendTimeout, coordinator, log)
	commands := NewCommands(coordinator, shutdownMgr, log)

	splash := gui.NewSplashWindow(fyneApp, AppName,
		fyne.NewSize(cfg.Splash.Width, cfg.Splash.Height), dispatch)
	mainWindow := gui.NewMainWindow(fyneApp, AppName,
		fyne.NewSize(cfg.Window.Width, cfg.Window.Height), commands, dispatch)
	shell.SetSplash(splash)
	shell.SetMain(mainWindow)

	shutdownMgr.Register(coordinator)
	// Registered last so it stops first and releases a transition waiting
	// on an event loop that has already exited.
	if d, ok := dispatch.(shutdown.Shutdownable); ok {
		shutdownMgr.Register(d)
	}

	a := &Application{
		fyneApp:     fyneApp,
		config:      cfg,
		logger:      log,
		shell:       shell,
		splash:      splash,
		mainWindow:  mainWindow,
		coordinator: coordinator,
		backend:     backend,
		commands:    commands,
		shutdown:    shutdownMgr,
		dispatch:    dispatch,
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":         AppVersion,
		"backend_timeout": cfg.Setup.BackendTimeout.String(),
	})
	return a
}

// Coordinator exposes the setup coordinator.
func (a *Application) Coordinator() *setup.Coordinator {
	return a.coordinator
}

// Commands exposes the UI command surface.
func (a *Application) Commands() *Commands {
	return a.commands
}
