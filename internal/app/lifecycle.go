package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"github.com/oklog/run"

	"journal-desktop/internal/gui"
)

// Run shows the splash, starts both setup phases and blocks in the Fyne
// event loop. The actor group (signals, backend setup, shutdown) runs beside
// the event loop and quits it when any actor ends.
func (a *Application) Run(ctx context.Context) error {
	a.shell.SetupTray()
	a.splash.Show()

	a.fyneApp.Lifecycle().SetOnStarted(func() {
		go a.runFrontend()
	})

	uiDone := make(chan struct{})
	groupErr := make(chan error, 1)
	go func() {
		err := a.runActors(ctx)
		select {
		case <-uiDone:
		default:
			fyne.Do(a.fyneApp.Quit)
		}
		groupErr <- err
	}()

	a.logger.Info("Application", "splash displayed, entering event loop", nil)
	a.fyneApp.Run()
	close(uiDone)
	if d, ok := a.dispatch.(interface{ Stop() }); ok {
		d.Stop()
	}

	a.shutdown.Shutdown()
	return <-groupErr
}

func (a *Application) runFrontend() {
	err := gui.RunFrontendSetup(a.shutdown.Context(), a.config.Setup.FrontendWork, a.commands, a.logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("Application", err, map[string]interface{}{"task": "frontend"})
	}
}

func (a *Application) runActors(ctx context.Context) error {
	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				a.logger.Info("Application", "termination signal received", nil)
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Backend setup. A failure keeps the splash up but must not stop the group.
	{
		backendCtx, backendCancel := context.WithCancel(ctx)
		defer backendCancel()

		g.Add(
			func() error {
				if err := a.backend.Run(backendCtx); err != nil && !errors.Is(err, context.Canceled) {
					a.logger.Warning("Application", "backend setup did not complete, splash remains", map[string]interface{}{
						"error": err.Error(),
					})
				}
				<-backendCtx.Done()
				return nil
			},
			func(_ error) {
				backendCancel()
			},
		)
	}

	// Application shutdown.
	{
		g.Add(
			func() error {
				<-a.shutdown.Context().Done()
				return nil
			},
			func(_ error) {
				a.shutdown.Shutdown()
			},
		)
	}

	return g.Run()
}
