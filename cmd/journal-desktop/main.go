// Journal desktop shell.
//
// Shows a splash screen while the frontend and backend setup tasks run, then
// reveals the main window.
//
// Build:
//   go build -o journal-desktop ./cmd/journal-desktop
//
// Configuration comes from an optional file (--config) and JOURNAL_* environment
// variables, e.g. JOURNAL_SETUP_BACKEND_TIMEOUT=45s.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"

	"journal-desktop/internal/app"
	"journal-desktop/internal/config"
	"journal-desktop/internal/logger"
)

// Run parses flags, loads configuration and runs the desktop application.
func Run(ctx context.Context, args []string, stderr io.Writer) error {
	cli := kingpin.New("journal-desktop", "Journal desktop application.")
	cli.DefaultEnvars()
	configPath := cli.Flag("config", "Path to a configuration file (yaml, toml or json).").String()
	debug := cli.Flag("debug", "Enable debug logging.").Bool()

	if _, err := cli.Parse(args[1:]); err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	log := logger.New(stderr, cfg.Log.Format, level).WithRunID(runID)

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(app.AppID)

	log.Info("Main", "application starting", map[string]interface{}{
		"version": app.AppVersion,
		"config":  *configPath,
	})

	application := app.NewApplication(fyneApp, app.Options{
		Config: cfg,
		Logger: log,
	})
	return application.Run(ctx)
}

func main() {
	if err := Run(context.Background(), os.Args, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
