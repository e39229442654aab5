package gui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"journal-desktop/internal/logger"
	"journal-desktop/internal/surface"
)

const shellComponent = "Shell"

// Shell owns the splash and main windows and resolves them as surfaces for
// the setup coordinator. A closed splash no longer resolves.
type Shell struct {
	app    fyne.App
	logger logger.Logger

	mu     sync.RWMutex
	splash *SplashWindow
	main   *MainWindow
}

func NewShell(a fyne.App, log logger.Logger) *Shell {
	if log == nil {
		log = logger.Noop
	}
	return &Shell{app: a, logger: log}
}

func (s *Shell) SetSplash(sw *SplashWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.splash = sw
}

func (s *Shell) SetMain(mw *MainWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.main = mw
}

func (s *Shell) Splash() (surface.SplashSurface, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.splash == nil || s.splash.Closed() {
		return nil, false
	}
	return s.splash, true
}

func (s *Shell) Main() (surface.MainSurface, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.main == nil {
		return nil, false
	}
	return s.main, true
}

// SetupTray installs the system tray menu when the app runs on a desktop
// driver. "Show" brings the main window forward; Fyne adds Quit itself.
func (s *Shell) SetupTray() bool {
	desk, ok := s.app.(desktop.App)
	if !ok {
		s.logger.Debug(shellComponent, "system tray not supported by driver", nil)
		return false
	}

	desk.SetSystemTrayMenu(fyne.NewMenu("Journal",
		fyne.NewMenuItem("Show", s.showMain),
	))
	return true
}

// showMain runs on the UI thread as a menu callback, so it talks to the
// window directly instead of going through the dispatcher.
func (s *Shell) showMain() {
	s.mu.RLock()
	mw := s.main
	s.mu.RUnlock()

	if mw == nil {
		s.logger.Warning(shellComponent, "tray show requested without a main window", nil)
		return
	}
	mw.raise()
}
