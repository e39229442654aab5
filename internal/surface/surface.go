// Package surface declares the window-like collaborators the setup
// coordinator drives. Implementations live in the GUI layer; tests use fakes.
package surface

import "errors"

// Splash stage events understood by splash surfaces.
const (
	EventFadeOut    = "fade-out"
	EventTreeReveal = "tree-reveal"
)

var (
	// ErrOperation wraps any failed signal, close, show or focus call.
	ErrOperation = errors.New("surface operation failed")
	// ErrUnknownEvent is returned when a splash is signalled with an event it
	// has no animation for.
	ErrUnknownEvent = errors.New("unknown surface event")
	// ErrClosed is returned by operations on a surface that was already closed.
	ErrClosed = errors.New("surface closed")
)

type SplashSurface interface {
	// Signal starts the animation stage named by event. Best-effort.
	Signal(event string) error
	Close() error
}

type MainSurface interface {
	Show() error
	Focus() error
}

// Host looks up the surfaces currently alive. A false second value means
// the surface does not exist, which is not an error.
type Host interface {
	Splash() (SplashSurface, bool)
	Main() (MainSurface, bool)
}
