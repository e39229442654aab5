package setup

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTask = errors.New("invalid setup task")
	// ErrSetupTimeout is returned by the backend task when its work outlives
	// the envelope ceiling. The backend is never reported complete afterwards.
	ErrSetupTimeout = errors.New("setup task timed out")
	// ErrMissingMainSurface is logged when the transition finds no main surface.
	ErrMissingMainSurface = errors.New("main surface not found")
)

// TaskID names one of the two setup tasks gating the splash screen.
type TaskID string

const (
	TaskFrontend TaskID = "frontend"
	TaskBackend  TaskID = "backend"
)

func (t TaskID) Valid() bool {
	return t == TaskFrontend || t == TaskBackend
}

func (t TaskID) String() string { return string(t) }

// ParseTaskID converts a task name reported by the UI into a TaskID.
func ParseTaskID(name string) (TaskID, error) {
	id := TaskID(name)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTask, name)
	}
	return id, nil
}

// State is a snapshot of the setup flags. Flags only ever go from false to true.
type State struct {
	FrontendDone bool
	BackendDone  bool
}

func (s State) Both() bool {
	return s.FrontendDone && s.BackendDone
}

// mark sets the flag for task and reports whether the flag changed.
func (s *State) mark(task TaskID) bool {
	switch task {
	case TaskFrontend:
		if s.FrontendDone {
			return false
		}
		s.FrontendDone = true
	case TaskBackend:
		if s.BackendDone {
			return false
		}
		s.BackendDone = true
	default:
		return false
	}
	return true
}
