package app

import (
	"fmt"

	"journal-desktop/internal/logger"
)

// TaskReporter receives setup task completions by name.
type TaskReporter interface {
	ReportTaskName(name string) error
}

// Killer terminates the process.
type Killer interface {
	Kill(code int)
}

// Commands is the command surface the UI layer invokes.
type Commands struct {
	reporter TaskReporter
	killer   Killer
	logger   logger.Logger
}

func NewCommands(reporter TaskReporter, killer Killer, log logger.Logger) *Commands {
	return &Commands{
		reporter: reporter,
		killer:   killer,
		logger:   log,
	}
}

func (c *Commands) Greet(name string) string {
	return fmt.Sprintf("Hello %s from Go!", name)
}

// SetComplete reports a setup task. Unknown task names fail with
// setup.ErrInvalidTask; the coordinator has already logged them.
func (c *Commands) SetComplete(task string) error {
	if err := c.reporter.ReportTaskName(task); err != nil {
		return fmt.Errorf("set complete %q: %w", task, err)
	}
	return nil
}

// Kill exits the process right away, bypassing setup and shutdown.
func (c *Commands) Kill() {
	c.logger.Warning("Commands", "kill command invoked", nil)
	c.killer.Kill(0)
}
