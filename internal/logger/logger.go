package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-oriented logging surface shared by every package.
// Component names the emitting subsystem, e.g. "SetupCoordinator".
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Noop discards everything.
var Noop Logger = noop{}

type noop struct{}

func (noop) Debug(string, string, map[string]interface{})   {}
func (noop) Info(string, string, map[string]interface{})    {}
func (noop) Warning(string, string, map[string]interface{}) {}
func (noop) Error(string, error, map[string]interface{})    {}

// ParseLevel maps a configuration level name onto a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}
