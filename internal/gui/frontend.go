package gui

import (
	"context"
	"time"

	"journal-desktop/internal/logger"
)

const frontendComponent = "Frontend"

// RunFrontendSetup simulates the UI warm-up and then reports the frontend
// task through commands. There is no ceiling: if ctx never ends and the
// warm-up never finishes, the splash stays up.
func RunFrontendSetup(ctx context.Context, warmUp time.Duration, commands Commands, log logger.Logger) error {
	log.Info(frontendComponent, "performing frontend setup", map[string]interface{}{
		"duration": warmUp.String(),
	})

	timer := time.NewTimer(warmUp)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}

	log.Info(frontendComponent, "frontend setup complete", nil)
	return commands.SetComplete("frontend")
}
