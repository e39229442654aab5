package setup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"journal-desktop/internal/logger"
)

const backendComponent = "BackendTask"

// WorkFunc is the long-latency initialization the backend task performs.
// It should return promptly once ctx is done.
type WorkFunc func(ctx context.Context) error

// SimulatedWork waits for d, standing in for real initialization.
func SimulatedWork(d time.Duration) WorkFunc {
	return func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// BackendTask runs the backend warm-up inside a bounded-time envelope and
// reports completion. It is never retried.
type BackendTask struct {
	work     WorkFunc
	ceiling  time.Duration
	reporter Reporter
	logger   logger.Logger
}

func NewBackendTask(work WorkFunc, ceiling time.Duration, reporter Reporter, log logger.Logger) *BackendTask {
	if log == nil {
		log = logger.Noop
	}
	return &BackendTask{
		work:     work,
		ceiling:  ceiling,
		reporter: reporter,
		logger:   log,
	}
}

// Run executes the work and reports TaskBackend on success. When the ceiling
// elapses first it returns ErrSetupTimeout without reporting, which leaves the
// application on the splash screen for the rest of the run.
func (b *BackendTask) Run(ctx context.Context) error {
	b.logger.Info(backendComponent, "performing backend setup", map[string]interface{}{
		"ceiling": b.ceiling.String(),
	})

	if err := WithTimeout(ctx, b.ceiling, b.work); err != nil {
		if errors.Is(err, ErrSetupTimeout) {
			b.logger.Error(backendComponent, err, map[string]interface{}{
				"ceiling": b.ceiling.String(),
				"outcome": "splash screen will remain, backend never reported",
			})
		} else {
			b.logger.Error(backendComponent, err, nil)
		}
		return err
	}

	b.logger.Info(backendComponent, "backend setup completed", nil)
	return b.reporter.ReportTaskComplete(TaskBackend)
}

// WithTimeout races work against ceiling. The work's context is cancelled
// when the ceiling elapses and WithTimeout returns ErrSetupTimeout without
// waiting for the work to notice.
func WithTimeout(ctx context.Context, ceiling time.Duration, work WorkFunc) error {
	envCtx, cancel := context.WithTimeout(ctx, ceiling)
	defer cancel()

	result := make(chan error, 1)
	go func() {
		result <- work(envCtx)
	}()

	select {
	case err := <-result:
		if err == nil {
			return nil
		}
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w after %s", ErrSetupTimeout, ceiling)
		}
		return fmt.Errorf("backend setup failed: %w", err)
	case <-envCtx.Done():
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w after %s", ErrSetupTimeout, ceiling)
	}
}
