package setup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"journal-desktop/internal/logger"
	"journal-desktop/internal/surface"
)

const coordinatorComponent = "SetupCoordinator"

// Pacing holds the two cosmetic waits between splash animation stages.
type Pacing struct {
	FadeOutDelay time.Duration
	RevealDelay  time.Duration
}

// Reporter receives setup task completions.
type Reporter interface {
	ReportTaskComplete(task TaskID) error
}

// Coordinator gates the splash-to-main transition on both setup tasks.
// The transition sequence runs at most once, started by the report that
// completes the second task.
type Coordinator struct {
	ctx    context.Context
	host   surface.Host
	pacing Pacing
	logger logger.Logger

	mu        sync.Mutex
	state     State
	mutations int
	fired     bool

	wg   sync.WaitGroup
	done chan struct{}
}

// NewCoordinator creates a coordinator with both tasks pending. Cancelling
// ctx aborts a transition that is still pacing.
func NewCoordinator(ctx context.Context, host surface.Host, pacing Pacing, log logger.Logger) *Coordinator {
	if log == nil {
		log = logger.Noop
	}
	return &Coordinator{
		ctx:    ctx,
		host:   host,
		pacing: pacing,
		logger: log,
		done:   make(chan struct{}),
	}
}

// ReportTaskComplete marks task as done. Invalid ids fail with ErrInvalidTask
// and leave the state untouched. It never blocks on the transition sequence.
func (c *Coordinator) ReportTaskComplete(task TaskID) error {
	if !task.Valid() {
		err := fmt.Errorf("%w: %q", ErrInvalidTask, string(task))
		c.logger.Error(coordinatorComponent, err, map[string]interface{}{
			"task": string(task),
		})
		return err
	}

	c.mu.Lock()
	changed := c.state.mark(task)
	if changed {
		c.mutations++
	}
	fire := changed && c.state.Both()
	if fire {
		c.fired = true
		c.wg.Add(1)
	}
	snapshot := c.state
	c.mu.Unlock()

	if !changed {
		c.logger.Debug(coordinatorComponent, "task already complete", map[string]interface{}{
			"task": task.String(),
		})
		return nil
	}

	c.logger.Info(coordinatorComponent, "setup task complete", map[string]interface{}{
		"task":          task.String(),
		"frontend_done": snapshot.FrontendDone,
		"backend_done":  snapshot.BackendDone,
	})

	if fire {
		go func() {
			defer c.wg.Done()
			defer close(c.done)
			c.transition()
		}()
	}
	return nil
}

// ReportTaskName parses name and reports it.
func (c *Coordinator) ReportTaskName(name string) error {
	task, err := ParseTaskID(name)
	if err != nil {
		c.logger.Error(coordinatorComponent, err, map[string]interface{}{
			"task": name,
		})
		return err
	}
	return c.ReportTaskComplete(task)
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mutations returns how many reports actually changed the state.
func (c *Coordinator) Mutations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mutations
}

// Fired reports whether the transition sequence has been started.
func (c *Coordinator) Fired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fired
}

// Done is closed once the transition sequence has finished or aborted.
func (c *Coordinator) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until a started transition sequence returns.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// Shutdown waits for an in-flight transition. Cancel the coordinator context
// first to cut the pacing short.
func (c *Coordinator) Shutdown() {
	c.Wait()
}

func (c *Coordinator) transition() {
	start := time.Now()
	c.logger.Info(coordinatorComponent, "all setup tasks complete, starting transition", nil)

	if splash, ok := c.host.Splash(); ok {
		c.bestEffort("signal "+surface.EventFadeOut, func() error {
			return splash.Signal(surface.EventFadeOut)
		})
		if !c.pause(c.pacing.FadeOutDelay) {
			c.logger.Warning(coordinatorComponent, "transition aborted", map[string]interface{}{"stage": surface.EventFadeOut})
			return
		}

		c.bestEffort("signal "+surface.EventTreeReveal, func() error {
			return splash.Signal(surface.EventTreeReveal)
		})
		if !c.pause(c.pacing.RevealDelay) {
			c.logger.Warning(coordinatorComponent, "transition aborted", map[string]interface{}{"stage": surface.EventTreeReveal})
			return
		}

		c.bestEffort("close splash", splash.Close)
	}

	mainSurface, ok := c.host.Main()
	if !ok {
		c.logger.Warning(coordinatorComponent, ErrMissingMainSurface.Error(), nil)
		return
	}
	c.bestEffort("show main", mainSurface.Show)
	c.bestEffort("focus main", mainSurface.Focus)

	c.logger.Info(coordinatorComponent, "transition complete", map[string]interface{}{
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

// bestEffort runs a surface operation whose failure is logged and dropped;
// the remaining transition steps still run.
func (c *Coordinator) bestEffort(op string, fn func() error) {
	if err := fn(); err != nil {
		c.logger.Warning(coordinatorComponent, "surface operation failed, continuing", map[string]interface{}{
			"operation": op,
			"error":     err.Error(),
		})
	}
}

func (c *Coordinator) pause(d time.Duration) bool {
	if d <= 0 {
		return c.ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-c.ctx.Done():
		return false
	}
}
