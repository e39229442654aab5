package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-desktop/internal/logger"
	"journal-desktop/internal/setup"
	"journal-desktop/internal/surface"
)

type fakeKiller struct {
	codes []int
}

func (f *fakeKiller) Kill(code int) { f.codes = append(f.codes, code) }

type noSurfaces struct{}

func (noSurfaces) Splash() (surface.SplashSurface, bool) { return nil, false }
func (noSurfaces) Main() (surface.MainSurface, bool)     { return nil, false }

func TestCommandsGreet(t *testing.T) {
	cmds := NewCommands(nil, nil, logger.Noop)
	assert.Equal(t, "Hello Ada from Go!", cmds.Greet("Ada"))
}

func TestCommandsSetComplete(t *testing.T) {
	coordinator := setup.NewCoordinator(context.Background(), noSurfaces{}, setup.Pacing{}, logger.Noop)
	cmds := NewCommands(coordinator, &fakeKiller{}, logger.Noop)

	require.NoError(t, cmds.SetComplete("frontend"))
	assert.Equal(t, setup.State{FrontendDone: true}, coordinator.State())

	err := cmds.SetComplete("invalid")
	assert.ErrorIs(t, err, setup.ErrInvalidTask)
	assert.Equal(t, setup.State{FrontendDone: true}, coordinator.State())

	require.NoError(t, cmds.SetComplete("backend"))
	select {
	case <-coordinator.Done():
	case <-time.After(time.Second):
		t.Fatal("transition did not run")
	}
}

func TestCommandsKill(t *testing.T) {
	killer := &fakeKiller{}
	coordinator := setup.NewCoordinator(context.Background(), noSurfaces{}, setup.Pacing{}, logger.Noop)
	cmds := NewCommands(coordinator, killer, logger.Noop)

	cmds.Kill()

	assert.Equal(t, []int{0}, killer.codes)
	assert.Equal(t, setup.State{}, coordinator.State(), "kill bypasses the coordinator")
}
