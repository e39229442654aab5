package setup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-desktop/internal/surface"
)

var fullSequence = []string{
	"splash:" + surface.EventFadeOut,
	"splash:" + surface.EventTreeReveal,
	"splash:close",
	"main:show",
	"main:focus",
}

func newTestCoordinator(t *testing.T, host *fakeHost) *Coordinator {
	t.Helper()
	pacing := Pacing{FadeOutDelay: time.Millisecond, RevealDelay: time.Millisecond}
	return NewCoordinator(context.Background(), host, pacing, nil)
}

func waitDone(t *testing.T, c *Coordinator) {
	t.Helper()
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("transition did not finish")
	}
}

func TestCoordinatorInterleavings(t *testing.T) {
	tests := map[string]struct {
		reports []TaskID
	}{
		"frontend then backend": {reports: []TaskID{TaskFrontend, TaskBackend}},
		"backend then frontend": {reports: []TaskID{TaskBackend, TaskFrontend}},
		"duplicates before completion": {
			reports: []TaskID{TaskBackend, TaskBackend, TaskFrontend, TaskFrontend, TaskBackend},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			host := &fakeHost{}
			c := newTestCoordinator(t, host)

			for _, task := range test.reports {
				require.NoError(t, c.ReportTaskComplete(task))
			}
			waitDone(t, c)

			assert.Equal(t, fullSequence, host.Calls())
			assert.Equal(t, State{FrontendDone: true, BackendDone: true}, c.State())
			assert.Equal(t, 2, c.Mutations())
			assert.True(t, c.Fired())
		})
	}
}

func TestCoordinatorReportBackendTwiceIsIdempotent(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(t, host)

	require.NoError(t, c.ReportTaskComplete(TaskBackend))
	require.NoError(t, c.ReportTaskComplete(TaskBackend))

	assert.Equal(t, State{BackendDone: true}, c.State())
	assert.Equal(t, 1, c.Mutations())
	assert.False(t, c.Fired())
	assert.Empty(t, host.Calls())
}

func TestCoordinatorReportAfterTransitionIsNoop(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(t, host)

	require.NoError(t, c.ReportTaskComplete(TaskFrontend))
	require.NoError(t, c.ReportTaskComplete(TaskBackend))
	waitDone(t, c)

	require.NoError(t, c.ReportTaskComplete(TaskBackend))
	require.NoError(t, c.ReportTaskComplete(TaskFrontend))
	c.Wait()

	assert.Equal(t, 1, host.count("main:show"))
	assert.Equal(t, 2, c.Mutations())
}

func TestCoordinatorInvalidTask(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(t, host)
	require.NoError(t, c.ReportTaskComplete(TaskFrontend))

	err := c.ReportTaskComplete(TaskID("invalid"))
	assert.ErrorIs(t, err, ErrInvalidTask)

	err = c.ReportTaskName("middleware")
	assert.ErrorIs(t, err, ErrInvalidTask)

	assert.Equal(t, State{FrontendDone: true}, c.State())
	assert.Equal(t, 1, c.Mutations())
}

func TestCoordinatorReportTaskName(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(t, host)

	require.NoError(t, c.ReportTaskName("frontend"))
	require.NoError(t, c.ReportTaskName("backend"))
	waitDone(t, c)

	assert.Equal(t, fullSequence, host.Calls())
}

func TestCoordinatorFrontendOnlyNeverTransitions(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(t, host)

	require.NoError(t, c.ReportTaskComplete(TaskFrontend))

	select {
	case <-c.Done():
		t.Fatal("transition must not fire with backend pending")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Zero(t, host.count("main:show"))
	assert.False(t, c.Fired())
}

func TestCoordinatorSurfaceFailuresAreSwallowed(t *testing.T) {
	host := &fakeHost{failAll: true}
	c := newTestCoordinator(t, host)

	require.NoError(t, c.ReportTaskComplete(TaskFrontend))
	require.NoError(t, c.ReportTaskComplete(TaskBackend))
	waitDone(t, c)

	// Every step still runs even though each one failed.
	assert.Equal(t, fullSequence, host.Calls())
}

func TestCoordinatorMissingSurfaces(t *testing.T) {
	tests := map[string]struct {
		host     *fakeHost
		expCalls []string
	}{
		"no splash goes straight to main": {
			host:     &fakeHost{noSplash: true},
			expCalls: []string{"main:show", "main:focus"},
		},
		"no main still closes the splash": {
			host: &fakeHost{noMain: true},
			expCalls: []string{
				"splash:" + surface.EventFadeOut,
				"splash:" + surface.EventTreeReveal,
				"splash:close",
			},
		},
		"no surfaces at all": {
			host: &fakeHost{noSplash: true, noMain: true},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestCoordinator(t, test.host)

			require.NoError(t, c.ReportTaskComplete(TaskBackend))
			require.NoError(t, c.ReportTaskComplete(TaskFrontend))
			waitDone(t, c)

			assert.Equal(t, test.expCalls, test.host.Calls())
		})
	}
}

func TestCoordinatorTransitionIsAsynchronous(t *testing.T) {
	host := &fakeHost{}
	pacing := Pacing{FadeOutDelay: 200 * time.Millisecond, RevealDelay: 200 * time.Millisecond}
	c := NewCoordinator(context.Background(), host, pacing, nil)

	require.NoError(t, c.ReportTaskComplete(TaskFrontend))

	start := time.Now()
	require.NoError(t, c.ReportTaskComplete(TaskBackend))
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	waitDone(t, c)
	assert.Equal(t, fullSequence, host.Calls())
}

func TestCoordinatorCancelAbortsPacing(t *testing.T) {
	host := &fakeHost{}
	ctx, cancel := context.WithCancel(context.Background())
	pacing := Pacing{FadeOutDelay: time.Hour, RevealDelay: time.Hour}
	c := NewCoordinator(ctx, host, pacing, nil)

	require.NoError(t, c.ReportTaskComplete(TaskFrontend))
	require.NoError(t, c.ReportTaskComplete(TaskBackend))
	cancel()
	waitDone(t, c)

	assert.Equal(t, []string{"splash:" + surface.EventFadeOut}, host.Calls())
}

func TestCoordinatorConcurrentBackendReports(t *testing.T) {
	host := &fakeHost{}
	c := newTestCoordinator(t, host)

	const n = 64
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			assert.NoError(t, c.ReportTaskComplete(TaskBackend))
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, c.Mutations())
	assert.False(t, c.Fired())
}

func TestCoordinatorConcurrentMixedReportsFireOnce(t *testing.T) {
	for i := 0; i < 50; i++ {
		host := &fakeHost{}
		c := newTestCoordinator(t, host)

		var wg sync.WaitGroup
		start := make(chan struct{})
		for j := 0; j < 16; j++ {
			task := TaskFrontend
			if j%2 == 0 {
				task = TaskBackend
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				assert.NoError(t, c.ReportTaskComplete(task))
			}()
		}
		close(start)
		wg.Wait()
		waitDone(t, c)
		c.Wait()

		assert.Equal(t, 1, host.count("main:show"))
		assert.Equal(t, 2, c.Mutations())
	}
}
