package setup

import (
	"errors"
	"sync"

	"journal-desktop/internal/surface"
)

// fakeHost records every surface call in order.
type fakeHost struct {
	mu       sync.Mutex
	calls    []string
	noSplash bool
	noMain   bool
	failAll  bool
}

func (f *fakeHost) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if f.failAll {
		return errors.New("window gone")
	}
	return nil
}

func (f *fakeHost) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeHost) count(call string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeHost) Splash() (surface.SplashSurface, bool) {
	if f.noSplash {
		return nil, false
	}
	return fakeSplash{f}, true
}

func (f *fakeHost) Main() (surface.MainSurface, bool) {
	if f.noMain {
		return nil, false
	}
	return fakeMain{f}, true
}

type fakeSplash struct{ h *fakeHost }

func (s fakeSplash) Signal(event string) error { return s.h.record("splash:" + event) }
func (s fakeSplash) Close() error              { return s.h.record("splash:close") }

type fakeMain struct{ h *fakeHost }

func (m fakeMain) Show() error  { return m.h.record("main:show") }
func (m fakeMain) Focus() error { return m.h.record("main:focus") }

// fakeReporter counts reports without a coordinator behind it.
type fakeReporter struct {
	mu    sync.Mutex
	tasks []TaskID
}

func (f *fakeReporter) ReportTaskComplete(task TaskID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *fakeReporter) Tasks() []TaskID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]TaskID(nil), f.tasks...)
}
