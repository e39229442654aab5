package gui

import (
	"sync"
)

// Dispatcher runs a function on the UI thread. Surfaces are driven from the
// setup goroutines, so every widget or window call goes through it.
type Dispatcher interface {
	Do(fn func())
}

// DispatcherFunc adapts a plain function into a Dispatcher.
type DispatcherFunc func(fn func())

func (f DispatcherFunc) Do(fn func()) { f(fn) }

// Inline runs fn on the calling goroutine. Used with the Fyne test driver.
var Inline Dispatcher = DispatcherFunc(func(fn func()) { fn() })

// LoopDispatcher posts work to the event loop and waits for it to run, so
// surface calls keep their order. Once stopped it drops new work and releases
// callers still waiting on work the loop will never run.
type LoopDispatcher struct {
	post    func(fn func())
	stopped chan struct{}
	once    sync.Once
}

// NewLoopDispatcher wraps post, normally fyne.Do.
func NewLoopDispatcher(post func(fn func())) *LoopDispatcher {
	return &LoopDispatcher{
		post:    post,
		stopped: make(chan struct{}),
	}
}

func (d *LoopDispatcher) Do(fn func()) {
	select {
	case <-d.stopped:
		return
	default:
	}

	done := make(chan struct{})
	go d.post(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
	case <-d.stopped:
	}
}

// Stop is called once the event loop has exited or shutdown has begun.
func (d *LoopDispatcher) Stop() {
	d.once.Do(func() { close(d.stopped) })
}

// Shutdown lets the dispatcher register with the shutdown manager.
func (d *LoopDispatcher) Shutdown() {
	d.Stop()
}
