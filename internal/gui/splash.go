package gui

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"journal-desktop/internal/surface"
)

const (
	fadeOutDuration = 900 * time.Millisecond
	revealDuration  = 1100 * time.Millisecond
)

// SplashWindow is the borderless window shown while setup runs. It has two
// exit stages: "fade-out" dims the loading content and "tree-reveal" brings
// up the closing artwork.
type SplashWindow struct {
	window   fyne.Window
	dispatch Dispatcher

	content  *fyne.Container
	overlay  *canvas.Rectangle
	reveal   *canvas.Text
	progress *widget.ProgressBarInfinite

	mu     sync.Mutex
	closed bool
	stages []string
}

// NewSplashWindow creates the splash window. Desktop drivers get a real
// splash window without decorations; other drivers fall back to a normal one.
func NewSplashWindow(a fyne.App, title string, size fyne.Size, dispatch Dispatcher) *SplashWindow {
	var window fyne.Window
	if drv, ok := a.Driver().(desktop.Driver); ok {
		window = drv.CreateSplashWindow()
	} else {
		window = a.NewWindow(title)
	}

	sw := &SplashWindow{
		window:   window,
		dispatch: dispatch,
	}
	sw.createComponents(title)
	sw.buildLayout()

	window.Resize(size)
	window.CenterOnScreen()
	window.SetOnClosed(sw.markClosed)

	return sw
}

// createComponents initializes the splash widgets
func (sw *SplashWindow) createComponents(title string) {
	sw.progress = widget.NewProgressBarInfinite()

	sw.overlay = canvas.NewRectangle(color.Transparent)

	sw.reveal = canvas.NewText("🌳", color.Transparent)
	sw.reveal.TextSize = 72
	sw.reveal.Alignment = fyne.TextAlignCenter

	heading := canvas.NewText(title, theme.Color(theme.ColorNameForeground))
	heading.TextSize = 28
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	sw.content = container.NewVBox(
		layout.NewSpacer(),
		heading,
		widget.NewLabelWithStyle("Preparing your journal…", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		sw.progress,
		layout.NewSpacer(),
	)
}

// buildLayout stacks the loading content, the dimming overlay and the reveal art
func (sw *SplashWindow) buildLayout() {
	background := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	sw.window.SetContent(container.NewStack(
		background,
		container.NewPadded(sw.content),
		sw.overlay,
		container.NewCenter(sw.reveal),
	))
}

// Show displays the splash window. Call it before the event loop starts or
// from the UI thread.
func (sw *SplashWindow) Show() {
	sw.window.Show()
}

func (sw *SplashWindow) Signal(event string) error {
	if sw.Closed() {
		return fmt.Errorf("%w: signal %s: %w", surface.ErrOperation, event, surface.ErrClosed)
	}

	var start func()
	switch event {
	case surface.EventFadeOut:
		start = sw.startFadeOut
	case surface.EventTreeReveal:
		start = sw.startReveal
	default:
		return fmt.Errorf("%w: %w: %q", surface.ErrOperation, surface.ErrUnknownEvent, event)
	}

	sw.mu.Lock()
	sw.stages = append(sw.stages, event)
	sw.mu.Unlock()

	sw.dispatch.Do(start)
	return nil
}

func (sw *SplashWindow) startFadeOut() {
	sw.progress.Stop()
	target := theme.Color(theme.ColorNameBackground)
	canvas.NewColorRGBAAnimation(color.Transparent, target, fadeOutDuration, func(c color.Color) {
		sw.overlay.FillColor = c
		sw.overlay.Refresh()
	}).Start()
}

func (sw *SplashWindow) startReveal() {
	target := theme.Color(theme.ColorNamePrimary)
	canvas.NewColorRGBAAnimation(color.Transparent, target, revealDuration, func(c color.Color) {
		sw.reveal.Color = c
		sw.reveal.Refresh()
	}).Start()
}

func (sw *SplashWindow) Close() error {
	if sw.Closed() {
		return fmt.Errorf("%w: close splash: %w", surface.ErrOperation, surface.ErrClosed)
	}
	sw.dispatch.Do(sw.window.Close)
	sw.markClosed()
	return nil
}

// Closed reports whether the splash window is gone.
func (sw *SplashWindow) Closed() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.closed
}

// Stages returns the animation stages started so far, in order.
func (sw *SplashWindow) Stages() []string {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return append([]string(nil), sw.stages...)
}

func (sw *SplashWindow) markClosed() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.closed = true
}
