package gui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Commands is the backend command surface the UI calls into.
type Commands interface {
	Greet(name string) string
	SetComplete(task string) error
	Kill()
}

// MainWindow is the application window revealed after setup. It is created
// hidden; only the setup transition or the tray shows it.
type MainWindow struct {
	window   fyne.Window
	dispatch Dispatcher
	commands Commands

	nameEntry  *widget.Entry
	greetLabel *widget.Label

	mu      sync.Mutex
	visible bool
}

// NewMainWindow builds the main window content and menus without showing it.
func NewMainWindow(a fyne.App, title string, size fyne.Size, commands Commands, dispatch Dispatcher) *MainWindow {
	mw := &MainWindow{
		window:   a.NewWindow(title),
		dispatch: dispatch,
		commands: commands,
	}
	mw.createComponents()
	mw.buildLayout()
	mw.setupMenus()

	mw.window.Resize(size)
	mw.window.CenterOnScreen()
	mw.window.SetMaster()

	return mw
}

// createComponents initializes the greeting widgets
func (mw *MainWindow) createComponents() {
	mw.nameEntry = widget.NewEntry()
	mw.nameEntry.SetPlaceHolder("Enter a name…")
	mw.nameEntry.OnSubmitted = func(string) { mw.greet() }

	mw.greetLabel = widget.NewLabel("")
}

// buildLayout constructs the main layout
func (mw *MainWindow) buildLayout() {
	form := container.NewBorder(nil, nil, nil,
		widget.NewButton("Greet", mw.greet),
		mw.nameEntry,
	)

	mw.window.SetContent(container.NewVBox(
		widget.NewLabelWithStyle("Welcome back", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
		mw.greetLabel,
	))
}

func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Force Quit", func() {
			mw.commands.Kill()
		}),
	)
	mw.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

func (mw *MainWindow) greet() {
	mw.greetLabel.SetText(mw.commands.Greet(mw.nameEntry.Text))
}

func (mw *MainWindow) Show() error {
	mw.dispatch.Do(mw.show)
	return nil
}

func (mw *MainWindow) Focus() error {
	mw.dispatch.Do(mw.window.RequestFocus)
	return nil
}

// Visible reports whether the window has been shown.
func (mw *MainWindow) Visible() bool {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.visible
}

// raise shows and focuses the window. Must run on the UI thread.
func (mw *MainWindow) raise() {
	mw.show()
	mw.window.RequestFocus()
}

func (mw *MainWindow) show() {
	mw.window.Show()
	mw.mu.Lock()
	mw.visible = true
	mw.mu.Unlock()
}
