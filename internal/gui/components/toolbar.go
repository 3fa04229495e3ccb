package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type Toolbar struct {
	OpenButton     *widget.Button
	ZoomOutButton  *widget.Button
	ZoomResetLabel *widget.Button
	ZoomInButton   *widget.Button
	BrowserButton  *widget.Button
	SettingsButton *widget.Button

	openHandler      func()
	zoomInHandler    func()
	zoomOutHandler   func()
	zoomResetHandler func()
	browserHandler   func()
	settingsHandler  func()
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.setupToolbar()
	return t
}

func (t *Toolbar) setupToolbar() {
	t.OpenButton = widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), t.onOpen)
	t.OpenButton.Importance = widget.HighImportance

	t.ZoomOutButton = widget.NewButtonWithIcon("", theme.ZoomOutIcon(), t.onZoomOut)
	t.ZoomResetLabel = widget.NewButton("100%", t.onZoomReset)
	t.ZoomResetLabel.Importance = widget.LowImportance
	t.ZoomInButton = widget.NewButtonWithIcon("", theme.ZoomInIcon(), t.onZoomIn)

	t.BrowserButton = widget.NewButtonWithIcon("", theme.ComputerIcon(), t.onBrowser)
	t.SettingsButton = widget.NewButtonWithIcon("", theme.SettingsIcon(), t.onSettings)
}

// Container lays out open on the left, zoom controls centered and the
// browser/settings actions on the right.
func (t *Toolbar) Container() *fyne.Container {
	leftSection := container.NewHBox(t.OpenButton)

	centerSection := container.NewHBox(
		t.ZoomOutButton,
		t.ZoomResetLabel,
		t.ZoomInButton,
	)

	rightSection := container.NewHBox(
		t.BrowserButton,
		t.SettingsButton,
	)

	return container.NewBorder(
		nil, nil,
		leftSection,
		rightSection,
		container.NewCenter(centerSection),
	)
}

// SetZoomPercent updates the reset button text, e.g. "120%".
func (t *Toolbar) SetZoomPercent(text string) {
	t.ZoomResetLabel.SetText(text)
}

func (t *Toolbar) SetOpenHandler(handler func())      { t.openHandler = handler }
func (t *Toolbar) SetZoomInHandler(handler func())    { t.zoomInHandler = handler }
func (t *Toolbar) SetZoomOutHandler(handler func())   { t.zoomOutHandler = handler }
func (t *Toolbar) SetZoomResetHandler(handler func()) { t.zoomResetHandler = handler }
func (t *Toolbar) SetBrowserHandler(handler func())   { t.browserHandler = handler }
func (t *Toolbar) SetSettingsHandler(handler func())  { t.settingsHandler = handler }

func (t *Toolbar) onOpen() {
	if t.openHandler != nil {
		t.openHandler()
	}
}

func (t *Toolbar) onZoomIn() {
	if t.zoomInHandler != nil {
		t.zoomInHandler()
	}
}

func (t *Toolbar) onZoomOut() {
	if t.zoomOutHandler != nil {
		t.zoomOutHandler()
	}
}

func (t *Toolbar) onZoomReset() {
	if t.zoomResetHandler != nil {
		t.zoomResetHandler()
	}
}

func (t *Toolbar) onBrowser() {
	if t.browserHandler != nil {
		t.browserHandler()
	}
}

func (t *Toolbar) onSettings() {
	if t.settingsHandler != nil {
		t.settingsHandler()
	}
}
