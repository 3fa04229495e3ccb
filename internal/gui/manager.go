package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/AlexK-Notable/mdview/internal/gui/components"
	"github.com/AlexK-Notable/mdview/internal/logger"
)

type Manager struct {
	window     fyne.Window
	log        logger.Logger
	isShutdown bool

	tabs      *container.DocTabs
	toolbar   *components.Toolbar
	statusBar *components.StatusBar
	views     map[*container.TabItem]*components.DocumentView

	tabCloseHandler    func(int)
	tabSelectedHandler func(int)
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	manager := &Manager{
		window:    window,
		log:       log,
		toolbar:   components.NewToolbar(),
		statusBar: components.NewStatusBar(),
		views:     make(map[*container.TabItem]*components.DocumentView),
	}

	manager.tabs = container.NewDocTabs()
	manager.tabs.CloseIntercept = func(item *container.TabItem) {
		if manager.tabCloseHandler != nil {
			manager.tabCloseHandler(manager.indexOf(item))
		}
	}
	manager.tabs.OnSelected = func(item *container.TabItem) {
		if manager.tabSelectedHandler != nil {
			manager.tabSelectedHandler(manager.indexOf(item))
		}
	}

	log.Info("GUIManager", "initialized", nil)
	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		m.toolbar.Container(),
		m.statusBar.Container(),
		nil, nil,
		m.tabs,
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

// AddTab appends a tab with a fresh document view and selects it.
func (m *Manager) AddTab(title string) *components.DocumentView {
	view := components.NewDocumentView()
	item := container.NewTabItem(title, view.CanvasObject())
	m.views[item] = view
	m.tabs.Append(item)
	m.tabs.Select(item)
	return view
}

// RemoveTab drops the tab at index. Does nothing for an invalid index.
func (m *Manager) RemoveTab(index int) {
	if index < 0 || index >= len(m.tabs.Items) {
		return
	}
	item := m.tabs.Items[index]
	delete(m.views, item)
	m.tabs.Remove(item)
}

func (m *Manager) SelectTab(index int) {
	if index < 0 || index >= len(m.tabs.Items) {
		return
	}
	m.tabs.SelectIndex(index)
}

func (m *Manager) SelectedIndex() int {
	return m.tabs.SelectedIndex()
}

func (m *Manager) TabCount() int {
	return len(m.tabs.Items)
}

// View returns the document view for the tab at index, nil if invalid.
func (m *Manager) View(index int) *components.DocumentView {
	if index < 0 || index >= len(m.tabs.Items) {
		return nil
	}
	return m.views[m.tabs.Items[index]]
}

func (m *Manager) indexOf(item *container.TabItem) int {
	for i, candidate := range m.tabs.Items {
		if candidate == item {
			return i
		}
	}
	return -1
}

// UpdateStatus refreshes the status bar and the toolbar zoom readout
// for the active tab.
func (m *Manager) UpdateStatus(path string, zoom float64) {
	fyne.Do(func() {
		m.statusBar.SetPath(path)
		m.statusBar.SetZoom(zoom)
		m.toolbar.SetZoomPercent(zoomPercent(zoom))
	})
}

func (m *Manager) SetStatusBarVisible(visible bool) {
	fyne.Do(func() {
		m.statusBar.SetVisible(visible)
	})
}

// ShowOpenDialog presents a file chooser limited to markdown files,
// starting in startDir when it names a usable directory.
func (m *Manager) ShowOpenDialog(startDir string, callback func(path string)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		callback(path)
	}, m.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".md", ".markdown"}))

	if startDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(startDir)); err == nil {
			fileDialog.SetLocation(lister)
		}
	}

	fileDialog.Show()
}

func (m *Manager) ShowError(title string, err error) {
	m.log.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) SetOpenHandler(handler func())      { m.toolbar.SetOpenHandler(handler) }
func (m *Manager) SetZoomInHandler(handler func())    { m.toolbar.SetZoomInHandler(handler) }
func (m *Manager) SetZoomOutHandler(handler func())   { m.toolbar.SetZoomOutHandler(handler) }
func (m *Manager) SetZoomResetHandler(handler func()) { m.toolbar.SetZoomResetHandler(handler) }
func (m *Manager) SetBrowserHandler(handler func())   { m.toolbar.SetBrowserHandler(handler) }
func (m *Manager) SetSettingsHandler(handler func())  { m.toolbar.SetSettingsHandler(handler) }

func (m *Manager) SetTabCloseHandler(handler func(int))    { m.tabCloseHandler = handler }
func (m *Manager) SetTabSelectedHandler(handler func(int)) { m.tabSelectedHandler = handler }

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.log.Info("GUIManager", "shutdown initiated", nil)
}
