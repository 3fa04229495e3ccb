package app

import (
	"os"

	"fyne.io/fyne/v2"

	"github.com/AlexK-Notable/mdview/internal/config"
	"github.com/AlexK-Notable/mdview/internal/events"
	"github.com/AlexK-Notable/mdview/internal/gui"
	"github.com/AlexK-Notable/mdview/internal/gui/components"
	"github.com/AlexK-Notable/mdview/internal/preview"
	"github.com/AlexK-Notable/mdview/internal/render"
	"github.com/AlexK-Notable/mdview/internal/session"
	"github.com/AlexK-Notable/mdview/internal/theme"
	"github.com/AlexK-Notable/mdview/internal/tools"
	"github.com/AlexK-Notable/mdview/internal/watch"
)

func (a *Application) handleOpenRequest() {
	a.mu.Lock()
	startDir := theme.ExpandUser(a.cfg.DefaultDirectory)
	a.mu.Unlock()

	a.guiManager.ShowOpenDialog(startDir, a.openFile)
}

// openFile opens path in a new tab, or selects the tab that already has
// it. Nonexistent paths are skipped silently.
func (a *Application) openFile(path string) {
	a.mu.Lock()
	tab, created := a.session.Open(path, a.cfg.ZoomLevel)
	index := a.session.ActiveIndex()
	autoReload := a.cfg.AutoReload
	a.mu.Unlock()

	if tab == nil {
		a.log.Warning("Application", "skipping unreadable file", map[string]interface{}{
			"path": path,
		})
		return
	}

	if !created {
		a.guiManager.SelectTab(index)
		return
	}

	view := a.guiManager.AddTab(tab.Title())
	a.renderTab(tab, view)
	if autoReload {
		a.watchFile(tab.Path)
	}
	a.refreshStatus()

	a.log.Info("Application", "file opened", map[string]interface{}{
		"path": tab.Path,
	})
}

func (a *Application) handleNewTab() {
	a.mu.Lock()
	a.session.NewTab("", a.cfg.ZoomLevel)
	a.mu.Unlock()

	a.guiManager.AddTab("Untitled")
	a.refreshStatus()
}

// handleCloseTab closes the tab at index. Closing the last tab closes
// the application.
func (a *Application) handleCloseTab(index int) {
	a.mu.Lock()
	a.session.Select(index)
	closed := a.session.Current()
	remaining := a.session.Close()
	var stale *watch.Watcher
	if closed != nil && closed.Path != "" {
		stale = a.fileWatchers[closed.Path]
		delete(a.fileWatchers, closed.Path)
	}
	a.mu.Unlock()

	if stale != nil {
		stale.Close()
	}

	if remaining == 0 {
		a.quit()
		return
	}

	a.guiManager.RemoveTab(index)
	a.handleTabSelected(a.guiManager.SelectedIndex())
}

func (a *Application) handleCloseCurrentTab() {
	a.handleCloseTab(a.guiManager.SelectedIndex())
}

func (a *Application) handleTabSelected(index int) {
	a.mu.Lock()
	a.session.Select(index)
	a.mu.Unlock()

	a.applyActiveZoom()
	a.refreshStatus()
}

func (a *Application) handleReload() {
	a.mu.Lock()
	tab := a.session.Current()
	index := a.session.ActiveIndex()
	a.mu.Unlock()

	if tab == nil || tab.Path == "" {
		return
	}
	if view := a.guiManager.View(index); view != nil {
		a.renderTab(tab, view)
	}
}

func (a *Application) handleZoomIn()    { a.adjustZoom((*session.Tab).ZoomIn) }
func (a *Application) handleZoomOut()   { a.adjustZoom((*session.Tab).ZoomOut) }
func (a *Application) handleZoomReset() { a.adjustZoom((*session.Tab).ZoomReset) }

func (a *Application) adjustZoom(step func(*session.Tab)) {
	a.mu.Lock()
	tab := a.session.Current()
	if tab != nil {
		step(tab)
	}
	a.mu.Unlock()

	if tab == nil {
		return
	}
	a.applyActiveZoom()
	a.refreshStatus()
}

// handleSettings saves the config so the file exists, then opens it in
// the configured editor inside the configured terminal.
func (a *Application) handleSettings() {
	a.mu.Lock()
	cfg := a.cfg
	a.mu.Unlock()

	if err := config.Save(cfg); err != nil {
		a.log.Error("Application", err, map[string]interface{}{
			"action": "save config before edit",
		})
	}
	if err := tools.EditConfigInTerminal(cfg); err != nil {
		a.log.Error("Application", err, map[string]interface{}{
			"action":   "spawn terminal editor",
			"terminal": cfg.Terminal,
		})
	}
}

// handleOpenInBrowser serves the active document over loopback HTTP and
// points the system browser at it.
func (a *Application) handleOpenInBrowser() {
	a.mu.Lock()
	tab := a.session.Current()
	a.mu.Unlock()

	if tab == nil || tab.Path == "" {
		return
	}

	a.preview.SetDocument(a.renderPage(tab.Path))

	url, err := a.preview.Start()
	if err != nil {
		a.guiManager.ShowError("Preview", err)
		return
	}
	if err := preview.OpenURL(url); err != nil {
		a.guiManager.ShowError("Preview", err)
	}
}

func (a *Application) handleFileChanged(path string) {
	a.mu.Lock()
	var tab *session.Tab
	index := -1
	for i, candidate := range a.session.Tabs() {
		if candidate.Path == path {
			tab = candidate
			index = i
			break
		}
	}
	active := a.session.ActiveIndex() == index
	a.mu.Unlock()

	if tab == nil {
		return
	}

	view := a.guiManager.View(index)
	if view == nil {
		return
	}

	fyne.Do(func() {
		a.renderTab(tab, view)
	})

	if active && a.preview.URL() != "" {
		a.preview.SetDocument(a.renderPage(path))
	}

	a.log.Debug("Application", "file reloaded", map[string]interface{}{
		"path": path,
	})
}

// handleConfigChanged reloads the config file and re-applies it to the
// whole window: status bar visibility, zoom and every open document.
func (a *Application) handleConfigChanged() {
	cfg, err := config.Load()
	if err != nil {
		a.log.Warning("Application", "config reload failed, keeping defaults", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.mu.Lock()
	a.cfg = cfg
	tabs := a.session.Tabs()
	a.mu.Unlock()

	a.guiManager.SetStatusBarVisible(cfg.ShowStatusBar)
	a.resetFileWatchers()

	for i, tab := range tabs {
		if tab.Path == "" {
			continue
		}
		if view := a.guiManager.View(i); view != nil {
			t, v := tab, view
			fyne.Do(func() {
				a.renderTab(t, v)
			})
		}
	}

	a.log.Info("Application", "config reloaded", nil)
}

func (a *Application) renderTab(tab *session.Tab, view *components.DocumentView) {
	source, err := os.ReadFile(tab.Path)
	if err != nil {
		view.ShowError(err)
		return
	}
	view.ShowMarkdown(string(source))
}

// renderPage produces the full themed HTML document for path.
func (a *Application) renderPage(path string) string {
	a.mu.Lock()
	cfg := a.cfg
	a.mu.Unlock()

	css := theme.Resolve(cfg)
	overrides := theme.Overrides(cfg)

	source, err := os.ReadFile(path)
	if err != nil {
		return render.Document(render.ErrorDocument(err), css, overrides)
	}
	return a.renderer.Page(source, css, overrides)
}

func (a *Application) watchFile(path string) {
	watcher, err := watch.NewFileWatcher(path, func() {
		a.bus.Publish(events.Event{
			Type: events.TypeFileChanged,
			Data: map[string]interface{}{"path": path},
		})
	}, a.log)
	if err != nil {
		a.log.Warning("Application", "file watch unavailable", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return
	}

	a.mu.Lock()
	a.fileWatchers[path] = watcher
	a.mu.Unlock()
}

// resetFileWatchers closes every per-file watcher and, when auto reload
// is enabled, recreates one per open file.
func (a *Application) resetFileWatchers() {
	a.mu.Lock()
	stale := make([]*watch.Watcher, 0, len(a.fileWatchers))
	for _, w := range a.fileWatchers {
		stale = append(stale, w)
	}
	a.fileWatchers = make(map[string]*watch.Watcher)
	autoReload := a.cfg.AutoReload
	paths := a.session.OpenFiles()
	a.mu.Unlock()

	for _, w := range stale {
		w.Close()
	}

	if !autoReload {
		return
	}
	for _, path := range paths {
		a.watchFile(path)
	}
}

func (a *Application) applyActiveZoom() {
	a.mu.Lock()
	tab := a.session.Current()
	zoom := a.cfg.ZoomLevel
	if tab != nil {
		zoom = tab.Zoom
	}
	a.mu.Unlock()

	fyne.Do(func() {
		a.fyneApp.Settings().SetTheme(gui.ZoomedTheme(zoom))
	})
}

func (a *Application) refreshStatus() {
	a.mu.Lock()
	tab := a.session.Current()
	path := ""
	zoom := a.cfg.ZoomLevel
	if tab != nil {
		path = tab.Path
		zoom = tab.Zoom
	}
	a.mu.Unlock()

	a.guiManager.UpdateStatus(path, zoom)
}
