package app

import (
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/AlexK-Notable/mdview/internal/config"
	"github.com/AlexK-Notable/mdview/internal/events"
	"github.com/AlexK-Notable/mdview/internal/gui"
	"github.com/AlexK-Notable/mdview/internal/logger"
	"github.com/AlexK-Notable/mdview/internal/preview"
	"github.com/AlexK-Notable/mdview/internal/render"
	"github.com/AlexK-Notable/mdview/internal/session"
	"github.com/AlexK-Notable/mdview/internal/shutdown"
	"github.com/AlexK-Notable/mdview/internal/watch"
)

const (
	AppName         = "mdview"
	AppID           = "com.github.mdview"
	AppVersion      = "1.0.0"
	MinWindowWidth  = 400
	MinWindowHeight = 300

	eventBufferSize = 64
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	log        logger.Logger
	guiManager *gui.Manager
	renderer   *render.Renderer
	preview    *preview.Server
	bus        *events.Bus
	shutdown   *shutdown.Manager

	mu            sync.Mutex
	cfg           config.Config
	session       *session.Session
	fileWatchers  map[string]*watch.Watcher
	configWatcher *watch.Watcher

	quitOnce sync.Once
}

// NewApplication builds the window, wires the GUI manager, handlers and
// shortcuts, and opens the initial files (one empty tab when none are
// given or none exist).
func NewApplication(cfg config.Config, log logger.Logger, files []string) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	fyneApp.Settings().SetTheme(gui.ZoomedTheme(cfg.ZoomLevel))

	window := fyneApp.NewWindow(AppName)
	width := max(cfg.WindowWidth, MinWindowWidth)
	height := max(cfg.WindowHeight, MinWindowHeight)
	window.Resize(fyne.NewSize(float32(width), float32(height)))
	window.CenterOnScreen()
	window.SetMaster()

	guiManager := gui.NewManager(window, log)

	application := &Application{
		fyneApp:      fyneApp,
		window:       window,
		log:          log,
		guiManager:   guiManager,
		renderer:     render.New(),
		preview:      preview.NewServer(log),
		bus:          events.NewBus(eventBufferSize),
		shutdown:     shutdown.NewManager(log),
		cfg:          cfg,
		session:      session.New(),
		fileWatchers: make(map[string]*watch.Watcher),
	}

	application.setupHandlers()
	application.setupEventSubscriptions()
	application.setupConfigWatcher()
	application.setupShutdown()

	guiManager.SetStatusBarVisible(cfg.ShowStatusBar)
	application.openInitialFiles(files)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"initial_files": len(files),
	})
	return application, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetOpenHandler(a.handleOpenRequest)
	a.guiManager.SetZoomInHandler(a.handleZoomIn)
	a.guiManager.SetZoomOutHandler(a.handleZoomOut)
	a.guiManager.SetZoomResetHandler(a.handleZoomReset)
	a.guiManager.SetBrowserHandler(a.handleOpenInBrowser)
	a.guiManager.SetSettingsHandler(a.handleSettings)
	a.guiManager.SetTabCloseHandler(a.handleCloseTab)
	a.guiManager.SetTabSelectedHandler(a.handleTabSelected)

	a.guiManager.RegisterShortcuts(gui.ShortcutHandlers{
		Open:      a.handleOpenRequest,
		CloseTab:  a.handleCloseCurrentTab,
		NewTab:    a.handleNewTab,
		Reload:    a.handleReload,
		ZoomIn:    a.handleZoomIn,
		ZoomOut:   a.handleZoomOut,
		ZoomReset: a.handleZoomReset,
		Quit:      a.quit,
	})
}

func (a *Application) setupEventSubscriptions() {
	a.bus.Subscribe(events.TypeFileChanged, func(event events.Event) {
		path, _ := event.Data["path"].(string)
		a.handleFileChanged(path)
	})
	a.bus.Subscribe(events.TypeConfigChanged, func(events.Event) {
		a.handleConfigChanged()
	})
}

func (a *Application) setupConfigWatcher() {
	configPath, err := config.Path()
	if err != nil {
		a.log.Warning("Application", "config path unavailable, not watching", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	watcher, err := watch.NewFileWatcher(configPath, func() {
		a.bus.Publish(events.Event{Type: events.TypeConfigChanged})
	}, a.log)
	if err != nil {
		// Config file may not exist yet. Runs fine without live reload.
		a.log.Debug("Application", "config watch unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	a.configWatcher = watcher
}

func (a *Application) setupShutdown() {
	a.shutdown.Register("event-bus", a.bus)
	a.shutdown.Register("preview-server", shutdownFunc(a.preview.Shutdown))
	a.shutdown.Register("file-watchers", shutdownFunc(a.closeAllWatchers))
	a.shutdown.Register("gui-manager", a.guiManager)
	a.shutdown.Listen()

	go func() {
		<-a.shutdown.Done()
		a.quit()
	}()
}

func (a *Application) openInitialFiles(files []string) {
	for _, file := range files {
		a.openFile(file)
	}
	if a.session.Len() == 0 {
		a.handleNewTab()
	}
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.log.Info("Application", "shutdown requested", nil)
		a.quit()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.log.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// quit is the single exit path: it persists state, runs the shutdown
// sequence and closes the window. Every way out converges here, since
// closing the window programmatically does not run the close intercept.
func (a *Application) quit() {
	a.quitOnce.Do(func() {
		a.saveState()
		a.shutdown.Shutdown()
		fyne.Do(a.window.Close)
	})
}

// saveState records window geometry, open files and the active zoom
// before the config file is written.
func (a *Application) saveState() {
	a.mu.Lock()
	size := a.window.Canvas().Size()
	a.cfg.WindowWidth = int(size.Width)
	a.cfg.WindowHeight = int(size.Height)
	a.cfg.LastFiles = a.session.OpenFiles()
	if tab := a.session.Current(); tab != nil {
		a.cfg.ZoomLevel = tab.Zoom
	}
	cfg := a.cfg
	a.mu.Unlock()

	if err := config.Save(cfg); err != nil {
		a.log.Error("Application", err, map[string]interface{}{
			"action": "save state",
		})
	}
}

func (a *Application) closeAllWatchers() {
	a.mu.Lock()
	watchers := make([]*watch.Watcher, 0, len(a.fileWatchers)+1)
	for _, w := range a.fileWatchers {
		watchers = append(watchers, w)
	}
	a.fileWatchers = make(map[string]*watch.Watcher)
	if a.configWatcher != nil {
		watchers = append(watchers, a.configWatcher)
		a.configWatcher = nil
	}
	a.mu.Unlock()

	for _, w := range watchers {
		w.Close()
	}
}

// shutdownFunc adapts a plain function to the shutdown registry.
type shutdownFunc func()

func (f shutdownFunc) Shutdown() { f() }
