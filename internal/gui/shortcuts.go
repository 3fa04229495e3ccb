package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// ShortcutHandlers carries the callbacks bound to the keyboard
// shortcuts. Nil handlers are skipped.
type ShortcutHandlers struct {
	Open      func()
	CloseTab  func()
	NewTab    func()
	Reload    func()
	ZoomIn    func()
	ZoomOut   func()
	ZoomReset func()
	Quit      func()
}

// RegisterShortcuts binds Ctrl+O/W/T/R/+/=/-/0/Q on the window canvas.
func (m *Manager) RegisterShortcuts(handlers ShortcutHandlers) {
	bindings := []struct {
		key     fyne.KeyName
		handler func()
	}{
		{fyne.KeyO, handlers.Open},
		{fyne.KeyW, handlers.CloseTab},
		{fyne.KeyT, handlers.NewTab},
		{fyne.KeyR, handlers.Reload},
		{fyne.KeyPlus, handlers.ZoomIn},
		{fyne.KeyEqual, handlers.ZoomIn},
		{fyne.KeyMinus, handlers.ZoomOut},
		{fyne.Key0, handlers.ZoomReset},
		{fyne.KeyQ, handlers.Quit},
	}

	canvas := m.window.Canvas()
	for _, binding := range bindings {
		if binding.handler == nil {
			continue
		}
		handler := binding.handler
		shortcut := &desktop.CustomShortcut{
			KeyName:  binding.key,
			Modifier: fyne.KeyModifierControl,
		}
		canvas.AddShortcut(shortcut, func(fyne.Shortcut) {
			handler()
		})
	}

	m.log.Debug("GUIManager", "keyboard shortcuts registered", map[string]interface{}{
		"count": len(bindings),
	})
}
