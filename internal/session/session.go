// Package session tracks the transient set of open tabs. Tabs exist only
// for the lifetime of the process; on shutdown their paths are written to
// the config's last_files list.
package session

import (
	"os"
	"path/filepath"
)

const (
	MinZoom  = 0.5
	MaxZoom  = 3.0
	ZoomStep = 0.1
)

// Tab is one open document: a resolved file path and its zoom level. A tab
// with an empty path is an untitled placeholder.
type Tab struct {
	Path string
	Zoom float64
}

// Title returns the tab label shown in the tab bar.
func (t *Tab) Title() string {
	if t.Path == "" {
		return "Untitled"
	}
	return filepath.Base(t.Path)
}

// SetZoom clamps the level into [MinZoom, MaxZoom].
func (t *Tab) SetZoom(level float64) {
	if level < MinZoom {
		level = MinZoom
	}
	if level > MaxZoom {
		level = MaxZoom
	}
	t.Zoom = level
}

func (t *Tab) ZoomIn()    { t.SetZoom(t.Zoom + ZoomStep) }
func (t *Tab) ZoomOut()   { t.SetZoom(t.Zoom - ZoomStep) }
func (t *Tab) ZoomReset() { t.SetZoom(1.0) }

// Session holds the ordered tabs and the active selection.
type Session struct {
	tabs   []*Tab
	active int
}

func New() *Session {
	return &Session{active: -1}
}

// NewTab appends an untitled or file-backed tab and selects it. The path is
// taken as-is; use Open for user-supplied paths.
func (s *Session) NewTab(path string, zoom float64) *Tab {
	tab := &Tab{Path: path}
	tab.SetZoom(zoom)
	s.tabs = append(s.tabs, tab)
	s.active = len(s.tabs) - 1
	return tab
}

// Open resolves the path and opens it in a tab. A nonexistent path is a
// no-op returning (nil, false). A path that is already open selects the
// existing tab and reports created=false.
func (s *Session) Open(path string, zoom float64) (tab *Tab, created bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, false
	}

	for i, existing := range s.tabs {
		if existing.Path == abs {
			s.active = i
			return existing, false
		}
	}

	return s.NewTab(abs, zoom), true
}

// Close removes the active tab and returns the number of tabs left. Closing
// with no active tab is a no-op.
func (s *Session) Close() int {
	if s.active < 0 || s.active >= len(s.tabs) {
		return len(s.tabs)
	}
	s.tabs = append(s.tabs[:s.active], s.tabs[s.active+1:]...)
	if s.active >= len(s.tabs) {
		s.active = len(s.tabs) - 1
	}
	return len(s.tabs)
}

// Select makes the tab at index the active one. Out-of-range indexes are
// ignored.
func (s *Session) Select(index int) {
	if index >= 0 && index < len(s.tabs) {
		s.active = index
	}
}

// Current returns the active tab, or nil when the session is empty.
func (s *Session) Current() *Tab {
	if s.active < 0 || s.active >= len(s.tabs) {
		return nil
	}
	return s.tabs[s.active]
}

// ActiveIndex returns the index of the active tab, or -1.
func (s *Session) ActiveIndex() int {
	if s.active >= len(s.tabs) {
		return -1
	}
	return s.active
}

// Tabs returns the tabs in order.
func (s *Session) Tabs() []*Tab {
	return s.tabs
}

func (s *Session) Len() int {
	return len(s.tabs)
}

// OpenFiles returns the paths of all file-backed tabs, for persisting as
// last_files.
func (s *Session) OpenFiles() []string {
	files := make([]string, 0, len(s.tabs))
	for _, t := range s.tabs {
		if t.Path != "" {
			files = append(files, t.Path)
		}
	}
	return files
}
