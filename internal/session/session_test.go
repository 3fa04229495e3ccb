package session

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func tempMarkdownFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("# "+name), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestOpenNonexistentPathIsNoOp(t *testing.T) {
	s := New()

	tab, created := s.Open(filepath.Join(t.TempDir(), "missing.md"), 1.0)
	if tab != nil || created {
		t.Errorf("Open(missing) = (%v, %v), want (nil, false)", tab, created)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if s.Current() != nil {
		t.Error("Current should be nil for an empty session")
	}
}

func TestOpenCreatesAndSelectsTab(t *testing.T) {
	s := New()
	path := tempMarkdownFile(t, "a.md")

	tab, created := s.Open(path, 1.2)
	if tab == nil || !created {
		t.Fatalf("Open = (%v, %v), want new tab", tab, created)
	}
	if s.Current() != tab {
		t.Error("new tab should be selected")
	}
	if tab.Zoom != 1.2 {
		t.Errorf("Zoom = %v, want 1.2", tab.Zoom)
	}
	if tab.Title() != "a.md" {
		t.Errorf("Title = %q, want a.md", tab.Title())
	}
}

func TestOpenDeduplicatesByPath(t *testing.T) {
	s := New()
	a := tempMarkdownFile(t, "a.md")
	b := tempMarkdownFile(t, "b.md")

	first, _ := s.Open(a, 1.0)
	s.Open(b, 1.0)

	again, created := s.Open(a, 1.0)
	if created {
		t.Error("reopening an open file must not create a tab")
	}
	if again != first {
		t.Error("reopening should return the existing tab")
	}
	if s.Current() != first {
		t.Error("reopening should select the existing tab")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestCloseRemovesActiveTab(t *testing.T) {
	s := New()
	a := tempMarkdownFile(t, "a.md")
	b := tempMarkdownFile(t, "b.md")
	s.Open(a, 1.0)
	tabB, _ := s.Open(b, 1.0)

	if remaining := s.Close(); remaining != 1 {
		t.Errorf("Close = %d remaining, want 1", remaining)
	}
	if cur := s.Current(); cur == nil || cur == tabB {
		t.Error("closing the active tab should select the neighbour")
	}

	if remaining := s.Close(); remaining != 0 {
		t.Errorf("Close = %d remaining, want 0", remaining)
	}
	if s.Close() != 0 {
		t.Error("Close on an empty session should be a no-op")
	}
}

func TestUntitledTab(t *testing.T) {
	s := New()
	tab := s.NewTab("", 1.0)

	if tab.Title() != "Untitled" {
		t.Errorf("Title = %q, want Untitled", tab.Title())
	}
	if files := s.OpenFiles(); len(files) != 0 {
		t.Errorf("OpenFiles = %v, want empty for untitled tabs", files)
	}
}

func TestOpenFilesListsPathsInOrder(t *testing.T) {
	s := New()
	a := tempMarkdownFile(t, "a.md")
	b := tempMarkdownFile(t, "b.md")
	s.Open(a, 1.0)
	s.Open(b, 1.0)
	s.NewTab("", 1.0)

	files := s.OpenFiles()
	if len(files) != 2 || files[0] != a || files[1] != b {
		t.Errorf("OpenFiles = %v, want [%s %s]", files, a, b)
	}
}

func TestZoomClamping(t *testing.T) {
	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{"below minimum", 0.1, MinZoom},
		{"at minimum", 0.5, 0.5},
		{"normal", 1.4, 1.4},
		{"at maximum", 3.0, 3.0},
		{"above maximum", 5.0, MaxZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := &Tab{}
			tab.SetZoom(tt.set)
			if tab.Zoom != tt.want {
				t.Errorf("SetZoom(%v): Zoom = %v, want %v", tt.set, tab.Zoom, tt.want)
			}
		})
	}
}

func TestZoomStepsAndReset(t *testing.T) {
	tab := &Tab{}
	tab.SetZoom(1.0)

	tab.ZoomIn()
	if math.Abs(tab.Zoom-1.1) > 1e-9 {
		t.Errorf("ZoomIn: %v, want 1.1", tab.Zoom)
	}
	tab.ZoomOut()
	tab.ZoomOut()
	if math.Abs(tab.Zoom-0.9) > 1e-9 {
		t.Errorf("ZoomOut twice: %v, want 0.9", tab.Zoom)
	}
	tab.ZoomReset()
	if tab.Zoom != 1.0 {
		t.Errorf("ZoomReset: %v, want 1.0", tab.Zoom)
	}

	// Repeated zoom-out bottoms out at the minimum.
	for i := 0; i < 20; i++ {
		tab.ZoomOut()
	}
	if tab.Zoom != MinZoom {
		t.Errorf("Zoom = %v, want clamped to %v", tab.Zoom, MinZoom)
	}
}
