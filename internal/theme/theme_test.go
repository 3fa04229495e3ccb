package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexK-Notable/mdview/internal/config"
)

func writeGeneratedCSS(t *testing.T, content string) {
	t.Helper()
	path, err := GeneratedPath()
	if err != nil {
		t.Fatalf("GeneratedPath: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestResolvePrefersCustomPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeGeneratedCSS(t, "body { color: generated; }")

	custom := filepath.Join(t.TempDir(), "custom.css")
	if err := os.WriteFile(custom, []byte("body { color: custom; }"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := config.Default()
	cfg.CustomCSSPath = custom

	if got := Resolve(cfg); got != "body { color: custom; }" {
		t.Errorf("Resolve = %q, want custom stylesheet", got)
	}
}

func TestResolveFallsBackToGenerated(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeGeneratedCSS(t, "body { color: generated; }")

	cfg := config.Default()
	cfg.CustomCSSPath = filepath.Join(t.TempDir(), "does-not-exist.css")

	if got := Resolve(cfg); got != "body { color: generated; }" {
		t.Errorf("Resolve = %q, want generated stylesheet", got)
	}
}

func TestResolveFallsBackToBuiltin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := config.Default()
	if got := Resolve(cfg); got != FallbackCSS {
		t.Errorf("Resolve did not return the built-in fallback")
	}
}

func TestOverridesInterpolatesConfigValues(t *testing.T) {
	cfg := config.Default()
	cfg.FontFamily = "TestSans"
	cfg.FontSize = 21
	cfg.LineHeight = 1.9
	cfg.MaxWidth = 64
	cfg.CodeFont = "TestMono"

	got := Overrides(cfg)
	for _, want := range []string{
		"font-family: TestSans;",
		"font-size: 21px;",
		"line-height: 1.9;",
		"max-width: 64em;",
		"font-family: TestMono;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Overrides missing %q in:\n%s", want, got)
		}
	}
}

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/notes/a.md", filepath.Join(home, "notes/a.md")},
		{"~", home},
		{"/abs/path.css", "/abs/path.css"},
		{"relative.css", "relative.css"},
	}
	for _, tt := range tests {
		if got := ExpandUser(tt.in); got != tt.want {
			t.Errorf("ExpandUser(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
