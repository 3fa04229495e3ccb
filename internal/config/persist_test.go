package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	path, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialFileMergesOverDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeConfigFile(t, `{"font_size": 20, "editor": "vim", "auto_reload": true}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FontSize != 20 {
		t.Errorf("FontSize = %d, want 20", cfg.FontSize)
	}
	if cfg.Editor != "vim" {
		t.Errorf("Editor = %q, want vim", cfg.Editor)
	}
	if !cfg.AutoReload {
		t.Error("AutoReload = false, want true")
	}
	// Keys absent from the file keep their defaults.
	if cfg.WindowWidth != 900 {
		t.Errorf("WindowWidth = %d, want default 900", cfg.WindowWidth)
	}
	if cfg.ZoomLevel != 1.0 {
		t.Errorf("ZoomLevel = %v, want default 1.0", cfg.ZoomLevel)
	}
}

func TestLoadZeroValuesWinOverDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeConfigFile(t, `{"show_status_bar": false, "max_width": 0}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ShowStatusBar {
		t.Error("ShowStatusBar = true, want explicit false from file")
	}
	if cfg.MaxWidth != 0 {
		t.Errorf("MaxWidth = %d, want explicit 0 from file", cfg.MaxWidth)
	}
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated object", `{"font_size": 20`},
		{"not json", "font_size = 20"},
		{"wrong value type", `{"font_size": "twenty"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			writeConfigFile(t, tt.content)

			cfg, err := Load()
			if err == nil {
				t.Error("expected a parse error to be reported")
			}
			if !reflect.DeepEqual(cfg, Default()) {
				t.Errorf("expected defaults on malformed input, got %+v", cfg)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.ZoomLevel = 1.3
	cfg.FontSize = 18
	cfg.Editor = "hx"
	cfg.LastFiles = []string{"/tmp/a.md", "/tmp/b.md"}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}

	// Saving the loaded record again must not change the file.
	if err := Save(loaded); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	again, err := Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !reflect.DeepEqual(again, loaded) {
		t.Errorf("second round trip mismatch:\n got %+v\nwant %+v", again, loaded)
	}
}

func TestUnknownKeysSurviveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeConfigFile(t, `{"font_size": 14, "experimental_gpu": true, "plugins": ["toc"]}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if string(raw["experimental_gpu"]) != "true" {
		t.Errorf("experimental_gpu = %s, want true", raw["experimental_gpu"])
	}
	if string(raw["plugins"]) != `["toc"]` {
		t.Errorf("plugins = %s, want [\"toc\"]", raw["plugins"])
	}
	if string(raw["font_size"]) != "14" {
		t.Errorf("font_size = %s, want 14", raw["font_size"])
	}
}

func TestSaveCreatesConfigDirectory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Save(Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	path, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}
