package config

import "encoding/json"

// Config is the flat settings record persisted to config.json. JSON names
// match the on-disk file; unknown keys found in the file are carried in
// extra and written back untouched on save.
type Config struct {
	// Display
	ZoomLevel  float64 `json:"zoom_level"`
	FontFamily string  `json:"font_family"`
	FontSize   int     `json:"font_size"`
	CodeFont   string  `json:"code_font"`
	LineHeight float64 `json:"line_height"`
	MaxWidth   int     `json:"max_width"`

	// Behavior
	AutoReload       bool   `json:"auto_reload"`
	RememberPosition bool   `json:"remember_position"`
	DefaultDirectory string `json:"default_directory"`

	// UI
	ShowStatusBar bool   `json:"show_status_bar"`
	CustomCSSPath string `json:"custom_css_path"`

	// Window
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
	WindowX      int `json:"window_x"`
	WindowY      int `json:"window_y"`

	// Tools
	Editor   string `json:"editor"`
	Terminal string `json:"terminal"`

	// State
	LastFiles []string `json:"last_files"`

	extra map[string]json.RawMessage
}

// fileConfig mirrors Config with pointer fields so that keys absent from
// the file can be told apart from zero values during the merge.
type fileConfig struct {
	ZoomLevel        *float64 `json:"zoom_level"`
	FontFamily       *string  `json:"font_family"`
	FontSize         *int     `json:"font_size"`
	CodeFont         *string  `json:"code_font"`
	LineHeight       *float64 `json:"line_height"`
	MaxWidth         *int     `json:"max_width"`
	AutoReload       *bool    `json:"auto_reload"`
	RememberPosition *bool    `json:"remember_position"`
	DefaultDirectory *string  `json:"default_directory"`
	ShowStatusBar    *bool    `json:"show_status_bar"`
	CustomCSSPath    *string  `json:"custom_css_path"`
	WindowWidth      *int     `json:"window_width"`
	WindowHeight     *int     `json:"window_height"`
	WindowX          *int     `json:"window_x"`
	WindowY          *int     `json:"window_y"`
	Editor           *string  `json:"editor"`
	Terminal         *string  `json:"terminal"`
	LastFiles        []string `json:"last_files"`
}

// Default returns the built-in settings record.
func Default() Config {
	return Config{
		ZoomLevel:        1.0,
		FontFamily:       "system-ui, -apple-system, sans-serif",
		FontSize:         16,
		CodeFont:         "JetBrains Mono, Fira Code, Consolas, monospace",
		LineHeight:       1.7,
		MaxWidth:         52,
		AutoReload:       false,
		RememberPosition: true,
		DefaultDirectory: "",
		ShowStatusBar:    true,
		CustomCSSPath:    "",
		WindowWidth:      900,
		WindowHeight:     700,
		WindowX:          -1,
		WindowY:          -1,
		Editor:           "micro",
		Terminal:         "ghostty",
		LastFiles:        []string{},
	}
}
