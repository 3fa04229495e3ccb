package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDirName  = "mdview"
	configFileName = "config.json"
)

// Path returns the location of config.json under the user config directory.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// Dir returns the application config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName), nil
}

// Load reads config.json and shallow-merges it over the defaults. The
// returned Config is always usable: a missing file yields pure defaults,
// and a malformed file yields defaults alongside the parse error so the
// caller can log it.
func Load() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return cfg, err
	}
	merged := mergeConfig(cfg, stored)
	merged.extra = unknownKeys(raw)
	return merged, nil
}

// Save writes the record as indented JSON, creating the config directory if
// needed. Unknown keys captured at load time are written back unchanged.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalWithExtras(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.ZoomLevel != nil {
		merged.ZoomLevel = *stored.ZoomLevel
	}
	if stored.FontFamily != nil {
		merged.FontFamily = *stored.FontFamily
	}
	if stored.FontSize != nil {
		merged.FontSize = *stored.FontSize
	}
	if stored.CodeFont != nil {
		merged.CodeFont = *stored.CodeFont
	}
	if stored.LineHeight != nil {
		merged.LineHeight = *stored.LineHeight
	}
	if stored.MaxWidth != nil {
		merged.MaxWidth = *stored.MaxWidth
	}
	if stored.AutoReload != nil {
		merged.AutoReload = *stored.AutoReload
	}
	if stored.RememberPosition != nil {
		merged.RememberPosition = *stored.RememberPosition
	}
	if stored.DefaultDirectory != nil {
		merged.DefaultDirectory = *stored.DefaultDirectory
	}
	if stored.ShowStatusBar != nil {
		merged.ShowStatusBar = *stored.ShowStatusBar
	}
	if stored.CustomCSSPath != nil {
		merged.CustomCSSPath = *stored.CustomCSSPath
	}
	if stored.WindowWidth != nil {
		merged.WindowWidth = *stored.WindowWidth
	}
	if stored.WindowHeight != nil {
		merged.WindowHeight = *stored.WindowHeight
	}
	if stored.WindowX != nil {
		merged.WindowX = *stored.WindowX
	}
	if stored.WindowY != nil {
		merged.WindowY = *stored.WindowY
	}
	if stored.Editor != nil {
		merged.Editor = *stored.Editor
	}
	if stored.Terminal != nil {
		merged.Terminal = *stored.Terminal
	}
	if stored.LastFiles != nil {
		merged.LastFiles = stored.LastFiles
	}
	return merged
}

// knownKeySet derives the record's JSON names from the struct tags by
// round-tripping the default record through encoding/json.
func knownKeySet() map[string]bool {
	data, err := json.Marshal(Default())
	if err != nil {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	known := make(map[string]bool, len(m))
	for k := range m {
		known[k] = true
	}
	return known
}

func unknownKeys(raw map[string]json.RawMessage) map[string]json.RawMessage {
	known := knownKeySet()
	var extra map[string]json.RawMessage
	for k, v := range raw {
		if known[k] {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[k] = v
	}
	return extra
}

func marshalWithExtras(cfg Config) ([]byte, error) {
	base, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(base, &out); err != nil {
		return nil, err
	}
	for k, v := range cfg.extra {
		if _, taken := out[k]; !taken {
			out[k] = v
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
