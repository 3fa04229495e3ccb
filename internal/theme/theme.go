// Package theme resolves the stylesheet applied to rendered documents.
//
// Sources are tried in a fixed priority order: a user-supplied stylesheet
// named in the config, then the stylesheet emitted by the external
// color-scheme generator, then a built-in dark fallback. A second fragment
// of overrides is interpolated from the config's font settings and appended
// after whichever stylesheet won.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexK-Notable/mdview/internal/config"
)

const generatedCSSName = "style.css"

// GeneratedPath returns the location where the external color-scheme tool
// drops its stylesheet.
func GeneratedPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, generatedCSSName), nil
}

// Resolve picks the stylesheet for the current config. Missing or unreadable
// sources fall through to the next candidate; the fallback always succeeds.
func Resolve(cfg config.Config) string {
	if cfg.CustomCSSPath != "" {
		custom := ExpandUser(cfg.CustomCSSPath)
		if data, err := os.ReadFile(custom); err == nil {
			return string(data)
		}
	}

	if generated, err := GeneratedPath(); err == nil {
		if data, err := os.ReadFile(generated); err == nil {
			return string(data)
		}
	}

	return FallbackCSS
}

// Overrides builds the CSS fragment that maps config font settings onto the
// document body and code blocks. It is appended after the resolved
// stylesheet so the config always wins.
func Overrides(cfg config.Config) string {
	return fmt.Sprintf(`
body {
    font-family: %s;
    font-size: %dpx;
    line-height: %g;
    max-width: %dem;
}
code, pre code {
    font-family: %s;
}
`, cfg.FontFamily, cfg.FontSize, cfg.LineHeight, cfg.MaxWidth, cfg.CodeFont)
}

// ExpandUser replaces a leading ~ with the user's home directory.
func ExpandUser(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// FallbackCSS is the built-in dark stylesheet used when no other source
// exists.
const FallbackCSS = `
:root {
    --bg-color: #1e1e2e;
    --fg-color: #cdd6f4;
    --accent-color: #89b4fa;
    --code-bg: #313244;
    --border-color: #45475a;
}
body {
    background-color: var(--bg-color);
    color: var(--fg-color);
    font-family: system-ui, -apple-system, sans-serif;
    font-size: 16px;
    line-height: 1.6;
    padding: 2em;
    max-width: 50em;
    margin: 0 auto;
}
h1 { font-size: 2em; border-bottom: 1px solid var(--border-color); padding-bottom: 0.3em; }
h2 { font-size: 1.5em; border-bottom: 1px solid var(--border-color); padding-bottom: 0.3em; }
h3 { font-size: 1.25em; }
h4 { font-size: 1em; }
h5 { font-size: 0.875em; }
h6 { font-size: 0.85em; }
a { color: var(--accent-color); text-decoration: none; }
a:hover { text-decoration: underline; }
code {
    background-color: var(--code-bg);
    padding: 0.2em 0.4em;
    border-radius: 3px;
    font-family: monospace;
}
pre {
    background-color: var(--code-bg);
    padding: 1em;
    border-radius: 6px;
    overflow-x: auto;
}
pre code { padding: 0; background: none; }
blockquote {
    border-left: 4px solid var(--accent-color);
    margin: 0;
    padding-left: 1em;
    color: var(--fg-color);
    opacity: 0.8;
}
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid var(--border-color); padding: 0.5em; }
th { background-color: var(--code-bg); }
img { max-width: 100%; }
hr { border: none; border-top: 1px solid var(--border-color); }
`
