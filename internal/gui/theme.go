package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// zoomTheme scales text sizes by a factor while deferring everything
// else to the wrapped theme. Applying it app-wide is how zoom reaches
// the rendered document.
type zoomTheme struct {
	fyne.Theme
	factor float32
}

func (t zoomTheme) Size(n fyne.ThemeSizeName) float32 {
	switch n {
	case theme.SizeNameText,
		theme.SizeNameHeadingText,
		theme.SizeNameSubHeadingText,
		theme.SizeNameCaptionText:
		return t.Theme.Size(n) * t.factor
	}
	return t.Theme.Size(n)
}

// ZoomedTheme wraps the default theme with the given text scale factor.
func ZoomedTheme(factor float64) fyne.Theme {
	return zoomTheme{Theme: theme.DefaultTheme(), factor: float32(factor)}
}

func zoomPercent(factor float64) string {
	return fmt.Sprintf("%.0f%%", factor*100)
}
