package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the active file path on the left and the zoom factor
// on the right.
type StatusBar struct {
	container *fyne.Container
	pathLabel *widget.Label
	zoomLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	s := &StatusBar{
		pathLabel: widget.NewLabel(""),
		zoomLabel: widget.NewLabel("100%"),
	}
	s.pathLabel.Truncation = fyne.TextTruncateEllipsis
	s.container = container.NewBorder(nil, nil, nil, s.zoomLabel, s.pathLabel)
	return s
}

func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

func (s *StatusBar) SetPath(path string) {
	s.pathLabel.SetText(path)
}

func (s *StatusBar) SetZoom(factor float64) {
	s.zoomLabel.SetText(fmt.Sprintf("%.0f%%", factor*100))
}

func (s *StatusBar) SetVisible(visible bool) {
	if visible {
		s.container.Show()
	} else {
		s.container.Hide()
	}
}
