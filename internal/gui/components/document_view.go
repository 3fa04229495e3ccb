package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DocumentView renders markdown source inside a scrollable pane. One
// view exists per tab and keeps its scroll position across reloads.
type DocumentView struct {
	scroll *container.Scroll
	text   *widget.RichText
}

func NewDocumentView() *DocumentView {
	text := widget.NewRichText()
	text.Wrapping = fyne.TextWrapWord

	return &DocumentView{
		scroll: container.NewVScroll(text),
		text:   text,
	}
}

func (v *DocumentView) CanvasObject() fyne.CanvasObject {
	return v.scroll
}

// ShowMarkdown replaces the view content while preserving the current
// scroll offset, so an auto-reload does not jump to the top.
func (v *DocumentView) ShowMarkdown(source string) {
	offset := v.scroll.Offset
	v.text.ParseMarkdown(source)
	v.scroll.Offset = offset
	v.scroll.Refresh()
}

// ShowError replaces the content with an inline error message instead
// of surfacing a dialog.
func (v *DocumentView) ShowError(err error) {
	v.ShowMarkdown(fmt.Sprintf("# Error\n\n```\n%v\n```", err))
}
