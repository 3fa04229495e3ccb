// Package render converts markdown source into complete themed HTML
// documents.
package render

import (
	"bytes"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// Renderer wraps a goldmark instance configured with a fixed extension
// list: GFM (fenced code, tables, strikethrough, autolinks), typographic
// replacements, class-based syntax highlighting, auto heading IDs, hard
// line breaks, and raw HTML passthrough.
type Renderer struct {
	md goldmark.Markdown
}

func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
				highlighting.NewHighlighting(
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
					),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				htmlrenderer.WithHardWraps(),
				htmlrenderer.WithUnsafe(),
			),
		),
	}
}

// Convert renders markdown source to an HTML fragment.
func (r *Renderer) Convert(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Page renders markdown into a full themed document. A conversion failure
// produces an inline error document instead of propagating.
func (r *Renderer) Page(source []byte, css, overrides string) string {
	body, err := r.Convert(source)
	if err != nil {
		body = ErrorDocument(err)
	}
	return Document(body, css, overrides)
}

// Document wraps an HTML fragment in a complete page with the resolved
// stylesheet and the config override fragment inlined.
func Document(body, css, overrides string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
    %s
    %s
    </style>
</head>
<body>
%s
</body>
</html>`, css, overrides, body)
}

// ErrorDocument renders a failure as displayable content in place of the
// document body.
func ErrorDocument(err error) string {
	return fmt.Sprintf("<h1>Error</h1><pre>%s</pre>", html.EscapeString(err.Error()))
}
