package render

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"go.withmatt.com/narrow/internal/config"
)

// worker owns a converter and a glamour renderer. Neither is shared between
// goroutines.
type worker struct {
	theme     config.Theme
	converter *md.Converter
	glamour   *glamour.TermRenderer
	width     int
	logf      func(string, ...any)
}

func newWorker(theme config.Theme, logf func(string, ...any)) *worker {
	return &worker{
		theme: theme,
		converter: md.NewConverter(
			md.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(
					commonmark.WithStrongDelimiter("**"),
					commonmark.WithEmDelimiter("_"),
					commonmark.WithCodeBlockFence("```"),
				),
			),
			md.WithEscapeMode(md.EscapeModeDisabled),
		),
		logf: logf,
	}
}

// Markdown converts a message body from HTML. Bodies that fail to convert
// are returned unchanged.
func (w *worker) markdown(content string) string {
	markdown, err := w.converter.ConvertString(content)
	if err != nil {
		w.logf("render: html to markdown: %v", err)
		return content
	}
	return markdown
}

func (w *worker) render(content string, width int) []string {
	markdown := w.markdown(content)

	if w.glamour == nil || w.width != width {
		r, err := newGlamourRenderer(w.theme, width)
		if err != nil {
			w.logf("render: glamour renderer: %v", err)
			return plainBody(markdown, width)
		}
		w.glamour, w.width = r, width
	}

	rendered, err := w.glamour.Render(markdown)
	if err != nil {
		w.logf("render: glamour: %v", err)
		return plainBody(markdown, width)
	}
	return splitBody(restoreLinkText(rendered))
}

// plainBody wraps text without any markdown styling.
func plainBody(text string, width int) []string {
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	return splitBody(text)
}

// splitBody drops blank lines around the body and keeps at least one line so
// every message occupies space.
func splitBody(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return []string{""}
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}
