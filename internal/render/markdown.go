package render

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"

	"go.withmatt.com/narrow/internal/config"
)

func markdownStyle(theme config.Theme) ansi.StyleConfig {
	style := glamourstyles.DarkStyleConfig

	// Bodies sit inside the message gutter already.
	style.Document.Margin = ptr(uint(0))
	style.Document.BlockPrefix = ""
	style.Document.BlockSuffix = ""
	style.Document.Color = ptr(theme.Status.Fg)
	style.Paragraph.Color = ptr(theme.Status.Fg)
	style.Text.Color = ptr(theme.Status.Fg)

	style.BlockQuote.Color = ptr(theme.Status.Dim)
	style.BlockQuote.IndentToken = ptr("▍ ")

	style.Heading.Color = ptr(theme.Status.ModeBg)
	style.H1.Color = ptr(theme.Status.ModeBg)
	style.H1.BackgroundColor = nil
	for _, h := range []*ansi.StyleBlock{&style.H2, &style.H3, &style.H4, &style.H5, &style.H6} {
		h.Color = ptr(theme.Status.ModeBg)
	}

	style.HorizontalRule.Color = ptr(theme.Status.Dim)

	style.Link.Color = ptr(theme.Message.LinkFg)
	style.LinkText.Color = ptr(theme.Message.LinkFg)
	style.LinkText.Bold = ptr(true)

	style.Code.Color = ptr(theme.Status.Fg)
	style.CodeBlock.Color = ptr(theme.Status.Fg)

	return style
}

func newGlamourRenderer(theme config.Theme, width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle(theme)),
		glamour.WithEmoji(),
		glamour.WithLinkFormatter(linkFormatter()),
		glamour.WithWordWrap(width),
	)
}

func ptr[T any](value T) *T {
	return &value
}
