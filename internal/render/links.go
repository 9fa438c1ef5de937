package render

import (
	"os"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/charmbracelet/glamour/ansi"
)

var urlRe = regexp.MustCompile(`https?://[^\s<>()\[\]"']+`)

// Links lists the distinct URLs in a message body, in order of appearance.
// Trailing punctuation that usually ends a sentence is not part of a link.
func Links(markdown string) []string {
	var urls []string
	for _, raw := range urlRe.FindAllString(markdown, -1) {
		url := strings.TrimRight(raw, ".,;:!?)]}\"'")
		if url == "" || slices.Contains(urls, url) {
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

func linkFormatter() ansi.LinkFormatter {
	return ansi.LinkFormatterFunc(func(data ansi.LinkData, ctx ansi.RenderContext) (string, error) {
		data.URL = strings.Join(strings.Fields(data.URL), "")
		if supportsOSC8() {
			data.Text = protectLinkText(data.Text)
			return ansi.HyperlinkFormatter.FormatLink(data, ctx)
		}
		return ansi.DefaultFormatter.FormatLink(data, ctx)
	})
}

// Link text is word wrapped by glamour like any other text, which would cut
// hyperlink escapes in half. Break opportunities are swapped for private use
// runes and swapped back after wrapping.
var linkTextSentinels = map[rune]rune{
	' ': '\ue000',
	',': '\ue001',
	'.': '\ue002',
	';': '\ue003',
	'-': '\ue004',
	'+': '\ue005',
	'|': '\ue006',
}

var restoreReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(linkTextSentinels))
	for orig, sentinel := range linkTextSentinels {
		pairs = append(pairs, string(sentinel), string(orig))
	}
	return strings.NewReplacer(pairs...)
}()

func protectLinkText(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			r = ' '
		}
		if sentinel, ok := linkTextSentinels[r]; ok {
			return sentinel
		}
		return r
	}, text)
}

func restoreLinkText(text string) string {
	return restoreReplacer.Replace(text)
}

func supportsOSC8() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "vscode", "Windows Terminal", "WezTerm", "Hyper", "ghostty":
		return true
	}

	term := os.Getenv("TERM")
	for _, supported := range []string{
		"xterm-256color",
		"screen-256color",
		"tmux-256color",
		"alacritty",
		"xterm-kitty",
		"xterm-ghostty",
	} {
		if term != "" && strings.Contains(term, supported) {
			return true
		}
	}

	return os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("ALACRITTY_LOG") != "" ||
		os.Getenv("ALACRITTY_SOCKET") != ""
}
