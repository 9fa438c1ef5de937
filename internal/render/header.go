package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"go.withmatt.com/narrow/internal/config"
	"go.withmatt.com/narrow/internal/store"
)

const (
	gutterWidth    = 2
	selectedGutter = "▌ "
	unreadMark     = "●"
)

type styles struct {
	gutter   lipgloss.Style
	sender   lipgloss.Style
	meta     lipgloss.Style
	unread   lipgloss.Style
	selected lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	return styles{
		gutter:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Message.SelectedFg)),
		sender:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Message.SenderFg)).Bold(true),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Message.MetaFg)).Faint(true),
		unread:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Message.UnreadFg)),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Message.SelectedFg)).Bold(true),
	}
}

// header renders "● sender  #stream > topic ... 5m" in width cells.
func (s styles) header(msg store.Message, selected bool, width int, now time.Time) string {
	when := relativeTime(msg.SentAt, now)
	where := "#" + msg.Stream
	if msg.Topic != "" {
		where += " > " + msg.Topic
	}

	mark := " "
	if !msg.Read {
		mark = unreadMark
	}

	whenWidth := runewidth.StringWidth(when)
	// mark and space on the left, at least one space before the time
	avail := width - 2 - whenWidth - 1
	if avail <= 0 {
		return runewidth.Truncate(when, max(width, 0), "")
	}
	sender := runewidth.Truncate(msg.Sender, avail, "…")
	used := runewidth.StringWidth(sender)
	place := ""
	if room := avail - used - 2; room > 1 {
		place = runewidth.Truncate(where, room, "…")
		used += 2 + runewidth.StringWidth(place)
	}
	pad := width - 2 - used - whenWidth

	var b strings.Builder
	if mark == unreadMark {
		b.WriteString(s.unread.Render(mark))
	} else {
		b.WriteString(mark)
	}
	b.WriteString(" ")
	if selected {
		b.WriteString(s.selected.Render(sender))
	} else {
		b.WriteString(s.sender.Render(sender))
	}
	if place != "" {
		b.WriteString("  ")
		b.WriteString(s.meta.Render(place))
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(s.meta.Render(when))
	return b.String()
}

func (s styles) gutterFor(selected bool) string {
	if selected {
		return s.gutter.Render(selectedGutter)
	}
	return strings.Repeat(" ", gutterWidth)
}

func relativeTime(sent, now time.Time) string {
	if sent.IsZero() {
		return ""
	}
	d := now.Sub(sent)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d/time.Hour))
	case sent.Year() == now.Year():
		return sent.Local().Format("Jan 2")
	default:
		return sent.Local().Format("Jan 2 2006")
	}
}
