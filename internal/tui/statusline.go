package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"go.withmatt.com/narrow/internal/config"
)

type statusSegment struct {
	text  string
	style lipgloss.Style
	raw   bool
}

const (
	statusSeparatorGlyph = "\ue0b0"
	statusLabelMaxWidth  = 40
)

func statusBaseStyle(theme config.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Status.Bg)).
		Foreground(lipgloss.Color(theme.Status.Fg))
}

func statusTextSegment(theme config.Theme, text string) statusSegment {
	return statusSegment{text: text, style: statusBaseStyle(theme).Padding(0, 1)}
}

func statusDimSegment(theme config.Theme, text string) statusSegment {
	style := statusBaseStyle(theme).
		Foreground(lipgloss.Color(theme.Status.Dim)).
		Faint(true).
		Padding(0, 1)
	return statusSegment{text: text, style: style}
}

func statusModeSegment(theme config.Theme, text string) statusSegment {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Status.ModeBg)).
		Foreground(lipgloss.Color(theme.Status.ModeFg)).
		Bold(true).
		Padding(0, 1)
	return statusSegment{text: text, style: style}
}

func statusPowerlineSeparator(leftBg string, rightBg string) statusSegment {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(rightBg)).
		Foreground(lipgloss.Color(leftBg))
	return statusSegment{text: statusSeparatorGlyph, style: style}
}

func statusPaddedRaw(theme config.Theme, text string) statusSegment {
	pad := statusBaseStyle(theme).Render(" ")
	return statusSegment{text: pad + text + pad, raw: true}
}

func renderStatusline(
	theme config.Theme,
	width int,
	left []statusSegment,
	right []statusSegment,
) string {
	leftLine := renderStatusSegments(left)
	rightLine := renderStatusSegments(right)

	if width <= 0 {
		return leftLine + statusBaseStyle(theme).Render(" ") + rightLine
	}

	gap := max(width-lipgloss.Width(leftLine)-lipgloss.Width(rightLine), 1)
	filler := statusBaseStyle(theme).Render(strings.Repeat(" ", gap))
	return leftLine + filler + rightLine
}

func renderStatusSegments(segments []statusSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.text == "" {
			continue
		}
		if seg.raw {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(seg.style.Render(seg.text))
	}
	return b.String()
}

func (m *Model) renderStatusline() string {
	mode := "STREAM"
	if m.search.active || m.stream.narrow.Search != "" {
		mode = "SEARCH"
	}

	left := []statusSegment{
		statusModeSegment(m.theme, mode),
		statusPowerlineSeparator(m.theme.Status.ModeBg, m.theme.Status.Bg),
	}
	if m.search.active {
		left = append(left, statusPaddedRaw(m.theme, m.search.input.View()))
		return renderStatusline(m.theme, m.ui.width, left, nil)
	}

	label := runewidth.Truncate(m.stream.narrow.Label(), statusLabelMaxWidth, "…")
	left = append(left, statusTextSegment(m.theme, label))

	if list := m.stream.list; list != nil {
		pos := list.SelectedIndex() + 1
		left = append(left, statusTextSegment(m.theme, fmt.Sprintf("%d/%d", pos, list.Len())))
		if n := list.UnreadCount(); n > 0 && list.CanMarkAsRead() {
			left = append(left, statusTextSegment(m.theme, fmt.Sprintf("unread %d", n)))
		}
	}

	right := []statusSegment{}
	switch {
	case m.stream.loading:
		right = append(right, statusDimSegment(m.theme, m.ui.spinner.View()+" loading"))
	case m.stream.refreshing:
		right = append(right, statusDimSegment(m.theme, m.ui.spinner.View()+" refreshing"))
	case m.stream.rendering:
		right = append(right, statusDimSegment(m.theme, "rendering"))
	}
	right = append(right,
		statusDimSegment(m.theme, m.navigator.Direction().Arrow()),
		statusDimSegment(m.theme, fmt.Sprintf("%3.0f%%", m.view.ScrollPercent()*100)),
		statusDimSegment(m.theme, "? help"),
	)
	return renderStatusline(m.theme, m.ui.width, left, right)
}
