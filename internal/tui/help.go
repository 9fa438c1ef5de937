package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"go.withmatt.com/narrow/internal/config"
)

func newHelpModel(theme config.Theme) help.Model {
	m := help.New()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Status.Fg)).
		Bold(true)
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Status.Dim))
	m.Styles.ShortKey = keyStyle
	m.Styles.ShortDesc = dimStyle
	m.Styles.ShortSeparator = dimStyle
	m.Styles.FullKey = keyStyle
	m.Styles.FullDesc = dimStyle
	m.Styles.FullSeparator = dimStyle
	m.Styles.Ellipsis = dimStyle
	m.ShortSeparator = " • "
	m.FullSeparator = "    "
	m.Ellipsis = "..."
	return m
}
