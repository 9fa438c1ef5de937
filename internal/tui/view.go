package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the UI.
func (m Model) View() string {
	var body string
	switch {
	case m.stream.list == nil:
		body = m.renderPlaceholder(m.ui.spinner.View() + " Loading " + m.stream.narrow.Label())
	case m.stream.list.Empty():
		body = m.renderPlaceholder("No messages in " + m.stream.narrow.Label())
	default:
		body = m.view.View()
	}
	output := m.ui.alert.Render(body + "\n" + m.renderStatusline())

	if m.ui.showHelp {
		return m.overlayModal(output, m.renderHelpModal())
	}
	if m.ui.showError && m.ui.err != nil {
		return m.overlayModal(output, m.renderErrorModal())
	}
	return output
}

func (m *Model) renderPlaceholder(text string) string {
	height := max(m.ui.height-statusHeight, 1)
	return lipgloss.Place(
		max(m.ui.width, 1),
		height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Status.Dim)).Render(text),
	)
}

// overlayModal centers a modal dialog on top of the base view.
func (m *Model) overlayModal(baseView string, modal string) string {
	dialogBoxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Modal.BorderFg)).
		Padding(1, 2)

	return overlay.Composite(
		dialogBoxStyle.Render(modal),
		baseView,
		overlay.Center,
		overlay.Center,
		0,
		0,
	)
}

func (m *Model) renderHelpModal() string {
	var b strings.Builder

	modalWidth := max(40, min(80, m.ui.width-10))

	titleStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Align(lipgloss.Center).
		Bold(true)
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	helpModel := m.ui.help
	helpModel.ShowAll = true
	helpModel.Width = max(10, modalWidth-4)
	b.WriteString(helpModel.View(m.keyMap()))

	b.WriteString("\n\n")
	footerStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(m.theme.Modal.FooterFg))
	b.WriteString(footerStyle.Render("Press any key to close"))

	return b.String()
}

func (m *Model) renderErrorModal() string {
	var b strings.Builder

	modalWidth := max(30, min(60, m.ui.width-10))

	titleStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(m.theme.Message.ErrorFg))
	b.WriteString(titleStyle.Render("Error"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(modalWidth).Render(m.ui.err.Error()))
	b.WriteString("\n\n")

	footerStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(m.theme.Modal.FooterFg))
	b.WriteString(footerStyle.Render("Press any key to dismiss"))

	return b.String()
}
