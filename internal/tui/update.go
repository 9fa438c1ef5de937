package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"go.withmatt.com/narrow/internal/unread"
)

// Update handles events and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		return m.updateSpinner(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case loadedMsg:
		return m.handleLoaded(msg)
	case layoutDoneMsg:
		return m.handleLayoutDone(msg)
	case unread.MarkedMsg:
		return m.handleMarked(msg)
	case linkOpenedMsg:
		return m.handleLinkOpened(msg)
	case autoRefreshMsg:
		return m.handleAutoRefresh()
	default:
		return m.updateAlerts(msg)
	}
}
