package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"go.dalton.dog/bubbleup"

	"go.withmatt.com/narrow/internal/config"
	"go.withmatt.com/narrow/internal/msglist"
	"go.withmatt.com/narrow/internal/store"
)

type uiState struct {
	width     int
	height    int
	spinner   spinner.Model
	help      help.Model
	alert     bubbleup.AlertModel
	showHelp  bool
	showError bool
	err       error
}

type streamState struct {
	narrow     store.Narrow
	list       *msglist.List
	loading    bool
	refreshing bool
	// layoutGen tags layout requests so stale results are dropped.
	layoutGen int
	rendering bool
}

type searchState struct {
	active bool
	input  textinput.Model
	// base is the narrow a search refines.
	base store.Narrow
}

func newUIState() uiState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return uiState{spinner: s}
}

func newSearchState(theme config.Theme) searchState {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search messages"
	input.CharLimit = 200
	input.Blur()
	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Status.Bg)).
		Foreground(lipgloss.Color(theme.Status.Fg)).
		Bold(true)
	input.PromptStyle = statusStyle
	input.TextStyle = statusStyle
	input.PlaceholderStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Status.Bg)).
		Foreground(lipgloss.Color(theme.Status.Dim)).
		Faint(true)
	input.Cursor.Style = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Status.Fg)).
		Foreground(lipgloss.Color(theme.Status.Bg))
	return searchState{input: input}
}
