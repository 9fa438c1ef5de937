package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"go.withmatt.com/narrow/internal/msglist"
	"go.withmatt.com/narrow/internal/navigate"
	"go.withmatt.com/narrow/internal/store"
	"go.withmatt.com/narrow/internal/unread"
)

func (m Model) updateSpinner(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.stream.loading && !m.stream.refreshing && !m.stream.rendering {
		return m, nil
	}
	var cmd tea.Cmd
	m.ui.spinner, cmd = m.ui.spinner.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Close modals on any keypress
	if m.ui.showHelp {
		m.ui.showHelp = false
		return m, nil
	}
	if m.ui.showError {
		m.ui.showError = false
		m.ui.err = nil
		return m, nil
	}
	if m.search.active {
		return m.handleSearchKey(msg)
	}
	return m.handleStreamKey(msg)
}

func (m Model) handleStreamKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keyMap()
	switch {
	case key.Matches(msg, km.stream.Quit):
		m.rememberSelection()
		return m, tea.Quit
	case key.Matches(msg, km.stream.Help):
		m.ui.showHelp = true
		return m, nil
	case key.Matches(msg, km.stream.Search):
		return m.startSearch()
	case key.Matches(msg, km.stream.Refresh):
		return m.refresh()
	}

	list := m.stream.list
	if list == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, km.stream.Up):
		return m.navigate(m.navigator.Up)
	case key.Matches(msg, km.stream.Down):
		return m.navigate(func() { m.navigator.Down(true) })
	case key.Matches(msg, km.stream.Home):
		if list.Empty() {
			return m, nil
		}
		return m.navigate(m.navigator.Home)
	case key.Matches(msg, km.stream.End):
		if list.Empty() {
			return m, nil
		}
		return m.navigate(m.navigator.End)
	case key.Matches(msg, km.stream.PageUp):
		return m.navigate(m.navigator.PageUp)
	case key.Matches(msg, km.stream.PageDown):
		return m.navigate(m.navigator.PageDown)
	case key.Matches(msg, km.stream.Recenter):
		m.navigator.ScrollToSelected()
		return m, nil
	case key.Matches(msg, km.stream.OpenLink):
		return m.openLink()
	}
	return m, nil
}

// navigate runs one navigator action and schedules what follows from it: a
// relayout when the selection moved and a flush of read receipts.
func (m Model) navigate(action func()) (tea.Model, tea.Cmd) {
	before := m.stream.list.SelectedIndex()
	action()

	var cmds []tea.Cmd
	if m.stream.list.SelectedIndex() != before {
		m.rememberSelection()
		cmds = append(cmds, m.layoutCmd())
	}
	cmds = append(cmds, m.flushReadsCmd())
	return m, tea.Batch(cmds...)
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.stream.list == nil || m.ui.showHelp || m.ui.showError {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if msg.Shift {
		return m, m.view.Update(msg)
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.navigate(m.navigator.Up)
	case tea.MouseButtonWheelDown:
		return m.navigate(func() { m.navigator.Down(false) })
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	oldWidth := m.ui.width
	m.ui.width = msg.Width
	m.ui.height = msg.Height
	m.search.input.Width = max(10, msg.Width-4)
	if msg.Width != oldWidth && msg.Width > 0 {
		m.ui.alert = newAlertModel(m.theme, msg.Width)
		m.renderer.Forget(msg.Width)
	}
	m.view.SetSize(msg.Width, max(msg.Height-statusHeight, 0))

	m.navigator.PlanScrollToSelected()
	cmd := m.layoutCmd()
	return m, cmd
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	m.stream.loading = false
	m.stream.refreshing = false
	if msg.err != nil {
		m.showError(msg.err)
		return m, nil
	}
	if msg.narrow != m.stream.narrow {
		m.logf("dropping load for %s, showing %s", msg.narrow.Key(), m.stream.narrow.Key())
		return m, nil
	}

	if msg.refresh && m.stream.list != nil {
		added := m.stream.list.Merge(msg.messages)
		m.logf("refresh %s added=%d", msg.narrow.Key(), added)
		if added == 0 {
			return m, nil
		}
		cmd := m.layoutCmd()
		return m, cmd
	}

	list := msglist.New(msg.narrow.Key(), msg.messages, msg.narrow.AllowsReadMarking())
	pointer, ok := m.pointers.Get(msg.narrow.Key())
	list.SelectInitial(navigate.MessageID(pointer), ok)
	view := m.view
	list.OnSelect(func(row navigate.Row, opts navigate.SelectOptions) {
		if opts.ScrollIntoView && !row.Empty() {
			view.RecenterOn(row)
		}
	})
	m.stream.list = list
	m.navigator.SetList(list)
	m.reads.SetList(list)
	m.logf("loaded %s messages=%d unread=%d", msg.narrow.Key(), list.Len(), list.UnreadCount())

	m.navigator.PlanScrollToSelected()
	cmd := m.layoutCmd()
	return m, tea.Batch(cmd, m.setWindowTitleCmd())
}

func (m Model) handleLayoutDone(msg layoutDoneMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.stream.layoutGen {
		return m, nil
	}
	m.stream.rendering = false
	if msg.err != nil {
		m.showError(msg.err)
		return m, nil
	}
	if m.stream.list == nil || msg.table.Name != m.stream.list.TableName() {
		return m, nil
	}

	m.tables.Put(msg.table)
	m.stream.list.SetRows(msg.table.Rows)
	m.view.SetContent(msg.table.Content())
	m.navigator.MaybeScrollToSelected()
	return m, nil
}

func (m Model) handleMarked(msg unread.MarkedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.reads.Retry(msg)
		m.showError(msg.Err)
		return m, nil
	}
	if msg.Count <= 0 {
		return m, nil
	}
	noun := "message"
	if msg.Count != 1 {
		noun = "messages"
	}
	// Unread markers change with the read state.
	cmd := m.layoutCmd()
	return m, tea.Batch(
		m.toastCmd(fmt.Sprintf("Marked %d %s as read", msg.Count, noun)),
		cmd,
	)
}

func (m Model) handleLinkOpened(msg linkOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.showError(fmt.Errorf("open %s: %w", msg.url, msg.err))
		return m, nil
	}
	return m, m.toastCmd("Opened " + msg.url)
}

func (m Model) handleAutoRefresh() (tea.Model, tea.Cmd) {
	next := m.autoRefreshCmd()
	if m.stream.loading || m.stream.refreshing {
		return m, next
	}
	m.stream.refreshing = true
	return m, tea.Batch(m.loadCmd(m.stream.narrow, true), next)
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.stream.loading || m.stream.refreshing {
		return m, nil
	}
	m.stream.refreshing = true
	return m, tea.Batch(m.loadCmd(m.stream.narrow, true), m.ui.spinner.Tick)
}

func (m Model) openLink() (tea.Model, tea.Cmd) {
	msg, ok := m.stream.list.SelectedMessage()
	if !ok {
		return m, nil
	}
	links := m.renderer.Links(msg, m.ui.width)
	if len(links) == 0 {
		return m, m.toastCmd("No links in this message")
	}
	return m, openLinkCmd(links[0])
}

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.search.active = true
	if m.stream.narrow.Search == "" {
		m.search.base = m.stream.narrow
	}
	m.search.input.SetValue(m.stream.narrow.Search)
	m.search.input.CursorEnd()
	cmd := m.search.input.Focus()
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keyMap()
	switch {
	case key.Matches(msg, km.search.Quit):
		m.rememberSelection()
		return m, tea.Quit
	case key.Matches(msg, km.search.Cancel):
		m.search.active = false
		m.search.input.Blur()
		return m, nil
	case key.Matches(msg, km.search.Submit):
		query := strings.TrimSpace(m.search.input.Value())
		m.search.active = false
		m.search.input.Blur()
		narrow := m.search.base
		narrow.Search = query
		m.logf("search submit query=%q", query)
		return m.switchNarrow(narrow)
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

// switchNarrow replaces the list on screen with another narrow.
func (m Model) switchNarrow(narrow store.Narrow) (tea.Model, tea.Cmd) {
	if narrow == m.stream.narrow {
		return m, nil
	}
	m.rememberSelection()
	m.stream.narrow = narrow
	m.stream.loading = true
	m.stream.refreshing = false
	return m, tea.Batch(
		m.loadCmd(narrow, false),
		m.ui.spinner.Tick,
		m.setWindowTitleCmd(),
	)
}

// rememberSelection records the selected message of the list on screen.
func (m *Model) rememberSelection() {
	if m.stream.list == nil {
		return
	}
	msg, ok := m.stream.list.SelectedMessage()
	if !ok {
		return
	}
	m.pointers.Set(m.stream.list.TableName(), msg.ID, time.Now())
}

func (m *Model) showError(err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	m.logf("error: %v", err)
	m.ui.err = err
	m.ui.showError = true
}
