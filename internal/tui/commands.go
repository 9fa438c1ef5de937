package tui

import (
	"fmt"
	"io"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"go.withmatt.com/narrow/internal/render"
	"go.withmatt.com/narrow/internal/store"
)

func init() {
	// The terminal is in the alternate screen; browser launcher output would
	// land on top of it.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

type loadedMsg struct {
	narrow   store.Narrow
	messages []store.Message
	refresh  bool
	err      error
}

type layoutDoneMsg struct {
	gen   int
	table *render.Table
	err   error
}

type autoRefreshMsg struct{}

type linkOpenedMsg struct {
	url string
	err error
}

// loadCmd reads a narrow from the store. refresh marks a reload of the narrow
// already on screen.
func (m *Model) loadCmd(narrow store.Narrow, refresh bool) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		messages, err := st.Messages(ctx, narrow)
		if err != nil {
			err = fmt.Errorf("load %s: %w", narrow.Label(), err)
		}
		return loadedMsg{narrow: narrow, messages: messages, refresh: refresh, err: err}
	}
}

// layoutCmd renders the current list off the UI loop. Only the newest
// request is applied.
func (m *Model) layoutCmd() tea.Cmd {
	list := m.stream.list
	if list == nil || m.ui.width <= 0 {
		return nil
	}
	m.stream.layoutGen++
	m.stream.rendering = true

	gen := m.stream.layoutGen
	name := list.TableName()
	// Read flags change under the list while the layout runs.
	messages := slices.Clone(list.Messages())
	selected := list.SelectedIndex()
	width := m.ui.width
	renderer, ctx := m.renderer, m.ctx
	return func() tea.Msg {
		table, err := renderer.Layout(ctx, name, messages, selected, width)
		if err != nil {
			err = fmt.Errorf("render %s: %w", name, err)
		}
		return layoutDoneMsg{gen: gen, table: table, err: err}
	}
}

func (m *Model) autoRefreshCmd() tea.Cmd {
	interval := m.uiConfig.RefreshInterval()
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return autoRefreshMsg{}
	})
}

func (m *Model) flushReadsCmd() tea.Cmd {
	return m.reads.Flush(m.ctx)
}

func openLinkCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: browser.OpenURL(url)}
	}
}
