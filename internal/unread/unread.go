// Package unread batches read receipts. Marking happens in memory at once
// and is persisted later from a command, off the UI loop.
package unread

import (
	"context"
	"fmt"
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"go.withmatt.com/narrow/internal/navigate"
)

//go:generate mockgen -package=unread -destination=mock_unread_test.go go.withmatt.com/narrow/internal/unread Store

// Store persists read state.
type Store interface {
	MarkRead(ctx context.Context, ids []int64) (int, error)
}

// List is the in-memory side of the current narrow.
type List interface {
	UnreadIDs() []int64
	MarkLocallyRead(ids []int64) int
}

// MarkedMsg reports a finished flush.
type MarkedMsg struct {
	IDs   []int64
	Count int
	Err   error
}

type Marker struct {
	store   Store
	list    List
	pending []int64
	queued  map[int64]struct{}

	// inflight holds ids handed to a flush command that has not finished.
	mu       sync.Mutex
	inflight map[int64]struct{}
}

var _ navigate.ReadMarker = (*Marker)(nil)

func New(store Store, list List) *Marker {
	return &Marker{
		store:  store,
		list:   list,
		queued:   make(map[int64]struct{}),
		inflight: make(map[int64]struct{}),
	}
}

// SetList points the marker at a different narrow. Pending ids stay queued.
func (m *Marker) SetList(list List) {
	m.list = list
}

// MarkCurrentListAsRead flips every unread message of the list to read and
// queues the ids for the next Flush.
func (m *Marker) MarkCurrentListAsRead() {
	if m.list == nil {
		return
	}
	ids := m.list.UnreadIDs()
	if len(ids) == 0 {
		return
	}
	m.list.MarkLocallyRead(ids)
	m.enqueue(ids)
}

func (m *Marker) enqueue(ids []int64) {
	for _, id := range ids {
		if _, ok := m.queued[id]; ok {
			continue
		}
		m.queued[id] = struct{}{}
		m.pending = append(m.pending, id)
	}
}

// Pending is the number of ids waiting for a flush.
func (m *Marker) Pending() int {
	return len(m.pending)
}

// Flush hands the queued ids to a command that persists them. It returns nil
// when nothing is queued.
func (m *Marker) Flush(ctx context.Context) tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	ids := m.pending
	m.pending = nil
	clear(m.queued)
	m.track(ids)

	store := m.store
	return func() tea.Msg {
		count, err := store.MarkRead(ctx, ids)
		m.untrack(ids)
		if err != nil {
			err = fmt.Errorf("mark %d messages read: %w", len(ids), err)
		}
		return MarkedMsg{IDs: ids, Count: count, Err: err}
	}
}

// Retry queues the ids of a failed flush again.
func (m *Marker) Retry(msg MarkedMsg) {
	if msg.Err == nil {
		return
	}
	m.enqueue(msg.IDs)
}

func (m *Marker) track(ids []int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		m.inflight[id] = struct{}{}
	}
}

func (m *Marker) untrack(ids []int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.inflight, id)
	}
}

// Drain persists everything still queued or in flight, synchronously. It is
// meant for shutdown, when flush commands may never be delivered. Marking is
// idempotent, so ids a running command also writes are harmless.
func (m *Marker) Drain(ctx context.Context) error {
	m.mu.Lock()
	ids := slices.Clone(m.pending)
	for id := range m.inflight {
		if _, ok := m.queued[id]; !ok {
			ids = append(ids, id)
		}
	}
	m.mu.Unlock()
	if len(ids) == 0 {
		return nil
	}
	slices.Sort(ids)
	if _, err := m.store.MarkRead(ctx, ids); err != nil {
		return fmt.Errorf("mark %d messages read: %w", len(ids), err)
	}
	m.pending = nil
	clear(m.queued)
	m.untrack(ids)
	return nil
}
