// Package msglist holds the ordered messages of one narrow and the selection
// cursor moving through them.
package msglist

import (
	"cmp"
	"slices"

	"go.withmatt.com/narrow/internal/log"
	"go.withmatt.com/narrow/internal/navigate"
	"go.withmatt.com/narrow/internal/store"
)

// SelectFunc is called after every selection change with the row of the new
// selection (empty before the first layout).
type SelectFunc func(row navigate.Row, opts navigate.SelectOptions)

type List struct {
	name     string
	readable bool
	messages []store.Message
	index    map[navigate.MessageID]int
	rows     map[navigate.MessageID]navigate.Row
	selected int
	onSelect SelectFunc
}

var _ navigate.MessageList = (*List)(nil)

// New returns a list named after its table with nothing selected. Messages
// must be sorted by id.
func New(name string, messages []store.Message, readable bool) *List {
	l := &List{
		name:     name,
		readable: readable,
		selected: -1,
	}
	l.setMessages(messages)
	return l
}

func (l *List) setMessages(messages []store.Message) {
	l.messages = messages
	l.index = make(map[navigate.MessageID]int, len(messages))
	for i, msg := range messages {
		l.index[navigate.MessageID(msg.ID)] = i
	}
}

// OnSelect installs the selection hook.
func (l *List) OnSelect(fn SelectFunc) {
	l.onSelect = fn
}

func (l *List) Len() int {
	return len(l.messages)
}

func (l *List) Messages() []store.Message {
	return l.messages
}

// IndexOf is the position of id in the list.
func (l *List) IndexOf(id navigate.MessageID) (int, bool) {
	idx, ok := l.index[id]
	return idx, ok
}

// SelectedIndex is the position of the selection, or -1.
func (l *List) SelectedIndex() int {
	return l.selected
}

func (l *List) SelectedMessage() (store.Message, bool) {
	if l.selected < 0 || l.selected >= len(l.messages) {
		return store.Message{}, false
	}
	return l.messages[l.selected], true
}

// SelectInitial picks the starting selection: the remembered pointer when it
// is still in the list, else the first unread message, else the last one.
// The selection hook is not called.
func (l *List) SelectInitial(pointer navigate.MessageID, hasPointer bool) {
	if len(l.messages) == 0 {
		l.selected = -1
		return
	}
	if hasPointer {
		if idx, ok := l.index[pointer]; ok {
			l.selected = idx
			return
		}
	}
	l.selected = l.defaultIndex()
}

// defaultIndex is the first unread message, else the last one.
func (l *List) defaultIndex() int {
	for i, msg := range l.messages {
		if !msg.Read {
			return i
		}
	}
	return len(l.messages) - 1
}

// SetRows installs the row geometry of the latest layout.
func (l *List) SetRows(rows []navigate.Row) {
	l.rows = make(map[navigate.MessageID]navigate.Row, len(rows))
	for _, row := range rows {
		l.rows[row.MessageID] = row
	}
}

func (l *List) RowFor(id navigate.MessageID) (navigate.Row, bool) {
	row, ok := l.rows[id]
	return row, ok
}

// Merge folds fetched messages into the list, keeping the selection on the
// same message. A list with nothing selected picks a selection the way
// SelectInitial does. It returns how many messages were new.
func (l *List) Merge(fetched []store.Message) int {
	if len(fetched) == 0 {
		return 0
	}
	selectedID, hasSelection := l.selectedID()

	merged := slices.Clone(l.messages)
	added := 0
	for _, msg := range fetched {
		if idx, ok := l.index[navigate.MessageID(msg.ID)]; ok {
			// Keep local read state; it may not be persisted yet.
			msg.Read = msg.Read || merged[idx].Read
			merged[idx] = msg
			continue
		}
		merged = append(merged, msg)
		added++
	}
	if added > 0 {
		slices.SortFunc(merged, func(a, b store.Message) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}
	l.setMessages(merged)

	if hasSelection {
		l.selected = l.index[selectedID]
	} else {
		l.selected = l.defaultIndex()
	}
	return added
}

// UnreadIDs lists the ids of unread messages, oldest first.
func (l *List) UnreadIDs() []int64 {
	var ids []int64
	for _, msg := range l.messages {
		if !msg.Read {
			ids = append(ids, msg.ID)
		}
	}
	return ids
}

func (l *List) UnreadCount() int {
	count := 0
	for _, msg := range l.messages {
		if !msg.Read {
			count++
		}
	}
	return count
}

// MarkLocallyRead flips the read flag of ids in memory and returns how many
// changed.
func (l *List) MarkLocallyRead(ids []int64) int {
	changed := 0
	for _, id := range ids {
		idx, ok := l.index[navigate.MessageID(id)]
		if !ok || l.messages[idx].Read {
			continue
		}
		l.messages[idx].Read = true
		changed++
	}
	return changed
}

func (l *List) selectedID() (navigate.MessageID, bool) {
	msg, ok := l.SelectedMessage()
	if !ok {
		return 0, false
	}
	return navigate.MessageID(msg.ID), true
}

func (l *List) at(idx int) (navigate.MessageID, bool) {
	if idx < 0 || idx >= len(l.messages) {
		return 0, false
	}
	return navigate.MessageID(l.messages[idx].ID), true
}

func (l *List) First() (navigate.MessageID, bool) {
	return l.at(0)
}

func (l *List) Last() (navigate.MessageID, bool) {
	return l.at(len(l.messages) - 1)
}

func (l *List) Prev() (navigate.MessageID, bool) {
	if l.selected < 0 {
		return 0, false
	}
	return l.at(l.selected - 1)
}

func (l *List) Next() (navigate.MessageID, bool) {
	if l.selected < 0 {
		return 0, false
	}
	return l.at(l.selected + 1)
}

// Select moves the selection to id. Unknown ids are ignored.
func (l *List) Select(id navigate.MessageID, opts navigate.SelectOptions) {
	idx, ok := l.index[id]
	if !ok {
		log.Printf("msglist %s: select unknown message %d", l.name, id)
		return
	}
	l.selected = idx
	if l.onSelect != nil {
		l.onSelect(l.rows[id], opts)
	}
}

func (l *List) IsAtEnd() bool {
	return l.selected >= 0 && l.selected == len(l.messages)-1
}

func (l *List) Empty() bool {
	return len(l.messages) == 0
}

func (l *List) SelectedRow() (navigate.Row, bool) {
	id, ok := l.selectedID()
	if !ok {
		return navigate.Row{}, false
	}
	return l.RowFor(id)
}

func (l *List) CanMarkAsRead() bool {
	return l.readable && len(l.messages) > 0
}

func (l *List) TableName() string {
	return l.name
}
