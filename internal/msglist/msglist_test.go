package msglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.withmatt.com/narrow/internal/navigate"
	"go.withmatt.com/narrow/internal/store"
)

func sample() []store.Message {
	return []store.Message{
		{ID: 10, Read: true},
		{ID: 20, Read: false},
		{ID: 30, Read: false},
	}
}

func TestNeighborsFollowSelection(t *testing.T) {
	l := New("home", sample(), true)

	_, ok := l.Prev()
	assert.False(t, ok, "nothing selected")
	_, ok = l.Next()
	assert.False(t, ok, "nothing selected")
	assert.False(t, l.IsAtEnd())

	l.Select(20, navigate.SelectOptions{})
	prev, ok := l.Prev()
	require.True(t, ok)
	assert.Equal(t, navigate.MessageID(10), prev)
	next, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, navigate.MessageID(30), next)

	l.Select(30, navigate.SelectOptions{})
	assert.True(t, l.IsAtEnd())
	_, ok = l.Next()
	assert.False(t, ok)

	l.Select(10, navigate.SelectOptions{})
	_, ok = l.Prev()
	assert.False(t, ok)
}

func TestEmptyList(t *testing.T) {
	l := New("home", nil, true)

	assert.True(t, l.Empty())
	_, ok := l.First()
	assert.False(t, ok)
	_, ok = l.Last()
	assert.False(t, ok)
	_, ok = l.SelectedRow()
	assert.False(t, ok)
	assert.False(t, l.IsAtEnd())
	assert.False(t, l.CanMarkAsRead())
}

func TestSelectCallsHookWithRow(t *testing.T) {
	l := New("home", sample(), true)
	l.SetRows([]navigate.Row{
		{MessageID: 10, Top: 0, Height: 3},
		{MessageID: 20, Top: 3, Height: 4},
		{MessageID: 30, Top: 7, Height: 2},
	})

	var gotRow navigate.Row
	var gotOpts navigate.SelectOptions
	l.OnSelect(func(row navigate.Row, opts navigate.SelectOptions) {
		gotRow = row
		gotOpts = opts
	})

	opts := navigate.SelectOptions{ScrollIntoView: true, Origin: navigate.OriginScroll}
	l.Select(20, opts)
	assert.Equal(t, navigate.Row{MessageID: 20, Top: 3, Height: 4}, gotRow)
	assert.Equal(t, opts, gotOpts)

	row, ok := l.SelectedRow()
	require.True(t, ok)
	assert.Equal(t, 3, row.Top)
}

func TestSelectUnknownIsIgnored(t *testing.T) {
	l := New("home", sample(), true)
	l.Select(20, navigate.SelectOptions{})

	l.Select(999, navigate.SelectOptions{})

	assert.Equal(t, 1, l.SelectedIndex())
}

func TestSelectInitial(t *testing.T) {
	l := New("home", sample(), true)
	l.SelectInitial(30, true)
	assert.Equal(t, 2, l.SelectedIndex())

	l.SelectInitial(999, true)
	assert.Equal(t, 1, l.SelectedIndex(), "first unread")

	allRead := New("home", []store.Message{{ID: 1, Read: true}, {ID: 2, Read: true}}, true)
	allRead.SelectInitial(0, false)
	assert.Equal(t, 1, allRead.SelectedIndex(), "last message")
}

func TestMergeKeepsSelectionAndLocalReads(t *testing.T) {
	l := New("home", sample(), true)
	l.Select(20, navigate.SelectOptions{})
	l.MarkLocallyRead([]int64{20})

	added := l.Merge([]store.Message{
		{ID: 5},
		{ID: 20, Read: false, Content: "edited"},
		{ID: 40},
	})

	assert.Equal(t, 2, added)
	require.Equal(t, 5, l.Len())
	msg, ok := l.SelectedMessage()
	require.True(t, ok)
	assert.Equal(t, int64(20), msg.ID)
	assert.True(t, msg.Read)
	assert.Equal(t, "edited", msg.Content)
	first, _ := l.First()
	last, _ := l.Last()
	assert.Equal(t, navigate.MessageID(5), first)
	assert.Equal(t, navigate.MessageID(40), last)
}

func TestReadBookkeeping(t *testing.T) {
	l := New("home", sample(), true)
	assert.Equal(t, []int64{20, 30}, l.UnreadIDs())
	assert.Equal(t, 2, l.UnreadCount())

	assert.Equal(t, 2, l.MarkLocallyRead([]int64{10, 20, 30, 99}))
	assert.Zero(t, l.UnreadCount())

	searchList := New("search:x", sample(), false)
	assert.False(t, searchList.CanMarkAsRead())
}

func TestIndexOf(t *testing.T) {
	l := New("home", sample(), true)

	idx, ok := l.IndexOf(30)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = l.IndexOf(31)
	assert.False(t, ok)
}

func TestMergeIntoEmptyListSelects(t *testing.T) {
	l := New("stream:general", nil, true)
	l.SelectInitial(0, false)
	require.Equal(t, -1, l.SelectedIndex())

	l.Merge([]store.Message{{ID: 1, Read: true}, {ID: 2}, {ID: 3}})
	assert.Equal(t, 1, l.SelectedIndex(), "first unread")

	_, ok := l.Next()
	assert.True(t, ok)
	_, ok = l.Prev()
	assert.True(t, ok)

	allRead := New("stream:general", nil, true)
	allRead.Merge([]store.Message{{ID: 1, Read: true}, {ID: 2, Read: true}})
	assert.Equal(t, 1, allRead.SelectedIndex(), "last message")
}
