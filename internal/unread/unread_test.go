package unread

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.withmatt.com/narrow/internal/msglist"
	"go.withmatt.com/narrow/internal/store"
)

func newList() *msglist.List {
	return msglist.New("home", []store.Message{
		{ID: 1, Read: true},
		{ID: 2},
		{ID: 3},
	}, true)
}

func TestMarkCurrentListAsReadIsLocalUntilFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := NewMockStore(ctrl)
	list := newList()
	m := New(st, list)

	m.MarkCurrentListAsRead()

	assert.Zero(t, list.UnreadCount())
	assert.Equal(t, 2, m.Pending())
}

func TestFlushPersistsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := NewMockStore(ctrl)
	list := newList()
	m := New(st, list)
	ctx := context.Background()

	m.MarkCurrentListAsRead()
	m.MarkCurrentListAsRead()

	st.EXPECT().MarkRead(ctx, []int64{2, 3}).Return(2, nil)

	cmd := m.Flush(ctx)
	require.NotNil(t, cmd)
	assert.Zero(t, m.Pending())
	assert.Equal(t, MarkedMsg{IDs: []int64{2, 3}, Count: 2}, cmd())

	assert.Nil(t, m.Flush(ctx), "nothing left to flush")
}

func TestFlushErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := NewMockStore(ctrl)
	m := New(st, newList())
	ctx := context.Background()
	boom := errors.New("disk full")

	m.MarkCurrentListAsRead()
	st.EXPECT().MarkRead(ctx, []int64{2, 3}).Return(0, boom)

	msg, ok := m.Flush(ctx)().(MarkedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, msg.Err, boom)

	m.Retry(msg)
	assert.Equal(t, 2, m.Pending())

	m.Retry(msg)
	assert.Equal(t, 2, m.Pending(), "ids are queued once")
}

func TestSetListKeepsQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := NewMockStore(ctrl)
	m := New(st, newList())

	m.MarkCurrentListAsRead()
	other := msglist.New("stream:dev", []store.Message{{ID: 9}}, true)
	m.SetList(other)
	m.MarkCurrentListAsRead()

	assert.Equal(t, 3, m.Pending())
	assert.Zero(t, other.UnreadCount())
}

func TestDrainWritesUndeliveredFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := NewMockStore(ctrl)
	list := newList()
	m := New(st, list)
	ctx := context.Background()

	m.MarkCurrentListAsRead()
	cmd := m.Flush(ctx)
	require.NotNil(t, cmd, "flush handed out but never run")

	st.EXPECT().MarkRead(ctx, []int64{2, 3}).Return(2, nil)
	require.NoError(t, m.Drain(ctx))

	assert.NoError(t, m.Drain(ctx), "nothing left to write")
}

func TestDrainAfterFinishedFlushIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := NewMockStore(ctrl)
	m := New(st, newList())
	ctx := context.Background()

	m.MarkCurrentListAsRead()
	st.EXPECT().MarkRead(ctx, []int64{2, 3}).Return(2, nil).Times(1)
	m.Flush(ctx)()

	assert.NoError(t, m.Drain(ctx))
}

func TestDrainError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := NewMockStore(ctrl)
	m := New(st, newList())
	ctx := context.Background()

	m.MarkCurrentListAsRead()
	st.EXPECT().MarkRead(ctx, []int64{2, 3}).Return(0, errors.New("database is closed"))

	assert.ErrorContains(t, m.Drain(ctx), "database is closed")
	assert.Equal(t, 2, m.Pending())
}
