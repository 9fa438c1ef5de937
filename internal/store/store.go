package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"
)

const dbFileName = "messages.sqlite"

// Message is a single chat message. Content is the rendered HTML body.
type Message struct {
	ID      int64
	Stream  string
	Topic   string
	Sender  string
	Content string
	SentAt  time.Time
	Read    bool
}

// StreamSummary counts the messages of one stream.
type StreamSummary struct {
	Name   string
	Total  int
	Unread int
}

type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// DefaultPath returns the database location under the XDG data dir.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join("narrow", dbFileName))
}

// Open opens (and creates if needed) the message database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `
		CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY,
			stream TEXT NOT NULL,
			topic TEXT NOT NULL,
			sender TEXT NOT NULL,
			content TEXT NOT NULL,
			sent_at INTEGER NOT NULL,
			read INTEGER NOT NULL DEFAULT 0
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create messages table: %w", err)
	}
	if _, err := db.ExecContext(context.Background(), `
		CREATE INDEX IF NOT EXISTS messages_stream_topic ON messages (stream, topic)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create messages index: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenDefault opens the database at DefaultPath.
func OpenDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Insert upserts messages and returns how many rows were written. The read
// flag of an existing row is never cleared by a re-import.
func (s *Store) Insert(ctx context.Context, messages []Message) (int, error) {
	if len(messages) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO messages (id, stream, topic, sender, content, sent_at, read)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			stream = excluded.stream,
			topic = excluded.topic,
			sender = excluded.sender,
			content = excluded.content,
			sent_at = excluded.sent_at,
			read = max(messages.read, excluded.read)
	`)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	written := 0
	for _, msg := range messages {
		read := 0
		if msg.Read {
			read = 1
		}
		if _, err := stmt.ExecContext(
			ctx,
			msg.ID,
			msg.Stream,
			msg.Topic,
			msg.Sender,
			msg.Content,
			msg.SentAt.UTC().Unix(),
			read,
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert message %d: %w", msg.ID, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

// Messages returns the messages matching n, oldest first.
func (s *Store) Messages(ctx context.Context, n Narrow) ([]Message, error) {
	where, args := n.where()
	query := `SELECT id, stream, topic, sender, content, sent_at, read FROM messages`
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var msg Message
		var sentAt int64
		var read int
		if err := rows.Scan(
			&msg.ID,
			&msg.Stream,
			&msg.Topic,
			&msg.Sender,
			&msg.Content,
			&sentAt,
			&read,
		); err != nil {
			return nil, err
		}
		msg.SentAt = time.Unix(sentAt, 0).UTC()
		msg.Read = read != 0
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead flags the given messages as read and returns how many changed.
func (s *Store) MarkRead(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE messages SET read = 1 WHERE read = 0 AND id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return 0, err
	}
	changed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(changed), nil
}

// Streams lists every stream with its total and unread counts.
func (s *Store) Streams(ctx context.Context) ([]StreamSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT stream, COUNT(*), COALESCE(SUM(CASE WHEN read = 0 THEN 1 ELSE 0 END), 0)
		FROM messages
		GROUP BY stream
		ORDER BY stream ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var streams []StreamSummary
	for rows.Next() {
		var summary StreamSummary
		if err := rows.Scan(&summary.Name, &summary.Total, &summary.Unread); err != nil {
			return nil, err
		}
		streams = append(streams, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return streams, nil
}
