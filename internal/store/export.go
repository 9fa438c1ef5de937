package store

import (
	json "encoding/json/v2"
	"fmt"
	"time"
)

// exportMessage is the on-disk shape accepted by `narrow import`.
type exportMessage struct {
	ID        int64    `json:"id"`
	Stream    string   `json:"stream"`
	Topic     string   `json:"topic"`
	Sender    string   `json:"sender"`
	Content   string   `json:"content"`
	Timestamp int64    `json:"timestamp"`
	Flags     []string `json:"flags,omitempty"`
}

type exportFile struct {
	Messages []exportMessage `json:"messages"`
}

// DecodeExport parses a message export: an object with a "messages" array.
func DecodeExport(data []byte) ([]Message, error) {
	var file exportFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}

	messages := make([]Message, 0, len(file.Messages))
	for i, raw := range file.Messages {
		if raw.ID <= 0 {
			return nil, fmt.Errorf("decode export: message %d has no id", i)
		}
		msg := Message{
			ID:      raw.ID,
			Stream:  raw.Stream,
			Topic:   raw.Topic,
			Sender:  raw.Sender,
			Content: raw.Content,
			SentAt:  time.Unix(raw.Timestamp, 0).UTC(),
		}
		for _, flag := range raw.Flags {
			if flag == "read" {
				msg.Read = true
			}
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
