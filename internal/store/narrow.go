package store

import "strings"

// Narrow selects a subset of messages. The zero value is every message.
type Narrow struct {
	Stream string
	Topic  string
	Search string
}

// Key is a stable identifier for the narrow, used as the rendered table
// name and as the selection cache key.
func (n Narrow) Key() string {
	var parts []string
	if n.Stream != "" {
		parts = append(parts, "stream:"+n.Stream)
	}
	if n.Topic != "" {
		parts = append(parts, "topic:"+n.Topic)
	}
	if n.Search != "" {
		parts = append(parts, "search:"+n.Search)
	}
	if len(parts) == 0 {
		return "home"
	}
	return strings.Join(parts, "/")
}

func (n Narrow) Label() string {
	var label string
	switch {
	case n.Stream != "" && n.Topic != "":
		label = "#" + n.Stream + " > " + n.Topic
	case n.Stream != "":
		label = "#" + n.Stream
	case n.Topic != "":
		label = "topic " + n.Topic
	default:
		label = "All messages"
	}
	if n.Search != "" {
		if label == "All messages" {
			return "search: " + n.Search
		}
		return label + " search: " + n.Search
	}
	return label
}

// AllowsReadMarking is false for search results: matching a message is not
// the same as having read the conversation around it.
func (n Narrow) AllowsReadMarking() bool {
	return n.Search == ""
}

func (n Narrow) where() (string, []any) {
	var clauses []string
	var args []any
	if n.Stream != "" {
		clauses = append(clauses, "stream = ?")
		args = append(args, n.Stream)
	}
	if n.Topic != "" {
		clauses = append(clauses, "topic = ?")
		args = append(args, n.Topic)
	}
	if search := strings.TrimSpace(n.Search); search != "" {
		clauses = append(clauses, "(instr(lower(content), lower(?)) > 0 OR instr(lower(topic), lower(?)) > 0)")
		args = append(args, search, search)
	}
	return strings.Join(clauses, " AND "), args
}
