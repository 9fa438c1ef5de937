// Package render lays a message list out into terminal lines and records
// where each message landed.
package render

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"go.withmatt.com/narrow/internal/config"
	"go.withmatt.com/narrow/internal/navigate"
	"go.withmatt.com/narrow/internal/store"
)

// Table is one laid out list.
type Table struct {
	Name  string
	Width int
	Lines []string
	Rows  []navigate.Row
}

// Height is the number of terminal lines in the table.
func (t *Table) Height() int {
	if t == nil {
		return 0
	}
	return len(t.Lines)
}

func (t *Table) Content() string {
	return strings.Join(t.Lines, "\n")
}

type Options struct {
	Theme       config.Theme
	Concurrency int
	Logf        func(string, ...any)
	Now         func() time.Time
}

type bodyKey struct {
	id    int64
	width int
}

type bodyEntry struct {
	content string
	lines   []string
	links   []string
}

// Renderer turns messages into lines. Rendered bodies are cached per
// message and width, so moving the selection only rebuilds headers.
type Renderer struct {
	styles      styles
	concurrency int
	logf        func(string, ...any)
	now         func() time.Time
	workers     chan *worker

	mu     sync.Mutex
	bodies map[bodyKey]bodyEntry
}

func NewRenderer(opts Options) *Renderer {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.Logf == nil {
		opts.Logf = func(string, ...any) {}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	workers := make(chan *worker, opts.Concurrency)
	for range opts.Concurrency {
		workers <- newWorker(opts.Theme, opts.Logf)
	}
	return &Renderer{
		styles:      newStyles(opts.Theme),
		concurrency: opts.Concurrency,
		logf:        opts.Logf,
		now:         opts.Now,
		workers:     workers,
		bodies:      make(map[bodyKey]bodyEntry),
	}
}

func (r *Renderer) cachedBody(msg store.Message, width int) (bodyEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.bodies[bodyKey{id: msg.ID, width: width}]
	if !ok || entry.content != msg.Content {
		return bodyEntry{}, false
	}
	return entry, true
}

func (r *Renderer) storeBody(msg store.Message, width int, entry bodyEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bodies[bodyKey{id: msg.ID, width: width}] = entry
}

// Links returns the URLs of a message body, using the cached rendering when
// there is one.
func (r *Renderer) Links(msg store.Message, width int) []string {
	if entry, ok := r.cachedBody(msg, bodyWidth(width)); ok {
		return entry.links
	}
	w := <-r.workers
	defer func() { r.workers <- w }()
	return Links(w.markdown(msg.Content))
}

// Forget drops cached bodies rendered for any width other than width.
func (r *Renderer) Forget(width int) {
	keep := bodyWidth(width)
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.bodies {
		if key.width != keep {
			delete(r.bodies, key)
		}
	}
}

func bodyWidth(width int) int {
	return max(width-gutterWidth, 1)
}

// Layout renders messages into a table named name, width cells wide.
// selected is the index of the selected message, or -1.
func (r *Renderer) Layout(
	ctx context.Context,
	name string,
	messages []store.Message,
	selected int,
	width int,
) (*Table, error) {
	inner := bodyWidth(width)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, msg := range messages {
		if _, ok := r.cachedBody(msg, inner); ok {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w := <-r.workers
			defer func() { r.workers <- w }()
			lines := w.render(msg.Content, inner)
			r.storeBody(msg, inner, bodyEntry{
				content: msg.Content,
				lines:   lines,
				links:   Links(w.markdown(msg.Content)),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := r.now()
	table := &Table{
		Name:  name,
		Width: width,
		Rows:  make([]navigate.Row, 0, len(messages)),
	}
	for i, msg := range messages {
		if i > 0 {
			table.Lines = append(table.Lines, "")
		}
		isSelected := i == selected
		gutter := r.styles.gutterFor(isSelected)

		top := len(table.Lines)
		table.Lines = append(table.Lines, gutter+r.styles.header(msg, isSelected, inner, now))

		body, _ := r.cachedBody(msg, inner)
		for _, line := range body.lines {
			table.Lines = append(table.Lines, gutter+line)
		}
		table.Rows = append(table.Rows, navigate.Row{
			MessageID: navigate.MessageID(msg.ID),
			Top:       top,
			Height:    len(table.Lines) - top,
		})
	}
	return table, nil
}
