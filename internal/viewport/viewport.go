// Package viewport adapts the bubbles viewport to the scroll surface the
// navigator drives. Offsets cross the boundary in units: terminal lines
// multiplied by the configured line height.
package viewport

import (
	"math"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"go.withmatt.com/narrow/internal/navigate"
)

// Rows whose top lands inside this band of the view are left alone by
// RecenterOn.
const (
	bandTop    = 1.0 / 5
	bandBottom = 4.0 / 5
	recenterAt = 1.0 / 3
)

type Model struct {
	inner      viewport.Model
	lineHeight float64
	direction  navigate.Direction
}

var _ navigate.Viewport = (*Model)(nil)

func New(width, height, lineHeight int) *Model {
	inner := viewport.New(width, height)
	// Keys belong to the navigator.
	inner.KeyMap = viewport.KeyMap{}
	return &Model{
		inner:      inner,
		lineHeight: float64(max(lineHeight, 1)),
		direction:  navigate.DirectionDown,
	}
}

func (m *Model) SetSize(width, height int) {
	m.inner.Width = width
	m.inner.Height = max(height, 0)
	m.inner.SetYOffset(m.inner.YOffset)
}

func (m *Model) Width() int  { return m.inner.Width }
func (m *Model) Height() int { return m.inner.Height }

// SetContent replaces the lines shown. A view resting at the bottom stays
// there when the user was last moving down, so new messages scroll in;
// otherwise the offset is kept.
func (m *Model) SetContent(content string) {
	pinned := m.inner.TotalLineCount() > 0 && m.inner.AtBottom() &&
		m.direction == navigate.DirectionDown
	offset := m.inner.YOffset
	m.inner.SetContent(content)
	if pinned {
		m.inner.GotoBottom()
		return
	}
	m.inner.SetYOffset(offset)
}

// Update forwards mouse wheel events to the inner viewport for free
// scrolling.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.MouseMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	m.inner, cmd = m.inner.Update(msg)
	return cmd
}

func (m *Model) View() string {
	return m.inner.View()
}

// Line is the index of the first visible line.
func (m *Model) Line() int {
	return m.inner.YOffset
}

func (m *Model) ScrollPercent() float64 {
	return m.inner.ScrollPercent()
}

func (m *Model) ScrollOffset() float64 {
	return float64(m.inner.YOffset) * m.lineHeight
}

// SetScrollOffset moves to the line nearest offset. A request that differs
// from the current offset always moves at least one line.
func (m *Model) SetScrollOffset(offset float64) {
	target := offset / m.lineHeight
	line := int(math.Round(target))
	current := m.inner.YOffset
	if line == current && target != float64(current) {
		if target > float64(current) {
			line++
		} else {
			line--
		}
	}
	m.inner.SetYOffset(line)
}

func (m *Model) VisibleHeight() float64 {
	return float64(m.inner.Height) * m.lineHeight
}

func (m *Model) AtTop() bool {
	return m.inner.AtTop()
}

func (m *Model) AtBottom() bool {
	return m.inner.AtBottom()
}

// RecenterOn scrolls so the row starts a third of the way down, unless it
// already starts inside the comfortable band.
func (m *Model) RecenterOn(row navigate.Row) {
	height := float64(m.inner.Height)
	top := float64(m.inner.YOffset)
	rel := float64(row.Top) - top
	if rel >= height*bandTop && rel <= height*bandBottom {
		return
	}
	m.inner.SetYOffset(row.Top - int(height*recenterAt))
}

func (m *Model) SetLastMovementDirection(d navigate.Direction) {
	m.direction = d
}

func (m *Model) LastMovementDirection() navigate.Direction {
	return m.direction
}
