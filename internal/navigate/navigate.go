// Package navigate moves the selection through a message list and scrolls
// the viewport showing it in response to keyboard and wheel intents.
package navigate

//go:generate mockgen -package=navigate -destination=mock_navigate_test.go go.withmatt.com/narrow/internal/navigate MessageList,Viewport,ReadMarker,ContentHeights

// MessageID identifies a message in a list.
type MessageID int64

// SelectOrigin records what caused a selection change.
type SelectOrigin int

const (
	OriginNone SelectOrigin = iota
	OriginScroll
)

// SelectOptions controls how a list reacts to a new selection.
type SelectOptions struct {
	ScrollIntoView bool
	Origin         SelectOrigin
}

// Row locates a rendered message inside the scrollable content, in lines.
type Row struct {
	MessageID MessageID
	Top       int
	Height    int
}

// Empty reports whether the row has nothing rendered.
func (r Row) Empty() bool {
	return r.Height <= 0
}

// MessageList is the ordered message sequence and its selection cursor.
// Prev and Next are relative to the current selection.
type MessageList interface {
	First() (MessageID, bool)
	Last() (MessageID, bool)
	Prev() (MessageID, bool)
	Next() (MessageID, bool)
	Select(id MessageID, opts SelectOptions)
	IsAtEnd() bool
	Empty() bool
	SelectedRow() (Row, bool)
	CanMarkAsRead() bool
	TableName() string
}

// Viewport is the scrollable region showing the list. SetScrollOffset is
// expected to clamp.
type Viewport interface {
	ScrollOffset() float64
	SetScrollOffset(offset float64)
	VisibleHeight() float64
	AtTop() bool
	AtBottom() bool
	RecenterOn(row Row)
	SetLastMovementDirection(d Direction)
}

// ReadMarker marks every message of the current list as read. It must not
// block.
type ReadMarker interface {
	MarkCurrentListAsRead()
}

// ContentHeights reports the full rendered height of a table, in viewport
// units.
type ContentHeights interface {
	ContentHeight(table string) float64
}

// bottomMarginRatio is the share of the viewport left empty below the last
// message when scrolling to the end.
const bottomMarginRatio = 0.1

// Navigator owns the movement direction and the deferred recenter plan for
// one session. All methods must be called from the UI event loop.
type Navigator struct {
	list    MessageList
	view    Viewport
	reads   ReadMarker
	heights ContentHeights

	direction Direction
	planner   Planner
}

// New returns a Navigator wired to its collaborators.
func New(list MessageList, view Viewport, reads ReadMarker, heights ContentHeights) *Navigator {
	return &Navigator{
		list:      list,
		view:      view,
		reads:     reads,
		heights:   heights,
		direction: DirectionDown,
	}
}

// SetList switches the list navigation operates on, for example when the
// user changes narrow. Direction and any pending plan are kept.
func (n *Navigator) SetList(list MessageList) {
	n.list = list
}

// Direction returns the direction of the last completed navigation.
func (n *Navigator) Direction() Direction {
	return n.direction
}

// SetLastMovementDirection records d and forwards it to the viewport.
func (n *Navigator) SetLastMovementDirection(d Direction) {
	n.direction = d
	n.view.SetLastMovementDirection(d)
}

func (n *Navigator) goToRow(id MessageID) {
	n.list.Select(id, SelectOptions{ScrollIntoView: true, Origin: OriginScroll})
}

func (n *Navigator) markReadIfPermitted() {
	if n.list.CanMarkAsRead() {
		n.reads.MarkCurrentListAsRead()
	}
}

// Up selects the previous message.
func (n *Navigator) Up() {
	n.SetLastMovementDirection(DirectionUp)
	id, ok := n.list.Prev()
	if !ok {
		return
	}
	n.goToRow(id)
}

// Down selects the next message. At the end of the list it either scrolls
// to the bottom and marks the list read (withCentering) or does nothing.
func (n *Navigator) Down(withCentering bool) {
	n.SetLastMovementDirection(DirectionDown)

	if n.list.IsAtEnd() {
		if withCentering {
			// Leave some whitespace under the last message for new arrivals.
			height := n.heights.ContentHeight(n.list.TableName())
			n.view.SetScrollOffset(height - n.view.VisibleHeight()*bottomMarginRatio)
			n.markReadIfPermitted()
		}
		return
	}

	id, ok := n.list.Next()
	if !ok {
		return
	}
	n.goToRow(id)
}

// Home selects the first message. Callers check that the list is not empty.
func (n *Navigator) Home() {
	n.SetLastMovementDirection(DirectionUp)
	id, ok := n.list.First()
	if !ok {
		return
	}
	n.goToRow(id)
}

// End selects the last message and marks the list read, even when the last
// message was already selected. Callers check that the list is not empty.
func (n *Navigator) End() {
	id, ok := n.list.Last()
	n.SetLastMovementDirection(DirectionDown)
	if !ok {
		return
	}
	n.goToRow(id)
	n.markReadIfPermitted()
}

// PageUp scrolls one page up, or snaps the selection to the first message
// once the viewport cannot scroll further.
func (n *Navigator) PageUp() {
	if n.view.AtTop() && !n.list.Empty() {
		if id, ok := n.list.First(); ok {
			n.list.Select(id, SelectOptions{})
		}
		return
	}
	n.ScrollPageUp()
}

// PageDown scrolls one page down, or snaps the selection to the last message
// and marks the list read once the viewport is at the bottom.
func (n *Navigator) PageDown() {
	if n.view.AtBottom() && !n.list.Empty() {
		if id, ok := n.list.Last(); ok {
			n.list.Select(id, SelectOptions{})
		}
		n.markReadIfPermitted()
		return
	}
	n.ScrollPageDown()
}

// ScrollPageUp moves the viewport up by one page without touching the
// selection or the direction.
func (n *Navigator) ScrollPageUp() {
	delta := AmountToPaginate(n.view.VisibleHeight())
	n.view.SetScrollOffset(n.view.ScrollOffset() - delta)
}

// ScrollPageDown moves the viewport down by one page without touching the
// selection or the direction.
func (n *Navigator) ScrollPageDown() {
	delta := AmountToPaginate(n.view.VisibleHeight())
	n.view.SetScrollOffset(n.view.ScrollOffset() + delta)
}

// ScrollToSelected recenters the viewport on the selected row, if any.
func (n *Navigator) ScrollToSelected() {
	row, ok := n.list.SelectedRow()
	if !ok || row.Empty() {
		return
	}
	n.view.RecenterOn(row)
}

// PlanScrollToSelected asks for a recenter at the next layout completion.
func (n *Navigator) PlanScrollToSelected() {
	n.planner.Plan()
}

// MaybeScrollToSelected performs a planned recenter, once.
func (n *Navigator) MaybeScrollToSelected() {
	n.planner.Drain(n.ScrollToSelected)
}

// ScrollPlanned reports whether a recenter is pending.
func (n *Navigator) ScrollPlanned() bool {
	return n.planner.Planned()
}
