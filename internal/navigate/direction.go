package navigate

// Direction is the way the user last moved through the list. Layout code
// reads it to decide how inserted content anchors the scroll position.
type Direction int

const (
	DirectionUp   Direction = -1
	DirectionDown Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// Arrow is a one-glyph rendering for status lines.
func (d Direction) Arrow() string {
	if d == DirectionUp {
		return "↑"
	}
	return "↓"
}
