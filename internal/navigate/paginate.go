package navigate

const (
	// OverlapAmount is kept on screen from the previous page, roughly two
	// or three lines of text, so paging never skips a message.
	OverlapAmount = 55

	// MinimumDelta keeps paging moving on a very short viewport.
	MinimumDelta = 1
)

// AmountToPaginate returns the scroll delta for one page step. The same
// amount is used in both directions.
func AmountToPaginate(visibleHeight float64) float64 {
	delta := visibleHeight - OverlapAmount
	if delta < MinimumDelta {
		delta = MinimumDelta
	}
	return delta
}
