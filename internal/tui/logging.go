package tui

import "go.withmatt.com/narrow/internal/log"

func (m *Model) logf(format string, args ...any) {
	if !m.debug {
		return
	}
	log.Printf(format, args...)
}
