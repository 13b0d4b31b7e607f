package app

import (
	"time"

	"sonar-sim.klederson.com/internal/export"
)

// TickMsg triggers one simulation step and a redraw.
type TickMsg time.Time

// SavedMsg reports the outcome of an export started by the Save action.
type SavedMsg struct {
	Result export.Result
	Err    error
}

// statusExpiredMsg clears the status message set at the given sequence.
type statusExpiredMsg struct {
	seq int
}
