package services

import (
	"time"

	"moneymanager/internal/clock"
)

// DefaultEditWindow is how long after creation a record may be changed.
const DefaultEditWindow = 12 * time.Hour

// EditWindow decides whether a record is still young enough to edit or
// delete. The bound is inclusive.
type EditWindow struct {
	window time.Duration
	clock  clock.Clock
}

// NewEditWindow returns an EditWindow. A non-positive window uses
// DefaultEditWindow and a nil clock uses the system clock.
func NewEditWindow(window time.Duration, clk clock.Clock) EditWindow {
	if window <= 0 {
		window = DefaultEditWindow
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return EditWindow{window: window, clock: clk}
}

// Allows reports whether a record created at createdAt may still change.
func (w EditWindow) Allows(createdAt time.Time) bool {
	return w.clock.Now().Sub(createdAt) <= w.window
}

// Duration returns the configured window.
func (w EditWindow) Duration() time.Duration {
	return w.window
}
