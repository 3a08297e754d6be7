package caretutil

import (
	"time"
)

// EventBlink is posted by a TickerDriver on every tick of a running blink
type EventBlink struct {
	when    time.Time
	opacity float64
}

func (ev *EventBlink) When() time.Time {
	return ev.when
}

// Opacity is the blink's opacity at the time of the tick
func (ev *EventBlink) Opacity() float64 {
	return ev.opacity
}
