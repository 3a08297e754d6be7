package tcellcaret

import (
	"time"
)

// Timing is the easing curve applied within each half-cycle of a blink
type Timing int

const (
	EaseInEaseOut Timing = iota
	Linear
)

// Blink parameterizes a repeating opacity oscillation. A half-cycle takes
// HalfPeriod and moves opacity from From to To; with AutoReverse the next
// half-cycle moves it back.
type Blink struct {
	HalfPeriod  time.Duration
	From        float64
	To          float64
	Timing      Timing
	AutoReverse bool
	Infinite    bool
}

// DefaultBlink is the oscillation started for every blinking style
var DefaultBlink = Blink{
	HalfPeriod:  700 * time.Millisecond,
	From:        1.0,
	To:          0.3,
	Timing:      EaseInEaseOut,
	AutoReverse: true,
	Infinite:    true,
}

// BlinkDriver runs a blink on behalf of a Caret. The caret only starts,
// stops and parameterizes the animation; frame timing belongs to the
// driver. Start over a running blink and Stop on a stopped driver must both
// be safe.
type BlinkDriver interface {
	Start(b Blink)
	Stop()
}

type nopDriver struct{}

func (nopDriver) Start(Blink) {}
func (nopDriver) Stop()       {}

// Opacity samples the oscillation elapsed time after it started
func (b Blink) Opacity(elapsed time.Duration) float64 {
	if b.HalfPeriod <= 0 {
		return b.From
	}
	if elapsed < 0 {
		elapsed = 0
	}
	cycle := int64(elapsed / b.HalfPeriod)
	progress := float64(elapsed%b.HalfPeriod) / float64(b.HalfPeriod)

	cycles := int64(1)
	if b.AutoReverse {
		cycles = 2
	}
	if !b.Infinite && cycle >= cycles {
		// hold the value reached at the end of the last half-cycle
		if b.AutoReverse {
			return b.From
		}
		return b.To
	}

	reverse := b.AutoReverse && cycle%2 == 1
	if reverse {
		progress = 1 - progress
	}
	return b.From + (b.To-b.From)*b.Timing.ease(progress)
}

func (t Timing) ease(p float64) float64 {
	switch t {
	case Linear:
		return p
	default:
		return cubicBezier(0.42, 0, 0.58, 1, p)
	}
}

// cubicBezier evaluates a CSS-style timing curve with control points
// (x1,y1) and (x2,y2) at horizontal position x.
func cubicBezier(x1, y1, x2, y2, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	bez := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*t*a + 3*u*t*t*b + t*t*t
	}
	lo, hi := 0.0, 1.0
	t := x
	for i := 0; i < 40; i++ {
		v := bez(x1, x2, t)
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bez(y1, y2, t)
}
