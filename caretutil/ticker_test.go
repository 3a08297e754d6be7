package caretutil

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tcellcaret "git.sr.ht/~ghost08/tcell-caret"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTickerDriverPostsBlinkEvents(t *testing.T) {
	events := make(chan tcell.Event, 16)
	d := NewTickerDriver(func(ev tcell.Event) error {
		select {
		case events <- ev:
		default:
		}
		return nil
	}, time.Millisecond)

	d.Start(tcellcaret.DefaultBlink)
	require.True(t, d.Running())

	select {
	case ev := <-events:
		blink, ok := ev.(*EventBlink)
		require.True(t, ok)
		assert.False(t, blink.When().IsZero())
		assert.GreaterOrEqual(t, blink.Opacity(), 0.3)
		assert.LessOrEqual(t, blink.Opacity(), 1.0)
	case <-time.After(2 * time.Second):
		t.Fatal("no blink event posted")
	}

	d.Stop()
	assert.False(t, d.Running())
	assert.Equal(t, 1.0, d.Opacity())
	// stopping twice is safe
	d.Stop()
}

func TestTickerDriverOpacity(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	d := NewTickerDriver(nil, time.Hour)
	d.now = clock.Now
	assert.Equal(t, 1.0, d.Opacity())

	d.Start(tcellcaret.DefaultBlink)
	defer d.Stop()
	assert.InDelta(t, 1.0, d.Opacity(), 1e-9)

	clock.Advance(tcellcaret.DefaultBlink.HalfPeriod)
	assert.InDelta(t, 0.3, d.Opacity(), 1e-9)

	// restarting resets the phase
	d.Start(tcellcaret.DefaultBlink)
	assert.InDelta(t, 1.0, d.Opacity(), 1e-9)
}

func TestTickerDriverWithCaret(t *testing.T) {
	d := NewTickerDriver(nil, time.Hour)
	c := tcellcaret.New(CellFrame(0, 0, 8, 16, 'a'), tcellcaret.BlinkBlock, tcellcaret.WithBlinkDriver(d))
	assert.True(t, d.Running())

	c.SetStyle(tcellcaret.SteadyBlock)
	assert.False(t, d.Running())

	c.SetStyle(tcellcaret.BlinkBar)
	assert.True(t, d.Running())
	c.DisableAnimations()
	assert.False(t, d.Running())
}

func TestTickerDriverDefaultInterval(t *testing.T) {
	d := NewTickerDriver(nil, 0)
	assert.Equal(t, DefaultTickInterval, d.interval)
}

func TestTickerDriverNoEventsAfterStop(t *testing.T) {
	var stopped atomic.Bool
	var late atomic.Int64
	d := NewTickerDriver(func(ev tcell.Event) error {
		if stopped.Load() {
			late.Add(1)
		}
		return nil
	}, 50*time.Microsecond)

	for i := 0; i < 500; i++ {
		stopped.Store(false)
		d.Start(tcellcaret.DefaultBlink)
		if i%2 == 0 {
			// restart over a running blink
			d.Start(tcellcaret.DefaultBlink)
		}
		time.Sleep(100 * time.Microsecond)
		d.Stop()
		stopped.Store(true)
	}
	time.Sleep(5 * time.Millisecond)
	assert.Zero(t, late.Load())
}
