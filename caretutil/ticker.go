package caretutil

import (
	"sync"
	"time"

	tcellcaret "git.sr.ht/~ghost08/tcell-caret"
	"github.com/gdamore/tcell/v2"
)

// DefaultTickInterval is roughly 30 frames per second
const DefaultTickInterval = 33 * time.Millisecond

// TickerDriver is a tcellcaret.BlinkDriver that samples the blink from a
// timer goroutine and posts an EventBlink on every tick, so the host can
// redraw from its event loop.
type TickerDriver struct {
	post     func(ev tcell.Event) error
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	blink   tcellcaret.Blink
	started time.Time
	running bool
	done    chan struct{}
	exited  chan struct{}
}

// NewTickerDriver creates a driver posting through post, usually a
// tcell.Screen's PostEvent, which must not block. A non-positive interval uses
// DefaultTickInterval.
func NewTickerDriver(post func(ev tcell.Event) error, interval time.Duration) *TickerDriver {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &TickerDriver{
		post:     post,
		interval: interval,
		now:      time.Now,
	}
}

func (d *TickerDriver) Start(b tcellcaret.Blink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stop()
	d.blink = b
	d.started = d.now()
	d.running = true
	d.done = make(chan struct{})
	d.exited = make(chan struct{})
	go d.run(d.done, d.exited, b, d.started)
}

func (d *TickerDriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stop()
}

// stop returns once the goroutine has exited, so no EventBlink is posted
// after it. The goroutine never takes d.mu.
func (d *TickerDriver) stop() {
	if !d.running {
		return
	}
	close(d.done)
	<-d.exited
	d.running = false
}

func (d *TickerDriver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Opacity is the presentation opacity of the running blink, or 1 when
// stopped
func (d *TickerDriver) Opacity() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return 1
	}
	return d.blink.Opacity(d.now().Sub(d.started))
}

func (d *TickerDriver) run(done, exited chan struct{}, b tcellcaret.Blink, started time.Time) {
	defer close(exited)
	t := time.NewTicker(d.interval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case now := <-t.C:
			// a tick racing with stop loses
			select {
			case <-done:
				return
			default:
			}
			if d.post == nil {
				continue
			}
			// a full event queue drops the frame
			_ = d.post(&EventBlink{
				when:    now,
				opacity: b.Opacity(d.now().Sub(started)),
			})
		}
	}
}
