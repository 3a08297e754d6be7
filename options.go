package tcellcaret

import (
	"github.com/gdamore/tcell/v2"
)

type Option func(c *Caret)

// WithBlinkDriver sets the backend that animates blinking styles
func WithBlinkDriver(d BlinkDriver) Option {
	return func(c *Caret) {
		if d == nil {
			d = nopDriver{}
		}
		c.driver = d
	}
}

func WithColor(color tcell.Color) Option {
	return func(c *Caret) {
		c.color = color
	}
}

func WithFocused(focused bool) Option {
	return func(c *Caret) {
		c.focused = focused
	}
}
