package caretutil

import (
	"github.com/gdamore/tcell/v2/views"
)

type Option func(w *Widget)

func WithTheme(theme *Theme) Option {
	return func(w *Widget) {
		w.theme = theme
	}
}

// WithCellSize sets the size of one cell in the caret's host units
func WithCellSize(width, height int) Option {
	return func(w *Widget) {
		if width > 0 {
			w.cellW = width
		}
		if height > 0 {
			w.cellH = height
		}
	}
}

// WithOpacitySource sets where the widget reads the blink's current opacity
// from, typically the TickerDriver animating the caret
func WithOpacitySource(src OpacitySource) Option {
	return func(w *Widget) {
		w.opacity = src
	}
}

func WithView(view views.View) Option {
	return func(w *Widget) {
		w.view = view
	}
}
