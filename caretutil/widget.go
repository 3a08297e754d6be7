package caretutil

import (
	"image"

	tcellcaret "git.sr.ht/~ghost08/tcell-caret"
	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
	"github.com/lucasb-eyer/go-colorful"
)

// OpacitySource reports the presentation opacity of a blinking caret
type OpacitySource interface {
	Opacity() float64
}

// Widget draws a Caret into a tcell view as an overlay on the terminal
// grid. It never consumes events.
type Widget struct {
	caret   *tcellcaret.Caret
	view    views.View
	theme   *Theme
	opacity OpacitySource

	cellW int
	cellH int
	col   int
	row   int
	r     rune

	views.WidgetWatchers
}

func NewWidget(c *tcellcaret.Caret, opts ...Option) *Widget {
	w := &Widget{
		caret: c,
		cellW: 1,
		cellH: 1,
		r:     ' ',
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.opacity == nil {
		w.opacity = c
	}
	return w
}

func (w *Widget) Caret() *tcellcaret.Caret {
	return w.caret
}

// SetCell places the caret over the cell at col, row holding r
func (w *Widget) SetCell(col, row int, r rune) {
	w.col = col
	w.row = row
	w.r = r
	w.caret.SetFrame(CellFrame(col, row, w.cellW, w.cellH, r))
	w.PostEventWidgetContent(w)
}

func (w *Widget) Cell() (int, int) {
	return w.col, w.row
}

func (w *Widget) Draw() {
	if w.view == nil {
		return
	}
	vw, vh := w.view.Size()
	if w.row < 0 || w.row >= vh {
		return
	}
	// a visible rune is drawn once and keeps its own width
	cols := 1
	if blank(w.r) && w.caret.Style().Shape() != tcellcaret.ShapeBar {
		cols, _ = w.Size()
	}
	glyph, style := w.cellStyle()
	for i := 0; i < cols; i++ {
		col := w.col + i
		if col < 0 || col >= vw {
			continue
		}
		w.view.SetContent(col, w.row, glyph, nil, style)
	}
}

// cellStyle picks the glyph and style for the caret's current shape and
// paint. The rune under the caret is kept; shape glyphs only stand in for
// blank cells.
func (w *Widget) cellStyle() (rune, tcell.Style) {
	paint := w.caret.Paint()
	bg := w.theme.Background()
	alpha := w.opacity.Opacity()
	style := tcell.StyleDefault.
		Background(bg).
		Foreground(w.theme.Foreground())

	colour := paint.BorderColor
	if paint.Filled {
		colour = paint.Fill
	}
	colour = blend(bg, colour, alpha)

	switch w.caret.Style().Shape() {
	case tcellcaret.ShapeUnderline:
		return w.r, style.Foreground(colour).Underline(true)
	case tcellcaret.ShapeBar:
		if !blank(w.r) {
			return w.r, style.Foreground(colour)
		}
		if paint.Filled {
			return '▎', style.Foreground(colour)
		}
		return '▏', style.Foreground(colour)
	default:
		switch {
		case paint.Filled && paint.Fill == tcell.ColorDefault:
			// the terminal's own cursor colours
			return w.r, style.Reverse(true)
		case paint.Filled:
			return w.r, style.
				Background(colour).
				Foreground(w.theme.CursorText())
		case blank(w.r):
			return '▯', style.Foreground(colour)
		default:
			return w.r, style.Foreground(colour)
		}
	}
}

func blank(r rune) bool {
	return r == ' ' || r == 0
}

// blend mixes fg over bg at the given opacity. A background without an RGB
// value is treated as black; a foreground without one is returned as is.
func blend(bg, fg tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1 {
		return fg
	}
	if r, _, _ := fg.RGB(); r < 0 {
		return fg
	}
	if alpha < 0 {
		alpha = 0
	}
	m := toColorful(bg).BlendRgb(toColorful(fg), alpha).Clamped()
	r, g, b := m.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}
	}
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

func (w *Widget) Resize() {
	w.caret.SetFrame(CellFrame(w.col, w.row, w.cellW, w.cellH, w.r))
	w.PostEventWidgetResize(w)
}

// HandleEvent always reports the event as unhandled. Mouse events are
// offered to the caret, which never claims them, so the terminal view
// beneath receives them.
func (w *Widget) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		return w.caret.HitTest(image.Pt(x*w.cellW, y*w.cellH))
	case *EventBlink:
		w.PostEventWidgetContent(w)
	}
	return false
}

func (w *Widget) SetView(view views.View) {
	w.view = view
}

// Size is the number of cells covered by the caret
func (w *Widget) Size() (int, int) {
	cols := 1
	if w.cellW > 0 {
		cols = w.caret.Frame().Dx() / w.cellW
	}
	if cols < 1 {
		cols = 1
	}
	return cols, 1
}
