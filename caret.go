package tcellcaret

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

const (
	// DefaultColor is a fallback the host may use when its theme resolves
	// no cursor colour
	DefaultColor = tcell.ColorLightSkyBlue
	// Transparent is the fill of an unfocused caret
	Transparent = tcell.ColorDefault
)

// thickness of the underline and bar shapes, in host units
const lineThickness = 2

// Paint describes how the caret's shape region is filled and stroked. Fill
// only applies when Filled is set, since any colour, tcell.ColorDefault
// included, is a valid caret colour.
type Paint struct {
	Filled      bool
	Fill        tcell.Color
	BorderWidth int
	BorderColor tcell.Color
}

// Caret is the text insertion indicator drawn over one cell of a terminal
// view. All methods must be called from the host's UI goroutine.
type Caret struct {
	style   CursorStyle
	focused bool
	color   tcell.Color
	frame   image.Rectangle

	shape   image.Rectangle
	paint   Paint
	opacity float64

	driver    BlinkDriver
	animating bool
}

// New creates a caret occupying frame with the given initial style
func New(frame image.Rectangle, style CursorStyle, opts ...Option) *Caret {
	c := &Caret{
		style:   style,
		color:   DefaultColor,
		frame:   frame,
		opacity: 1,
		driver:  nopDriver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.updateCursorStyle()
	c.updateView()
	return c
}

// SetStyle assigns a style. The transition always runs, so re-assigning the
// current blinking style restarts its animation.
func (c *Caret) SetStyle(style CursorStyle) {
	tlog.transition(c.style, style)
	c.style = style
	c.updateCursorStyle()
}

func (c *Caret) Style() CursorStyle {
	return c.style
}

func (c *Caret) SetFocused(focused bool) {
	c.focused = focused
	c.updateView()
}

func (c *Caret) Focused() bool {
	return c.focused
}

func (c *Caret) SetColor(color tcell.Color) {
	c.color = color
	c.updateView()
}

func (c *Caret) Color() tcell.Color {
	return c.color
}

// SetFrame moves or resizes the caret. Only geometry is recomputed; a
// running blink continues undisturbed.
func (c *Caret) SetFrame(frame image.Rectangle) {
	c.frame = frame
	c.updateShape()
}

func (c *Caret) Frame() image.Rectangle {
	return c.frame
}

// Bounds is the frame's size at the caret's own origin
func (c *Caret) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.frame.Dx(), c.frame.Dy())
}

// Shape is the painted region, relative to the caret's origin with the y
// axis pointing up
func (c *Caret) Shape() image.Rectangle {
	return c.shape
}

func (c *Caret) Paint() Paint {
	return c.paint
}

// Opacity is the model opacity of the caret, which a running blink
// modulates. It is 1 whenever the style is steady.
func (c *Caret) Opacity() float64 {
	return c.opacity
}

// Animating reports whether a blink animation is running
func (c *Caret) Animating() bool {
	return c.animating
}

// DisableAnimations stops any running blink without changing the style.
// Blinking only resumes on the next SetStyle.
func (c *Caret) DisableAnimations() {
	if c.animating {
		tlog.Printf("animations disabled\n")
	}
	c.driver.Stop()
	c.animating = false
}

// HitTest never claims a point, so input always resolves to the view under
// the caret
func (c *Caret) HitTest(p image.Point) bool {
	return false
}

func (c *Caret) updateCursorStyle() {
	c.driver.Stop()
	if c.style.Blinking() {
		c.driver.Start(DefaultBlink)
		c.animating = true
		tlog.Printf("blink started\n")
	} else {
		c.animating = false
		c.opacity = 1
	}
	c.updateShape()
}

func (c *Caret) updateShape() {
	w, h := c.frame.Dx(), c.frame.Dy()
	switch c.style.Shape() {
	case ShapeUnderline:
		c.shape = image.Rect(0, 0, w, lineThickness)
	case ShapeBar:
		c.shape = image.Rect(0, 0, lineThickness, h)
	default:
		c.shape = image.Rect(0, 0, w, h)
	}
}

func (c *Caret) updateView() {
	if c.focused {
		c.paint = Paint{
			Filled:      true,
			Fill:        c.color,
			BorderWidth: 0,
			BorderColor: c.color,
		}
		return
	}
	c.paint = Paint{
		Fill:        Transparent,
		BorderWidth: 1,
		BorderColor: c.color,
	}
}
